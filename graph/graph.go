// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package graph provides a weighted, directed graph and a single source
// shortest path search over it.
package graph

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/pqueue"
)

var (
	// ErrNegativeWeight is returned by AddEdge for negative weights.
	ErrNegativeWeight = errors.New("negative edge weight")
	// ErrUnknownNode is returned when a node is not part of a graph.
	ErrUnknownNode = errors.New("unknown node")
)

// Edge represents a weighted, directed edge.
type Edge[N comparable] struct {
	From, To N
	Weight   int
}

// Graph represents a weighted, directed graph. Nodes are added
// implicitly by AddEdge or explicitly by AddNode.
type Graph[N comparable] struct {
	nodes []N
	edges map[N][]Edge[N]
}

// New returns a new, empty, Graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{edges: map[N][]Edge[N]{}}
}

// AddNode adds n to the graph if it is not already present.
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.edges[n]; ok {
		return
	}
	g.nodes = append(g.nodes, n)
	g.edges[n] = nil
}

// AddEdge adds a directed edge from -> to with the specified weight,
// which must not be negative.
func (g *Graph[N]) AddEdge(from, to N, weight int) error {
	if weight < 0 {
		return fmt.Errorf("%v -> %v: %v: %w", from, to, weight, ErrNegativeWeight)
	}
	g.AddNode(from)
	g.AddNode(to)
	g.edges[from] = append(g.edges[from], Edge[N]{From: from, To: to, Weight: weight})
	return nil
}

// Nodes returns the nodes in the graph in the order that they were added.
func (g *Graph[N]) Nodes() []N {
	return append([]N{}, g.nodes...)
}

// Edges returns the edges leaving n.
func (g *Graph[N]) Edges(n N) []Edge[N] {
	return append([]Edge[N]{}, g.edges[n]...)
}

// Paths represents the result of a shortest path search.
type Paths[N comparable] struct {
	source N
	dist   map[N]int
	prev   map[N]N
}

// Source returns the node that the search started from.
func (p *Paths[N]) Source() N {
	return p.source
}

// Distance returns the length of the shortest path to n and true, or
// false if n is not reachable from the source.
func (p *Paths[N]) Distance(n N) (int, bool) {
	d, ok := p.dist[n]
	return d, ok
}

// PathTo returns the nodes on the shortest path from the source to n,
// including both, or nil if n is not reachable.
func (p *Paths[N]) PathTo(n N) []N {
	if _, ok := p.dist[n]; !ok {
		return nil
	}
	var rev []N
	for cur := n; ; {
		rev = append(rev, cur)
		prev, ok := p.prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	path := make([]N, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// ShortestPaths computes the shortest paths from source to every node
// reachable from it using Dijkstra's algorithm. The priority queue does
// not support decreasing the priority of an entry, so a node may be
// queued more than once and stale entries are skipped when extracted.
func ShortestPaths[N comparable](g *Graph[N], source N) (*Paths[N], error) {
	if _, ok := g.edges[source]; !ok {
		return nil, fmt.Errorf("%v: %w", source, ErrUnknownNode)
	}
	p := &Paths[N]{
		source: source,
		dist:   map[N]int{source: 0},
		prev:   map[N]N{},
	}
	done := make(map[N]bool, len(g.nodes))
	q := pqueue.New(pqueue.WithSliceCap[N](len(g.nodes)))
	defer q.Release()
	q.Insert(source, 0)
	for !q.IsEmpty() {
		n, d := q.ExtractMinEntry()
		if done[n] {
			continue
		}
		done[n] = true
		for _, e := range g.edges[n] {
			nd := d + e.Weight
			if cur, ok := p.dist[e.To]; ok && cur <= nd {
				continue
			}
			p.dist[e.To] = nd
			p.prev[e.To] = n
			q.Insert(e.To, nd)
		}
	}
	return p, nil
}
