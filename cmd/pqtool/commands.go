// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue"
	"cloudeng.io/pqueue/graph"
	"cloudeng.io/pqueue/pqhttp"
	"cloudeng.io/pqueue/schedule"
	"cloudeng.io/webapp"
)

func orderCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	cfg, err := LoadConfig(ctx, args[0])
	if err != nil {
		return err
	}
	return runOrder(ctx, os.Stdout, cfg)
}

func runOrder(ctx context.Context, out io.Writer, cfg Config) error {
	prios := make([]int, len(cfg.Items))
	vals := make([]string, len(cfg.Items))
	for i, it := range cfg.Items {
		prios[i], vals[i] = it.Priority, it.Value
	}
	q := pqueue.New(pqueue.WithData(prios, vals))
	defer q.Release()
	ctxlog.Logger(ctx).Info("ordering items", "items", q.Len())
	for !q.IsEmpty() {
		v, p := q.ExtractMinEntry()
		if _, err := fmt.Fprintf(out, "%d\t%s\n", p, v); err != nil {
			return err
		}
	}
	return nil
}

func shortestCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	cfg, err := LoadConfig(ctx, args[0])
	if err != nil {
		return err
	}
	return runShortest(ctx, os.Stdout, cfg, args[1])
}

func runShortest(ctx context.Context, out io.Writer, cfg Config, source string) error {
	g := graph.New[string]()
	for _, e := range cfg.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	paths, err := graph.ShortestPaths(g, source)
	if err != nil {
		return err
	}
	unreachable := 0
	for _, n := range g.Nodes() {
		d, ok := paths.Distance(n)
		if !ok {
			unreachable++
			fmt.Fprintf(out, "%s\tunreachable\n", n)
			continue
		}
		fmt.Fprintf(out, "%s\t%d\t%s\n", n, d, strings.Join(paths.PathTo(n), " -> "))
	}
	ctxlog.Logger(ctx).Info("shortest paths", "source", source, "nodes", len(g.Nodes()), "unreachable", unreachable)
	return nil
}

func scheduleCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*CommonFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	cfg, err := LoadConfig(ctx, args[0])
	if err != nil {
		return err
	}
	return runSchedule(ctx, os.Stdout, cfg, time.Now)
}

func runSchedule(ctx context.Context, out io.Writer, cfg Config, now func() time.Time) error {
	s := schedule.New[string](schedule.WithClock(now))
	start := now()
	for _, ev := range cfg.Events {
		s.Add(start.Add(ev.After), ev.Value)
	}
	return s.Run(ctx, func(_ context.Context, ev schedule.Event[string]) error {
		_, err := fmt.Fprintf(out, "%v\t%s\n", ev.When.Sub(start), ev.Value)
		return err
	})
}

func serveCmd(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*serveFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	return runServe(ctx, fv.Address, nil)
}

// runServe serves a queue on addr until ctx is canceled. If started is
// not nil it is called with the address being listened on.
func runServe(ctx context.Context, addr string, started func(net.Addr)) error {
	logger := ctxlog.Logger(ctx)
	ln, srv, err := webapp.NewHTTPServer(ctx, addr, pqhttp.NewServer(logger).Handler())
	if err != nil {
		return err
	}
	logger.Info("serving", "address", ln.Addr().String())
	if started != nil {
		started(ln.Addr())
	}
	return webapp.ServeWithShutdown(ctx, ln, srv, 5*time.Second)
}
