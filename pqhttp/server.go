// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqhttp provides an HTTP/JSON front end to a priority queue of
// string values. The endpoints are:
//
//	POST /items    {"value": "...", "priority": n} -> 200 {"len": n}
//	GET  /peek     -> 200 {"value": "...", "priority": n}
//	POST /extract  -> 200 {"value": "...", "priority": n}
//	GET  /len      -> 200 {"len": n}
//
// Peek and extract return 404 when the queue is empty. Errors are
// returned as a jsonapi.ErrorResponse.
package pqhttp

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"cloudeng.io/pqueue"
	"cloudeng.io/webapp/jsonapi"
	"github.com/go-chi/chi/v5"
)

// Item is the request body for POST /items.
type Item struct {
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

// Entry is the response body for GET /peek and POST /extract.
type Entry struct {
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

// Length is the response body for GET /len and POST /items.
type Length struct {
	Len int `json:"len"`
}

// InsertEndpoint represents POST /items.
var InsertEndpoint = jsonapi.Endpoint[Item, Length]{}

// PeekEndpoint represents GET /peek, ExtractEndpoint represents
// POST /extract. Neither has a request body.
var (
	PeekEndpoint    = jsonapi.Endpoint[struct{}, Entry]{}
	ExtractEndpoint = jsonapi.Endpoint[struct{}, Entry]{}
)

// LenEndpoint represents GET /len.
var LenEndpoint = jsonapi.Endpoint[struct{}, Length]{}

// ErrEmptyMsg is the message returned with a 404 when the queue is empty.
const ErrEmptyMsg = "queue is empty"

// Server serves a single priority queue. The queue itself is not safe
// for concurrent use and is guarded by a mutex.
type Server struct {
	logger *slog.Logger
	mu     sync.Mutex
	q      *pqueue.Queue[string]
}

// NewServer returns a new Server with an empty queue.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Server{
		logger: logger,
		q:      pqueue.New[string](),
	}
}

// Handler returns an http.Handler for the server's endpoints.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Post("/items", s.insert)
	router.Get("/peek", s.peek)
	router.Post("/extract", s.extract)
	router.Get("/len", s.length)
	return router
}

// Len returns the number of items in the queue.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Len()
}

func (s *Server) insert(rw http.ResponseWriter, r *http.Request) {
	var item Item
	if err := InsertEndpoint.ParseRequest(rw, r, &item); err != nil {
		s.logger.Info("bad request", "path", r.URL.Path, "error", err)
		return
	}
	s.mu.Lock()
	s.q.Insert(item.Value, item.Priority)
	n := s.q.Len()
	s.mu.Unlock()
	s.logger.Debug("inserted", "value", item.Value, "priority", item.Priority, "len", n)
	if err := InsertEndpoint.WriteResponse(rw, Length{Len: n}); err != nil {
		s.logger.Error("failed to write response", "path", r.URL.Path, "error", err)
	}
}

// head returns the entry at the head of the queue, removing it if
// remove is set, and false if the queue is empty.
func (s *Server) head(remove bool) (Entry, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.q.IsEmpty() {
		return Entry{}, 0, false
	}
	var e Entry
	if remove {
		e.Value, e.Priority = s.q.ExtractMinEntry()
	} else {
		e.Value, e.Priority = s.q.PeekEntry()
	}
	return e, s.q.Len(), true
}

func (s *Server) peek(rw http.ResponseWriter, r *http.Request) {
	e, _, ok := s.head(false)
	if !ok {
		jsonapi.WriteErrorMsg(rw, ErrEmptyMsg, http.StatusNotFound)
		return
	}
	if err := PeekEndpoint.WriteResponse(rw, e); err != nil {
		s.logger.Error("failed to write response", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) extract(rw http.ResponseWriter, r *http.Request) {
	e, n, ok := s.head(true)
	if !ok {
		jsonapi.WriteErrorMsg(rw, ErrEmptyMsg, http.StatusNotFound)
		return
	}
	s.logger.Debug("extracted", "value", e.Value, "priority", e.Priority, "len", n)
	if err := ExtractEndpoint.WriteResponse(rw, e); err != nil {
		s.logger.Error("failed to write response", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) length(rw http.ResponseWriter, r *http.Request) {
	if err := LenEndpoint.WriteResponse(rw, Length{Len: s.Len()}); err != nil {
		s.logger.Error("failed to write response", "path", r.URL.Path, "error", err)
	}
}
