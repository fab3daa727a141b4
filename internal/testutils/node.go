// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Post is one recorded POST.
type Post struct {
	Path string
	Body map[string]any
}

type reply struct {
	status int
	body   string
}

// FakeNode is an in-process node API that records every request. Paths
// without a configured reply answer 200 "ok".
type FakeNode struct {
	mu      sync.Mutex
	replies map[string]reply
	posts   []Post
	hits    map[string]int
	srv     *httptest.Server
}

func NewFakeNode(t *testing.T) *FakeNode {
	t.Helper()
	n := &FakeNode{
		replies: make(map[string]reply),
		hits:    make(map[string]int),
	}
	n.srv = httptest.NewServer(http.HandlerFunc(n.serve))
	t.Cleanup(n.srv.Close)
	return n
}

func (n *FakeNode) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	n.mu.Lock()
	n.hits[r.URL.Path]++
	if r.Method == http.MethodPost {
		p := Post{Path: r.URL.Path}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &p.Body)
		}
		n.posts = append(n.posts, p)
	}
	rep, ok := n.replies[r.URL.Path]
	n.mu.Unlock()

	if !ok {
		rep = reply{status: http.StatusOK, body: `"ok"`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (n *FakeNode) URL() string {
	return n.srv.URL
}

// Set fixes the reply for path.
func (n *FakeNode) Set(path string, status int, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replies[path] = reply{status: status, body: body}
}

// OK replies 200 with body on path.
func (n *FakeNode) OK(path, body string) {
	n.Set(path, http.StatusOK, body)
}

func (n *FakeNode) Posts() []Post {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Post(nil), n.posts...)
}

func (n *FakeNode) Hits(path string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hits[path]
}
