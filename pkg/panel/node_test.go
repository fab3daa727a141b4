// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package panel

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/luxfi/chaindash/pkg/nodeclient"
	"github.com/luxfi/chaindash/pkg/notify"
	"github.com/luxfi/chaindash/pkg/prompts"
	"github.com/luxfi/chaindash/pkg/store"
	"github.com/luxfi/chaindash/pkg/units"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type reply struct {
	status int
	body   string
}

type post struct {
	Path string
	Body map[string]any
}

// fakeNode is an in-process node API that records every request.
type fakeNode struct {
	mu      sync.Mutex
	replies map[string]reply
	delays  map[string]time.Duration
	posts   []post
	hits    map[string]int
	srv     *httptest.Server
}

func newFakeNode(t *testing.T) *fakeNode {
	t.Helper()
	n := &fakeNode{
		replies: make(map[string]reply),
		delays:  make(map[string]time.Duration),
		hits:    make(map[string]int),
	}
	n.srv = httptest.NewServer(http.HandlerFunc(n.serve))
	t.Cleanup(n.srv.Close)
	return n
}

func (n *fakeNode) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	n.mu.Lock()
	n.hits[r.URL.Path]++
	if r.Method == http.MethodPost {
		p := post{Path: r.URL.Path}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &p.Body)
		}
		n.posts = append(n.posts, p)
	}
	rep, ok := n.replies[r.URL.Path]
	delay := n.delays[r.URL.Path]
	n.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if !ok {
		rep = reply{status: http.StatusOK, body: `"ok"`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (n *fakeNode) set(path string, status int, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replies[path] = reply{status: status, body: body}
}

// slow holds every response on path for d.
func (n *fakeNode) slow(path string, d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.delays[path] = d
}

func (n *fakeNode) ok(path, body string) {
	n.set(path, http.StatusOK, body)
}

func (n *fakeNode) Posts() []post {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]post(nil), n.posts...)
}

func (n *fakeNode) Hits(path string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.hits[path]
}

func (n *fakeNode) client() *nodeclient.Client {
	return nodeclient.New(n.srv.URL, time.Second, zap.NewNop())
}

func (n *fakeNode) options(p prompts.Prompter, rec *notify.Recorder, staking store.Staking) Options {
	opts := Options{
		Client:   n.client(),
		Prompter: p,
		Staking:  staking,
		Interval: 10 * time.Millisecond,
		Log:      zap.NewNop(),
	}
	if rec != nil {
		opts.Notifier = rec
	}
	return opts
}

func tokens(n int64) units.Amount {
	a, _ := units.FromTokens(decimal.NewFromInt(n))
	return a
}
