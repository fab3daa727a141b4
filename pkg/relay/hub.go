// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/luxfi/chaindash/pkg/constants"
	"go.uber.org/zap"
)

// sendBuffer is how many frames a slow subscriber may fall behind before it
// is dropped.
const sendBuffer = 8

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.send)
		_ = s.conn.Close()
	})
}

// hub fans frames out to websocket subscribers.
type hub struct {
	log *zap.Logger

	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

func newHub(log *zap.Logger) *hub {
	return &hub{log: log, subs: make(map[*subscriber]struct{})}
}

// add registers conn and starts its writer and reader. first, when non-nil,
// is queued before any broadcast.
func (h *hub) add(conn *websocket.Conn, first []byte) {
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}
	if first != nil {
		sub.send <- first
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	n := len(h.subs)
	h.mu.Unlock()
	h.log.Debug("subscriber joined", zap.String("remote", conn.RemoteAddr().String()), zap.Int("subscribers", n))

	go h.write(sub)
	go h.read(sub)
}

func (h *hub) drop(sub *subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	delete(h.subs, sub)
	n := len(h.subs)
	h.mu.Unlock()
	if !ok {
		return
	}
	sub.close()
	h.log.Debug("subscriber dropped", zap.String("remote", sub.conn.RemoteAddr().String()), zap.Int("subscribers", n))
}

func (h *hub) write(sub *subscriber) {
	for msg := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(constants.RelayWriteWait))
		if err := sub.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Debug("write failed", zap.Error(err))
			h.drop(sub)
			return
		}
	}
}

// read discards client frames and notices when the peer goes away.
func (h *hub) read(sub *subscriber) {
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("read failed", zap.Error(err))
			}
			h.drop(sub)
			return
		}
	}
}

// broadcast queues msg for every subscriber. One that cannot keep up is
// dropped rather than slowing the others.
func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	var slow []*subscriber
	for sub := range h.subs {
		select {
		case sub.send <- msg:
		default:
			slow = append(slow, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range slow {
		h.drop(sub)
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[*subscriber]struct{})
	h.mu.Unlock()
	for sub := range subs {
		sub.close()
	}
}
