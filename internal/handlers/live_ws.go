package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS layer; session auth below
		// is what actually gates the connection.
		return true
	},
}

// FlashcardEvents is the websocket feed of the session user's own card
// changes. The server only pushes; anything the client sends is ignored.
// Browser clients authenticate via the session cookie; others may pass the
// token as a Bearer header or ?token= query parameter.
func (h *Handlers) FlashcardEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireAuth(r)
	if !ok {
		if token := r.URL.Query().Get("token"); token != "" {
			if s, found, err := h.sessions.Get(r.Context(), token); err == nil && found {
				sess, ok = s, true
			}
		}
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Subscribe before completing the handshake so no event published right
	// after the client connects is missed.
	events, unsubscribe := h.live.Subscribe(ctx, sess.UserID)
	defer unsubscribe()

	conn, err := liveUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Writer: forward events until the subscription or connection ends.
	go func() {
		for ev := range events {
			if err := conn.WriteJSON(ev); err != nil {
				cancel()
				return
			}
		}
	}()

	// Reader: drain control frames and detect disconnects.
	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	}
}
