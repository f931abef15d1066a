package handler

import (
	"log/slog"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/middleware"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/realtime"
)

const (
	sessionSendBuf = 32
	writeTimeout   = 10 * time.Second
)

// RealtimeHandler upgrades authenticated clients to a websocket and streams
// their notification payloads from the hub.
type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.FastHTTPUpgrader
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.FastHTTPUpgrader{
			// Origin is enforced by the CORS layer in front of this route.
			CheckOrigin: func(*fasthttp.RequestCtx) bool { return true },
		},
	}
}

// GET /notifications/stream
func (h *RealtimeHandler) Stream(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}
	userID := claims.UserID

	err := h.upgrader.Upgrade(c.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		sess := h.hub.Register(userID, sessionSendBuf)
		defer sess.Close()

		// Reader loop only detects the client going away.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					sess.Close()
					return
				}
			}
		}()

		for {
			select {
			case <-sess.Done():
				return
			case msg := <-sess.Send:
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}
	})
	if err != nil {
		slog.Debug("realtime: upgrade failed", "user_id", userID, "err", err)
		return badRequest(c, "websocket upgrade required")
	}
	return nil
}
