package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// registerWebsocket mounts the post-event subscription endpoint. The
// channel is open: clients need no token to listen, matching the
// broadcast-to-everyone semantics of post change events.
func (s *Server) registerWebsocket(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/posts", websocket.New(func(conn *websocket.Conn) {
		client, err := s.hub.Register(conn)
		if err != nil {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"connection limit reached"}`))
			_ = conn.Close()
			return
		}

		go client.WritePump()
		client.ReadPump()
	}))
}
