package handler

import (
	"pdf-evidence-be/internal/pkg/logger"
	internalWS "pdf-evidence-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// StatusHandler exposes the websocket endpoint the browser subscribes to for
// pipeline progress.
type StatusHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewStatusHandler(hub *internalWS.Hub, log logger.ILogger) *StatusHandler {
	return &StatusHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer. The client id travels as
// a query param because browsers cannot set headers on websocket handshakes.
func (h *StatusHandler) ServeWs(c *fiber.Ctx) error {
	clientIDStr := c.Query("client_id")
	if clientIDStr == "" {
		clientIDStr = c.Get("X-Client-ID")
	}
	if clientIDStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing client id (Query 'client_id' or Header 'X-Client-ID')"})
	}

	clientID, err := uuid.Parse(clientIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid client id"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("StatusHandler", "Starting WebSocket session", map[string]interface{}{"client_id": clientID})
			internalWS.ServeWs(h.hub, conn, clientID)
			h.logger.Info("StatusHandler", "WebSocket session ended", map[string]interface{}{"client_id": clientID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the websocket route.
func (h *StatusHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
