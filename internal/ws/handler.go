package ws

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// MaxClients caps concurrent subscribers to ranking events.
const MaxClients = 1024

// Handler upgrades /ws/rankings requests and attaches them to the hub as
// read-only subscribers.
type Handler struct {
	hub      *Hub
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/rankings", h.Subscribe)
}

func (h *Handler) Subscribe(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	if h.hub.ClientCount() >= MaxClients {
		h.logger.Warn("ws subscriber limit reached", zap.Int("max", MaxClients))
		return fiber.ErrServiceUnavailable
	}

	return adaptor.HTTPHandlerFunc(h.upgrade)(c)
}

func (h *Handler) upgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.Register(client)
	h.logger.Debug("ws subscriber joined", zap.String("remote", r.RemoteAddr))

	go client.WritePump()
	go client.ReadPump()
}
