package station

import (
	"context"
	"errors"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/logger"
	"warehouse-counter/core/reconcile"
	"warehouse-counter/core/scanner"
	"warehouse-counter/core/session"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves station websocket connections.
type Handler struct {
	catalog *catalog.Catalog
	store   catalog.Store
	cfg     scanner.Config
	logger  *zap.Logger
}

// NewHandler creates a new station handler.
func NewHandler(cat *catalog.Catalog, store catalog.Store, cfg scanner.Config, logger *zap.Logger) *Handler {
	return &Handler{catalog: cat, store: store, cfg: cfg, logger: logger}
}

// RegisterRoutes registers the station routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/station")
	group.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	group.Get("/ws", websocket.New(h.HandleWebSocket))
}

// HandleWebSocket runs one station for the lifetime of the connection.
// @Summary Scanner Station
// @Description Websocket stream of scanner keys. Each connection is an independent counting session.
// @Tags station
// @Security ApiKeyAuth
// @Success 101
// @Failure 426 {object} map[string]string "Upgrade Required"
// @Router /station/ws [get]
func (h *Handler) HandleWebSocket(c *websocket.Conn) {
	id := uuid.New().String()
	l := logger.WithStation(h.logger, id)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := session.New(h.catalog, h.store, reconcile.New(), l)
	st := New(id, sess, h.cfg, func(r Reply) error {
		return c.WriteJSON(r)
	}, l)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := st.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			l.Error("Station stopped", zap.Error(err))
		}
	}()

	l.Info("Station connected")
	st.Ready()

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				l.Warn("Station connection error", zap.Error(err))
			}
			break
		}
		st.Handle(ctx, msg)
	}

	cancel()
	<-done
	l.Info("Station disconnected")
}
