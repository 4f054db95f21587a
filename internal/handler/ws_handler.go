package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/scholaris/scholaris-backend/internal/config"
	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/model"
	ws "github.com/scholaris/scholaris-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the live announcement feed.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// AnnouncementFeed godoc
// WS /ws/v1/announcements?token=...
// Upgrades to WebSocket and relays announcements published on the
// Redis feed channel, filtered by the caller's role audience flags.
func (h *WSHandler) AnnouncementFeed(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().
		Int("user_id", claims.UserID).
		Str("role", string(claims.Role)).
		Logger()
	wsLog.Info().Msg("feed client connected")

	sub := h.rdb.Subscribe(c.Request.Context(), config.CacheKey.AnnouncementChannel())
	defer sub.Close()

	// Reader loop: only pings are expected; a read error ends the
	// session and tears down the subscription.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("unexpected close")
				}
				return
			}
			if msg.Action == ws.ActionPing {
				ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
			}
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-done:
			wsLog.Info().Msg("feed client disconnected")
			return
		case payload, ok := <-ch:
			if !ok {
				return
			}
			var a model.Announcement
			if err := json.Unmarshal([]byte(payload.Payload), &a); err != nil {
				wsLog.Warn().Err(err).Msg("malformed feed payload")
				continue
			}
			if !a.VisibleTo(claims.Role) {
				continue
			}
			if err := ws.WriteTyped(conn, ws.AnnouncementEvent{Event: ws.EventAnnouncement, Announcement: a}); err != nil {
				wsLog.Debug().Err(err).Msg("feed write failed")
				return
			}
		}
	}
}
