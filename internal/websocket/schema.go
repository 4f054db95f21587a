package websocket

import "github.com/scholaris/scholaris-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError        Event = "error"
	EventPong         Event = "pong"
	EventAnnouncement Event = "announcement"
)

// AnnouncementEvent pushes a newly published announcement to the feed.
type AnnouncementEvent struct {
	Event        Event              `json:"event"`
	Announcement model.Announcement `json:"announcement"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
