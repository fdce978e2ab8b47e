package domain

// SessionState represents user's current position in the lead form
type SessionState string

const (
	StateIdle            SessionState = "idle"
	StateAwaitingName    SessionState = "awaiting_name"
	StateAwaitingComment SessionState = "awaiting_comment"
)

// Session holds per-chat conversation state.
// PendingName is only meaningful while State == StateAwaitingComment.
type Session struct {
	Language    string
	PendingName string
	State       SessionState
}
