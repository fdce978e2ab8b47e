package testutil

import (
	"time"

	"leadbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestLead creates a test lead
func NewTestLead(userID int64, username, lang, name, comment string) domain.Lead {
	return domain.Lead{
		UserID:    userID,
		Username:  username,
		Language:  lang,
		Name:      name,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
}

// NewTestSession creates a test session
func NewTestSession(lang string, state domain.SessionState, pendingName string) domain.Session {
	return domain.Session{
		Language:    lang,
		PendingName: pendingName,
		State:       state,
	}
}
