package domain

import (
	"fmt"
	"strings"
	"time"
)

// NoUsername is the sentinel shown when a submitter has no Telegram username.
const NoUsername = "no_username"

// Lead is a completed name+comment form together with the submitter's identity
type Lead struct {
	UserID    int64
	Username  string
	Language  string
	Name      string
	Comment   string
	CreatedAt time.Time
}

// DisplayUsername returns the @-prefixed username or the sentinel
func (l Lead) DisplayUsername() string {
	if l.Username == "" {
		return NoUsername
	}
	return "@" + l.Username
}

// AdminText renders the notification body sent to the admin group.
// The header is the localized "new lead" title for the lead's language.
func (l Lead) AdminText(header string) string {
	return fmt.Sprintf(
		"%s\n\n👤 Name: %s\n💬 Comment: %s\n🌐 Lang: %s\n👤 From: %s (id: %d)",
		header,
		l.Name,
		l.Comment,
		strings.ToUpper(l.Language),
		l.DisplayUsername(),
		l.UserID,
	)
}
