package dialog

import (
	"strings"
	"time"

	"leadbot/internal/domain"
	"leadbot/internal/i18n"
	"leadbot/internal/session"
)

// Intent classifies an incoming text against the current language's
// menu labels.
type Intent int

const (
	IntentFreeText Intent = iota
	IntentSwitchLanguage
	IntentSubmitRequest
)

// Keyboard tells the transport which reply control to attach.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMainMenu
	KeyboardLanguageBar
	KeyboardRemove
)

// Submitter identifies the user behind an incoming event.
type Submitter struct {
	ID       int64
	Username string
}

// Reply is one outbound message, referenced by catalog key so the
// transport renders it in Result.Language.
type Reply struct {
	Key      string
	Keyboard Keyboard
}

// Result is everything a single event produced: the language to render in,
// the messages to send in order, and the completed lead, if any.
type Result struct {
	Language string
	Replies  []Reply
	Lead     *domain.Lead
}

// Dialog drives the lead form conversation over a session store.
type Dialog struct {
	sessions *session.Store
	now      func() time.Time
}

// New creates a dialog over the given session store
func New(sessions *session.Store) *Dialog {
	return &Dialog{
		sessions: sessions,
		now:      time.Now,
	}
}

// ResolveIntent matches text against the localized menu labels for lang.
// Matching is exact, so user-typed content that merely contains a label
// never triggers a transition.
func ResolveIntent(lang, text string) Intent {
	switch text {
	case i18n.T(lang, i18n.KeyChangeLang):
		return IntentSwitchLanguage
	case i18n.T(lang, i18n.KeyApply):
		return IntentSubmitRequest
	default:
		return IntentFreeText
	}
}

// Start handles first contact (/start): greet with the language selector.
// Session state is left as is.
func (d *Dialog) Start(sub Submitter) Result {
	sess := d.sessions.Get(sub.ID)
	d.sessions.Put(sub.ID, sess)

	return Result{
		Language: sess.Language,
		Replies: []Reply{
			{Key: i18n.KeyLangTitle, Keyboard: KeyboardLanguageBar},
		},
	}
}

// HandleText routes an incoming text message through the form flow.
func (d *Dialog) HandleText(sub Submitter, text string) Result {
	sess := d.sessions.Get(sub.ID)

	// Menu labels win over form input in any state, so the user can
	// always restart or switch language mid-flow.
	switch ResolveIntent(sess.Language, text) {
	case IntentSwitchLanguage:
		sess.State = domain.StateIdle
		sess.PendingName = ""
		d.sessions.Put(sub.ID, sess)
		return Result{
			Language: sess.Language,
			Replies: []Reply{
				{Key: i18n.KeyLangTitle, Keyboard: KeyboardLanguageBar},
			},
		}

	case IntentSubmitRequest:
		sess.State = domain.StateAwaitingName
		sess.PendingName = ""
		d.sessions.Put(sub.ID, sess)
		return Result{
			Language: sess.Language,
			Replies: []Reply{
				{Key: i18n.KeyAskName, Keyboard: KeyboardRemove},
			},
		}
	}

	switch sess.State {
	case domain.StateAwaitingName:
		sess.PendingName = strings.TrimSpace(text)
		sess.State = domain.StateAwaitingComment
		d.sessions.Put(sub.ID, sess)
		return Result{
			Language: sess.Language,
			Replies: []Reply{
				{Key: i18n.KeyAskComment},
			},
		}

	case domain.StateAwaitingComment:
		lead := &domain.Lead{
			UserID:    sub.ID,
			Username:  sub.Username,
			Language:  sess.Language,
			Name:      sess.PendingName,
			Comment:   strings.TrimSpace(text),
			CreatedAt: d.now(),
		}
		sess.State = domain.StateIdle
		sess.PendingName = ""
		d.sessions.Put(sub.ID, sess)
		return Result{
			Language: sess.Language,
			Lead:     lead,
			Replies: []Reply{
				{Key: i18n.KeyThanks, Keyboard: KeyboardMainMenu},
			},
		}
	}

	// Idle + free text: nothing to do, the flow simply does not start.
	return Result{Language: sess.Language}
}

// SelectLanguage applies a language chosen on the inline selector.
// Unsupported codes keep the current language; the selector and menu are
// re-rendered either way.
func (d *Dialog) SelectLanguage(sub Submitter, code string) Result {
	sess := d.sessions.Get(sub.ID)

	if i18n.IsSupported(code) {
		sess.Language = code
	}
	d.sessions.Put(sub.ID, sess)

	return Result{
		Language: sess.Language,
		Replies: []Reply{
			{Key: i18n.KeyLangTitle, Keyboard: KeyboardLanguageBar},
			{Key: i18n.KeyMenu, Keyboard: KeyboardMainMenu},
		},
	}
}

// Language returns the current language for a user, for rendering
// outside of an event (e.g. the selector marker).
func (d *Dialog) Language(userID int64) string {
	return d.sessions.Get(userID).Language
}
