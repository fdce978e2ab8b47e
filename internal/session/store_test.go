package session

import (
	"testing"

	"leadbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStore_Get_Default(t *testing.T) {
	store := NewStore()

	sess := store.Get(123)

	assert.Equal(t, "ru", sess.Language)
	assert.Equal(t, domain.StateIdle, sess.State)
	assert.Empty(t, sess.PendingName)
}

func TestStore_PutGet(t *testing.T) {
	store := NewStore()

	store.Put(123, domain.Session{
		Language:    "en",
		PendingName: "John",
		State:       domain.StateAwaitingComment,
	})

	sess := store.Get(123)
	assert.Equal(t, "en", sess.Language)
	assert.Equal(t, "John", sess.PendingName)
	assert.Equal(t, domain.StateAwaitingComment, sess.State)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := NewStore()

	store.Put(1, domain.Session{Language: "uz", State: domain.StateAwaitingName})

	other := store.Get(2)
	assert.Equal(t, "ru", other.Language)
	assert.Equal(t, domain.StateIdle, other.State)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Put(1, domain.Session{Language: "en", State: domain.StateIdle})

	sess := store.Get(1)
	sess.Language = "uz"
	sess.State = domain.StateAwaitingName

	// Mutating the copy must not touch the stored session.
	assert.Equal(t, "en", store.Get(1).Language)
	assert.Equal(t, domain.StateIdle, store.Get(1).State)
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()

	store.Put(123, domain.Session{
		Language:    "en",
		PendingName: "John",
		State:       domain.StateAwaitingComment,
	})

	store.Reset(123)

	sess := store.Get(123)
	assert.Equal(t, domain.StateIdle, sess.State)
	assert.Empty(t, sess.PendingName)
	assert.Equal(t, "en", sess.Language, "reset keeps the selected language")
}

func TestStore_Reset_UnknownUser(t *testing.T) {
	store := NewStore()

	// Must not create a session for a user we never saw.
	store.Reset(999)

	sess := store.Get(999)
	assert.Equal(t, "ru", sess.Language)
	assert.Equal(t, domain.StateIdle, sess.State)
}
