package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLead_DisplayUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		expected string
	}{
		{
			name:     "with username",
			username: "ivan",
			expected: "@ivan",
		},
		{
			name:     "without username",
			username: "",
			expected: "no_username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := Lead{Username: tt.username}
			assert.Equal(t, tt.expected, lead.DisplayUsername())
		})
	}
}

func TestLead_AdminText(t *testing.T) {
	lead := Lead{
		UserID:   42,
		Username: "ivan",
		Language: "ru",
		Name:     "Иван",
		Comment:  "Не работает кнопка",
	}

	text := lead.AdminText("📩 Новая заявка")

	assert.Contains(t, text, "📩 Новая заявка")
	assert.Contains(t, text, "👤 Name: Иван")
	assert.Contains(t, text, "💬 Comment: Не работает кнопка")
	assert.Contains(t, text, "🌐 Lang: RU")
	assert.Contains(t, text, "👤 From: @ivan (id: 42)")
}

func TestLead_AdminText_NoUsername(t *testing.T) {
	lead := Lead{
		UserID:   7,
		Language: "en",
		Name:     "John",
		Comment:  "hello",
	}

	text := lead.AdminText("📩 New request")

	assert.Contains(t, text, "Lang: EN")
	assert.Contains(t, text, "From: no_username (id: 7)")
}
