package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes all text messages through the lead form dialog
func (h *Handler) handleText(c tele.Context) error {
	sub := submitterOf(c)
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	res := h.dialog.HandleText(sub, text)

	if res.Lead != nil {
		// The confirmation below is sent even if the admin notification
		// failed; the error is already logged by the service.
		if err := h.leadService.Submit(*res.Lead); err == nil {
			h.logger.Info("Lead submitted",
				zap.Int64("user_id", sub.ID),
				zap.String("language", res.Lead.Language),
			)
		}
	}

	return h.sendReplies(c, res)
}
