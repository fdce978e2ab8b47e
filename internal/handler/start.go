package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sub := submitterOf(c)

	h.logger.Info("User started bot",
		zap.Int64("user_id", sub.ID),
		zap.String("username", sub.Username),
	)

	return h.sendReplies(c, h.dialog.Start(sub))
}
