package handler

import (
	"strings"
	"unicode"

	"leadbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// langCallbackPrefix tags language selector buttons; the suffix after
// the separator is the language code.
const langCallbackPrefix = "lang_"

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseLanguageCode extracts the language code from selector callback data
func parseLanguageCode(data string) (string, bool) {
	if !strings.HasPrefix(data, langCallbackPrefix) {
		return "", false
	}

	parts := strings.SplitN(data, "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback. Otherwise acknowledge and return the error
// so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Selector already up to date, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	sub := submitterOf(c)

	// Telebot puts the button tag into Unique; fall back to raw data
	// for clients that send it flat.
	data := callback.Unique
	if data == "" {
		data = cleanCallbackData(callback.Data)
	}

	code, ok := parseLanguageCode(data)
	if !ok {
		h.logger.Warn("Unhandled callback",
			zap.String("data", data),
			zap.Int64("user_id", sub.ID),
		)
		return c.Respond()
	}

	res := h.dialog.SelectLanguage(sub, code)

	h.logger.Info("Language selected",
		zap.Int64("user_id", sub.ID),
		zap.String("language", res.Language),
	)

	// Re-render the selector in place so the marker moves, then present
	// the menu in the chosen language.
	title := i18n.T(res.Language, i18n.KeyLangTitle)
	bar := languageBarMarkup(res.Language)

	if err := c.Edit(title, bar); err != nil {
		if handleErr := h.handleEditError(err, c, sub.ID); handleErr != nil {
			if sendErr := c.Send(title, bar); sendErr != nil {
				return sendErr
			}
		}
	} else {
		c.Respond()
	}

	return c.Send(i18n.T(res.Language, i18n.KeyMenu), mainMenuMarkup(res.Language))
}
