package handler

import (
	"leadbot/internal/dialog"
	"leadbot/internal/i18n"
	"leadbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	dialog      *dialog.Dialog
	leadService *service.LeadService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	d *dialog.Dialog,
	leadService *service.LeadService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		dialog:      d,
		leadService: leadService,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (language selector)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// submitterOf extracts the submitter identity from a telebot context
func submitterOf(c tele.Context) dialog.Submitter {
	sender := c.Sender()
	if sender == nil {
		return dialog.Submitter{}
	}
	return dialog.Submitter{
		ID:       sender.ID,
		Username: sender.Username,
	}
}

// sendReplies renders a dialog result in order, localizing each reply
// and attaching the requested keyboard.
func (h *Handler) sendReplies(c tele.Context, res dialog.Result) error {
	for _, reply := range res.Replies {
		text := i18n.T(res.Language, reply.Key)

		var err error
		switch reply.Keyboard {
		case dialog.KeyboardMainMenu:
			err = c.Send(text, mainMenuMarkup(res.Language))
		case dialog.KeyboardLanguageBar:
			err = c.Send(text, languageBarMarkup(res.Language))
		case dialog.KeyboardRemove:
			err = c.Send(text, removeKeyboardMarkup())
		default:
			err = c.Send(text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// mainMenuMarkup returns the persistent two-row menu keyboard for a language
func mainMenuMarkup(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(i18n.T(lang, i18n.KeyApply))),
		menu.Row(menu.Text(i18n.T(lang, i18n.KeyChangeLang))),
	)
	return menu
}

// languageBarMarkup returns the inline language selector with the
// selected language marked.
func languageBarMarkup(selected string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	row := tele.Row{}
	for _, code := range i18n.Languages() {
		label := i18n.DisplayName(code)
		if code == selected {
			label = "✅ " + label
		}
		row = append(row, markup.Data(label, langCallbackPrefix+code))
	}

	markup.Inline(row)
	return markup
}

// removeKeyboardMarkup hides the reply keyboard for free-text input
func removeKeyboardMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}
