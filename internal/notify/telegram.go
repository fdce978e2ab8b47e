package notify

import (
	tele "gopkg.in/telebot.v3"
)

// AdminNotifier implements service.Notifier by sending plain text
// messages to a fixed admin group chat.
type AdminNotifier struct {
	bot    *tele.Bot
	chatID int64
}

// NewAdminNotifier creates a notifier bound to the admin chat id
func NewAdminNotifier(bot *tele.Bot, chatID int64) *AdminNotifier {
	return &AdminNotifier{
		bot:    bot,
		chatID: chatID,
	}
}

// Notify sends the text to the admin chat
func (n *AdminNotifier) Notify(text string) error {
	_, err := n.bot.Send(tele.ChatID(n.chatID), text)
	return err
}
