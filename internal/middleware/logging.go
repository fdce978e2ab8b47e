package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates update-logging middleware
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()

			var userID int64
			var username string
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
				username = sender.Username
			}

			err := next(c)

			fields := []zap.Field{
				zap.Int64("user_id", userID),
				zap.String("username", username),
				zap.Bool("callback", c.Callback() != nil),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}

			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
