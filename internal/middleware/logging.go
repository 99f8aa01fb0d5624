package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every inbound update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() != nil {
				logger.Debug("Update received",
					zap.Int64("user_id", c.Sender().ID),
					zap.Int("update_id", c.Update().ID),
				)
			}
			return next(c)
		}
	}
}
