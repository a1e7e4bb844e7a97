package configs

import "time"

const (
	// MaxPostTextLen bounds both user post text and stored bot replies.
	MaxPostTextLen = 500

	MaxImageBytes = 10 << 20

	BotUsername = "threadBot"

	DefaultBotModel   = "gemini-2.0-flash"
	DefaultBotTimeout = 30 * time.Second

	BotTemperature     = 0.6
	BotTopP            = 0.95
	BotMaxOutputTokens = 4096
)
