// Package bot holds the ThreadBot reply client and mention detection.
package bot

import (
	"fmt"
	"strings"

	"threads-backend/configs"
)

// Trigger is the literal substring that summons the bot.
const Trigger = "@threadbot"

// FallbackReply is appended when the model call fails or times out, so the
// user's post or reply still goes through.
const FallbackReply = "ThreadBot couldn't reply due to an error."

const promptTemplate = `You are ThreadBot, a helpful and concise assistant on a social media platform. Your job is to generate short, insightful, and engaging replies to posts.

Your style: witty, helpful, concise. Never exceed 2-3 lines.

Here is the post you need to respond to:

%q

Now write your reply: just write the reply and nothing else, reply like a user`

// Mentioned reports whether text contains the trigger, case-insensitively.
// A bare "threadbot" without the leading @ does not count.
func Mentioned(text string) bool {
	return strings.Contains(strings.ToLower(text), Trigger)
}

// BuildPrompt embeds the triggering text into the fixed style template.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// IsBot reports whether a username is the reserved bot account. The bot is a
// regular user record; this is the only thing that distinguishes it.
func IsBot(username string) bool {
	return username == configs.BotUsername
}
