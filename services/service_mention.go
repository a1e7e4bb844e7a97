package services

import (
	"context"
	"log"
	"strings"

	"threads-backend/configs"
	"threads-backend/internal/bot"
	"threads-backend/internal/repository"
	"threads-backend/model"
)

// botReplyFor runs the mention pipeline against user-authored text and
// returns the bot's reply, or nil when the pipeline does not trigger.
//
// Degradation policy is uniform across Create and Reply: a missing bot
// account or unconfigured client logs and skips, a failed or timed-out model
// call yields the fixed fallback reply. The primary user action never fails
// because of bot infrastructure.
//
// Text authored by the bot account itself never triggers the pipeline, so a
// generated reply containing the trigger cannot summon the bot again.
func (s *PostService) botReplyFor(ctx context.Context, text, authorUsername string) *model.Reply {
	if !bot.Mentioned(text) || bot.IsBot(authorUsername) {
		return nil
	}
	if s.bot == nil {
		log.Println("bot mentioned but no reply client configured, skipping")
		return nil
	}

	botUser, err := s.users.FindByUsername(ctx, configs.BotUsername)
	if err != nil {
		if err == repository.ErrNotFound {
			log.Printf("%s user not found, skipping bot reply", configs.BotUsername)
		} else {
			log.Printf("resolve %s user: %v", configs.BotUsername, err)
		}
		return nil
	}

	replyText, err := s.bot.Reply(ctx, bot.BuildPrompt(text))
	if err != nil {
		log.Printf("bot reply failed: %v", err)
		replyText = bot.FallbackReply
	}

	return &model.Reply{
		UserID:         botUser.ID,
		Text:           truncate(strings.TrimSpace(replyText), configs.MaxPostTextLen),
		UserProfilePic: botUser.ProfilePic,
		Username:       botUser.Username,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
