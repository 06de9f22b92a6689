package discord

import (
	"log"
	"math/rand"
	"strings"
	"unicode"

	"soberaninha/internal/roast"

	"github.com/bwmarrin/discordgo"
)

const (
	messageRoastCooldownSeconds = 5
	longMessageThreshold        = 200
	emojiSpamThreshold          = 5
)

// classifyMessage maps a message to its offense kind, or "" when the
// message deserves no roast. Checks run in priority order.
func classifyMessage(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	switch {
	case len([]rune(content)) > longMessageThreshold:
		return "long_message"
	case countEmojis(content) > emojiSpamThreshold:
		return "emoji_spam"
	case isAllCaps(content):
		return "all_caps"
	case isKeyboardSmash(content):
		return "keyboard_smash"
	}
	return ""
}

func countEmojis(s string) int {
	count := 0
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1F6FF,
			r >= 0x1F900 && r <= 0x1F9FF,
			r >= 0x2600 && r <= 0x26FF,
			r >= 0x2700 && r <= 0x27BF:
			count++
		}
	}
	return count
}

func isAllCaps(s string) bool {
	if len([]rune(s)) <= 5 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func isKeyboardSmash(s string) bool {
	// Six or more repeats of the same character, "kkkkkkk" style.
	var prev rune
	run := 1
	for _, r := range strings.ToLower(s) {
		if r == prev {
			run++
			if run >= 6 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}

	// One unbroken blob of ten or more letters and nothing else.
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 10 && letters == len([]rune(s))
}

// onMessageCreate watches guild chatter and occasionally roasts offenders
// (walls of text, emoji spam, all caps, keyboard smashes).
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !b.cfg.MessageRoaster {
		return
	}
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	if active, err := b.storage.GetActiveChannel(m.GuildID); err == nil && active != "" && active != m.ChannelID {
		return
	}

	kind := classifyMessage(m.Content)
	if kind == "" {
		return
	}

	if b.cooldowns.IsInCooldown(m.Author.ID, "message_roast") {
		return
	}
	if rand.Float64() >= b.cfg.MessageRoastChance {
		return
	}

	reply := roast.ForMessageKind(kind)
	if reply == "" {
		return
	}

	b.cooldowns.Register(m.Author.ID, "message_roast", messageRoastCooldownSeconds)

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		log.Printf("[WARN] Failed to send message roast: %v", err)
	}
}
