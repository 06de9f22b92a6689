package discord

import (
	"fmt"
	"log"
	"math/rand"

	"soberaninha/internal/roast"

	"github.com/bwmarrin/discordgo"
)

const presenceRoastCooldownSeconds = 30 * 60

// onPresenceUpdate roasts members who just started playing a game, posted to
// the guild's configured active channel.
func (b *Bot) onPresenceUpdate(s *discordgo.Session, p *discordgo.PresenceUpdate) {
	if !b.cfg.PresenceRoaster {
		return
	}
	if p.User == nil || p.GuildID == "" {
		return
	}

	var game string
	for _, activity := range p.Activities {
		if activity.Type == discordgo.ActivityTypeGame {
			game = activity.Name
			break
		}
	}
	if game == "" {
		b.forgetGame(p.User.ID)
		return
	}

	// Same game as last time means they did not just start playing.
	if !b.recordGame(p.User.ID, game) {
		return
	}

	member, err := s.State.Member(p.GuildID, p.User.ID)
	if err != nil {
		member, err = s.GuildMember(p.GuildID, p.User.ID)
		if err != nil || member == nil {
			return
		}
	}
	if member.User == nil || member.User.Bot {
		return
	}

	channelID, err := b.storage.GetActiveChannel(p.GuildID)
	if err != nil || channelID == "" {
		return
	}

	if b.cooldowns.IsInCooldown(p.User.ID, "presence_roast") {
		return
	}
	if rand.Float64() >= b.cfg.PresenceRoastChance {
		return
	}

	username := member.User.Username
	if member.Nick != "" {
		username = member.Nick
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎮 Alguém foi jogar %s...", game),
		Description: fmt.Sprintf("Hey **%s**, %s", username, roast.ForGame(game)),
		Color:       EmbedColor,
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("[WARN] Failed to send presence roast: %v", err)
		return
	}

	b.cooldowns.Register(p.User.ID, "presence_roast", presenceRoastCooldownSeconds)
	log.Printf("[INFO] Roasted %s for playing %s", username, game)
}

// recordGame stores the user's current game and reports whether it changed.
func (b *Bot) recordGame(userID, game string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lastGame[userID] == game {
		return false
	}
	b.lastGame[userID] = game
	return true
}

func (b *Bot) forgetGame(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lastGame, userID)
}
