package discord

import (
	"log"
	"sync"

	"soberaninha/internal/achievement"
	"soberaninha/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

// AchievementNotifier DMs users their freshly unlocked achievements. Every
// failure is swallowed: users with closed DMs just miss the notice.
// The session is bound once the bot connects; notifications before that are
// dropped.
type AchievementNotifier struct {
	mu      sync.Mutex
	session *discordgo.Session
}

func NewAchievementNotifier() *AchievementNotifier {
	return &AchievementNotifier{}
}

func (n *AchievementNotifier) Bind(session *discordgo.Session) {
	n.mu.Lock()
	n.session = session
	n.mu.Unlock()
}

func (n *AchievementNotifier) NotifyAchievements(userID string, ids []string) {
	n.mu.Lock()
	session := n.session
	n.mu.Unlock()
	if session == nil || len(ids) == 0 {
		return
	}

	channel, err := session.UserChannelCreate(userID)
	if err != nil {
		log.Printf("[WARN] Could not open DM channel for %s: %v", userID, err)
		return
	}

	for _, id := range ids {
		title := achievementTitle(id)
		if title == "" {
			continue
		}
		embed := &discordgo.MessageEmbed{
			Title:       "🏆 " + i18n.T("achievements.dm_title", nil),
			Description: i18n.T("achievements.dm_body", map[string]string{"title": title}),
			Color:       EmbedColor,
		}
		if _, err := session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
			log.Printf("[WARN] Could not DM achievement %s to %s: %v", id, userID, err)
		}
	}
}

func achievementTitle(id string) string {
	for _, def := range achievement.Definitions {
		if def.ID == id {
			return i18n.T(def.TitleKey, nil)
		}
	}
	return ""
}
