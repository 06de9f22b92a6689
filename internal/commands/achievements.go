package commands

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"soberaninha/internal/achievement"
	"soberaninha/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

func init() {
	Register(&Command{
		Sort:           110,
		Name:           "achievements",
		Description:    "Mostra as conquistas (e as vergonhas) de alguém.",
		Category:       "📊 Placar",
		DCSlashHandler: achievementsSlashHandler,
		SlashOptions: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "De quem você quer ver as conquistas?",
				Required:    false,
			},
		},
	})
}

func achievementsSlashHandler(ctx *SlashContext) {
	s, i := ctx.Session, ctx.Interaction

	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			if u := opt.UserValue(s); u != nil {
				target = u
			}
		}
	}
	self := target.ID == i.Member.User.ID

	if err := deferResponse(s, i); err != nil {
		log.Println("[WARN] Failed to defer response:", err)
		return
	}

	progress, err := ctx.Evaluator.UserProgress(target.ID, i.GuildID)
	if err != nil {
		log.Println("[ERR] Failed to load achievement progress:", err)
		editResponse(s, i, i18n.T("errors.generation_failed", nil))
		return
	}

	var unlocked, pending []achievement.Progress
	for _, p := range progress {
		if p.Unlocked {
			unlocked = append(unlocked, p)
		} else {
			pending = append(pending, p)
		}
	}

	if len(unlocked) == 0 {
		key := "achievements.list_empty_other"
		if self {
			key = "achievements.list_empty_self"
		}
		editResponse(s, i, i18n.T(key, map[string]string{"username": target.Username}))
		return
	}

	// Closest-to-done first.
	sort.Slice(pending, func(a, b int) bool {
		return pending[a].Current*pending[b].Target > pending[b].Current*pending[a].Target
	})

	var sb strings.Builder
	sb.WriteString("## " + i18n.T("achievements.unlocked_section", nil) + "\n\n")
	for _, p := range unlocked {
		sb.WriteString(fmt.Sprintf("🏆 **%s**\n", i18n.T(p.TitleKey, nil)))
	}
	if len(pending) > 0 {
		sb.WriteString("\n## " + i18n.T("achievements.pending_section", nil) + "\n\n")
		for _, p := range pending {
			pct := 0
			if p.Target > 0 {
				pct = p.Current * 100 / p.Target
			}
			sb.WriteString(fmt.Sprintf("⏳ **%s** - %d/%d (%d%%)\n", i18n.T(p.TitleKey, nil), p.Current, p.Target, pct))
		}
	}

	titleKey := "achievements.list_title_other"
	if self {
		titleKey = "achievements.list_title_self"
	}

	editResponseEmbed(s, i, &discordgo.MessageEmbed{
		Title:       i18n.T(titleKey, map[string]string{"username": target.Username}),
		Description: sb.String(),
		Color:       embedColor,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: target.AvatarURL("")},
		Footer:      embedFooter(),
	})
}
