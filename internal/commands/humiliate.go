package commands

import (
	"log"
	"math/rand"

	"soberaninha/internal/i18n"
	"soberaninha/internal/pipeline"

	"github.com/bwmarrin/discordgo"
)

func init() {
	Register(&Command{
		Sort:           30,
		Name:           "humiliate",
		Description:    "A Soberaninha escolhe uma vítima aleatória e humilha na frente de todos.",
		Category:       "😈 Zoeira",
		DCSlashHandler: humiliateSlashHandler,
	})
}

func humiliateSlashHandler(ctx *SlashContext) {
	s, i := ctx.Session, ctx.Interaction

	members, err := s.GuildMembers(i.GuildID, "", 1000)
	if err != nil {
		log.Println("[WARN] Failed to fetch guild members:", err)
		respondEphemeral(s, i, i18n.T("errors.no_members", nil))
		return
	}

	var humans []*discordgo.Member
	for _, m := range members {
		if m.User != nil && !m.User.Bot {
			humans = append(humans, m)
		}
	}
	if len(humans) == 0 {
		respondEphemeral(s, i, i18n.T("errors.no_members", nil))
		return
	}

	victim := humans[rand.Intn(len(humans))]

	req := buildRequest(ctx, "humiliate")
	req.TargetID = victim.User.ID
	req.TargetUsername = victim.User.Username

	res := ctx.Pipeline.Execute(req)
	if res.Status != pipeline.StatusOK {
		respondEphemeral(s, i, failureMessage(res, i.Member.User.Username))
		return
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "🔥 " + i18n.T("commands.humiliate.title", nil),
				Description: res.Content,
				Color:       embedColor,
				Footer:      embedFooter(),
			}},
		},
	})
}
