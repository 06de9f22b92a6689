package commands

import (
	"log"

	"soberaninha/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

func init() {
	Register(&Command{
		Sort:           200,
		Name:           "set-active-channel",
		Description:    "Define o canal onde a Soberaninha pode falar (admin).",
		Category:       "🔧 Administração",
		AdminOnly:      true,
		DCSlashHandler: setActiveChannelHandler,
		SlashOptions: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "Canal de texto liberado pro bot",
				Required:     true,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			},
		},
	})
}

func setActiveChannelHandler(ctx *SlashContext) {
	s, i := ctx.Session, ctx.Interaction

	if !isAdministrator(s, i.GuildID, i.Member) {
		respondEphemeral(s, i, i18n.T("errors.admin_only", nil))
		return
	}

	var channelID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			if ch := opt.ChannelValue(s); ch != nil {
				channelID = ch.ID
			}
		}
	}
	if channelID == "" {
		respondEphemeral(s, i, i18n.T("errors.generation_failed", nil))
		return
	}

	if err := ctx.Storage.SetActiveChannel(i.GuildID, channelID); err != nil {
		log.Println("[ERR] Failed to store active channel:", err)
		respondEphemeral(s, i, i18n.T("errors.generation_failed", nil))
		return
	}

	respondEphemeral(s, i, i18n.T("guild.channel_set", map[string]string{"channelID": channelID}))
}
