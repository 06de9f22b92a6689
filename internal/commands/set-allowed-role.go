package commands

import (
	"log"
	"strings"

	"soberaninha/internal/i18n"

	"github.com/bwmarrin/discordgo"
)

func init() {
	Register(&Command{
		Sort:           210,
		Name:           "set-allowed-role",
		Description:    "Gerencia os cargos que podem usar o bot (admin).",
		Category:       "🔧 Administração",
		AdminOnly:      true,
		DCSlashHandler: setAllowedRoleHandler,
		SlashOptions: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Libera um cargo pra usar o bot",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Cargo a liberar",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Remove um cargo da lista de liberados",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Cargo a remover",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Lista os cargos liberados",
			},
		},
	})
}

func setAllowedRoleHandler(ctx *SlashContext) {
	s, i := ctx.Session, ctx.Interaction

	if !isAdministrator(s, i.GuildID, i.Member) {
		respondEphemeral(s, i, i18n.T("errors.admin_only", nil))
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	sub := options[0]

	switch sub.Name {
	case "add", "remove":
		var role *discordgo.Role
		for _, opt := range sub.Options {
			if opt.Name == "role" {
				role = opt.RoleValue(s, i.GuildID)
			}
		}
		if role == nil {
			respondEphemeral(s, i, i18n.T("errors.generation_failed", nil))
			return
		}

		var err error
		msgKey := "guild.role_added"
		if sub.Name == "add" {
			err = ctx.Storage.AddAllowedRole(i.GuildID, role.ID)
		} else {
			err = ctx.Storage.RemoveAllowedRole(i.GuildID, role.ID)
			msgKey = "guild.role_removed"
		}
		if err != nil {
			log.Println("[ERR] Failed to update allowed roles:", err)
			respondEphemeral(s, i, i18n.T("errors.generation_failed", nil))
			return
		}
		respondEphemeral(s, i, i18n.T(msgKey, map[string]string{"role": role.Name}))

	case "list":
		roleIDs, err := ctx.Storage.GetAllowedRoles(i.GuildID)
		if err != nil {
			log.Println("[ERR] Failed to load allowed roles:", err)
			respondEphemeral(s, i, i18n.T("errors.generation_failed", nil))
			return
		}
		if len(roleIDs) == 0 {
			respondEphemeral(s, i, i18n.T("guild.role_none", nil))
			return
		}
		mentions := make([]string, 0, len(roleIDs))
		for _, id := range roleIDs {
			mentions = append(mentions, "<@&"+id+">")
		}
		respondEphemeral(s, i, i18n.T("guild.role_list", map[string]string{"roles": strings.Join(mentions, ", ")}))
	}
}
