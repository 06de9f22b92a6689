package commands

import (
	"log"
	"strconv"

	"soberaninha/internal/i18n"
	"soberaninha/internal/pipeline"
	"soberaninha/internal/version"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0xd63864

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	if err != nil {
		log.Println("[WARN] Failed to edit response:", err)
	}
}

func editResponseEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Println("[WARN] Failed to edit response:", err)
	}
}

func embedFooter() *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{
		Text: i18n.T("footer", map[string]string{"botName": version.AppName}),
	}
}

func isAdministrator(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return false
		}
	}

	if member.User.ID == guild.OwnerID {
		return true
	}

	for _, r := range member.Roles {
		role, _ := s.State.Role(guildID, r)
		if role != nil && role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// roleNames resolves the member's role IDs to display names, best effort.
func roleNames(s *discordgo.Session, guildID string, member *discordgo.Member) []string {
	names := make([]string, 0, len(member.Roles))
	for _, r := range member.Roles {
		role, _ := s.State.Role(guildID, r)
		if role != nil {
			names = append(names, role.Name)
		}
	}
	return names
}

// failureMessage maps every non-OK pipeline status to its chat copy.
func failureMessage(res pipeline.Result, username string) string {
	switch res.Status {
	case pipeline.StatusPermissionDenied:
		return i18n.T("errors.permission_denied", map[string]string{"username": username})
	case pipeline.StatusCooldown:
		return i18n.T("errors.cooldown", map[string]string{"seconds": strconv.Itoa(res.RemainingSeconds)})
	case pipeline.StatusNoTarget:
		return i18n.T("errors.no_target", nil)
	case pipeline.StatusSelfTarget:
		return i18n.T("errors.self_target", nil)
	case pipeline.StatusBotTarget:
		return i18n.T("errors.bot_target", nil)
	default:
		return i18n.T("errors.generation_failed", nil)
	}
}
