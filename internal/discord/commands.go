package discord

import (
	"context"
	"log"
	"time"

	"soberaninha/internal/commands"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// registrationLimiter paces command create/delete calls so a multi-guild boot
// stays under Discord's rate limit.
var registrationLimiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 1)

// registerCommands syncs slash commands for a guild with Discord: deletes
// obsolete ones and recreates the current set.
func (b *Bot) registerCommands(guildID string) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	local := buildCommandDefinitions()
	localNames := make(map[string]struct{}, len(local))
	for _, d := range local {
		localNames[d.Name] = struct{}{}
	}

	remote, _ := b.dg.ApplicationCommands(appID, guildID)
	for _, rc := range remote {
		if _, exists := localNames[rc.Name]; exists {
			continue
		}
		log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, rc.Name)
		_ = registrationLimiter.Wait(context.Background())
		if err := b.dg.ApplicationCommandDelete(appID, guildID, rc.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, rc.Name, err)
		}
	}

	for _, d := range local {
		_ = registrationLimiter.Wait(context.Background())
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, d); err != nil {
			log.Printf("[ERR] [%s] Failed to register %s: %v", guildID, d.Name, err)
		}
	}
	log.Printf("[INFO] [%s] Registered %d command(s)", guildID, len(local))

	return nil
}

func buildCommandDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range commands.All() {
		def := &discordgo.ApplicationCommand{
			Name:        c.Name,
			Description: c.Description,
			Options:     c.SlashOptions,
		}
		if c.AdminOnly {
			perms := int64(discordgo.PermissionAdministrator)
			def.DefaultMemberPermissions = &perms
		}
		defs = append(defs, def)
	}
	return defs
}

func (b *Bot) appID() (string, error) {
	if b.dg.State != nil && b.dg.State.User != nil {
		return b.dg.State.User.ID, nil
	}
	u, err := b.dg.User("@me")
	if err != nil {
		return "", err
	}
	return u.ID, nil
}
