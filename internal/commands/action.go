// /internal/commands/action.go
package commands

import (
	"log"

	"soberaninha/internal/i18n"
	"soberaninha/internal/pipeline"

	"github.com/bwmarrin/discordgo"
)

// buildRequest assembles the pipeline request for the invoking member and an
// optional "target" option.
func buildRequest(ctx *SlashContext, actionName string) pipeline.Request {
	s, i := ctx.Session, ctx.Interaction

	req := pipeline.Request{
		Action:          actionName,
		GuildID:         i.GuildID,
		UserID:          i.Member.User.ID,
		MemberRoleIDs:   i.Member.Roles,
		MemberRoleNames: roleNames(s, i.GuildID, i.Member),
		IsAdmin:         isAdministrator(s, i.GuildID, i.Member),
	}

	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "target" {
			target := opt.UserValue(s)
			if target != nil {
				req.TargetID = target.ID
				req.TargetUsername = target.Username
				req.TargetIsBot = target.Bot
			}
		}
	}

	return req
}

// runRoastAction drives a generation-backed action: private rejection on the
// fast checks, then a deferred public reply that gets edited with the result.
func runRoastAction(ctx *SlashContext, actionName, titleKey string) {
	s, i := ctx.Session, ctx.Interaction
	req := buildRequest(ctx, actionName)

	if pre := ctx.Pipeline.Precheck(req); pre.Status != pipeline.StatusOK {
		respondEphemeral(s, i, failureMessage(pre, i.Member.User.Username))
		return
	}

	if err := deferResponse(s, i); err != nil {
		log.Println("[WARN] Failed to defer response:", err)
		return
	}

	res := ctx.Pipeline.Execute(req)
	if res.Status != pipeline.StatusOK {
		editResponse(s, i, failureMessage(res, i.Member.User.Username))
		return
	}

	editResponseEmbed(s, i, &discordgo.MessageEmbed{
		Title:       i18n.T(titleKey, nil),
		Description: res.Content,
		Color:       embedColor,
		Footer:      embedFooter(),
	})
}
