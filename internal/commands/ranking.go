package commands

import (
	"fmt"
	"log"
	"strings"

	"soberaninha/internal/i18n"
)

const rankingSize = 5

func init() {
	Register(&Command{
		Sort:           100,
		Name:           "ranking",
		Description:    "Mostra quem foi mais zoado pela Soberaninha.",
		Category:       "📊 Placar",
		DCSlashHandler: rankingSlashHandler,
	})
}

func rankingSlashHandler(ctx *SlashContext) {
	s, i := ctx.Session, ctx.Interaction

	top, err := ctx.Storage.GetTopRanking(i.GuildID, rankingSize)
	if err != nil {
		log.Println("[ERR] Failed to load ranking:", err)
		respondEphemeral(s, i, i18n.T("ranking.empty", nil))
		return
	}

	if len(top) == 0 {
		respond(s, i, i18n.T("ranking.empty", nil))
		return
	}

	var sb strings.Builder
	sb.WriteString("**" + i18n.T("ranking.title", nil) + ":**\n\n")
	for _, entry := range top {
		sb.WriteString(fmt.Sprintf("<@%s> — %d zoações\n", entry.UserID, entry.Count))
	}

	respond(s, i, sb.String())
}
