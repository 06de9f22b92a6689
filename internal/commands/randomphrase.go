package commands

import (
	"strings"

	"soberaninha/internal/roast"
	"soberaninha/internal/version"
)

func init() {
	Register(&Command{
		Sort:           40,
		Name:           "randomphrase",
		Description:    "Uma pérola aleatória da sabedoria da Soberaninha.",
		Category:       "😈 Zoeira",
		DCSlashHandler: randomPhraseSlashHandler,
	})
}

func randomPhraseSlashHandler(ctx *SlashContext) {
	phrase := roast.Pick(roast.RandomPhrases)
	phrase = strings.ReplaceAll(phrase, "{botName}", version.AppName)
	respond(ctx.Session, ctx.Interaction, phrase)
}
