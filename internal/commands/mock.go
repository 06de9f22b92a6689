package commands

import (
	"github.com/bwmarrin/discordgo"
)

func init() {
	Register(&Command{
		Sort:           10,
		Name:           "mock",
		Description:    "Manda a Soberaninha zoar alguém do servidor.",
		Category:       "😈 Zoeira",
		DCSlashHandler: mockSlashHandler,
		SlashOptions: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Quem vai ser a vítima da vez?",
				Required:    true,
			},
		},
	})
}

func mockSlashHandler(ctx *SlashContext) {
	runRoastAction(ctx, "mock", "commands.mock.title")
}
