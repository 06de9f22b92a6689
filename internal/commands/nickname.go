package commands

import (
	"github.com/bwmarrin/discordgo"
)

func init() {
	Register(&Command{
		Sort:           20,
		Name:           "nickname",
		Description:    "Pede um apelido ridículo pra alguém do servidor.",
		Category:       "😈 Zoeira",
		DCSlashHandler: nicknameSlashHandler,
		SlashOptions: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "target",
				Description: "Quem merece um apelido novo?",
				Required:    true,
			},
		},
	})
}

func nicknameSlashHandler(ctx *SlashContext) {
	runRoastAction(ctx, "nickname", "commands.nickname.title")
}
