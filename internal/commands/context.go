// /internal/commands/context.go
package commands

import (
	"soberaninha/internal/achievement"
	"soberaninha/internal/pipeline"
	"soberaninha/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type SlashContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Storage     *storage.Storage
	Pipeline    *pipeline.Orchestrator
	Evaluator   *achievement.Evaluator
}
