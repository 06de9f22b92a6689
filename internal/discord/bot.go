package discord

import (
	"context"
	"fmt"
	"log"
	"sync"

	"soberaninha/internal/achievement"
	"soberaninha/internal/commands"
	"soberaninha/internal/config"
	"soberaninha/internal/cooldown"
	"soberaninha/internal/pipeline"
	"soberaninha/internal/storage"

	"github.com/bwmarrin/discordgo"
)

const EmbedColor = 0xd63864

// Bot is the Discord front of the roast pipeline.
type Bot struct {
	dg        *discordgo.Session
	cfg       *config.Config
	storage   *storage.Storage
	pipeline  *pipeline.Orchestrator
	evaluator *achievement.Evaluator
	cooldowns *cooldown.Tracker
	notifier  *AchievementNotifier

	mu       sync.Mutex
	lastGame map[string]string // userID -> last seen playing activity
}

// StartBot starts the Discord bot and blocks until ctx is cancelled.
func StartBot(
	ctx context.Context,
	cfg *config.Config,
	store *storage.Storage,
	cooldowns *cooldown.Tracker,
	evaluator *achievement.Evaluator,
	orchestrator *pipeline.Orchestrator,
	notifier *AchievementNotifier,
) error {
	b := &Bot{
		cfg:       cfg,
		storage:   store,
		pipeline:  orchestrator,
		evaluator: evaluator,
		cooldowns: cooldowns,
		notifier:  notifier,
		lastGame:  make(map[string]string),
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	if b.notifier != nil {
		b.notifier.Bind(dg)
	}

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onPresenceUpdate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildPresences |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}

	if b.cfg.InitSlashCommands {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		}
	} else {
		log.Println("[INFO] Registering slash commands skipped")
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", botInfo.Username)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.Member == nil || i.Member.User == nil {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := commands.Get(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", cmdName)
		return
	}
	if cmd.DCSlashHandler == nil {
		return
	}

	cmd.DCSlashHandler(&commands.SlashContext{
		Session:     s,
		Interaction: i,
		Storage:     b.storage,
		Pipeline:    b.pipeline,
		Evaluator:   b.evaluator,
	})
}
