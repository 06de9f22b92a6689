// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soberaninha/internal/achievement"
	"soberaninha/internal/ai"
	"soberaninha/internal/config"
	"soberaninha/internal/cooldown"
	"soberaninha/internal/discord"
	"soberaninha/internal/pipeline"
	"soberaninha/internal/roast"
	"soberaninha/internal/storage"
	v "soberaninha/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	if err := pipeline.ValidateActions(); err != nil {
		log.Fatal("[ERR] Invalid action table: ", err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	cooldowns := cooldown.NewTracker()
	go cooldown.RunSweeper(ctx, cooldowns, 5*time.Minute)

	provider := ai.NewInferenceProvider(cfg.InferenceURL, cfg.InferenceToken, cfg.InferenceModel)
	generator := roast.New(provider)

	evaluator := achievement.NewEvaluator(store)
	notifier := discord.NewAchievementNotifier()

	orchestrator := pipeline.NewOrchestrator(
		cooldowns,
		store,
		evaluator,
		generator,
		discord.NewRoleGate(store),
		notifier,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store, cooldowns, evaluator, orchestrator, notifier); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
