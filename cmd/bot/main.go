package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/adapters/digest"
	"rosterbot/internal/adapters/discord"
	"rosterbot/internal/adapters/telegram"
	"rosterbot/internal/application"
	"rosterbot/internal/config"
	"rosterbot/internal/infrastructure/database"
	"rosterbot/internal/infrastructure/i18n"
	"rosterbot/internal/infrastructure/localdb"
	"rosterbot/internal/infrastructure/memory"
	"rosterbot/internal/infrastructure/scheduler"
	"rosterbot/internal/ports/output"
	"rosterbot/pkg/tz"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("❌ Bot stopped: %v", err)
		os.Exit(1)
	}
	log.Println("👋 Bot stopped.")
}

// run owns every resource, so its defers release them before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage init: %w", err)
	}
	defer closeRepo()

	roster := application.NewRosterService(repo, cfg.RepoTimeout)
	translator := i18n.NewTranslator(cfg.DefaultLocale)
	log.Printf("🌐 Locales loaded: %v", translator.Languages())
	dispatcher := chat.NewDispatcher(roster, translator)

	if cfg.DigestSchedule != "" {
		loc, err := tz.Load(cfg.Timezone)
		if err != nil {
			return err
		}
		sched := scheduler.New(loc)
		id, err := sched.Schedule(cfg.DigestSchedule, digest.Job(roster, cfg.RepoTimeout))
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
		log.Printf("⏰ Digest scheduled, next run %s", sched.Next(id).Format("2006-01-02 15:04 MST"))
	}

	return serve(ctx, cfg, dispatcher)
}

func serve(ctx context.Context, cfg *config.Config, dispatcher *chat.Dispatcher) error {
	switch cfg.Transport {
	case config.TransportDiscord:
		bot, err := discord.NewBot(cfg.DiscordToken, cfg.GuildID, dispatcher)
		if err != nil {
			return err
		}
		return bot.Start(ctx)
	default:
		bot, err := telegram.NewBot(cfg.TelegramToken, dispatcher)
		if err != nil {
			return err
		}
		return bot.Start(ctx)
	}
}

// openRepository picks the participant store from the DATABASE_URL scheme.
func openRepository(ctx context.Context, cfg *config.Config) (output.ParticipantRepository, func(), error) {
	switch cfg.StorageDriver() {
	case config.DriverSQLite:
		db, err := localdb.Open(cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return localdb.NewParticipantRepository(db), closeDB, nil
	case config.DriverMemory:
		repo, err := memory.NewParticipantRepository()
		if err != nil {
			return nil, nil, err
		}
		log.Println("⚠️ Using in-memory storage, the roster is lost on restart.")
		return repo, func() {}, nil
	default:
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				return nil, nil, err
			}
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return database.NewParticipantRepository(pool), pool.Close, nil
	}
}
