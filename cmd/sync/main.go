package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayflow/internal/localstore"
	"dayflow/internal/syncer"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	var (
		server   = flag.String("server", envOr("SYNC_SERVER", "http://localhost:4000"), "base URL of the api server")
		dir      = flag.String("dir", envOr("SYNC_DIR", "data"), "directory holding the local JSON store")
		pull     = flag.Bool("pull", false, "replace the local store with the server's state")
		push     = flag.Bool("push", false, "send the local store to the server")
		interval = flag.Duration("interval", 0, "repeat every interval instead of running once")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if !*pull && !*push {
		logger.Fatal("nothing to do, pass -pull or -push")
	}

	store := localstore.New(*dir, logger)
	client := syncer.NewClient(*server, store, logger)

	run := func(ctx context.Context) error {
		if *pull {
			if err := client.Pull(ctx); err != nil {
				return err
			}
		}
		if *push {
			if err := client.Push(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Fatal("sync failed", zap.Error(err))
	}
	if *interval <= 0 {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case <-ticker.C:
			if err := run(ctx); err != nil {
				logger.Error("sync failed", zap.Error(err))
			}
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
