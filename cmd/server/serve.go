package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/api"
	"github.com/UkralStul/portfolio-content-service/internal/content"
	"github.com/UkralStul/portfolio-content-service/internal/events"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API and the change feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		broker := events.NewBroker()
		svc := content.New(store, content.WithBroker(broker))

		if cfg.SeedOnStart {
			if err := seedCollections(ctx, svc, content.Seedable); err != nil {
				return err
			}
		}

		srv := &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.Port),
			Handler: api.NewRouter(svc, api.Options{
				AllowedOrigins: cfg.AllowedOrigins,
				Broker:         broker,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("listening on http://localhost:%d/api, change feed at ws://localhost:%d/ws", cfg.Port, cfg.Port)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.IntP("port", "p", 8080, "Port to listen on")
	flags.Bool("seed", false, "Seed demo content before serving")
	_ = v.BindPFlag("PORT", flags.Lookup("port"))
	_ = v.BindPFlag("SEED_ON_START", flags.Lookup("seed"))
	rootCmd.AddCommand(serveCmd)
}
