package main

import (
	"context"
	"fmt"
	"log"

	"github.com/UkralStul/portfolio-content-service/internal/content"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [collection...]",
	Short: "Replaces collections with demo content",
	Long: fmt.Sprintf(`Clears the given collections and inserts demo content.
Without arguments seeds all of: %v.`, content.Seedable),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = content.Seedable
		}
		return withService(cmd.Context(), func(svc *content.Service) error {
			return seedCollections(cmd.Context(), svc, names)
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <collection>...",
	Short: "Deletes every record of the given collections",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd.Context(), func(svc *content.Service) error {
			for _, name := range args {
				n, err := svc.Clear(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("clear %s: %w", name, err)
				}
				log.Printf("%s: deleted %d", name, n)
			}
			return nil
		})
	},
}

func seedCollections(ctx context.Context, svc *content.Service, names []string) error {
	for _, name := range names {
		n, err := svc.Seed(ctx, name)
		if err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		log.Printf("%s: inserted %d", name, n)
	}
	return nil
}

func withService(ctx context.Context, fn func(svc *content.Service) error) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(content.New(store))
}

func init() {
	rootCmd.AddCommand(seedCmd, clearCmd)
}
