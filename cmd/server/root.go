package main

import (
	"log"

	"github.com/UkralStul/portfolio-content-service/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	v       = config.New()
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Portfolio content service",
	Long:         `Stores and serves portfolio content: guestbook comments, certifications, experiences, hackathons, projects, skills and site content.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			log.Println("Using config file:", used)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.String("storage", config.StorageInMemory, "Storage type (in-memory, postgres or mongo)")
	_ = v.BindPFlag("STORAGE", flags.Lookup("storage"))
}
