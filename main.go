package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	portFlag string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve the portfolio site",
	Long: `Serves the portfolio page, its stylesheet and the WebAssembly build of
the page behaviors, and accepts contact-form posts from browsers without
JavaScript.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if portFlag != "" {
			cfg.Port = portFlag
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log := newLogger(cfg)
		if !cfg.MailConfigured() {
			log.Warn("SMTP credentials not set; no-JavaScript contact posts will fail")
		}

		r := newRouter(cfg, log, newSMTPMailer(cfg, log))
		log.Info("portfolio listening", "port", cfg.Port)
		return r.Run(":" + cfg.Port)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.Flags().StringVarP(&portFlag, "port", "p", "", "listen port (overrides PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
