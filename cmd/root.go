// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"kinorelay/internal/config"
	"kinorelay/internal/httputil"
	"kinorelay/internal/provider"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagPort     int
	flagUpstream string
	flagDebug    bool
	flagJSONLogs bool
)

// cfg holds the loaded configuration (merged: defaults < config file < env < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "kinorelay",
	Short: "Resolve movie and series player embeds over HTTP",
	Long: `Kinorelay is a small HTTP relay that takes a Kinopoisk ID, fetches the
matching player page upstream and returns the embedded player iframe as JSON.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              serveRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", 0, "Listen port (default: 8000 or $PORT)")
	rootCmd.PersistentFlags().StringVar(&flagUpstream, "upstream", "", "Upstream player host (default: flcksbr.xyz)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < env < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagUpstream != "" {
		cfg.Upstream = flagUpstream
	}
	if flagDebug {
		cfg.Debug = true
	}
	if flagJSONLogs {
		cfg.LogFormat = "json"
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging(cfg)
	return nil
}

func setupLogging(c *config.Config) {
	log.SetOutput(os.Stderr)
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if c.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// newClient builds the shared upstream client from cfg.
func newClient() *http.Client {
	return httputil.NewClient(cfg.Timeout(), cfg.MaxRedirects)
}

// sources returns the registered player sources.
func sources() []provider.Provider {
	return provider.Default(cfg, newClient())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("kinorelay", Version)
	},
}
