package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lorehaven/canon/internal/cache"
	"github.com/lorehaven/canon/internal/model"
	"github.com/lorehaven/canon/internal/store"
)

var (
	cfgFile   string
	verbose   bool
	storePath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "canon",
	Short: "Canon - file-backed knowledge base for collaboratively maintained lore",
	Long: `Canon keeps a shared fictional-world bible honest.

Entries live as plain markdown files grouped by category, carry a canon
lifecycle status, and cross-reference each other with [[wiki links]].
Canon records every creation and status change in an append-only changelog,
maintains per-category index tables, and ships an integrity scanner that
surfaces duplicates, broken links, contradictions, and half-finished
entries.

The scanner detects, it never prevents: any status can be set at any time,
and inconsistencies are reported after the fact.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Canon.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("canon v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.canon/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "store root directory (default: ./canon)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.canon")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CANON_*
	viper.SetEnvPrefix("CANON")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration: defaults, then config
// file and environment via viper, then flags.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("store.path"); v != "" {
		cfg.Store.Path = v
	}
	if v := viper.GetString("store.contributor"); v != "" {
		cfg.Store.Contributor = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetDuration("cache.ttl"); v != 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// openStore builds the store for the effective configuration.
func openStore(cfg *model.Config) *store.Store {
	var entryCache cache.Cache
	if cfg.Cache.Enabled {
		entryCache = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}
	return store.NewStore(cfg.Store.Path, entryCache, cfg.Cache.TTL)
}
