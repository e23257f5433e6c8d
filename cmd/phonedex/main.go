package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"phonedex/internal/catalog"
	"phonedex/internal/config"
	"phonedex/internal/enrich"
)

var (
	// Global flags
	verbose    bool
	apiKey     string
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phonedex",
	Short: "phonedex - compare phones from your terminal",
	Long: `phonedex is a terminal phone shopping assistant.

Browse a curated catalog, filter by price and brand, inspect full spec
sheets and compare up to 4 phones side by side. With a Gemini API key the
catalog grows on demand and a chat assistant answers buying questions.

Run without arguments to start the interactive browser.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive browser owns the terminal; keep zap quiet there.
		if cmd.Name() == "phonedex" {
			logger = zap.NewNop()
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return runBrowser(cfg, logger)
	},
}

// adviceCmd answers a single buying question without entering the browser
var adviceCmd = &cobra.Command{
	Use:   "advice [question]",
	Short: "Ask the shopping assistant a one-off question",
	Long: `Sends a single question to the assistant and prints the answer.

Example:
  phonedex advice "best camera phone under 30000"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		client := newEnrichClient(cmd.Context(), cfg)
		fmt.Println(client.Advice(cmd.Context(), strings.Join(args, " ")))
		return nil
	},
}

// showCmd prints the full spec sheet for one phone
var showCmd = &cobra.Command{
	Use:   "show [phone name]",
	Short: "Print the spec sheet for a phone",
	Long: `Looks the phone up in the built-in catalog first and falls back to a
live fetch when a Gemini API key is configured.

Example:
  phonedex show "Galaxy S24 Ultra"`,
	Args: cobra.MinimumNArgs(1),
	RunE: showPhone,
}

// configInitCmd writes the default config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the phonedex config file",
}

func loadConfig() config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("falling back to default config", zap.Error(err))
		cfg = config.DefaultConfig()
	}
	if apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	return cfg
}

func newEnrichClient(ctx context.Context, cfg config.Config) *enrich.Client {
	return enrich.NewClient(ctx, cfg.Gemini.APIKey, enrich.Options{
		Model:       cfg.Gemini.Model,
		AdviceModel: cfg.Gemini.AdviceModel,
		Timeout:     cfg.GeminiTimeout(),
	}, logger)
}

func showPhone(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	cfg := loadConfig()

	store := catalog.NewStore(catalog.SeedPhones())
	phone, ok := store.FindByName(query)
	if !ok {
		client := newEnrichClient(cmd.Context(), cfg)
		if !client.Enabled() {
			return fmt.Errorf("%q is not in the catalog and no API key is configured", query)
		}
		fetched := client.FetchByQuery(cmd.Context(), query)
		if fetched == nil {
			return fmt.Errorf("could not find %q", query)
		}
		phone = *fetched
	}

	fmt.Printf("%s\n%s  rated %d/100\n", phone.Name, formatPrice(phone.Price), phone.Rating)
	if phone.LaunchDate != "" {
		fmt.Printf("Launched %s\n", phone.LaunchDate)
	}
	if phone.StoreURL != "" {
		fmt.Printf("Buy: %s\n", phone.StoreURL)
	}
	for _, key := range catalog.SectionOrder {
		section, ok := phone.Section(key)
		if !ok || len(section.Specs) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", section.Title)
		for _, item := range orderedItems(section) {
			fmt.Printf("  %-18s %s\n", item.Label, item.Value)
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides config and GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(adviceCmd, showCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
