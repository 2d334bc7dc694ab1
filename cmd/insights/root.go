package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cognicore/insightful/pkg/insight"
	"github.com/cognicore/insightful/pkg/insight/config"
)

// app carries the state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "insights",
		Short: "Extract pain points, desires and terminology from user content",
		Long: `insights analyzes already-fetched reviews, posts and forum threads and
prints aggregated pain points, desires and domain terminology as JSON.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (INSIGHTS_*)
3. Config file (--config)
4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml)")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.String("catalog", "", "YAML catalog overriding the built-in tables")
	flags.String("domain", "", "terminology domain (general, ecommerce, beauty, tech, food)")
	flags.Int("workers", 0, "concurrent document analyses (0 = GOMAXPROCS)")
	flags.Int("top", 0, "most-engaged items to keep (0 = default)")
	flags.Int("top-terms", 0, "terms in the top terminology view (0 = default)")
	flags.Int("top-categories", 0, "categories in the top category views (0 = default)")
	flags.Int("min-mentions", 0, "reviews a term needs before it gets a feature score (0 = default)")
	flags.Bool("pretty", false, "indent JSON output")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		newReviewsCmd(a),
		newEngagementCmd(a),
		newForumCmd(a),
		newAnalyzeCmd(a),
	)
	return root
}

// init reads the config file and environment, then builds the logger.
func (a *app) init() error {
	a.v.SetEnvPrefix("INSIGHTS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	logger, err := newLogger(a.v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.logger = logger
	if a.cfgFile != "" {
		a.logger.Debug("using config file", zap.String("path", a.v.ConfigFileUsed()))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func (a *app) engine() (*insight.Engine, error) {
	loader := config.Loader{CatalogPath: a.v.GetString("catalog")}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return insight.New(insight.Options{
		Catalog:       comp.Catalog,
		Workers:       a.v.GetInt("workers"),
		TopItems:      a.v.GetInt("top"),
		TopTerms:      a.v.GetInt("top-terms"),
		TopCategories: a.v.GetInt("top-categories"),
		MinMentions:   a.v.GetInt("min-mentions"),
		Logger:        a.logger,
	}), nil
}

func (a *app) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if a.v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
