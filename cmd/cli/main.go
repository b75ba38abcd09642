package main

import (
	"context"
	"os"

	"investmentanalyzer/api"
	"investmentanalyzer/cmd"
	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/logger"

	"github.com/spf13/cobra"
)

var (
	outputCsv  bool
	apiHandler *api.ApiHandler
)

var rootCmd = &cobra.Command{
	Use:          "analyzer",
	Short:        "Stock and portfolio analysis from the command line",
	SilenceUsage: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		handler, _, err := cmd.InitializeDependencies(c.Context())
		if err != nil {
			return err
		}
		apiHandler = handler
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputCsv, "csv", false, "Write csv rows instead of json")
	rootCmd.AddCommand(stockCmd, portfolioCmd, newsCmd, validateCmd)
}

// commandContext gives each invocation its own profile so spans are
// reported once the command finishes
func commandContext(c *cobra.Command) (context.Context, func()) {
	profile, endProfile := domain.NewProfile()
	ctx := domain.NewCtxWithProfile(c.Context(), profile)
	lg := logger.FromContext(ctx).With("command", c.Name())
	ctx = logger.NewContext(ctx, lg)

	return ctx, func() {
		endProfile()
		spans, err := profile.ToJsonBytes()
		if err != nil {
			lg.Warnf("failed to serialize performance profile: %s", err.Error())
			return
		}
		lg.Infow("command completed", "totalMs", profile.TotalMs, "spans", string(spans))
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
