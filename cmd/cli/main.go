package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wellecon/internal/config"
	"wellecon/internal/economics"
	"wellecon/internal/logging"
)

var (
	dealPath   string
	logLevel   string
	logFormat  string
	computeIRR bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wellecon",
	Short: "Oil and gas deal economics from a YAML deal file",
	Long: `wellecon projects monthly production and cash flow for groups of wells,
then reports NPV10, payout, EUR and capital for each group and the portfolio.

Examples:
  wellecon calculate --deal examples/deal.yaml --out results/portfolio.csv
  wellecon sensitivity --deal examples/deal.yaml --x OIL_PRICE --x-steps 50,70,90
  wellecon rank --deal examples/deal.yaml
  wellecon scenarios --deal examples/deal.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		logger, err = logging.New(logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Set(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dealPath, "deal", "d", "examples/deal.yaml", "Path to deal YAML")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (json, text)")
	rootCmd.PersistentFlags().BoolVar(&computeIRR, "irr", false, "Compute IRR in addition to NPV10")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadDeal() (*config.Deal, error) {
	d, err := config.LoadDeal(dealPath)
	if err != nil {
		return nil, fmt.Errorf("load deal: %w", err)
	}
	logger.Info("deal loaded",
		zap.String("path", dealPath),
		zap.String("name", d.Name),
		zap.Int("wells", len(d.Wells)),
		zap.Int("groups", len(d.Groups)))
	return d, nil
}

// newEngine applies the deal's engine block, then command-line flags.
func newEngine(d *config.Deal) *economics.Engine {
	opts := economics.DefaultOptions()
	if d.Engine.HorizonMonths > 0 {
		opts.Horizon = d.Engine.HorizonMonths
	}
	if d.Engine.DiscountRate > 0 {
		opts.AnnualDiscountRate = d.Engine.DiscountRate
	}
	opts.ComputeIRR = d.Engine.ComputeIRR || computeIRR
	opts.TerminalDecline = d.Engine.Terminal
	return economics.NewWithOptions(opts)
}
