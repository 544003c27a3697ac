package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nikogura/legacy-reimburse/pkg/calculator"
	"github.com/nikogura/legacy-reimburse/pkg/trip"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var modelName string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "legacy-reimburse <days> <miles> <receipts>",
	Short: "Replicate the legacy travel reimbursement calculator",
	Long: `legacy-reimburse reproduces, to the cent, the output of the retired
travel reimbursement system given trip duration in days, miles traveled, and
total receipt amount.

The governing implementation is the reverse-engineered rule cascade. The
superseded linear model is available via --model gate for comparison against
historical outputs.

Examples:
  legacy-reimburse 8 795 1645.99
  legacy-reimburse 3 10 100 -v`,
	Args: cobra.ExactArgs(3),
	RunE: runCalculate,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace the matched cascade stage to stderr")
	rootCmd.Flags().StringVar(&modelName, "model", "cascade", "Decision model to use: cascade or gate")
}

// newLogger builds the stderr trace logger, disabled unless verbose. Stdout
// carries only the final amount.
func newLogger() (logger zerolog.Logger) {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	if !verbose {
		logger = logger.Level(zerolog.Disabled)
	}
	return logger
}

func runCalculate(cmd *cobra.Command, args []string) (err error) {
	logger := newLogger()

	var in trip.Input
	in, err = parseArgs(args)
	if err != nil {
		return err
	}

	var amount float64
	switch modelName {
	case "cascade":
		res := calculator.New().Calculate(in)
		logger.Debug().
			Str("stage", string(res.Stage)).
			Str("rule", res.Rule).
			Float64("amount", res.Amount).
			Msg("cascade decided")
		amount = res.Amount
	case "gate":
		amount = calculator.NewGateModel().Predict(in)
		logger.Debug().
			Float64("amount", amount).
			Msg("gate model decided")
	default:
		err = errors.Errorf("unknown model: %s (use cascade or gate)", modelName)
		return err
	}

	fmt.Printf("%.2f\n", amount)

	return err
}

// parseArgs converts the three positional arguments into a validated trip.
func parseArgs(args []string) (in trip.Input, err error) {
	var days int
	days, err = strconv.Atoi(args[0])
	if err != nil {
		err = errors.Wrapf(err, "days must be an integer, got %q", args[0])
		return in, err
	}

	var miles float64
	miles, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		err = errors.Wrapf(err, "miles must be a number, got %q", args[1])
		return in, err
	}

	var receipts float64
	receipts, err = strconv.ParseFloat(args[2], 64)
	if err != nil {
		err = errors.Wrapf(err, "receipts must be a number, got %q", args[2])
		return in, err
	}

	in, err = trip.New(days, miles, receipts)
	if err != nil {
		err = errors.Wrap(err, "invalid trip input")
		return in, err
	}

	return in, err
}
