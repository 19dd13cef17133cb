package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wellecon/internal/sensitivity"
)

var (
	xVariable string
	yVariable string
	xSteps    []float64
	ySteps    []float64
	workers   int
	timeout   time.Duration
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Print an NPV10 grid over two variables",
	Long: `Re-evaluates the portfolio for every (x, y) pair and prints NPV10 in
dollars. Axes come from the deal's sensitivity block unless set by flags.
Variables: OIL_PRICE, CAPEX_SCALAR, EUR_SCALAR, RIG_COUNT.`,
	RunE: runSensitivity,
}

func init() {
	sensitivityCmd.Flags().StringVar(&xVariable, "x", "", "X axis variable")
	sensitivityCmd.Flags().StringVar(&yVariable, "y", "", "Y axis variable")
	sensitivityCmd.Flags().Float64SliceVar(&xSteps, "x-steps", nil, "X axis values")
	sensitivityCmd.Flags().Float64SliceVar(&ySteps, "y-steps", nil, "Y axis values")
	sensitivityCmd.Flags().IntVar(&workers, "workers", 4, "Cells evaluated in parallel")
	sensitivityCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Give up after this long")
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	d, err := loadDeal()
	if err != nil {
		return err
	}

	xName, yName := xVariable, yVariable
	xs, ys := xSteps, ySteps
	if s := d.Sensitivity; s != nil {
		if xName == "" {
			xName = s.XVariable
		}
		if yName == "" {
			yName = s.YVariable
		}
		if len(xs) == 0 {
			xs = s.XSteps
		}
		if len(ys) == 0 {
			ys = s.YSteps
		}
	}

	xVar, err := sensitivity.ParseVariable(xName)
	if err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	yVar, err := sensitivity.ParseVariable(yName)
	if err != nil {
		return fmt.Errorf("y axis: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	gen := sensitivity.New(newEngine(d), workers)
	matrix, err := gen.GenerateContext(ctx, sensitivity.Request{
		Groups:    d.ModelGroups(),
		Wells:     d.ModelWells(),
		XVariable: xVar,
		XSteps:    xs,
		YVariable: yVar,
		YSteps:    ys,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("sensitivity timed out after %s", timeout)
		}
		return err
	}
	logger.Info("sensitivity generated",
		zap.String("x", string(xVar)),
		zap.String("y", string(yVar)),
		zap.Int("cells", len(xs)*len(ys)),
		zap.Duration("elapsed", time.Since(start)))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-14s", string(yVar)+"\\"+string(xVar))
	for _, x := range xs {
		fmt.Fprintf(w, " %16g", x)
	}
	fmt.Fprintln(w)
	for i, row := range matrix {
		fmt.Fprintf(w, "%-14g", ys[i])
		for _, c := range row {
			fmt.Fprintf(w, " %16s", money(c.NPV))
		}
		fmt.Fprintln(w)
	}
	return nil
}
