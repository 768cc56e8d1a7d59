// Command cispoly evaluates, differentiates and combines the polynomials of a
// YAML workbook (see package workbook).
//
//	cispoly --file book.yaml show
//	cispoly --file book.yaml eval p x
//	cispoly --file book.yaml mul p q --save-as pq
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cispoly/complexnum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries flag values and the logger shared by every subcommand.
type cli struct {
	file    string  // workbook path
	tol     float64 // tolerance for equal/show
	verbose bool
	saveAs  string // store the result under this name

	logger *zap.Logger
}

// newRootCmd builds the command tree. A non-nil logger is used as is;
// otherwise one is built from zap's production config before each run.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	c := &cli{logger: logger}

	root := &cobra.Command{
		Use:   "cispoly",
		Short: "Complex-coefficient polynomial calculator",
		Long: `cispoly works on a YAML workbook of named polynomials and points.

Coefficients are listed by ascending power, so [{re: 1}, {re: 2}] is 2x + 1.
Results print in cis notation; evaluated values print in rectangular form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			c.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.file, "file", "f", "workbook.yaml", "workbook path")
	root.PersistentFlags().Float64Var(&c.tol, "tol", complexnum.DefaultEpsilon, "comparison tolerance")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		c.showCmd(),
		c.evalCmd(),
		c.deriveCmd(),
		c.binaryCmd("add", "Sum of two polynomials"),
		c.binaryCmd("sub", "Difference of two polynomials"),
		c.binaryCmd("mul", "Product of two polynomials"),
		c.scaleCmd(),
		c.equalCmd(),
		c.pointCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
