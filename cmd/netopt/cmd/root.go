package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/pass"
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/verilog"
)

var (
	// Global flags
	passNames  []string
	verifyEach bool
	noXilinx   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "netopt [verilog-file]",
	Short: "Netlist optimization debugging tool",
	Long: `Analyze and transform gate-level netlists for debugging
optimization passes: report strongly connected components and
combinational depth, break feedback loops, clean dead logic, and
print the result back as Verilog.

Passes run in the order given and share one netlist; the final
pass's report goes to stdout.

Examples:
  netopt -p report-sccs design.v                 # Count feedback loops
  netopt -p disconnect-arc-set,clean,print design.v
  netopt -v -p rename-nets,print < design.v      # Verify after every pass`,
	Version: "0.1.0",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runNetopt,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringSliceVarP(&passNames, "passes", "p", nil,
		"passes to run in order ("+strings.Join(pass.Names(), ", ")+")")
	rootCmd.Flags().BoolVarP(&verifyEach, "verify", "v", false,
		"verify after every pass (not just the last)")
	rootCmd.Flags().BoolVarP(&noXilinx, "no-xilinx", "x", false,
		"do not parse with Xilinx-specific port names")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"verbose logging")
}

func runNetopt(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var source []byte
	if len(args) == 1 {
		source, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	} else {
		logger.Info("reading from stdin")
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
	}

	logger.Info("parsing verilog")
	parser, err := verilog.NewParser()
	if err != nil {
		return err
	}
	file, err := parser.ParseString(string(source))
	if err != nil {
		return err
	}

	logger.Info("compiling verilog")
	overrides := verilog.XilinxOverrides
	if noXilinx {
		overrides = nil
	}
	nl, err := verilog.CompileOverrides(file, overrides)
	if err != nil {
		return err
	}

	pipeline := pass.Pipeline{VerifyEach: verifyEach, Logger: logger}
	report, err := pipeline.Run(nl, passNames)
	if err != nil {
		return err
	}

	fmt.Println(report)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
