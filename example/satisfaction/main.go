package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	fuzzy "github.com/nguyenthanhtrungbkhn/go-fuzzy-logic"
	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/batch"
	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/curveplot"
	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/internal/utils"
	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/modelfile"
	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/restaurant"
)

var (
	verbose   bool
	modelPath string
	defuzz    string
	clip      bool
	casesPath string
	workers   int
	plotDir   string
	format    string

	logger = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "satisfaction",
		Short:         "Evaluate a fuzzy satisfaction model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			utils.SetLogger(logger)
			if verbose {
				utils.SetLogLevel(utils.LogLevelDebug)
			} else {
				utils.SetLogLevel(utils.LogLevelError)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose")
	root.PersistentFlags().StringVarP(&modelPath, "model", "m", "", "model document (YAML or JSON), the restaurant model if empty")
	root.PersistentFlags().StringVar(&defuzz, "defuzz", string(fuzzy.Centroid), "defuzzification method: centroid, bisector, mom, som, lom")
	root.PersistentFlags().BoolVar(&clip, "clip", false, "clip inputs to the universe of their variable")

	table := &cobra.Command{
		Use:   "table",
		Short: "Evaluate a list of ratings and print a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd.Context(), cmd.OutOrStdout())
		},
	}
	table.Flags().StringVarP(&casesPath, "cases", "c", "", "CSV file with one row of input values per case, in input order")
	table.Flags().IntVarP(&workers, "workers", "w", 0, "parallel evaluations, GOMAXPROCS if 0")

	eval := &cobra.Command{
		Use:   "eval name=value...",
		Short: "Evaluate one set of inputs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.OutOrStdout(), args)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw the membership curves of every variable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd.OutOrStdout())
		},
	}
	plotCmd.Flags().StringVarP(&plotDir, "out", "o", ".", "output directory")
	plotCmd.Flags().StringVarP(&format, "format", "f", "png", "image format: png, svg, pdf")

	root.AddCommand(table, eval, plotCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadModel() (*fuzzy.Model, error) {
	if modelPath == "" {
		return restaurant.New()
	}
	return modelfile.LoadModel(modelPath)
}

func newEngine() (*fuzzy.Engine, error) {
	m, err := loadModel()
	if err != nil {
		return nil, err
	}
	return fuzzy.NewEngine(m, &fuzzy.Config{
		Defuzzification: fuzzy.DefuzzMethod(defuzz),
		ClipToBounds:    clip,
	})
}

func readCases(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, len(records))
	for i, record := range records {
		rows[i] = make([]float64, len(record))
		for j, field := range record {
			if rows[i][j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", path, i+1, err)
			}
		}
	}
	return rows, nil
}

func runTable(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := newEngine()
	if err != nil {
		return err
	}
	var names []string
	for _, v := range e.Model().Inputs() {
		names = append(names, v.Name())
	}

	rows := restaurant.TestCases()
	if casesPath != "" {
		if rows, err = readCases(casesPath); err != nil {
			return err
		}
	} else if modelPath != "" {
		return fmt.Errorf("--cases is required with --model")
	}
	cases, err := batch.Tuples(names, rows)
	if err != nil {
		return err
	}

	runner, err := batch.NewRunner(e, &batch.Config{Workers: workers})
	if err != nil {
		return err
	}
	outcomes, err := runner.Run(ctx, cases)
	if err != nil {
		return err
	}
	logger.Debug("Evaluated cases", zap.Int("cases", len(outcomes)))
	return printTable(out, names, e.Model().Output().Name(), rows, outcomes)
}

// printTable rounds outputs to two decimals, for display only.
func printTable(out io.Writer, names []string, output string, rows [][]float64, outcomes []batch.Outcome) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintf(w, "%s\t%s\t\n", strings.Join(names, "\t"), output)
	for i, o := range outcomes {
		fields := make([]string, len(rows[i]))
		for j, v := range rows[i] {
			fields[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		result := fmt.Sprintf("%.2f", o.Output)
		if o.Err != nil {
			result = "error: " + o.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t\n", strings.Join(fields, "\t"), result)
	}
	return w.Flush()
}

func parseAssignments(args []string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", arg)
		}
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		inputs[name] = x
	}
	return inputs, nil
}

func runEval(out io.Writer, args []string) error {
	inputs, err := parseAssignments(args)
	if err != nil {
		return err
	}
	e, err := newEngine()
	if err != nil {
		return err
	}
	r, err := e.Evaluate(inputs)
	if err != nil {
		return err
	}
	for i, rule := range e.Model().Rules() {
		if r.Activations[i] > 0 {
			logger.Debug("Rule fired", zap.Int("rule", i), zap.String("label", rule.Label()), zap.Float64("strength", r.Activations[i]))
		}
	}
	_, err = fmt.Fprintf(out, "%s = %.2f\n", e.Model().Output().Name(), r.Output)
	return err
}

func runPlot(out io.Writer) error {
	m, err := loadModel()
	if err != nil {
		return err
	}
	paths, err := curveplot.SaveModel(m, plotDir, format)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}
