// Package run is a subcommand of the root command. It launches the selected
// benchmarks under the configured job launcher, scrapes their output, and
// writes reports.
package run

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"

	"hpcbench/internal/bench"
	"hpcbench/internal/common"
	"hpcbench/internal/imb"
	"hpcbench/internal/launcher"
	"hpcbench/internal/progress"
	"hpcbench/internal/report"
	"hpcbench/internal/util"
)

const cmdName = "run"

var examples = []string{
	fmt.Sprintf("  Run all benchmarks:                 $ %s %s", common.AppName, cmdName),
	fmt.Sprintf("  Run specific benchmarks:            $ %s %s --amg --snap", common.AppName, cmdName),
	fmt.Sprintf("  Sweep process counts 1,2,4,8:       $ %s %s --runcmds-stop 3 --numpe-expr \"2 ** nidx\"", common.AppName, cmdName),
	fmt.Sprintf("  Use mpiexec instead of srun:        $ %s %s --launch-template \"mpiexec -n %%n\"", common.AppName, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Run benchmarks and report the results",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	PreRunE:       validateFlags,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

// flag vars
var (
	flagAll bool

	flagAMG     bool
	flagBranson bool
	flagEmber   bool
	flagIMB     bool
	flagLaghos  bool
	flagMiniAMR bool
	flagPENNANT bool
	flagSNAP    bool
	flagXSBench bool

	flagBinDir         string
	flagLaunchTemplate string
	flagRuncmdsStart   int
	flagRuncmdsStop    int
	flagNumpeExpr      string
	flagTimeout        int

	flagIMBBenchmarks []string

	flagFormat     []string
	flagPrometheus string
)

// flag names
const (
	flagAllName = "all"

	flagBinDirName         = "bin-dir"
	flagLaunchTemplateName = "launch-template"
	flagRuncmdsStartName   = "runcmds-start"
	flagRuncmdsStopName    = "runcmds-stop"
	flagNumpeExprName      = "numpe-expr"
	flagTimeoutName        = "timeout"

	flagIMBBenchmarksName = "imb-benchmarks"

	flagFormatName     = "format"
	flagPrometheusName = "prometheus"
)

// imbSuites are the IMB suite binaries the run command knows how to launch
// and parse. The IO and NBC suites are not run by default.
var imbSuites = []string{"IMB-MPI1", "IMB-P2P", "IMB-MT", "IMB-EXT", "IMB-RMA", "IMB-IO", "IMB-NBC"}
var defaultIMBSuites = []string{"IMB-MPI1", "IMB-P2P", "IMB-MT", "IMB-EXT", "IMB-RMA"}

var categories = []common.Category{
	{FlagName: bench.AMG, Benchmark: bench.AMG, FlagVar: &flagAMG, DefaultValue: false, Help: "AMG parallel algebraic multigrid solver"},
	{FlagName: bench.Branson, Benchmark: bench.Branson, FlagVar: &flagBranson, DefaultValue: false, Help: "Branson implicit Monte Carlo transport"},
	{FlagName: bench.Ember, Benchmark: bench.Ember, FlagVar: &flagEmber, DefaultValue: false, Help: "Ember communication pattern suite"},
	{FlagName: bench.IMB, Benchmark: bench.IMB, FlagVar: &flagIMB, DefaultValue: false, Help: "Intel MPI Benchmarks"},
	{FlagName: bench.Laghos, Benchmark: bench.Laghos, FlagVar: &flagLaghos, DefaultValue: false, Help: "Laghos high-order Lagrangian hydrodynamics"},
	{FlagName: bench.MiniAMR, Benchmark: bench.MiniAMR, FlagVar: &flagMiniAMR, DefaultValue: false, Help: "miniAMR adaptive mesh refinement proxy"},
	{FlagName: bench.PENNANT, Benchmark: bench.PENNANT, FlagVar: &flagPENNANT, DefaultValue: false, Help: "PENNANT unstructured mesh hydrodynamics"},
	{FlagName: bench.SNAP, Benchmark: bench.SNAP, FlagVar: &flagSNAP, DefaultValue: false, Help: "SNAP discrete ordinates transport proxy"},
	{FlagName: bench.XSBench, Benchmark: bench.XSBench, FlagVar: &flagXSBench, DefaultValue: false, Help: "XSBench macroscopic cross section lookup kernel"},
}

func init() {
	// set up benchmark selection flags
	for _, benchmark := range categories {
		Cmd.Flags().BoolVar(benchmark.FlagVar, benchmark.FlagName, benchmark.DefaultValue, benchmark.Help)
	}
	// set up other flags
	Cmd.Flags().BoolVar(&flagAll, flagAllName, true, "")
	Cmd.Flags().StringVar(&flagBinDir, flagBinDirName, ".", "")
	Cmd.Flags().StringVar(&flagLaunchTemplate, flagLaunchTemplateName, "srun -n %n", "")
	Cmd.Flags().IntVar(&flagRuncmdsStart, flagRuncmdsStartName, 0, "")
	Cmd.Flags().IntVar(&flagRuncmdsStop, flagRuncmdsStopName, 2, "")
	Cmd.Flags().StringVar(&flagNumpeExpr, flagNumpeExprName, "nidx + 1", "")
	Cmd.Flags().IntVar(&flagTimeout, flagTimeoutName, 0, "")
	Cmd.Flags().StringSliceVar(&flagIMBBenchmarks, flagIMBBenchmarksName, defaultIMBSuites, "")
	Cmd.Flags().StringSliceVar(&flagFormat, flagFormatName, []string{report.FormatAll}, "")
	Cmd.Flags().StringVar(&flagPrometheus, flagPrometheusName, "", "")

	Cmd.SetUsageFunc(usageFunc)
}

func usageFunc(cmd *cobra.Command) error {
	cmd.Printf("Usage: %s [flags]\n\n", cmd.CommandPath())
	cmd.Printf("Examples:\n%s\n\n", cmd.Example)
	cmd.Println("Flags:")
	for _, group := range getFlagGroups() {
		cmd.Printf("  %s:\n", group.GroupName)
		for _, flag := range group.Flags {
			flagDefault := ""
			if cmd.Flags().Lookup(flag.Name).DefValue != "" {
				flagDefault = fmt.Sprintf(" (default: %s)", cmd.Flags().Lookup(flag.Name).DefValue)
			}
			cmd.Printf("    --%-20s %s%s\n", flag.Name, flag.Help, flagDefault)
		}
	}
	cmd.Println("\nGlobal Flags:")
	cmd.Parent().PersistentFlags().VisitAll(func(pf *pflag.Flag) {
		flagDefault := ""
		if cmd.Parent().PersistentFlags().Lookup(pf.Name).DefValue != "" {
			flagDefault = fmt.Sprintf(" (default: %s)", cmd.Parent().PersistentFlags().Lookup(pf.Name).DefValue)
		}
		cmd.Printf("  --%-20s %s%s\n", pf.Name, pf.Usage, flagDefault)
	})
	return nil
}

func getFlagGroups() []common.FlagGroup {
	var groups []common.FlagGroup
	flags := []common.Flag{
		{
			Name: flagAllName,
			Help: "run all benchmarks",
		},
	}
	for _, benchmark := range categories {
		flags = append(flags, common.Flag{
			Name: benchmark.FlagName,
			Help: benchmark.Help,
		})
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Benchmark Options",
		Flags:     flags,
	})
	flags = []common.Flag{
		{
			Name: flagBinDirName,
			Help: "directory containing the benchmark binaries",
		},
		{
			Name: flagLaunchTemplateName,
			Help: "job launch command template, %n is replaced with the process count",
		},
		{
			Name: flagRuncmdsStartName,
			Help: "first value of the launch sweep index",
		},
		{
			Name: flagRuncmdsStopName,
			Help: "last value of the launch sweep index, inclusive",
		},
		{
			Name: flagNumpeExprName,
			Help: "arithmetic expression mapping the sweep index, nidx, to a process count",
		},
		{
			Name: flagTimeoutName,
			Help: "per-run timeout in seconds, 0 disables the timeout",
		},
		{
			Name: flagIMBBenchmarksName,
			Help: fmt.Sprintf("choose IMB suite(s) from: %s", strings.Join(imbSuites, ", ")),
		},
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Launch Options",
		Flags:     flags,
	})
	flags = []common.Flag{
		{
			Name: flagFormatName,
			Help: fmt.Sprintf("choose output format(s) from: %s", strings.Join(append([]string{report.FormatAll}, report.FormatOptions...), ", ")),
		},
		{
			Name: flagPrometheusName,
			Help: "publish results on a Prometheus endpoint at the given listen address, e.g., :9090",
		},
	}
	groups = append(groups, common.FlagGroup{
		GroupName: "Output Options",
		Flags:     flags,
	})
	return groups
}

func validateFlags(cmd *cobra.Command, args []string) error {
	// clear flagAll if any benchmarks are selected
	if flagAll {
		for _, benchmark := range categories {
			if benchmark.FlagVar != nil && *benchmark.FlagVar {
				flagAll = false
				break
			}
		}
	}
	// validate format options
	for _, format := range flagFormat {
		formatOptions := append([]string{report.FormatAll}, report.FormatOptions...)
		if !slices.Contains(formatOptions, format) {
			return common.FlagValidationError(cmd, fmt.Sprintf("format options are: %s", strings.Join(formatOptions, ", ")))
		}
	}
	// validate IMB suite selections
	validSuites := mapset.NewSet(imbSuites...)
	for _, suite := range flagIMBBenchmarks {
		if !validSuites.Contains(suite) {
			return common.FlagValidationError(cmd, fmt.Sprintf("IMB suite options are: %s", strings.Join(imbSuites, ", ")))
		}
	}
	// validate the sweep bounds
	if flagRuncmdsStart > flagRuncmdsStop {
		return common.FlagValidationError(cmd, fmt.Sprintf("%s must not exceed %s", flagRuncmdsStartName, flagRuncmdsStopName))
	}
	if flagTimeout < 0 {
		return common.FlagValidationError(cmd, "timeout must not be negative")
	}
	return nil
}

// runConfig is echoed to stdout at startup so a result directory records the
// exact configuration that produced it.
type runConfig struct {
	Benchmarks     []string `yaml:"benchmarks"`
	IMBSuites      []string `yaml:"imb_benchmarks,omitempty"`
	BinDir         string   `yaml:"bin_dir"`
	LaunchTemplate string   `yaml:"launch_template"`
	RuncmdsStart   int      `yaml:"runcmds_start"`
	RuncmdsStop    int      `yaml:"runcmds_stop"`
	NumpeExpr      string   `yaml:"numpe_expression"`
	Timeout        int      `yaml:"timeout_seconds"`
	Formats        []string `yaml:"format"`
	OutputDir      string   `yaml:"output_dir"`
}

func runCmd(cmd *cobra.Command, args []string) error {
	start := time.Now()
	appContext := cmd.Parent().Context().Value(common.AppContext{}).(common.AppContext)

	// resolve the selected benchmarks in their canonical order
	var selected []string
	for _, benchmark := range categories {
		if *benchmark.FlagVar || flagAll {
			selected = append(selected, benchmark.Benchmark)
		}
	}

	binDir, err := util.AbsPath(flagBinDir)
	if err != nil {
		return fmt.Errorf("failed to expand bin dir: %w", err)
	}
	if err := util.CreateDirectoryIfNotExists(appContext.OutputDir, 0755); err != nil { // #nosec G301
		return err
	}

	config := runConfig{
		Benchmarks:     selected,
		BinDir:         binDir,
		LaunchTemplate: flagLaunchTemplate,
		RuncmdsStart:   flagRuncmdsStart,
		RuncmdsStop:    flagRuncmdsStop,
		NumpeExpr:      flagNumpeExpr,
		Timeout:        flagTimeout,
		Formats:        flagFormat,
		OutputDir:      appContext.OutputDir,
	}
	if slices.Contains(selected, bench.IMB) {
		config.IMBSuites = flagIMBBenchmarks
	}
	configYaml, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to render run configuration: %w", err)
	}
	fmt.Printf("---\n%s...\n", configYaml)

	if flagPrometheus != "" {
		startPrometheusServer(flagPrometheus)
	}

	cmds, err := launcher.RunCmds(flagRuncmdsStart, flagRuncmdsStop, flagLaunchTemplate, flagNumpeExpr)
	if err != nil {
		return err
	}
	slog.Info("starting benchmark runs",
		slog.String("benchmarks", strings.Join(selected, ",")),
		slog.Int("launches per benchmark", len(cmds)))

	multiSpinner := progress.NewMultiSpinner()
	for _, name := range selected {
		if err := multiSpinner.AddSpinner(name); err != nil {
			return err
		}
	}
	multiSpinner.Start()

	var allTables []report.TableValues
	totalRuns := 0
	totalRows := 0
	labeler := imb.NewLabeler()
	for _, name := range selected {
		var tables []report.TableValues
		var runs, rows int
		var runErr error
		if name == bench.IMB {
			tables, runs, rows, runErr = runIMBSuites(flagIMBBenchmarks, cmds, binDir, appContext.OutputDir, labeler, multiSpinner)
		} else {
			desc, ok := bench.Lookup(name)
			if !ok {
				multiSpinner.Finish()
				return fmt.Errorf("unknown benchmark: %s", name)
			}
			tables, runs, rows, runErr = runMiniApp(desc, cmds, binDir, multiSpinner)
		}
		if runErr != nil {
			multiSpinner.Finish()
			return runErr
		}
		allTables = append(allTables, tables...)
		totalRuns += runs
		totalRows += rows
	}
	multiSpinner.Finish()

	reportPaths, err := report.WriteReports(appContext.OutputDir, common.AppName, flagFormat, allTables)
	if err != nil {
		return err
	}
	txt, err := report.Create(report.FormatTxt, allTables)
	if err != nil {
		return err
	}
	fmt.Print(string(txt))
	fmt.Println("Report files:")
	for _, path := range reportPaths {
		fmt.Printf("  %s\n", path)
	}
	printer := message.NewPrinter(language.English)
	printer.Printf("%d benchmark runs completed, %d result rows collected in %s\n",
		totalRuns, totalRows, time.Since(start).Round(time.Second))
	return nil
}

// runMiniApp launches one mini-app once per launch command and scrapes each
// captured run into a row of the benchmark's table.
func runMiniApp(desc bench.Descriptor, cmds []string, binDir string, multiSpinner *progress.MultiSpinner) (tables []report.TableValues, runs int, rows int, err error) {
	exe := filepath.Join(binDir, desc.Executable)
	var tableRows [][]string
	for _, prefix := range cmds {
		cmdline := prefix + " " + exe
		if desc.Args != "" {
			cmdline += " " + desc.Args
		}
		_ = multiSpinner.Status(desc.Name, fmt.Sprintf("running, %s", prefix))
		out, runErr := launcher.Run(cmdline, flagTimeout)
		runs++
		if runErr != nil {
			slog.Error("benchmark run failed",
				slog.String("benchmark", desc.Name),
				slog.String("command", cmdline),
				slog.String("error", runErr.Error()))
			_ = multiSpinner.Status(desc.Name, fmt.Sprintf("failed, %s", prefix))
			continue
		}
		if desc.OutputFile != "" {
			// this benchmark writes its results to a file in the working
			// directory rather than stdout
			data, readErr := os.ReadFile(desc.OutputFile)
			if readErr != nil {
				slog.Error("failed to read benchmark output file",
					slog.String("benchmark", desc.Name),
					slog.String("file", desc.OutputFile),
					slog.String("error", readErr.Error()))
				continue
			}
			out.Stdout = string(data)
		}
		row, extractErr := desc.Extract(&out)
		if extractErr != nil {
			slog.Error("failed to extract benchmark results",
				slog.String("benchmark", desc.Name),
				slog.String("error", extractErr.Error()))
			continue
		}
		tableRows = append(tableRows, row)
		if flagPrometheus != "" {
			numpe, npErr := launcher.NumProcesses(out.Command)
			if npErr != nil {
				numpe = 0
			}
			updateResultMetrics(desc.Name, numpe, desc.Columns, row)
		}
	}
	table := report.NewTable(desc.Name, desc.Columns, tableRows)
	if len(tableRows) == 0 {
		table.NoDataFound = "No runs completed."
	}
	_ = multiSpinner.Complete(desc.Name, fmt.Sprintf("done, %d of %d runs succeeded", len(tableRows), len(cmds)))
	return []report.TableValues{table}, len(cmds), len(tableRows), nil
}

// runIMBSuites launches each selected IMB suite once per launch command,
// parses the captured output, and writes the per-record CSV assets.
func runIMBSuites(suites []string, cmds []string, binDir string, outputDir string, labeler *imb.Labeler, multiSpinner *progress.MultiSpinner) (tables []report.TableValues, runs int, rows int, err error) {
	succeeded := 0
	for _, suite := range suites {
		exe := filepath.Join(binDir, suite)
		for _, prefix := range cmds {
			cmdline := prefix + " " + exe
			_ = multiSpinner.Status(bench.IMB, fmt.Sprintf("running %s, %s", suite, prefix))
			out, runErr := launcher.Run(cmdline, flagTimeout)
			runs++
			if runErr != nil {
				slog.Error("IMB run failed",
					slog.String("suite", suite),
					slog.String("command", cmdline),
					slog.String("error", runErr.Error()))
				continue
			}
			numpe, npErr := launcher.NumProcesses(out.Command)
			if npErr != nil {
				slog.Error("cannot determine process count from launch command",
					slog.String("command", out.Command),
					slog.String("error", npErr.Error()))
				continue
			}
			label := labeler.Label(suite, numpe)
			run, parseErr := imb.ParseOutput(label, out.Stdout)
			if parseErr != nil {
				slog.Error("failed to parse IMB output",
					slog.String("suite", suite),
					slog.String("error", parseErr.Error()))
				continue
			}
			tables = append(tables, report.IMBTables(run)...)
			if writeErr := report.WriteIMBAssets(outputDir, run); writeErr != nil {
				return nil, runs, rows, writeErr
			}
			for _, rec := range run.Records {
				rows += len(rec.Stats)
				if flagPrometheus != "" && len(rec.Stats) > 0 {
					updateResultMetrics(rec.Name, rec.Processes, rec.Metrics, rec.Stats[len(rec.Stats)-1])
				}
			}
			succeeded++
		}
	}
	_ = multiSpinner.Complete(bench.IMB, fmt.Sprintf("done, %d of %d runs succeeded", succeeded, runs))
	return tables, runs, rows, nil
}
