package main

import (
	"OSSim-go/metrics"
	"OSSim-go/schedulers"
	"OSSim-go/schedulers/types"
	"OSSim-go/simulator"
	"OSSim-go/tracing"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

const (
	serviceName    = "OSSim-go"
	serviceVersion = "0.1.0"
)

type cliFlags struct {
	config    string
	scenario  string
	csv       string
	algo      string
	quantum   float64
	all       bool
	banker    bool
	export    string
	reportDir string
	logLevel  string
	logDir    string
	traceFile string
	print     string
	playback  float64
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "ossim:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*cliFlags, map[string]bool, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("ossim", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "YAML config URL")
	fs.StringVar(&f.scenario, "scenario", "", "YAML scenario URL")
	fs.StringVar(&f.csv, "csv", "", "CSV process list URL (pid,arrival,burst[,priority])")
	fs.StringVar(&f.algo, "algo", "", "comma separated algorithms, e.g. fcfs,srtf,rr")
	fs.Float64Var(&f.quantum, "quantum", 0, "Round Robin time quantum")
	fs.BoolVar(&f.all, "all", false, "run and compare every algorithm")
	fs.BoolVar(&f.banker, "banker", false, "run the Banker's safety check of the scenario")
	fs.StringVar(&f.export, "export", "", "export the result as CSV to this URL")
	fs.StringVar(&f.reportDir, "report-dir", "", "save JSON reports under this URL")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&f.logDir, "log-dir", "", "write logs to <dir>/ossim.log instead of stderr")
	fs.StringVar(&f.traceFile, "trace-file", "", "write OpenTelemetry spans to this file")
	fs.StringVar(&f.print, "print", "", "none, short or all")
	fs.Float64Var(&f.playback, "playback", 0, "print the Gantt chart of the first run as seen at this time")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	return f, set, nil
}

func loadConfig(ctx context.Context, f *cliFlags, set map[string]bool) (*simulator.Config, error) {
	cfg := simulator.DefaultConfig()
	if f.config != "" {
		loaded, err := simulator.LoadConfig(ctx, f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	if set["log-dir"] {
		cfg.LogDir = f.logDir
	}
	if set["print"] {
		cfg.PrintLevel = f.print
	}
	if set["quantum"] {
		cfg.Quantum = f.quantum
	}
	if set["trace-file"] {
		cfg.TraceFile = f.traceFile
	}
	if set["report-dir"] {
		cfg.ReportDir = f.reportDir
	}
	return cfg, cfg.Validate()
}

func loadScenario(ctx context.Context, f *cliFlags) (*simulator.Scenario, error) {
	ds := simulator.NewDataSource()
	switch {
	case f.scenario != "":
		return ds.LoadScenario(ctx, f.scenario)
	case f.csv != "":
		processes, err := ds.LoadProcessesCSV(ctx, f.csv)
		if err != nil {
			return nil, err
		}
		scenario := &simulator.Scenario{Name: path.Base(f.csv)}
		for _, p := range processes {
			priority := p.Priority
			scenario.Processes = append(scenario.Processes, &simulator.ProcessSpec{
				PID: int(p.PID), Arrival: float64(p.Arrival), Burst: float64(p.Burst), Priority: &priority,
			})
		}
		return scenario, nil
	}
	return nil, errors.New("one of -scenario or -csv is required")
}

// selectAlgorithms 优先使用 -algo，其次是场景文件，最后是全部算法。
// 未给出 quantum 时，隐式选中的 Round Robin 会被跳过。
func selectAlgorithms(f *cliFlags, scenario *simulator.Scenario, quantum float64, w io.Writer) ([]types.Algorithm, error) {
	if f.algo != "" && !f.all {
		algorithms := make([]types.Algorithm, 0)
		for _, name := range strings.Split(f.algo, ",") {
			a, err := types.ParseAlgorithm(name)
			if err != nil {
				return nil, err
			}
			algorithms = append(algorithms, a)
		}
		return algorithms, nil
	}
	if len(scenario.Algorithms) > 0 && !f.all {
		return scenario.Algorithms, nil
	}
	algorithms := make([]types.Algorithm, 0)
	for _, a := range types.Algorithms() {
		if a.RequiresQuantum() && quantum <= 0 {
			_, _ = fmt.Fprintf(w, "skipping %s: no quantum given\n", a)
			continue
		}
		algorithms = append(algorithms, a)
	}
	return algorithms, nil
}

func run(ctx context.Context, args []string, w io.Writer) error {
	f, set, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, f, set)
	if err != nil {
		return err
	}
	if cfg.TraceFile != "" {
		if err := tracing.Init(serviceName, serviceVersion, cfg.TraceFile); err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			_ = tracing.Shutdown(ctx)
		}()
	}
	scenario, err := loadScenario(ctx, f)
	if err != nil {
		return err
	}
	if !set["quantum"] && scenario.Quantum > 0 {
		cfg.Quantum = scenario.Quantum
	}
	opts := append(cfg.Options(), simulator.WithOptionPrintWriter(w))

	if f.banker {
		if scenario.Banker == nil {
			return errors.New("-banker needs a scenario with a banker section")
		}
		checker, err := simulator.NewSafetyChecker(opts...)
		if err != nil {
			return err
		}
		defer checker.Close()
		if _, err := checker.Check(ctx, scenario.Banker); err != nil {
			return err
		}
	}
	if len(scenario.Processes) == 0 {
		if f.banker {
			return nil
		}
		return errors.New("scenario has no processes")
	}

	algorithms, err := selectAlgorithms(f, scenario, cfg.Quantum, w)
	if err != nil {
		return err
	}
	records, err := simulate(ctx, algorithms, scenario.ProcessList(), opts)
	if err != nil {
		return err
	}

	if set["playback"] {
		at := types.Time(f.playback)
		_, _ = fmt.Fprintf(w, "Timeline of %s at %s\n", records[0].Algorithm, at)
		_, _ = fmt.Fprint(w, simulator.RenderTimeline(simulator.NewPlayback(records[0]).Frame(at)))
	}
	if len(scenario.Answers) > 0 {
		_, _ = fmt.Fprintf(w, "Checking answers against %s\n", records[0].Algorithm)
		_, _ = fmt.Fprintln(w, strings.TrimRight(simulator.CheckAnswers(records[0], scenario.Answers).String(), "\n"))
	}
	if f.export != "" {
		if err := simulator.ExportCSV(ctx, records[0], f.export); err != nil {
			return err
		}
	}
	if cfg.ReportDir != "" {
		reports := make(map[string][]*metrics.Report)
		for _, record := range records {
			name := record.Algorithm.String()
			reports[name] = append(reports[name], metrics.GenerateSingleSimulationReport(record))
		}
		fileURL, err := metrics.SaveSimulationReport(ctx, cfg.ReportDir, scenario.Name, reports)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "generate report to %s\n", fileURL)
	}
	return nil
}

func simulate(ctx context.Context, algorithms []types.Algorithm, processes []*types.Process, opts []simulator.SetOption) ([]*types.Record, error) {
	if len(algorithms) > 1 {
		records, _, err := simulator.RunAll(ctx, algorithms, processes, opts...)
		return records, err
	}
	if len(algorithms) == 0 {
		return nil, errors.New("no algorithm selected")
	}
	scheduler, err := schedulers.New(algorithms[0])
	if err != nil {
		return nil, err
	}
	simu, err := simulator.NewSimulator(scheduler, opts...)
	if err != nil {
		return nil, err
	}
	defer simu.Close()
	record, err := simu.Start(ctx, processes)
	if err != nil {
		return nil, err
	}
	return []*types.Record{record}, nil
}
