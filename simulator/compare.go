package simulator

import (
	"OSSim-go/metrics"
	"OSSim-go/schedulers"
	"OSSim-go/schedulers/types"
	"context"
	"fmt"
)

// RunAll 在同一组进程上依次模拟 algorithms（为空时模拟全部六种），并按平均周转时间比较。
// 任何一个算法的输入不合法都会中止并返回错误。
func RunAll(ctx context.Context, algorithms []types.Algorithm, processes []*types.Process, setOpts ...SetOption) ([]*types.Record, *metrics.Comparison, error) {
	if len(algorithms) == 0 {
		algorithms = types.Algorithms()
	}
	records := make([]*types.Record, 0, len(algorithms))
	reports := make([]*metrics.Report, 0, len(algorithms))
	for _, algorithm := range algorithms {
		record, err := runOne(ctx, algorithm, processes, setOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		records = append(records, record)
		reports = append(reports, metrics.GenerateSingleSimulationReport(record))
	}
	comparison := metrics.NewComparison(reports)

	opts := newDefaultOptions()
	for _, setOpt := range setOpts {
		setOpt(opts)
	}
	NewPrinter(opts.printWriter, opts.formatPrintLevel).PrintComparison(comparison)
	return records, comparison, nil
}

func runOne(ctx context.Context, algorithm types.Algorithm, processes []*types.Process, setOpts ...SetOption) (*types.Record, error) {
	scheduler, err := schedulers.New(algorithm)
	if err != nil {
		return nil, err
	}
	simulator, err := NewSimulator(scheduler, setOpts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = simulator.Close()
	}()
	return simulator.Start(ctx, processes)
}
