package simulator

import (
	"OSSim-go/metrics"
	"OSSim-go/schedulers"
	"OSSim-go/schedulers/types"
	"OSSim-go/tracing"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Simulator struct {
	opts      *Options
	scheduler types.Scheduler
	logger    *Logger
	printer   *Printer
}

func NewSimulator(scheduler types.Scheduler, setOpts ...SetOption) (*Simulator, error) {
	opts := newDefaultOptions()
	for _, setOpt := range setOpts {
		setOpt(opts)
	}
	logger, err := NewLogger(opts.logEnabled, opts.logDirPath, opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("new simulator: %w", err)
	}
	return &Simulator{
		opts:      opts,
		scheduler: scheduler,
		logger:    logger,
		printer:   NewPrinter(opts.printWriter, opts.formatPrintLevel),
	}, nil
}

// Start 模拟一次调度。processes 不会被修改，返回的 Record 持有带注解的副本。
func (s *Simulator) Start(ctx context.Context, processes []*types.Process) (record *types.Record, err error) {
	ctx, span := tracing.StartSpan(ctx, "simulator.Start")
	span.WithAttributes(map[string]string{
		"algorithm": s.scheduler.Algorithm().String(),
		"scheduler": s.scheduler.Name(),
	})
	defer func() {
		tracing.EndSpan(span, err)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	params := s.opts.Params()
	start := time.Now()
	annotated, err := schedulers.RunWith(s.scheduler, processes, params)
	duration := time.Since(start)
	if err != nil {
		s.logger.ReceiveError("simulation rejected", err)
		return nil, err
	}

	record = &types.Record{
		RunID:         uuid.NewString(),
		SchedulerName: s.scheduler.Name(),
		SchedulerInfo: s.scheduler.Info(),
		Algorithm:     s.scheduler.Algorithm(),
		Params:        *params,
		Processes:     annotated,
		SchedulerRecord: &types.SchedulerRecord{
			DoScheduleRecords: []*types.DoScheduleCallRecord{{Duration: duration}},
		},
	}
	span.WithAttributes(map[string]string{"run_id": record.RunID})
	s.logger.ReceiveRecord(record)
	report := metrics.GenerateSingleSimulationReport(record)
	s.logger.ReceiveMetrics(report)
	s.printer.PrintRecord(record, report)
	return record, nil
}

func (s *Simulator) Scheduler() types.Scheduler {
	return s.scheduler
}

func (s *Simulator) Close() error {
	return s.logger.Close()
}
