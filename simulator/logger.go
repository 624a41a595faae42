package simulator

import (
	"OSSim-go/deadlock"
	"OSSim-go/metrics"
	"OSSim-go/schedulers/types"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const logFileName = "ossim.log"

// BuildLogger JSON 格式的结构化日志。
func BuildLogger(w io.Writer, level slog.Level) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	return slog.New(slog.NewJSONHandler(w, ops))
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

// Logger 接收模拟结果并写入日志。未启用时丢弃所有内容。
type Logger struct {
	enabled bool
	logger  *slog.Logger
	closer  io.Closer
}

func NewLogger(enabled bool, logDirPath string, level slog.Level) (*Logger, error) {
	if !enabled {
		return &Logger{logger: BuildLogger(io.Discard, level)}, nil
	}
	if logDirPath == "" {
		return &Logger{enabled: true, logger: BuildLogger(os.Stderr, level)}, nil
	}
	if err := os.MkdirAll(logDirPath, os.ModePerm); err != nil {
		return nil, err
	}
	fp, err := os.OpenFile(filepath.Join(logDirPath, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{enabled: true, logger: BuildLogger(fp, level), closer: fp}, nil
}

func newWriterLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{enabled: true, logger: BuildLogger(w, level)}
}

// ReceiveRecord 每个进程一条 Debug 日志。
func (l *Logger) ReceiveRecord(record *types.Record) {
	for _, p := range record.Processes {
		slices := make([]string, 0, len(p.ExecutedSlices))
		for _, s := range p.ExecutedSlices {
			slices = append(slices, s.String())
		}
		l.logger.Debug("process finished",
			slog.String("run_id", record.RunID),
			slog.Int("pid", int(p.PID)),
			slog.Float64("start", float64(*p.Start)),
			slog.Float64("completion", float64(*p.Completion)),
			slog.Float64("tat", float64(*p.Turnaround)),
			slog.Float64("wt", float64(*p.Waiting)),
			slog.String("slices", strings.Join(slices, "|")),
		)
	}
}

func (l *Logger) ReceiveMetrics(report *metrics.Report) {
	l.logger.Info("simulation completed",
		slog.String("run_id", report.RunID),
		slog.String("scheduler", report.SchedulerName),
		slog.String("algorithm", report.Algorithm),
		slog.Int("finished_processes", report.Execution.FinishedProcessesCount),
		slog.Float64("avg_tat", report.Execution.AverageTurnaround),
		slog.Float64("avg_wt", report.Execution.AverageWaiting),
		slog.Float64("makespan", report.Execution.Makespan),
	)
}

func (l *Logger) ReceiveSafety(result *deadlock.Result) {
	l.logger.Info("safety checked",
		slog.Bool("safe", result.Safe),
		slog.String("sequence", strings.Join(result.Labels(), ",")),
		slog.Int("steps", len(result.Steps)),
	)
}

func (l *Logger) ReceiveError(msg string, err error) {
	l.logger.Error(msg, ErrAttr(err))
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) Enabled() bool {
	return l.enabled
}
