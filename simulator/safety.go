package simulator

import (
	"OSSim-go/deadlock"
	"OSSim-go/tracing"
	"context"
	"fmt"
	"strconv"
)

// SafetyChecker 在银行家算法外包装日志、追踪与输出。
type SafetyChecker struct {
	logger  *Logger
	printer *Printer
}

func NewSafetyChecker(setOpts ...SetOption) (*SafetyChecker, error) {
	opts := newDefaultOptions()
	for _, setOpt := range setOpts {
		setOpt(opts)
	}
	logger, err := NewLogger(opts.logEnabled, opts.logDirPath, opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("new safety checker: %w", err)
	}
	return &SafetyChecker{
		logger:  logger,
		printer: NewPrinter(opts.printWriter, opts.formatPrintLevel),
	}, nil
}

func (c *SafetyChecker) Check(ctx context.Context, state *deadlock.State) (result *deadlock.Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "deadlock.CheckSafety")
	span.WithAttributes(map[string]string{
		"processes": strconv.Itoa(state.ProcessCount()),
		"resources": strconv.Itoa(state.ResourceCount()),
	})
	defer func() {
		tracing.EndSpan(span, err)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	result, err = state.CheckSafety()
	if err != nil {
		c.logger.ReceiveError("safety check rejected", err)
		return nil, err
	}
	span.WithAttributes(map[string]string{"safe": strconv.FormatBool(result.Safe)})
	c.logger.ReceiveSafety(result)
	c.printer.PrintSafety(state, result)
	return result, nil
}

func (c *SafetyChecker) Close() error {
	return c.logger.Close()
}
