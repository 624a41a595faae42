package simulator

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"OSSim-go/deadlock"
	"OSSim-go/metrics"
	"OSSim-go/schedulers/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newWriterLogger(buf, slog.LevelInfo)
	record := runRecord(t, types.FCFS, 0, types.NewProcess(1, 0, 2, 1))

	logger.ReceiveRecord(record)
	assert.Empty(t, buf.String(), "process lines are debug")

	logger.ReceiveMetrics(metrics.GenerateSingleSimulationReport(record))
	assert.Contains(t, buf.String(), `"avg_tat":2`)

	result, err := deadlock.CheckSafety([][]int{{0}}, [][]int{{1}}, []int{1})
	require.NoError(t, err)
	logger.ReceiveSafety(result)
	assert.Contains(t, buf.String(), `"sequence":"P0"`)

	logger.ReceiveError("failed", errors.New("boom"))
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.NoError(t, logger.Close())
}

func TestNewLogger_Disabled(t *testing.T) {
	logger, err := NewLogger(false, "", slog.LevelDebug)
	require.NoError(t, err)
	assert.False(t, logger.Enabled())
	assert.NotPanics(t, func() {
		logger.ReceiveError("dropped", errors.New("x"))
	})
}
