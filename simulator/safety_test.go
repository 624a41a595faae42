package simulator

import (
	"bytes"
	"context"
	"testing"

	"OSSim-go/deadlock"
	"OSSim-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbookState() *deadlock.State {
	return deadlock.NewState(
		[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
		[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}, {4, 3, 3}},
		[]int{3, 3, 2},
	)
}

func TestSafetyChecker_Check(t *testing.T) {
	buf := &bytes.Buffer{}
	checker, err := NewSafetyChecker(WithOptionLogEnabled(false), WithOptionPrintWriter(buf), WithOptionLogPrintLevel(AllFormatPrint))
	require.NoError(t, err)
	defer checker.Close()

	result, err := checker.Check(context.Background(), textbookState())
	require.NoError(t, err)
	assert.True(t, result.Safe)
	out := buf.String()
	assert.Contains(t, out, "Safe state! Safe sequence: P1 → P3 → P4 → P0 → P2")
	assert.Contains(t, out, "Need")
	assert.Contains(t, out, "Available: R0=3 R1=3 R2=2")
	assert.Contains(t, out, "Resource allocation graph")
	assert.Contains(t, out, "R1 -> P0 (1)")
}

func TestSafetyChecker_ShortPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	checker, err := NewSafetyChecker(WithOptionLogEnabled(false), WithOptionPrintWriter(buf))
	require.NoError(t, err)
	state := textbookState()
	state.Available = []int{0, 0, 0}
	result, err := checker.Check(context.Background(), state)
	require.NoError(t, err)
	assert.False(t, result.Safe)
	assert.Equal(t, "Unsafe state / Deadlock possible!\n", buf.String())
}

func TestSafetyChecker_Rejects(t *testing.T) {
	checker, err := NewSafetyChecker(WithOptionLogEnabled(false), WithOptionLogPrintLevel(NoPrint))
	require.NoError(t, err)
	_, err = checker.Check(context.Background(), deadlock.NewState([][]int{{2}}, [][]int{{1}}, []int{0}))
	assert.ErrorIs(t, err, errs.ErrInconsistentState)
}
