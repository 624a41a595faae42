package types

import (
	"errors"
	"math"
	"testing"

	"OSSim-go/errs"
	"github.com/stretchr/testify/assert"
)

func TestValidateProcesses(t *testing.T) {
	tests := []struct {
		name      string
		processes []*Process
		wantIndex int
		wantField string
	}{
		{name: "empty", processes: nil, wantIndex: -1, wantField: "processes"},
		{name: "nil record", processes: []*Process{NewProcess(1, 0, 1, 0), nil}, wantIndex: 1, wantField: "process"},
		{name: "non positive pid", processes: []*Process{NewProcess(0, 0, 1, 0)}, wantIndex: 0, wantField: "pid"},
		{name: "duplicate pid", processes: []*Process{NewProcess(1, 0, 1, 0), NewProcess(1, 0, 1, 0)}, wantIndex: 1, wantField: "pid"},
		{name: "negative arrival", processes: []*Process{NewProcess(1, -1, 1, 0)}, wantIndex: 0, wantField: "arrival"},
		{name: "nan arrival", processes: []*Process{NewProcess(1, Time(math.NaN()), 1, 0)}, wantIndex: 0, wantField: "arrival"},
		{name: "zero burst", processes: []*Process{NewProcess(1, 0, 1, 0), NewProcess(2, 0, 0, 0)}, wantIndex: 1, wantField: "burst"},
		{name: "infinite burst", processes: []*Process{NewProcess(1, 0, Duration(math.Inf(1)), 0)}, wantIndex: 0, wantField: "burst"},
		{name: "negative priority", processes: []*Process{NewProcess(1, 0, 1, -2)}, wantIndex: 0, wantField: "priority"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProcesses(tt.processes)
			assert.True(t, errors.Is(err, errs.ErrInvalidInput))
			var inputErr *errs.InputError
			if assert.True(t, errors.As(err, &inputErr)) {
				assert.Equal(t, tt.wantIndex, inputErr.Index)
				assert.Equal(t, tt.wantField, inputErr.Field)
			}
		})
	}
	assert.NoError(t, ValidateProcesses([]*Process{NewProcess(1, 0, 1, 0), NewProcess(2, 0.5, 2.5, 3)}))
}

func TestValidateParams(t *testing.T) {
	assert.NoError(t, ValidateParams(FCFS, nil))
	assert.NoError(t, ValidateParams(RoundRobin, &Params{Quantum: 2}))
	assert.ErrorIs(t, ValidateParams(RoundRobin, nil), errs.ErrInvalidInput)
	assert.ErrorIs(t, ValidateParams(RoundRobin, &Params{}), errs.ErrInvalidInput)
	assert.ErrorIs(t, ValidateParams(RoundRobin, &Params{Quantum: -1}), errs.ErrInvalidInput)
	assert.ErrorIs(t, ValidateParams(RoundRobin, &Params{Quantum: Duration(math.NaN())}), errs.ErrInvalidInput)
	assert.ErrorIs(t, ValidateParams(Algorithm(42), nil), errs.ErrInvalidInput)
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"FCFS":                    FCFS,
		"SJF Non-Preemptive":      SJFNonPreemptive,
		"srtf":                    SJFPreemptive,
		"Priority Non-Preemptive": PriorityNonPreemptive,
		"priority_preemptive":     PriorityPreemptive,
		"Round Robin":             RoundRobin,
		"RR":                      RoundRobin,
	}
	for in, want := range tests {
		got, err := ParseAlgorithm(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAlgorithm("lottery")
	assert.Error(t, err)

	for _, a := range Algorithms() {
		parsed, err := ParseAlgorithm(a.String())
		assert.NoError(t, err)
		assert.Equal(t, a, parsed)
		assert.NotEqual(t, "-", a.Complexity())
	}
	assert.True(t, RoundRobin.RequiresQuantum())
	assert.True(t, PriorityPreemptive.UsesPriority())
	assert.False(t, FCFS.Preemptive())
}
