package simulator

import (
	"testing"

	"OSSim-go/schedulers"
	"OSSim-go/schedulers/types"
	"github.com/stretchr/testify/require"
)

func runRecord(t *testing.T, algorithm types.Algorithm, quantum types.Duration, processes ...*types.Process) *types.Record {
	t.Helper()
	params := types.Params{Quantum: quantum}
	out, err := schedulers.Run(algorithm, processes, &params)
	require.NoError(t, err)
	return &types.Record{
		RunID:         "test",
		SchedulerName: algorithm.String(),
		Algorithm:     algorithm,
		Params:        params,
		Processes:     out,
	}
}
