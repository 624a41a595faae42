package simulator

import (
	"bytes"
	"testing"

	"OSSim-go/metrics"
	"OSSim-go/schedulers/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderGantt(t *testing.T) {
	cases := []struct {
		name      string
		algorithm types.Algorithm
		processes []*types.Process
		want      string
	}{
		{
			name:      "contiguous",
			algorithm: types.FCFS,
			processes: []*types.Process{types.NewProcess(1, 0, 5, 1), types.NewProcess(2, 1, 3, 1)},
			want:      "|  P1  |  P2  |\n0      5      8\n",
		},
		{
			name:      "leading idle",
			algorithm: types.SJFPreemptive,
			processes: []*types.Process{types.NewProcess(1, 2, 2, 1)},
			want:      "| idle |  P1  |\n0      2      4\n",
		},
		{
			name:      "gap and fractions",
			algorithm: types.SJFNonPreemptive,
			processes: []*types.Process{types.NewProcess(1, 0, 1.5, 1), types.NewProcess(12, 3, 1, 1)},
			want:      "|  P1  | idle | P12  |\n0      1.5    3      4\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, RenderGantt(runRecord(t, c.algorithm, 0, c.processes...)))
		})
	}
	assert.Empty(t, RenderGantt(&types.Record{}))
}

func TestPrinter_PrintRecord(t *testing.T) {
	record := runRecord(t, types.FCFS, 0, types.NewProcess(1, 0, 5, 1), types.NewProcess(2, 1, 3, 1))
	report := metrics.GenerateSingleSimulationReport(record)

	buf := &bytes.Buffer{}
	NewPrinter(buf, NoPrint).PrintRecord(record, report)
	assert.Empty(t, buf.String())

	NewPrinter(buf, ShortMsgPrint).PrintRecord(record, report)
	assert.Equal(t, "FCFS: avg TAT = 6.00, avg WT = 2.00, makespan = 8.00\n", buf.String())

	buf.Reset()
	NewPrinter(buf, AllFormatPrint).PrintRecord(record, report)
	out := buf.String()
	assert.Contains(t, out, "Gantt chart")
	assert.Contains(t, out, "|  P1  |  P2  |")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "COMPLETION")
	assert.Contains(t, out, "AverageTurnaround")
}

func TestPrinter_PrintComparison(t *testing.T) {
	buf := &bytes.Buffer{}
	c := &metrics.Comparison{
		Entries: []*metrics.ComparisonEntry{{Algorithm: "FCFS", AverageTurnaround: 6, AverageWaiting: 2, Makespan: 8}},
		Best:    "FCFS",
	}
	NewPrinter(buf, NoPrint).PrintComparison(c)
	assert.Empty(t, buf.String())
	NewPrinter(buf, ShortMsgPrint).PrintComparison(c)
	assert.Contains(t, buf.String(), "Algorithm comparison")
	assert.Contains(t, buf.String(), "6.00")
}
