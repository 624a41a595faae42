package simulator

import (
	"testing"

	"OSSim-go/schedulers/types"
	"github.com/stretchr/testify/assert"
)

func TestTimelineUpTo(t *testing.T) {
	record := runRecord(t, types.FCFS, 0, types.NewProcess(1, 0, 5, 1), types.NewProcess(2, 1, 3, 1))
	slice := func(pid types.PID, s, e types.Time) *types.ExecutionRange {
		return &types.ExecutionRange{PID: pid, TimeRange: types.TimeRange{Start: s, End: e}}
	}
	cases := []struct {
		at   types.Time
		want []*types.ExecutionRange
	}{
		{0, []*types.ExecutionRange{}},
		{2.5, []*types.ExecutionRange{slice(1, 0, 2.5)}},
		{5, []*types.ExecutionRange{slice(1, 0, 5)}},
		{6, []*types.ExecutionRange{slice(1, 0, 5), slice(2, 5, 6)}},
		{100, []*types.ExecutionRange{slice(1, 0, 5), slice(2, 5, 8)}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TimelineUpTo(record, c.at), "t=%v", c.at)
	}
	assert.Equal(t, []*types.TimeRange{{Start: 5, End: 8}}, record.Process(2).ExecutedSlices, "record is untouched")
}

func TestPlayback(t *testing.T) {
	record := runRecord(t, types.FCFS, 0, types.NewProcess(1, 0, 2, 1), types.NewProcess(2, 0, 1.5, 1))
	playback := NewPlayback(record)
	record.Processes[0].ExecutedSlices[0].End = 100

	assert.Equal(t, types.Time(3.5), playback.End())
	frames := playback.Frames(2)
	assert.Len(t, frames, 2)
	assert.Equal(t, "|  P1  |\n0      2\n", RenderTimeline(frames[0]))
	assert.Equal(t, "|  P1  |  P2  |\n0      2      3.5\n", RenderTimeline(frames[1]))
	assert.Panics(t, func() { playback.Frames(0) })
}
