package simulator

import (
	"OSSim-go/schedulers/types"
	"math"
)

// TimelineUpTo 回放到时刻 t 时可见的执行区间：t 之后开始的区间省略，跨过 t 的区间截断到 t。
// 返回的是副本，record 不会被修改。
func TimelineUpTo(record *types.Record, t types.Time) []*types.ExecutionRange {
	res := make([]*types.ExecutionRange, 0)
	for _, er := range record.Timeline() {
		if er.TimeRange.Start >= t {
			continue
		}
		end := types.Time(math.Min(float64(er.TimeRange.End), float64(t)))
		res = append(res, &types.ExecutionRange{
			PID:       er.PID,
			TimeRange: *types.NewTimeRange(er.TimeRange.Start, end),
		})
	}
	return res
}

// Playback 在一份快照上推进显示时钟，原记录之后的任何修改都不影响回放。
type Playback struct {
	snapshot *types.Record
}

func NewPlayback(record *types.Record) *Playback {
	return &Playback{snapshot: record.Snapshot()}
}

func (p *Playback) End() types.Time {
	return p.snapshot.Makespan()
}

func (p *Playback) Frame(t types.Time) []*types.ExecutionRange {
	return TimelineUpTo(p.snapshot, t)
}

// Frames 从 step 开始每隔 step 取一帧，最后一帧恰好是 End。
func (p *Playback) Frames(step types.Duration) [][]*types.ExecutionRange {
	if step <= 0 {
		panic("Playback Frames step <= 0")
	}
	frames := make([][]*types.ExecutionRange, 0)
	end := p.End()
	for t := types.Time(step); ; t += types.Time(step) {
		if t >= end {
			frames = append(frames, p.Frame(end))
			return frames
		}
		frames = append(frames, p.Frame(t))
	}
}
