package metrics

import (
	"OSSim-go/schedulers/types"
	"OSSim-go/util"
)

func avgTurnaround(processes []*types.Process) float64 {
	return util.AvgFloat64(func(p *types.Process) float64 {
		return float64(*p.Turnaround)
	}, processes...)
}

func avgWaiting(processes []*types.Process) float64 {
	return util.AvgFloat64(func(p *types.Process) float64 {
		return float64(*p.Waiting)
	}, processes...)
}

// avgResponse 首次上CPU时间与到达时间之差的平均值。
func avgResponse(processes []*types.Process) float64 {
	return util.AvgFloat64(func(p *types.Process) float64 {
		return float64(p.ResponseTime())
	}, processes...)
}

func maxWaiting(processes []*types.Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	return util.MaxFloat64(func(p *types.Process) float64 {
		return float64(*p.Waiting)
	}, processes...)
}

func busyTime(processes []*types.Process) float64 {
	return util.SumFloat64(func(p *types.Process) float64 {
		return float64(p.SumRuntime())
	}, processes...)
}

// contextSwitches 相邻两段执行区间属于不同进程的次数。
func contextSwitches(timeline []*types.ExecutionRange) int {
	c := 0
	for i := 1; i < len(timeline); i++ {
		if timeline[i].PID != timeline[i-1].PID {
			c++
		}
	}
	return c
}

func packProcesses(processes []*types.Process) []*Process {
	res := make([]*Process, 0, len(processes))
	for _, p := range processes {
		res = append(res, packProcess(p))
	}
	return res
}

func packProcess(p *types.Process) *Process {
	ranges := make([]*ProcessExecutionRange, 0, len(p.ExecutedSlices))
	for _, s := range p.ExecutedSlices {
		ranges = append(ranges, &ProcessExecutionRange{
			Start:   float64(s.Start),
			End:     float64(s.End),
			Runtime: float64(s.Runtime()),
		})
	}
	res := &Process{
		PID:             int(p.PID),
		Arrival:         float64(p.Arrival),
		Burst:           float64(p.Burst),
		Priority:        p.Priority,
		Response:        float64(p.ResponseTime()),
		ExecutionRanges: ranges,
	}
	if p.Start != nil {
		res.Start = float64(*p.Start)
	}
	if p.Completion != nil {
		res.Completion = float64(*p.Completion)
		res.Turnaround = float64(*p.Turnaround)
		res.Waiting = float64(*p.Waiting)
	}
	return res
}
