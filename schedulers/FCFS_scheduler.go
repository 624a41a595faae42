package schedulers

import (
	"OSSim-go/schedulers/types"
	"OSSim-go/util"
	"math"
)

// FCFSScheduler 先来先服务。按照到达时间稳定排序后依次运行到结束，不抢占。
type FCFSScheduler struct{}

func NewFCFSScheduler() *FCFSScheduler {
	return &FCFSScheduler{}
}

func (s *FCFSScheduler) Schedule(processes []*types.Process, _ *types.Params) {
	ordered := append(make([]*types.Process, 0, len(processes)), processes...)
	util.StableSortBy(ordered, func(a, b *types.Process) bool {
		return a.Arrival < b.Arrival
	})
	now := types.Time(0.)
	for _, p := range ordered {
		start := types.Time(math.Max(float64(now), float64(p.Arrival)))
		p.Execute(start, p.Remaining)
		now = *p.Completion
	}
}

func (s *FCFSScheduler) Algorithm() types.Algorithm {
	return types.FCFS
}

func (s *FCFSScheduler) Name() string {
	return "FCFSScheduler"
}

func (s *FCFSScheduler) Info() interface{} {
	return s.Name()
}
