package schedulers

import (
	"OSSim-go/schedulers/types"
	"fmt"
)

// SJFScheduler
// 采取了Shortest Job First策略。分别实现了抢占与非抢占。
// 非抢占式按照 Burst 选择，被选中的进程运行到结束。
// 抢占式（SRTF）每个时间单位按照 Remaining 重新选择，相同时间单位连续运行的部分会合并成一个区间。
// 二者都以更早的到达时间作为第二排序键，再相同则保持输入顺序。
type SJFScheduler struct {
	*GreedySchedulerTemplate
}

func NewSJFScheduler(preemptive bool) *SJFScheduler {
	template := NewGreedySchedulerTemplate(preemptive)
	sjf := &SJFScheduler{
		template,
	}
	template.impl = sjf
	return sjf
}

func (s *SJFScheduler) pickTarget(ready []*types.Process) *types.Process {
	if s.preemptive {
		return pickBy(ready, func(a, b *types.Process) bool {
			if a.Remaining != b.Remaining {
				return a.Remaining < b.Remaining
			}
			return a.Arrival < b.Arrival
		})
	}
	return pickBy(ready, func(a, b *types.Process) bool {
		if a.Burst != b.Burst {
			return a.Burst < b.Burst
		}
		return a.Arrival < b.Arrival
	})
}

func (s *SJFScheduler) Algorithm() types.Algorithm {
	if s.preemptive {
		return types.SJFPreemptive
	}
	return types.SJFNonPreemptive
}

func (s *SJFScheduler) Name() string {
	return fmt.Sprintf("SJFScheduler[preemptive=%v]", s.preemptive)
}

func (s *SJFScheduler) Info() interface{} {
	return s.Name()
}
