package schedulers

import (
	"OSSim-go/schedulers/types"
	"fmt"
)

// PriorityScheduler 优先级调度，数值越小优先级越高。
// 与 SJFScheduler 共用模板，仅选择规则不同：按 Priority 升序，相同则更早到达者优先。
type PriorityScheduler struct {
	*GreedySchedulerTemplate
}

func NewPriorityScheduler(preemptive bool) *PriorityScheduler {
	template := NewGreedySchedulerTemplate(preemptive)
	p := &PriorityScheduler{
		template,
	}
	template.impl = p
	return p
}

func (s *PriorityScheduler) pickTarget(ready []*types.Process) *types.Process {
	return pickBy(ready, func(a, b *types.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Arrival < b.Arrival
	})
}

func (s *PriorityScheduler) Algorithm() types.Algorithm {
	if s.preemptive {
		return types.PriorityPreemptive
	}
	return types.PriorityNonPreemptive
}

func (s *PriorityScheduler) Name() string {
	return fmt.Sprintf("PriorityScheduler[preemptive=%v]", s.preemptive)
}

func (s *PriorityScheduler) Info() interface{} {
	return s.Name()
}
