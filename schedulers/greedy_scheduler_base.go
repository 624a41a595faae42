package schedulers

import (
	"OSSim-go/schedulers/types"
	"fmt"
	"math"
)

// unitStep 抢占式调度每次推进的时间单位。每个单位结束后重新选择一次目标进程。
const unitStep = types.Duration(1.)

// GreedySchedulerTemplate 类似于SJF或Priority之类的算法，它们的贪心规则类似，可以抽象出模板方法。
// 具体的调度器只需要实现 pickTarget，即在已到达的进程中挑选下一个要上CPU的进程。
// 非抢占式：被选中的进程一直运行到结束；CPU空闲时时钟直接跳到下一个到达时间。
// 抢占式：每次只运行一个时间单位，然后重新挑选；CPU空闲时时钟前进一个时间单位。
type GreedySchedulerTemplate struct {
	preemptive bool
	impl       GreedyScheduler
}

type GreedyScheduler interface {
	types.Scheduler
	// pickTarget 从 ready 中挑选一个进程，ready 保持调用方给定的原始顺序，且不为空。
	pickTarget(ready []*types.Process) *types.Process
}

func NewGreedySchedulerTemplate(preemptive bool) *GreedySchedulerTemplate {
	return &GreedySchedulerTemplate{
		preemptive: preemptive,
	}
}

func (s *GreedySchedulerTemplate) Schedule(processes []*types.Process, _ *types.Params) {
	if s.impl == nil {
		panic("GreedySchedulerTemplate impl == nil")
	}
	if s.preemptive {
		s.doSchedulePreemptive(processes)
	} else {
		s.doScheduleNonPreemptive(processes)
	}
}

func (s *GreedySchedulerTemplate) doScheduleNonPreemptive(processes []*types.Process) {
	now := types.Time(0.)
	waiting := append(make([]*types.Process, 0, len(processes)), processes...)
	for len(waiting) > 0 {
		ready := readyProcesses(waiting, now)
		if len(ready) == 0 {
			now = nextArrival(waiting, now)
			continue
		}
		target := s.impl.pickTarget(ready)
		if target == nil {
			panic("GreedySchedulerTemplate targetProcess == nil")
		}
		waiting = removeProcess(waiting, target)
		target.Execute(now, target.Remaining)
		now = *target.Completion
	}
}

func (s *GreedySchedulerTemplate) doSchedulePreemptive(processes []*types.Process) {
	now := types.Time(0.)
	unfinished := append(make([]*types.Process, 0, len(processes)), processes...)
	for len(unfinished) > 0 {
		ready := readyProcesses(unfinished, now)
		if len(ready) == 0 {
			now += types.Time(unitStep)
			continue
		}
		target := s.impl.pickTarget(ready)
		if target == nil {
			panic("GreedySchedulerTemplate targetProcess == nil")
		}
		step := types.Duration(math.Min(float64(unitStep), float64(target.Remaining)))
		if target.Execute(now, step) {
			unfinished = removeProcess(unfinished, target)
		}
		now += types.Time(step)
	}
}

func (s *GreedySchedulerTemplate) pickTarget(ready []*types.Process) *types.Process {
	panic("GreedySchedulerTemplate pickTarget cannot be called.")
}

func (s *GreedySchedulerTemplate) Preemptive() bool {
	return s.preemptive
}

func (s *GreedySchedulerTemplate) Name() string {
	return fmt.Sprintf("GreedySchedulerTemplate[preemptive=%v]", s.preemptive)
}

func (s *GreedySchedulerTemplate) Info() interface{} {
	return s.Name()
}

// pickBy 返回 ready 中按 less 最小的进程，相等时保留靠前的那个。
func pickBy(ready []*types.Process, less func(a, b *types.Process) bool) *types.Process {
	var target *types.Process = nil
	for _, p := range ready {
		if target == nil || less(p, target) {
			target = p
		}
	}
	return target
}
