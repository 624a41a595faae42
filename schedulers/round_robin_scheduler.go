package schedulers

import (
	"OSSim-go/schedulers/types"
	"OSSim-go/util"
	"math"
)

// RoundRobinScheduler 时间片轮转。
// 就绪队列为FIFO，队首进程运行 min(Remaining, Quantum)。
// 运行结束的时刻，先把这段时间内新到达的进程入队，再把刚运行完且未结束的进程放回队尾。
// 队列为空但仍有未到达的进程时，时钟前进一个时间单位。
type RoundRobinScheduler struct{}

func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

func (s *RoundRobinScheduler) Schedule(processes []*types.Process, params *types.Params) {
	if params == nil || params.Quantum <= 0 {
		panic("RoundRobinScheduler params.Quantum <= 0")
	}
	quantum := params.Quantum
	now := types.Time(0.)
	queue := util.NewQueue[*types.Process]()
	admit := func(running *types.Process) {
		for _, p := range processes {
			if p != running && p.HasArrived(now) && !p.IsFinished() && !queue.Contains(p) {
				queue.Push(p)
			}
		}
	}
	finishedCount := 0
	for finishedCount < len(processes) {
		admit(nil)
		if queue.Empty() {
			now += types.Time(unitStep)
			continue
		}
		p := queue.Pop()
		exec := types.Duration(math.Min(float64(p.Remaining), float64(quantum)))
		finished := p.Execute(now, exec)
		now += types.Time(exec)
		admit(p)
		if finished {
			finishedCount++
		} else {
			queue.Push(p)
		}
	}
}

func (s *RoundRobinScheduler) Algorithm() types.Algorithm {
	return types.RoundRobin
}

func (s *RoundRobinScheduler) Name() string {
	return "RoundRobinScheduler"
}

func (s *RoundRobinScheduler) Info() interface{} {
	return s.Name()
}
