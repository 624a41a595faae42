package schedulers

import (
	"OSSim-go/schedulers/types"
	"math"
)

// readyProcesses keeps the processes that have arrived by now and still need the CPU,
// preserving their order.
func readyProcesses(processes []*types.Process, now types.Time) []*types.Process {
	ready := make([]*types.Process, 0, len(processes))
	for _, p := range processes {
		if p.HasArrived(now) && !p.IsFinished() {
			ready = append(ready, p)
		}
	}
	return ready
}

// nextArrival returns the earliest arrival strictly after now.
func nextArrival(processes []*types.Process, now types.Time) types.Time {
	next := math.Inf(1)
	for _, p := range processes {
		if p.Arrival > now {
			next = math.Min(next, float64(p.Arrival))
		}
	}
	if math.IsInf(next, 1) {
		panic("nextArrival no process arrives after now")
	}
	return types.Time(next)
}

func removeProcess(processes []*types.Process, target *types.Process) []*types.Process {
	for idx, p := range processes {
		if p == target {
			return append(processes[:idx], processes[idx+1:]...)
		}
	}
	panic("removeProcess target not found")
}
