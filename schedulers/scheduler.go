package schedulers

import (
	"OSSim-go/errs"
	"OSSim-go/schedulers/types"
)

// New returns the scheduler implementing algorithm.
func New(algorithm types.Algorithm) (types.Scheduler, error) {
	switch algorithm {
	case types.FCFS:
		return NewFCFSScheduler(), nil
	case types.SJFNonPreemptive:
		return NewSJFScheduler(false), nil
	case types.SJFPreemptive:
		return NewSJFScheduler(true), nil
	case types.PriorityNonPreemptive:
		return NewPriorityScheduler(false), nil
	case types.PriorityPreemptive:
		return NewPriorityScheduler(true), nil
	case types.RoundRobin:
		return NewRoundRobinScheduler(), nil
	}
	return nil, errs.Invalid(-1, "algorithm", int(algorithm), "unknown algorithm")
}

// Run validates the input, simulates algorithm over fresh copies of processes and
// returns the annotated copies in input order. processes is never modified, so
// repeated calls on the same input give identical results.
func Run(algorithm types.Algorithm, processes []*types.Process, params *types.Params) ([]*types.Process, error) {
	scheduler, err := New(algorithm)
	if err != nil {
		return nil, err
	}
	return RunWith(scheduler, processes, params)
}

// RunWith is Run for an already constructed scheduler.
func RunWith(scheduler types.Scheduler, processes []*types.Process, params *types.Params) ([]*types.Process, error) {
	if params == nil {
		params = &types.Params{}
	}
	if err := types.ValidateParams(scheduler.Algorithm(), params); err != nil {
		return nil, err
	}
	if err := types.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	working := types.CloneProcesses(processes)
	scheduler.Schedule(working, params)
	for _, p := range working {
		if !p.IsFinished() || p.Completion == nil {
			panic("RunWith process left unfinished by " + scheduler.Name())
		}
	}
	return working, nil
}
