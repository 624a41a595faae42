package types

import (
	"math"
	"sort"
	"time"
)

type SchedulerRecord struct {
	DoScheduleRecords []*DoScheduleCallRecord
	// Extra 每个调度器独特的信息
	Extra interface{}
}

type DoScheduleCallRecord struct {
	Duration time.Duration
}

// Record is the frozen outcome of one simulation run.
type Record struct {
	RunID           string
	SchedulerName   string
	SchedulerInfo   interface{}
	Algorithm       Algorithm
	Params          Params
	Processes       []*Process
	SchedulerRecord *SchedulerRecord
}

// Makespan is the latest completion time over all processes.
func (r *Record) Makespan() Time {
	makespan := Time(0.)
	for _, p := range r.Processes {
		if p.Completion != nil {
			makespan = Time(math.Max(float64(makespan), float64(*p.Completion)))
		}
	}
	return makespan
}

// Timeline flattens every executed slice ordered by start time.
func (r *Record) Timeline() []*ExecutionRange {
	res := make([]*ExecutionRange, 0, len(r.Processes))
	for _, p := range r.Processes {
		for _, s := range p.ExecutedSlices {
			res = append(res, &ExecutionRange{PID: p.PID, TimeRange: *s})
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].TimeRange.Start < res[j].TimeRange.Start
	})
	return res
}

func (r *Record) Process(pid PID) *Process {
	for _, p := range r.Processes {
		if p.PID == pid {
			return p
		}
	}
	return nil
}

// Snapshot returns a deep copy that readers may hold without aliasing the record.
func (r *Record) Snapshot() *Record {
	c := *r
	c.Processes = make([]*Process, 0, len(r.Processes))
	for _, p := range r.Processes {
		c.Processes = append(c.Processes, p.Clone())
	}
	return &c
}
