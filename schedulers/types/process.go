package types

// PID identifies a process inside one run.
type PID int

// DefaultPriority is substituted only at the loading boundary when a record omits priority.
const DefaultPriority = 1

// Process is a schedulable record. The first four fields are declared by the caller,
// the rest are simulation output and are cleared by Reset before every run.
type Process struct {
	PID      PID      `json:"pid" yaml:"pid"`
	Arrival  Time     `json:"arrival" yaml:"arrival"`
	Burst    Duration `json:"burst" yaml:"burst"`
	Priority int      `json:"priority" yaml:"priority"`

	Remaining      Duration     `json:"remaining" yaml:"-"`
	Start          *Time        `json:"start" yaml:"-"`
	Completion     *Time        `json:"completion" yaml:"-"`
	Turnaround     *Duration    `json:"turnaround" yaml:"-"`
	Waiting        *Duration    `json:"waiting" yaml:"-"`
	ExecutedSlices []*TimeRange `json:"executed_slices" yaml:"-"`
}

func NewProcess(pid PID, arrival Time, burst Duration, priority int) *Process {
	p := &Process{PID: pid, Arrival: arrival, Burst: burst, Priority: priority}
	p.Reset()
	return p
}

// Reset restores pristine scheduling state so the same record can be simulated again.
func (p *Process) Reset() {
	p.Remaining = p.Burst
	p.Start = nil
	p.Completion = nil
	p.Turnaround = nil
	p.Waiting = nil
	p.ExecutedSlices = make([]*TimeRange, 0)
}

// Clone returns a deep copy, output fields included.
func (p *Process) Clone() *Process {
	c := *p
	if p.Start != nil {
		v := *p.Start
		c.Start = &v
	}
	if p.Completion != nil {
		v := *p.Completion
		c.Completion = &v
	}
	if p.Turnaround != nil {
		v := *p.Turnaround
		c.Turnaround = &v
	}
	if p.Waiting != nil {
		v := *p.Waiting
		c.Waiting = &v
	}
	c.ExecutedSlices = make([]*TimeRange, 0, len(p.ExecutedSlices))
	for _, r := range p.ExecutedSlices {
		c.ExecutedSlices = append(c.ExecutedSlices, NewTimeRange(r.Start, r.End))
	}
	return &c
}

// CloneProcesses copies and resets every record, leaving the input untouched.
func CloneProcesses(processes []*Process) []*Process {
	res := make([]*Process, 0, len(processes))
	for _, p := range processes {
		c := p.Clone()
		c.Reset()
		res = append(res, c)
	}
	return res
}

func (p *Process) IsFinished() bool {
	return p.Remaining <= 0
}

func (p *Process) HasArrived(now Time) bool {
	return p.Arrival <= now
}

// Execute occupies the CPU for duration starting at from. It records the first dispatch,
// merges the slice with the previous one when they touch, and fills the derived metrics
// once the remaining time is consumed. It returns whether the process finished.
func (p *Process) Execute(from Time, duration Duration) bool {
	if duration <= 0 {
		panic("Process Execute duration <= 0")
	}
	if p.IsFinished() {
		panic("Process Execute on a finished process")
	}
	if p.Start == nil {
		start := from
		p.Start = &start
	}
	to := from + Time(duration)
	p.addExecutionRange(NewTimeRange(from, to))

	p.Remaining -= duration
	if p.Remaining < timeEpsilon {
		p.Remaining = 0
		p.finish(to)
		return true
	}
	return false
}

func (p *Process) addExecutionRange(timeRange *TimeRange) {
	// In case that the last execution range is closely jointed with new execution range. Combine them.
	if n := len(p.ExecutedSlices); n > 0 {
		last := p.ExecutedSlices[n-1]
		if sameInstant(last.End, timeRange.Start) {
			last.End = timeRange.End
			return
		}
	}
	p.ExecutedSlices = append(p.ExecutedSlices, timeRange)
}

func (p *Process) finish(at Time) {
	completion := at
	turnaround := Duration(completion - p.Arrival)
	waiting := turnaround - p.Burst
	p.Completion = &completion
	p.Turnaround = &turnaround
	p.Waiting = &waiting
}

// SumRuntime is the total CPU time recorded in ExecutedSlices.
func (p *Process) SumRuntime() Duration {
	sum := Duration(0.)
	for _, r := range p.ExecutedSlices {
		sum += r.Runtime()
	}
	return sum
}

// ResponseTime is the delay between arrival and first dispatch, or -1 before dispatch.
func (p *Process) ResponseTime() Duration {
	if p.Start == nil {
		return -1
	}
	return Duration(*p.Start - p.Arrival)
}
