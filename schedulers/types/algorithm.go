package types

import (
	"OSSim-go/errs"
	"fmt"
	"strings"
)

// Algorithm selects one of the supported scheduling disciplines.
type Algorithm int

const (
	FCFS = Algorithm(iota)
	SJFNonPreemptive
	SJFPreemptive
	PriorityNonPreemptive
	PriorityPreemptive
	RoundRobin
)

var algorithmNames = map[Algorithm]string{
	FCFS:                  "FCFS",
	SJFNonPreemptive:      "SJF Non-Preemptive",
	SJFPreemptive:         "SJF Preemptive",
	PriorityNonPreemptive: "Priority Non-Preemptive",
	PriorityPreemptive:    "Priority Preemptive",
	RoundRobin:            "Round Robin",
}

// aliases are matched after lower-casing and stripping spaces, '-' and '_'.
var algorithmAliases = map[string]Algorithm{
	"fcfs":                  FCFS,
	"fifo":                  FCFS,
	"sjf":                   SJFNonPreemptive,
	"sjfnonpreemptive":      SJFNonPreemptive,
	"sjfpreemptive":         SJFPreemptive,
	"srtf":                  SJFPreemptive,
	"srt":                   SJFPreemptive,
	"priority":              PriorityNonPreemptive,
	"prioritynonpreemptive": PriorityNonPreemptive,
	"prioritypreemptive":    PriorityPreemptive,
	"roundrobin":            RoundRobin,
	"rr":                    RoundRobin,
}

// Algorithms lists every discipline in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJFNonPreemptive, SJFPreemptive, PriorityNonPreemptive, PriorityPreemptive, RoundRobin}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return -1, errs.Invalid(-1, "algorithm", s, "unknown algorithm")
}

func (a Algorithm) IsValid() bool {
	_, ok := algorithmNames[a]
	return ok
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("unknown algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Algorithm) Preemptive() bool {
	switch a {
	case SJFPreemptive, PriorityPreemptive, RoundRobin:
		return true
	}
	return false
}

func (a Algorithm) UsesPriority() bool {
	return a == PriorityNonPreemptive || a == PriorityPreemptive
}

func (a Algorithm) RequiresQuantum() bool {
	return a == RoundRobin
}

// Description returns a long human readable name.
func (a Algorithm) Description() string {
	switch a {
	case FCFS:
		return "First Come First Serve (FCFS)"
	case SJFNonPreemptive:
		return "Shortest Job First (Non-Preemptive)"
	case SJFPreemptive:
		return "Shortest Job First (Preemptive)"
	case PriorityNonPreemptive:
		return "Priority Scheduling (Non-Preemptive)"
	case PriorityPreemptive:
		return "Priority Scheduling (Preemptive)"
	case RoundRobin:
		return "Round Robin (RR)"
	}
	return a.String()
}

// Complexity returns the typical time complexity of the discipline.
func (a Algorithm) Complexity() string {
	switch a {
	case FCFS:
		return "O(n log n) due to sorting arrival"
	case SJFNonPreemptive, SJFPreemptive, PriorityNonPreemptive, PriorityPreemptive:
		return "O(n²)"
	case RoundRobin:
		return "O(n × q) where q = number of quanta"
	}
	return "-"
}
