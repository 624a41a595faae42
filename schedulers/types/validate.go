package types

import (
	"OSSim-go/errs"
	"strconv"
)

// ValidateProcesses rejects records that cannot be simulated. The returned error wraps
// errs.ErrInvalidInput and names the offending record index.
func ValidateProcesses(processes []*Process) error {
	if len(processes) == 0 {
		return errs.Invalid(-1, "processes", 0, "at least one process is required")
	}
	seen := make(map[PID]int, len(processes))
	for idx, p := range processes {
		if p == nil {
			return errs.Invalid(idx, "process", nil, "record is nil")
		}
		if p.PID <= 0 {
			return errs.Invalid(idx, "pid", p.PID, "must be a positive integer")
		}
		if prev, ok := seen[p.PID]; ok {
			return errs.Invalid(idx, "pid", p.PID, "duplicates record "+strconv.Itoa(prev))
		}
		seen[p.PID] = idx
		if !IsFinite(float64(p.Arrival)) {
			return errs.Invalid(idx, "arrival", p.Arrival, "must be finite")
		}
		if p.Arrival < 0 {
			return errs.Invalid(idx, "arrival", p.Arrival, "cannot be negative")
		}
		if !IsFinite(float64(p.Burst)) {
			return errs.Invalid(idx, "burst", p.Burst, "must be finite")
		}
		if p.Burst <= 0 {
			return errs.Invalid(idx, "burst", p.Burst, "must be greater than 0")
		}
		if p.Priority < 0 {
			return errs.Invalid(idx, "priority", p.Priority, "cannot be negative, lower number = higher priority")
		}
	}
	return nil
}

// ValidateParams checks the per-algorithm arguments.
func ValidateParams(algorithm Algorithm, params *Params) error {
	if !algorithm.IsValid() {
		return errs.Invalid(-1, "algorithm", int(algorithm), "unknown algorithm")
	}
	if !algorithm.RequiresQuantum() {
		return nil
	}
	if params == nil || params.Quantum == 0 {
		return errs.Invalid(-1, "quantum", 0, "required for "+algorithm.String())
	}
	if !IsFinite(float64(params.Quantum)) || params.Quantum < 0 {
		return errs.Invalid(-1, "quantum", params.Quantum, "must be a finite value greater than 0")
	}
	return nil
}
