package deadlock

import (
	"OSSim-go/errs"
	"fmt"
)

// State 一组 Allocation/Max/Available 矩阵，行对应进程，列对应资源类型。
type State struct {
	Allocation [][]int `json:"allocation" yaml:"allocation"`
	Max        [][]int `json:"max" yaml:"max"`
	Available  []int   `json:"available" yaml:"available"`
}

func NewState(allocation [][]int, max [][]int, available []int) *State {
	return &State{Allocation: allocation, Max: max, Available: available}
}

func (s *State) ProcessCount() int {
	return len(s.Allocation)
}

func (s *State) ResourceCount() int {
	return len(s.Available)
}

// Validate checks dimensions and signs. Mismatched or negative cells wrap
// errs.ErrInvalidInput, Max < Allocation wraps errs.ErrInconsistentState.
func (s *State) Validate() error {
	n, m := len(s.Allocation), len(s.Available)
	if n == 0 {
		return errs.Invalid(-1, "allocation", 0, "at least one process row is required")
	}
	if m == 0 {
		return errs.Invalid(-1, "available", 0, "at least one resource is required")
	}
	if len(s.Max) != n {
		return errs.Invalid(-1, "max", len(s.Max), fmt.Sprintf("has %d rows, allocation has %d", len(s.Max), n))
	}
	for r, v := range s.Available {
		if v < 0 {
			return errs.Invalid(-1, fmt.Sprintf("available[%d]", r), v, "cannot be negative")
		}
	}
	for p := 0; p < n; p++ {
		if len(s.Allocation[p]) != m {
			return errs.Invalid(p, "allocation", len(s.Allocation[p]), fmt.Sprintf("row has %d columns, expected %d", len(s.Allocation[p]), m))
		}
		if len(s.Max[p]) != m {
			return errs.Invalid(p, "max", len(s.Max[p]), fmt.Sprintf("row has %d columns, expected %d", len(s.Max[p]), m))
		}
		for r := 0; r < m; r++ {
			if s.Allocation[p][r] < 0 {
				return errs.Invalid(p, fmt.Sprintf("allocation[%d]", r), s.Allocation[p][r], "cannot be negative")
			}
			if s.Max[p][r] < 0 {
				return errs.Invalid(p, fmt.Sprintf("max[%d]", r), s.Max[p][r], "cannot be negative")
			}
		}
	}
	for p := 0; p < n; p++ {
		for r := 0; r < m; r++ {
			if need := s.Max[p][r] - s.Allocation[p][r]; need < 0 {
				return errs.Inconsistent(p, fmt.Sprintf("need[%d]", r), need, "max is lower than allocation")
			}
		}
	}
	return nil
}

// Need 返回 Max - Allocation，保留负数。调用前应先通过 Validate。
func (s *State) Need() [][]int {
	need := make([][]int, len(s.Allocation))
	for p := range s.Allocation {
		need[p] = make([]int, len(s.Allocation[p]))
		for r := range s.Allocation[p] {
			need[p][r] = s.Max[p][r] - s.Allocation[p][r]
		}
	}
	return need
}

// DisplayNeed is Need with negative cells shown as 0. Only for tables, never for the check.
func (s *State) DisplayNeed() [][]int {
	need := s.Need()
	for _, row := range need {
		for r, v := range row {
			if v < 0 {
				row[r] = 0
			}
		}
	}
	return need
}

func ProcessLabel(p int) string {
	return fmt.Sprintf("P%d", p)
}

func ResourceLabel(r int) string {
	return fmt.Sprintf("R%d", r)
}
