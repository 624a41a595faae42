package deadlock

import (
	"OSSim-go/util"
	"strings"
)

const (
	safeVerdict   = "Safe state! Safe sequence: "
	unsafeVerdict = "Unsafe state / Deadlock possible!"
)

// Step 记录一次对某个进程的检查：检查时的 Work，以及是否被接纳。
type Step struct {
	Pass     int   `json:"pass"`
	Process  int   `json:"process"`
	Need     []int `json:"need"`
	Work     []int `json:"work"`
	Admitted bool  `json:"admitted"`
}

// Result 安全性检查的结果。Safe 为 false 时 Sequence 为空。
type Result struct {
	Safe     bool    `json:"safe"`
	Sequence []int   `json:"sequence"`
	Steps    []*Step `json:"steps"`
}

// Labels returns the sequence as P<i> names.
func (r *Result) Labels() []string {
	labels := make([]string, 0, len(r.Sequence))
	for _, p := range r.Sequence {
		labels = append(labels, ProcessLabel(p))
	}
	return labels
}

func (r *Result) String() string {
	if !r.Safe {
		return unsafeVerdict
	}
	return safeVerdict + strings.Join(r.Labels(), " → ")
}

// CheckSafety runs the Banker's safe sequence search over the given matrices.
func CheckSafety(allocation [][]int, max [][]int, available []int) (*Result, error) {
	return NewState(allocation, max, available).CheckSafety()
}

// CheckSafety 银行家算法。
// 每一轮按进程下标顺序扫描所有未完成进程，Need <= Work 即接纳：释放其 Allocation 到 Work，
// 并在本轮中继续向后扫描。一轮中没有任何接纳且仍有未完成进程时，判定为不安全。
// 输入矩阵不会被修改。
func (s *State) CheckSafety() (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n := s.ProcessCount()
	need := s.Need()
	work := util.CopyIntSlice(s.Available)
	finish := make([]bool, n)
	result := &Result{Sequence: make([]int, 0, n), Steps: make([]*Step, 0)}

	changed := true
	for pass := 1; len(result.Sequence) < n && changed; pass++ {
		changed = false
		for p := 0; p < n; p++ {
			if finish[p] {
				continue
			}
			admitted := fits(need[p], work)
			result.Steps = append(result.Steps, &Step{
				Pass:     pass,
				Process:  p,
				Need:     util.CopyIntSlice(need[p]),
				Work:     util.CopyIntSlice(work),
				Admitted: admitted,
			})
			if !admitted {
				continue
			}
			for r := range work {
				work[r] += s.Allocation[p][r]
			}
			finish[p] = true
			result.Sequence = append(result.Sequence, p)
			changed = true
		}
	}

	result.Safe = len(result.Sequence) == n
	if !result.Safe {
		result.Sequence = []int{}
	}
	return result, nil
}

func fits(need []int, work []int) bool {
	for r, v := range need {
		if v > work[r] {
			return false
		}
	}
	return true
}
