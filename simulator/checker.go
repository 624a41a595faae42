package simulator

import (
	"OSSim-go/schedulers/types"
	"fmt"
	"math"
	"strings"
)

const answerTolerance = 1e-6

// Answer 用户手工计算的一个进程的结果。
type Answer struct {
	PID        types.PID      `yaml:"pid" json:"pid"`
	Start      types.Time     `yaml:"start" json:"start"`
	Completion types.Time     `yaml:"completion" json:"completion"`
	Turnaround types.Duration `yaml:"turnaround" json:"turnaround"`
	Waiting    types.Duration `yaml:"waiting" json:"waiting"`
}

type AnswerVerdict struct {
	PID          types.PID `json:"pid"`
	Found        bool      `json:"found"`
	StartOK      bool      `json:"start_ok"`
	CompletionOK bool      `json:"completion_ok"`
	TurnaroundOK bool      `json:"turnaround_ok"`
	WaitingOK    bool      `json:"waiting_ok"`
}

func (v *AnswerVerdict) Correct() bool {
	return v.Found && v.StartOK && v.CompletionOK && v.TurnaroundOK && v.WaitingOK
}

type AnswerCheck struct {
	Verdicts   []*AnswerVerdict `json:"verdicts"`
	AllCorrect bool             `json:"all_correct"`
}

func (c *AnswerCheck) String() string {
	if c.AllCorrect {
		return "All calculations are correct!"
	}
	b := &strings.Builder{}
	for _, v := range c.Verdicts {
		verdict := "Incorrect"
		if v.Correct() {
			verdict = "Correct"
		}
		_, _ = fmt.Fprintf(b, "PID %d: %s\n", v.PID, verdict)
	}
	return b.String()
}

// CheckAnswers 将手工计算的 ST/CT/TAT/WT 与模拟结果逐个比较。
// 每个模拟的进程都必须有答案，缺失的答案判为错误。
func CheckAnswers(record *types.Record, answers []*Answer) *AnswerCheck {
	byPID := make(map[types.PID]*Answer, len(answers))
	for _, a := range answers {
		byPID[a.PID] = a
	}
	check := &AnswerCheck{Verdicts: make([]*AnswerVerdict, 0, len(record.Processes)), AllCorrect: true}
	for _, p := range record.Processes {
		v := &AnswerVerdict{PID: p.PID}
		if a, ok := byPID[p.PID]; ok {
			v.Found = true
			v.StartOK = p.Start != nil && closeEnough(float64(a.Start), float64(*p.Start))
			v.CompletionOK = p.Completion != nil && closeEnough(float64(a.Completion), float64(*p.Completion))
			v.TurnaroundOK = p.Turnaround != nil && closeEnough(float64(a.Turnaround), float64(*p.Turnaround))
			v.WaitingOK = p.Waiting != nil && closeEnough(float64(a.Waiting), float64(*p.Waiting))
		}
		if !v.Correct() {
			check.AllCorrect = false
		}
		check.Verdicts = append(check.Verdicts, v)
	}
	return check
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < answerTolerance
}
