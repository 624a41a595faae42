package types

import (
	"fmt"
	"math"
	"strconv"
)

type Time float64
type Duration float64

// timeEpsilon 两个时间点相差小于该值时视为同一时刻，用于合并相邻的执行区间。
const timeEpsilon = 1e-6

func (t Time) String() string {
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

func (d Duration) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sameInstant(a, b Time) bool {
	return math.Abs(float64(a-b)) < timeEpsilon
}

// TimeRange is a half-open interval [Start, End) during which a process held the CPU.
type TimeRange struct {
	Start Time `json:"start" yaml:"start"`
	End   Time `json:"end" yaml:"end"`
}

func NewTimeRange(start Time, end Time) *TimeRange {
	return &TimeRange{Start: start, End: end}
}

func (t *TimeRange) Runtime() Duration {
	return Duration(t.End - t.Start)
}

// Overlaps reports whether two half-open ranges share any instant.
func (t *TimeRange) Overlaps(o *TimeRange) bool {
	return t.Start < o.End-timeEpsilon && o.Start < t.End-timeEpsilon
}

func (t *TimeRange) String() string {
	return fmt.Sprintf("%v-%v", t.Start, t.End)
}

// ExecutionRange is a TimeRange tagged with the process that occupied the CPU.
type ExecutionRange struct {
	PID       PID       `json:"pid"`
	TimeRange TimeRange `json:"time_range"`
}
