package util

import (
	"fmt"
	"math"
	"strings"
)

func StringSliceIndexOf(slice []string, target string) int {
	for i, s := range slice {
		if s == target {
			return i
		}
	}
	return -1
}

func StringSliceJoinWith(slice []string, s string) string {
	return fmt.Sprintf("[%s]", strings.Join(slice, s))
}

func SumFloat64[T any](f func(item T) float64, vs ...T) float64 {
	s := 0.
	for _, v := range vs {
		s += f(v)
	}
	return s
}

// AvgFloat64 returns 0 for an empty input.
func AvgFloat64[T any](f func(item T) float64, vs ...T) float64 {
	if len(vs) == 0 {
		return 0
	}
	return SumFloat64(f, vs...) / float64(len(vs))
}

func MaxFloat64[T any](f func(item T) float64, vs ...T) float64 {
	max := math.Inf(-1)
	for _, v := range vs {
		max = math.Max(max, f(v))
	}
	return max
}

// CopyIntSlice returns an independent copy of o.
func CopyIntSlice(o []int) []int {
	r := make([]int, len(o))
	copy(r, o)
	return r
}
