package util

import "time"

func AvgDuration(vs ...time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	return time.Duration(SumFloat64(func(item time.Duration) float64 {
		return float64(item)
	}, vs...) / float64(len(vs)))
}

func MaxDuration(vs ...time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	return time.Duration(MaxFloat64(func(item time.Duration) float64 {
		return float64(item)
	}, vs...))
}
