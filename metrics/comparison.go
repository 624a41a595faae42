package metrics

// ComparisonEntry 一个算法在同一组进程上的平均指标。
type ComparisonEntry struct {
	Algorithm         string  `json:"algorithm"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageWaiting    float64 `json:"average_waiting"`
	Makespan          float64 `json:"makespan"`
}

type Comparison struct {
	Entries []*ComparisonEntry `json:"entries"`
	// Best 平均周转时间最小的算法，并列时取先运行的。
	Best string `json:"best"`
}

func NewComparison(reports []*Report) *Comparison {
	c := &Comparison{Entries: make([]*ComparisonEntry, 0, len(reports))}
	var best *ComparisonEntry
	for _, r := range reports {
		entry := &ComparisonEntry{
			Algorithm:         r.Algorithm,
			AverageTurnaround: r.Execution.AverageTurnaround,
			AverageWaiting:    r.Execution.AverageWaiting,
			Makespan:          r.Execution.Makespan,
		}
		c.Entries = append(c.Entries, entry)
		if best == nil || entry.AverageTurnaround < best.AverageTurnaround {
			best = entry
		}
	}
	if best != nil {
		c.Best = best.Algorithm
	}
	return c
}

func (c *Comparison) Entry(algorithm string) *ComparisonEntry {
	for _, e := range c.Entries {
		if e.Algorithm == algorithm {
			return e
		}
	}
	return nil
}
