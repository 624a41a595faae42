package deadlock

import "fmt"

type EdgeKind int

const (
	// AllocationEdge 资源指向持有它的进程。
	AllocationEdge EdgeKind = iota
	// RequestEdge 进程指向它仍可能请求的资源。
	RequestEdge
)

func (k EdgeKind) String() string {
	switch k {
	case AllocationEdge:
		return "allocation"
	case RequestEdge:
		return "request"
	}
	return fmt.Sprintf("EdgeKind(%d)", int(k))
}

type Edge struct {
	Kind   EdgeKind `json:"kind"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Weight int      `json:"weight"`
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s -> %s (%d)", e.From, e.To, e.Weight)
}

// ResourceAllocationGraph lists allocation edges R→P for Allocation > 0, followed by
// request edges P→R for Need > 0, both in process then resource order.
func (s *State) ResourceAllocationGraph() ([]*Edge, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	need := s.Need()
	edges := make([]*Edge, 0)
	for p, row := range s.Allocation {
		for r, v := range row {
			if v > 0 {
				edges = append(edges, &Edge{Kind: AllocationEdge, From: ResourceLabel(r), To: ProcessLabel(p), Weight: v})
			}
		}
	}
	for p, row := range need {
		for r, v := range row {
			if v > 0 {
				edges = append(edges, &Edge{Kind: RequestEdge, From: ProcessLabel(p), To: ResourceLabel(r), Weight: v})
			}
		}
	}
	return edges, nil
}
