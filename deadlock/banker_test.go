package deadlock

import (
	"errors"
	"testing"

	"OSSim-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbookState() *State {
	return NewState(
		[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
		[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}, {4, 3, 3}},
		[]int{3, 3, 2},
	)
}

func TestCheckSafety_Safe(t *testing.T) {
	s := textbookState()
	res, err := CheckSafety(s.Allocation, s.Max, s.Available)
	require.NoError(t, err)
	assert.True(t, res.Safe)
	assert.Equal(t, []int{1, 3, 4, 0, 2}, res.Sequence)
	assert.Equal(t, "Safe state! Safe sequence: P1 → P3 → P4 → P0 → P2", res.String())
	assert.Equal(t, []int{3, 3, 2}, s.Available, "available is not modified")
}

func TestCheckSafety_SequenceIsValid(t *testing.T) {
	s := textbookState()
	res, err := s.CheckSafety()
	require.NoError(t, err)
	need := s.Need()
	work := append([]int{}, s.Available...)
	for _, p := range res.Sequence {
		for r := range work {
			require.LessOrEqual(t, need[p][r], work[r], "P%d R%d", p, r)
		}
		for r := range work {
			work[r] += s.Allocation[p][r]
		}
	}
}

func TestCheckSafety_Unsafe(t *testing.T) {
	s := textbookState()
	s.Available = []int{0, 0, 0}
	res, err := s.CheckSafety()
	require.NoError(t, err)
	assert.False(t, res.Safe)
	assert.Empty(t, res.Sequence)
	assert.Equal(t, "Unsafe state / Deadlock possible!", res.String())
	// one pass over every process, nobody admitted
	assert.Len(t, res.Steps, 5)
	for _, step := range res.Steps {
		assert.False(t, step.Admitted)
	}
}

func TestCheckSafety_UnsafeAfterPartialProgress(t *testing.T) {
	s := NewState(
		[][]int{{1, 0}, {0, 1}, {1, 1}},
		[][]int{{1, 1}, {3, 3}, {3, 3}},
		[]int{0, 1},
	)
	res, err := s.CheckSafety()
	require.NoError(t, err)
	assert.False(t, res.Safe)
	assert.Empty(t, res.Sequence)
	admitted := 0
	for _, step := range res.Steps {
		if step.Admitted {
			admitted++
		}
	}
	assert.Equal(t, 1, admitted)
}

func TestCheckSafety_ContinuesPassAfterAdmission(t *testing.T) {
	res, err := textbookState().CheckSafety()
	require.NoError(t, err)
	var firstPass []int
	for _, step := range res.Steps {
		if step.Pass == 1 && step.Admitted {
			firstPass = append(firstPass, step.Process)
		}
	}
	assert.Equal(t, []int{1, 3, 4}, firstPass)
}

func TestCheckSafety_Deterministic(t *testing.T) {
	first, err := textbookState().CheckSafety()
	require.NoError(t, err)
	second, err := textbookState().CheckSafety()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckSafety_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		state *State
		kind  error
	}{
		{"no processes", NewState(nil, nil, []int{1}), errs.ErrInvalidInput},
		{"no resources", NewState([][]int{{}}, [][]int{{}}, nil), errs.ErrInvalidInput},
		{"max rows", NewState([][]int{{1}, {1}}, [][]int{{1}}, []int{1}), errs.ErrInvalidInput},
		{"allocation columns", NewState([][]int{{1, 2}}, [][]int{{1}}, []int{1}), errs.ErrInvalidInput},
		{"max columns", NewState([][]int{{1}}, [][]int{{1, 2}}, []int{1}), errs.ErrInvalidInput},
		{"negative available", NewState([][]int{{1}}, [][]int{{1}}, []int{-1}), errs.ErrInvalidInput},
		{"negative allocation", NewState([][]int{{-1}}, [][]int{{1}}, []int{1}), errs.ErrInvalidInput},
		{"max below allocation", NewState([][]int{{0, 3}, {1, 1}}, [][]int{{1, 3}, {1, 0}}, []int{1, 1}), errs.ErrInconsistentState},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := c.state.CheckSafety()
			assert.Nil(t, res)
			assert.ErrorIs(t, err, c.kind)
		})
	}
}

func TestValidate_InconsistentPointsAtCell(t *testing.T) {
	s := NewState([][]int{{0, 3}, {1, 1}}, [][]int{{1, 3}, {1, 0}}, []int{1, 1})
	err := s.Validate()
	var inputErr *errs.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, 1, inputErr.Index)
	assert.Equal(t, "need[1]", inputErr.Field)
	assert.Equal(t, -1, inputErr.Value)
	assert.False(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestNeedAndDisplayNeed(t *testing.T) {
	s := NewState([][]int{{2, 1}}, [][]int{{1, 4}}, []int{0, 0})
	assert.Equal(t, [][]int{{-1, 3}}, s.Need())
	assert.Equal(t, [][]int{{0, 3}}, s.DisplayNeed())
}

func TestResourceAllocationGraph(t *testing.T) {
	s := NewState([][]int{{1, 0}, {0, 2}}, [][]int{{1, 1}, {3, 2}}, []int{0, 0})
	edges, err := s.ResourceAllocationGraph()
	require.NoError(t, err)
	assert.Equal(t, []*Edge{
		{Kind: AllocationEdge, From: "R0", To: "P0", Weight: 1},
		{Kind: AllocationEdge, From: "R1", To: "P1", Weight: 2},
		{Kind: RequestEdge, From: "P0", To: "R1", Weight: 1},
		{Kind: RequestEdge, From: "P1", To: "R0", Weight: 3},
	}, edges)
	assert.Equal(t, "R1 -> P1 (2)", edges[1].String())
	assert.Equal(t, "request", edges[2].Kind.String())

	_, err = NewState([][]int{{2}}, [][]int{{1}}, []int{0}).ResourceAllocationGraph()
	assert.ErrorIs(t, err, errs.ErrInconsistentState)
}
