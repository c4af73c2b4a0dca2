package game

import "testing"

func TestFloodVisitsEachCellOnce(t *testing.T) {
	// 0 - 1 - 2 - 3, with 2 also linking back to 0
	graph := map[int][]int{
		0: {1, 2},
		1: {0, 2},
		2: {0, 1, 3},
		3: {2},
	}

	visits := make(map[int]int)
	flood(
		[]int{0, 1},
		func(idx int) bool {
			visits[idx]++
			return idx != 2
		},
		func(idx int) []int {
			return graph[idx]
		},
	)

	for idx := 0; idx < 3; idx++ {
		if visits[idx] != 1 {
			t.Errorf("expected %d to be visited once, got %d", idx, visits[idx])
		}
	}
	if visits[3] != 0 {
		t.Error("expected the flood to stop at 2")
	}
}

func TestCascadeEmptyCountsNewCells(t *testing.T) {
	board := newBoard(4, 1)
	board.cells[3] = Mine

	board.cells[0] = Revealed
	if got := board.cascadeEmpty(0); got != 2 {
		t.Errorf("expected 2 newly revealed cells, got %d", got)
	}
	if board.cells[3] != Mine {
		t.Error("the mine must not be revealed")
	}
}
