package game

import "github.com/gammazero/deque"

type NeighborGetter func(idx int) []int

// Visitor is called once per dequeued cell. Its result decides whether the
// flood expands into the cell's neighbors.
type Visitor func(idx int) bool

func flood(origins []int, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(map[int]struct{})
	var visitQueue deque.Deque

	enqueue := func(idx int) {
		// Don't visit, if already visited
		if _, alreadyVisited := visited[idx]; alreadyVisited {
			return
		}

		visited[idx] = struct{}{}
		visitQueue.PushBack(idx)
	}

	for _, idx := range origins {
		enqueue(idx)
	}

	for visitQueue.Len() > 0 {
		idx := visitQueue.PopFront().(int)

		if visit(idx) {
			for _, neighbor := range getNeighbors(idx) {
				enqueue(neighbor)
			}
		}
	}
}

// cascadeEmpty reveals every cell reachable from origins through revealed
// cells with no mined neighbors. It returns the number of newly revealed cells.
func (board *Board) cascadeEmpty(origins ...int) int {
	numRevealed := 0

	flood(
		origins,
		func(idx int) bool {
			switch board.cells[idx] {
			case Mine:
				return false
			case Covered:
				board.cells[idx] = Revealed
				numRevealed++
			}
			return board.MineCountAround(idx) == 0
		},
		board.neighborsOf,
	)

	return numRevealed
}
