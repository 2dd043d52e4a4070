package engine

import "math"

// SearchResult is the best position reachable from a node together with its score.
type SearchResult struct {
	Board Board `json:"board"`
	Score Score `json:"score"`
}

// Search picks the move for turn on board. It runs the full minimax recursion
// of SearchTree and projects the selected line back onto board, so the
// returned board differs from the input in exactly one cell unless the input
// is already terminal.
func Search(board Board, maximizing bool, turn, startingTurn Mark) SearchResult {
	result := SearchTree(board, maximizing, turn, startingTurn)
	result.Board = project(board, result.Board, turn)

	return result
}

// SearchTree is plain minimax without pruning.
//
// The maximizer keeps the board returned by the recursion and adds the
// child's score into its running best; the minimizer keeps its own child and
// subtracts. Strict comparisons keep the earliest child on ties. Either way
// the returned score is not the value of the returned board.
func SearchTree(board Board, maximizing bool, turn, startingTurn Mark) SearchResult {
	if Classify(board).Terminal() {
		return SearchResult{Board: board, Score: Evaluate(board, turn, startingTurn)}
	}

	children := Children(board, turn)
	next := turn.Opponent()

	if maximizing {
		best := SearchResult{Board: children[0], Score: math.MinInt32}
		for _, child := range children {
			current := SearchTree(child, false, next, startingTurn)
			if current.Score > best.Score {
				best.Board = current.Board
				best.Score += current.Score
			}
		}

		return best
	}

	best := SearchResult{Board: children[0], Score: math.MaxInt32}
	for _, child := range children {
		current := SearchTree(child, true, next, startingTurn)
		if current.Score < best.Score {
			best.Board = child
			best.Score -= current.Score
		}
	}

	return best
}

// project keeps only the cell of selected that turn filled on root.
// selected descends from root, so at most one such cell exists.
func project(root, selected Board, turn Mark) Board {
	for i := 0; i < Size*Size; i++ {
		if root.Cell(i) == Empty && selected.Cell(i) == turn {
			return root.Place(i/Size, i%Size, turn)
		}
	}

	return root
}
