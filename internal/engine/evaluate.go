package engine

// Score is the value of a position. Accumulation in Search relies on int32
// wrap-around.
type Score int32

const (
	WinScore  Score = 42
	LossScore Score = -42
	DrawScore Score = 0
)

// Evaluate scores a terminal board from the point of view of turn, the mark
// that would move next.
//
// A win for turn only scores WinScore when turn also started the search.
// Otherwise the board falls through to the line scan, even though it is
// already decided.
func Evaluate(board Board, turn, startingTurn Mark) Score {
	opponent := turn.Opponent()
	result := Classify(board)

	switch {
	case result.Winner() == turn && turn == startingTurn:
		return WinScore
	case result.Winner() == opponent:
		return LossScore
	case result == Draw:
		return DrawScore
	}

	return lineScan(board, turn, opponent)
}

// lineScan adds 3 - empties for every line holding turn but not opponent.
func lineScan(board Board, turn, opponent Mark) Score {
	var score Score

	for _, line := range Lines {
		found, empties := false, 0
		blocked := false

		for _, i := range line {
			switch board.Cell(i) {
			case opponent:
				blocked = true
			case turn:
				found = true
			default:
				empties++
			}
		}

		if found && !blocked {
			score += Score(Size - empties)
		}
	}

	return score
}
