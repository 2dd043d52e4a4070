package engine

// Children expands board into every position reachable by placing mark on an
// empty cell. Order is row-major and decides ties in Search.
func Children(board Board, mark Mark) []Board {
	children := make([]Board, 0, board.EmptyCells())

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board[row][col] == Empty {
				children = append(children, board.Place(row, col, mark))
			}
		}
	}

	return children
}
