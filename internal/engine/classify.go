package engine

// Result is the terminal state of a position.
type Result uint8

const (
	None Result = iota
	WinX
	WinO
	Draw
)

func (that Result) Terminal() bool {
	return that != None
}

// Winner returns the winning mark, or Empty for open and drawn positions.
func (that Result) Winner() Mark {
	switch that {
	case WinX:
		return X
	case WinO:
		return O
	default:
		return Empty
	}
}

func (that Result) String() string {
	switch that {
	case WinX:
		return "X"
	case WinO:
		return "O"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}

// ResultFor maps a mark to its winning result.
func ResultFor(mark Mark) Result {
	switch mark {
	case X:
		return WinX
	case O:
		return WinO
	default:
		return None
	}
}

// Lines lists the eight winning lines as row-major cell indexes:
// rows, then columns, then the main and anti diagonal.
var Lines = [8][Size]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Classify reports whether the board is won, drawn or still open.
func Classify(board Board) Result {
	for _, line := range Lines {
		a, b, c := board.Cell(line[0]), board.Cell(line[1]), board.Cell(line[2])
		if a != Empty && a == b && b == c {
			return ResultFor(a)
		}
	}

	if board.EmptyCells() == 0 {
		return Draw
	}

	return None
}
