// Package core contains the pure Snakes & Ladders rules: board geometry,
// board configuration, dice, turn resolution and the session controller.
// It has no terminal or storage dependencies.
package core

import "fmt"

// Coord is a cell position on the rendered grid.
// Col increases to the right, Row increases downward (row 0 is the top row).
type Coord struct {
	Col int
	Row int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// ValidSquare reports whether square lies on a board of the given size.
func ValidSquare(square, size int) bool {
	return size > 0 && square >= 1 && square <= size*size
}

// ValidCoord reports whether c lies on a board of the given size.
func ValidCoord(c Coord, size int) bool {
	return c.Col >= 0 && c.Col < size && c.Row >= 0 && c.Row < size
}

// SquareToCoord maps a square number to its grid cell.
// Square 1 is bottom-left; numbering runs right along the bottom row, then
// left along the next, alternating each row.
// Precondition: ValidSquare(square, size).
func SquareToCoord(square, size int) Coord {
	n := square - 1
	row := n / size // 0 = bottom row
	col := n % size
	if row%2 != 0 {
		col = size - 1 - col
	}
	return Coord{Col: col, Row: size - 1 - row}
}

// CoordToSquare maps a grid cell back to its square number.
// Precondition: ValidCoord(c, size).
func CoordToSquare(c Coord, size int) int {
	row := size - 1 - c.Row
	col := c.Col
	if row%2 != 0 {
		col = size - 1 - col
	}
	return row*size + col + 1
}
