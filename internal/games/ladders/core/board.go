package core

import "sort"

// LinkType distinguishes ladders from snakes.
type LinkType string

const (
	LinkLadder LinkType = "ladder"
	LinkSnake  LinkType = "snake"
)

// Link is a snake or a ladder: landing on Start moves the token to End.
type Link struct {
	Start int
	End   int
	Type  LinkType
}

// Ladder is a convenience constructor for a ladder link.
func Ladder(start, end int) Link {
	return Link{Start: start, End: end, Type: LinkLadder}
}

// Snake is a convenience constructor for a snake link.
func Snake(start, end int) Link {
	return Link{Start: start, End: end, Type: LinkSnake}
}

// Board is the immutable game configuration: grid size, winning square and links.
// Build it with NewBoard so the link invariants are checked once at load time.
type Board struct {
	size    int
	winning int
	links   []Link
	byStart map[int]Link
	ends    map[int]LinkType
}

// NewBoard validates the configuration and builds a board.
// Returns a ValidationError describing the first problem found.
func NewBoard(size, winning int, links []Link) (*Board, error) {
	if err := ValidateBoard(size, winning, links); err != nil {
		return nil, err
	}

	b := &Board{
		size:    size,
		winning: winning,
		links:   make([]Link, len(links)),
		byStart: make(map[int]Link, len(links)),
		ends:    make(map[int]LinkType, len(links)),
	}
	copy(b.links, links)
	sort.Slice(b.links, func(i, j int) bool {
		return b.links[i].Start < b.links[j].Start
	})
	for _, l := range b.links {
		b.byStart[l.Start] = l
		b.ends[l.End] = l.Type
	}
	return b, nil
}

// ClassicLinks returns the standard layout's links: 7 ladders and 8 snakes.
func ClassicLinks() []Link {
	return []Link{
		Ladder(4, 25),
		Ladder(13, 46),
		Ladder(33, 49),
		Ladder(42, 63),
		Ladder(50, 69),
		Ladder(62, 81),
		Ladder(74, 92),

		Snake(27, 5),
		Snake(40, 3),
		Snake(43, 18),
		Snake(54, 31),
		Snake(66, 45),
		Snake(76, 58),
		Snake(89, 53),
		Snake(99, 41),
	}
}

// ClassicBoard returns the standard 10x10 board.
func ClassicBoard() *Board {
	b, err := NewBoard(10, 100, ClassicLinks())
	if err != nil {
		panic("core: classic board is invalid: " + err.Error())
	}
	return b
}

// Size returns the grid dimension.
func (b *Board) Size() int {
	return b.size
}

// WinningPosition returns the square a player must land on exactly to win.
func (b *Board) WinningPosition() int {
	return b.winning
}

// Links returns a copy of the links ordered by start square.
func (b *Board) Links() []Link {
	out := make([]Link, len(b.links))
	copy(out, b.links)
	return out
}

// LinkAt returns the link starting at square, if any.
func (b *Board) LinkAt(square int) (Link, bool) {
	l, ok := b.byStart[square]
	return l, ok
}

// EndAt reports whether square is the destination of a link and which kind.
func (b *Board) EndAt(square int) (LinkType, bool) {
	t, ok := b.ends[square]
	return t, ok
}

// Coord maps a square on this board to its grid cell.
func (b *Board) Coord(square int) Coord {
	return SquareToCoord(square, b.size)
}

// Square maps a grid cell on this board to its square number.
func (b *Board) Square(c Coord) int {
	return CoordToSquare(c, b.size)
}
