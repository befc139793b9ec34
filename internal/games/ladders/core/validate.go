package core

import "fmt"

// Validation error codes.
const (
	CodeInvalidSize     = "INVALID_SIZE"
	CodeInvalidWinning  = "INVALID_WINNING"
	CodeUnknownLinkType = "UNKNOWN_LINK_TYPE"
	CodeLinkOutOfRange  = "LINK_OUT_OF_RANGE"
	CodeLadderDirection = "LADDER_DIRECTION"
	CodeSnakeDirection  = "SNAKE_DIRECTION"
	CodeDuplicateStart  = "DUPLICATE_START"
	CodeChainedLink     = "CHAINED_LINK"
)

// ValidationError contains details about an invalid board configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateBoard checks a board configuration.
// Checks:
//   - size is at least 2 and the winning square is the last square
//   - every link has a known type and lies on the board
//   - ladders go up, snakes go down
//   - no two links share a start
//   - no link ends where another starts (resolution never chains)
func ValidateBoard(size, winning int, links []Link) error {
	if size < 2 {
		return ValidationError{
			Code:    CodeInvalidSize,
			Message: fmt.Sprintf("board size %d is below 2", size),
		}
	}
	if winning != size*size {
		return ValidationError{
			Code:    CodeInvalidWinning,
			Message: fmt.Sprintf("winning position %d must equal %d for a %dx%d board", winning, size*size, size, size),
		}
	}

	for _, l := range links {
		if err := validateLink(l, winning); err != nil {
			return err
		}
	}

	starts := make(map[int]bool, len(links))
	for _, l := range links {
		if starts[l.Start] {
			return ValidationError{
				Code:    CodeDuplicateStart,
				Message: fmt.Sprintf("more than one link starts at %d", l.Start),
			}
		}
		starts[l.Start] = true
	}

	for _, l := range links {
		if starts[l.End] {
			return ValidationError{
				Code:    CodeChainedLink,
				Message: fmt.Sprintf("%s %d->%d ends on the start of another link", l.Type, l.Start, l.End),
			}
		}
	}

	return nil
}

// validateLink checks a single link against the board bounds and its direction.
func validateLink(l Link, winning int) error {
	if l.Type != LinkLadder && l.Type != LinkSnake {
		return ValidationError{
			Code:    CodeUnknownLinkType,
			Message: fmt.Sprintf("link %d->%d has unknown type %q", l.Start, l.End, l.Type),
		}
	}
	if l.Start <= 1 || l.Start >= winning || l.End < 1 || l.End > winning {
		return ValidationError{
			Code:    CodeLinkOutOfRange,
			Message: fmt.Sprintf("%s %d->%d must start in 2..%d and end in 1..%d", l.Type, l.Start, l.End, winning-1, winning),
		}
	}
	if l.Type == LinkLadder && l.End <= l.Start {
		return ValidationError{
			Code:    CodeLadderDirection,
			Message: fmt.Sprintf("ladder %d->%d does not climb", l.Start, l.End),
		}
	}
	if l.Type == LinkSnake && l.End >= l.Start {
		return ValidationError{
			Code:    CodeSnakeDirection,
			Message: fmt.Sprintf("snake %d->%d does not descend", l.Start, l.End),
		}
	}
	return nil
}
