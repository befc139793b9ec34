package ladders

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/ladders-duel/internal/core"
	"github.com/vovakirdan/ladders-duel/internal/games/ladders/core"
)

const (
	sidebarW = 17
	sidebarH = 12
	footerH  = 1
	minLog   = 2
)

var playerColors = []platformcore.Color{platformcore.ColorCyan, platformcore.ColorMagenta}
var playerColorsActive = []platformcore.Color{platformcore.ColorBrightCyan, platformcore.ColorBrightMagenta}

// screenLayout is where each area goes for the current board and screen.
type screenLayout struct {
	cellW int
	board platformcore.Rect
	sideX int
	logY  int
	minW  int
	minH  int
}

// computeLayout picks the widest cell that fits: number, marker and one
// column per token, or a shared token column when space is short.
func (g *Game) computeLayout() screenLayout {
	size := g.board.Size()
	var l screenLayout
	for _, cw := range []int{6, 5} {
		l.cellW = cw
		l.board = platformcore.NewRect(0, 1, size*cw+2, size+2)
		l.sideX = l.board.Right() + 1
		l.minW = l.sideX + sidebarW
		if l.minW <= g.screenW {
			break
		}
	}
	l.logY = 1 + max(l.board.H, sidebarH)
	l.minH = l.logY + minLog + footerH
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.layoutErr != nil {
		g.renderTitle(dst)
		g.renderOverlay(dst, "Layout error", g.layoutErr.Error(), platformcore.ColorRed)
		return
	}
	if g.ctrl == nil {
		return
	}

	g.renderTitle(dst)

	if g.tooSmall {
		l := g.computeLayout()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, have %dx%d", l.minW, l.minH, g.screenW, g.screenH), platformcore.ColorYellow)
		return
	}

	l := g.computeLayout()
	g.renderBoard(dst, l)
	g.renderSidebar(dst, l)
	g.renderLog(dst, l)
	g.renderFooter(dst)

	s := g.ctrl.Session()
	switch {
	case s.Over() && g.phase == PhaseIdle:
		w, _ := s.Winner()
		g.renderOverlay(dst, w.Name+" wins!", fmt.Sprintf("%d turns. Press N for a new game", s.Turns), platformcore.ColorBrightYellow)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", platformcore.ColorWhite)
	}
}

func (g *Game) renderTitle(dst *platformcore.Screen) {
	title := " " + g.variant.title
	if g.layout.Name != "" && g.layoutErr == nil {
		title = fmt.Sprintf(" Snakes & Ladders: %s", g.layout.Name)
	}
	dst.DrawTextColored(0, 0, title, platformcore.ColorBrightWhite)

	if g.ctrl != nil {
		turns := fmt.Sprintf("Turn %d ", g.ctrl.Session().Turns+1)
		dst.DrawTextColored(dst.Width()-len(turns), 0, turns, platformcore.ColorGray)
	}
}

// renderBoard draws the numbered grid with link markers and tokens.
func (g *Game) renderBoard(dst *platformcore.Screen, l screenLayout) {
	dst.DrawBoxColored(l.board, platformcore.ColorGray)

	size := g.board.Size()
	acting := -1
	if st, ok := g.currentStep(); ok {
		acting = st.Player
	}

	for sq := 1; sq <= g.board.WinningPosition(); sq++ {
		c := core.SquareToCoord(sq, size)
		x := l.board.X + 1 + c.Col*l.cellW
		y := l.board.Y + 1 + c.Row

		marker, color := g.squareStyle(sq)
		dst.DrawTextColored(x, y, fmt.Sprintf("%3d", sq), color)
		if marker != ' ' {
			dst.SetColored(x+3, y, marker, color)
		}

		g.renderTokens(dst, x+4, y, sq, l.cellW, acting)
	}
}

// squareStyle returns the number color and marker for a square.
func (g *Game) squareStyle(sq int) (rune, platformcore.Color) {
	if link, ok := g.board.LinkAt(sq); ok {
		if link.Type == core.LinkLadder {
			return '^', platformcore.ColorGreen
		}
		return 'v', platformcore.ColorRed
	}
	if sq == g.board.WinningPosition() {
		return '*', platformcore.ColorYellow
	}
	if t, ok := g.board.EndAt(sq); ok {
		if t == core.LinkLadder {
			return ' ', platformcore.ColorBrightGreen
		}
		return ' ', platformcore.ColorBrightRed
	}
	return ' ', platformcore.ColorGray
}

func (g *Game) renderTokens(dst *platformcore.Screen, x, y, sq, cellW, acting int) {
	var here []int
	for i, pos := range g.shown {
		if pos == sq {
			here = append(here, i)
		}
	}
	if len(here) == 0 {
		return
	}

	// Narrow cells share one column
	if cellW < 6 {
		if len(here) > 1 {
			dst.SetColored(x, y, 'B', platformcore.ColorYellow)
			return
		}
		i := here[0]
		dst.SetColored(x, y, rune('1'+i), g.tokenColor(i, acting))
		return
	}

	for _, i := range here {
		dst.SetColored(x+i, y, rune('1'+i), g.tokenColor(i, acting))
	}
}

func (g *Game) tokenColor(i, acting int) platformcore.Color {
	if i == acting {
		return playerColorsActive[i%len(playerColorsActive)]
	}
	return playerColors[i%len(playerColors)]
}

// renderSidebar draws the players, whose turn it is and the die.
func (g *Game) renderSidebar(dst *platformcore.Screen, l screenLayout) {
	x := l.sideX
	y := l.board.Y
	s := g.ctrl.Session()

	dst.DrawTextColored(x, y, "PLAYERS", platformcore.ColorYellow)
	for i, p := range s.Players {
		prefix := "  "
		if s.Over() && s.WinnerIndex == i {
			prefix = "* "
		} else if !s.Over() && s.Current == i {
			prefix = "> "
		}
		row := y + 1 + i*2
		dst.DrawTextColored(x, row, prefix+truncate(p.Name, sidebarW-4), playerColors[i%len(playerColors)])
		dst.SetColored(x+sidebarW-1, row, rune('1'+i), playerColors[i%len(playerColors)])
		pos := p.Position
		if i < len(g.shown) {
			pos = g.shown[i]
		}
		dst.DrawTextColored(x+2, row+1, fmt.Sprintf("square %d", pos), platformcore.ColorGray)
	}

	status := ""
	switch g.phase {
	case PhaseTumble:
		status = "rolling..."
	case PhaseReplay:
		status = fmt.Sprintf("rolled %d", g.pending.Resolution.Roll)
	}
	dst.DrawTextColored(x, y+5, status, platformcore.ColorWhite)

	dieColor := platformcore.ColorBrightWhite
	if g.phase == PhaseTumble {
		dieColor = platformcore.ColorYellow
	}
	drawDie(dst, x+1, y+6, g.face, dieColor)

	dst.DrawTextColored(x, y+11, "^ ladder", platformcore.ColorGreen)
	dst.DrawTextColored(x+9, y+11, "v snake", platformcore.ColorRed)
}

// pips lists the pip cells of each face on a 3x3 grid.
var pips = map[int][][2]int{
	1: {{1, 1}},
	2: {{0, 0}, {2, 2}},
	3: {{0, 0}, {1, 1}, {2, 2}},
	4: {{0, 0}, {2, 0}, {0, 2}, {2, 2}},
	5: {{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}},
	6: {{0, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {2, 2}},
}

// drawDie draws a 7x5 die at (x, y). Face 0 shows a question mark.
func drawDie(dst *platformcore.Screen, x, y, face int, c platformcore.Color) {
	dst.DrawBoxColored(platformcore.NewRect(x, y, 7, 5), c)
	if face == 0 {
		dst.SetColored(x+3, y+2, '?', c)
		return
	}
	for _, p := range pips[face] {
		dst.SetColored(x+2+p[0], y+1+p[1], 'o', c)
	}
}

// renderLog draws the most recent messages, newest last.
func (g *Game) renderLog(dst *platformcore.Screen, l screenLayout) {
	rows := dst.Height() - footerH - l.logY
	if rows <= 0 {
		return
	}
	msgs := g.log
	if len(msgs) > rows {
		msgs = msgs[len(msgs)-rows:]
	}
	for i, m := range msgs {
		color := platformcore.ColorGray
		if i == len(msgs)-1 {
			color = messageColor(m.Kind)
		}
		dst.DrawTextColored(1, l.logY+i, truncate(m.Text, dst.Width()-2), color)
	}
}

func messageColor(k core.MessageKind) platformcore.Color {
	switch k {
	case core.KindStay:
		return platformcore.ColorYellow
	case core.KindClimb:
		return platformcore.ColorBrightGreen
	case core.KindSlide:
		return platformcore.ColorBrightRed
	case core.KindWin:
		return platformcore.ColorBrightYellow
	default:
		return platformcore.ColorWhite
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	help := " Space roll  N new game  P pause  B back  Q quit"
	dst.DrawTextColored(0, dst.Height()-1, help, platformcore.ColorGray)
}

// renderOverlay draws a centered two-line box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string, c platformcore.Color) {
	line2 = truncate(line2, dst.Width()-6)
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	boxH := 5
	box := platformcore.CenteredRect(boxW, boxH, dst.Width(), dst.Height())

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)
	dst.DrawTextCenteredColored(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
