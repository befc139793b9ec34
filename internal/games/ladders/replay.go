package ladders

import "github.com/vovakirdan/ladders-duel/internal/games/ladders/core"

// beginRoll draws and resolves a roll, then starts the tumble.
func (g *Game) beginRoll() {
	p, ok := g.ctrl.BeginRoll()
	if !ok {
		return
	}
	g.pending = p
	g.phaseTicks = 0
	g.stepIndex = 0
	if g.layout.Pacing.DiceTicks <= 0 {
		g.face = p.Resolution.Roll
		g.enterReplay()
		return
	}
	g.phase = PhaseTumble
	g.face = g.tumbleFace()
}

// advanceTumble shows random faces until the tumble ends on the real roll.
func (g *Game) advanceTumble() {
	g.phaseTicks++
	if g.phaseTicks >= g.layout.Pacing.DiceTicks {
		g.face = g.pending.Resolution.Roll
		g.enterReplay()
		return
	}
	if every := g.layout.Pacing.FaceEvery; every > 0 && g.phaseTicks%every == 0 {
		g.face = g.tumbleFace()
	}
}

func (g *Game) tumbleFace() int {
	return g.faces.Intn(core.DiceMax-core.DiceMin+1) + core.DiceMin
}

func (g *Game) enterReplay() {
	g.phase = PhaseReplay
	g.phaseTicks = 0
	g.stepIndex = 0
	g.showStep(g.pending.Resolution.Steps[0])
}

// advanceReplay holds each step for step_ticks, then commits.
// Returns true when the commit ended the match.
func (g *Game) advanceReplay() bool {
	g.phaseTicks++
	if g.phaseTicks < g.layout.Pacing.StepTicks {
		return false
	}
	g.phaseTicks = 0
	g.stepIndex++

	steps := g.pending.Resolution.Steps
	if g.stepIndex < len(steps) {
		g.showStep(steps[g.stepIndex])
		return false
	}

	g.phase = PhaseIdle
	committed := g.ctrl.Commit(g.pending)
	g.pending = core.PendingRoll{}
	g.syncShown()
	return committed && g.ctrl.Session().Over()
}

func (g *Game) showStep(s core.Step) {
	if s.Player >= 0 && s.Player < len(g.shown) {
		g.shown[s.Player] = s.Position
	}
	g.pushLog(s.Message)
}

// currentStep returns the replay step on screen, if any.
func (g *Game) currentStep() (core.Step, bool) {
	if g.phase != PhaseReplay {
		return core.Step{}, false
	}
	steps := g.pending.Resolution.Steps
	if g.stepIndex >= len(steps) {
		return core.Step{}, false
	}
	return steps[g.stepIndex], true
}
