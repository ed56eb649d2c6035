package logic

import "svw.info/sudokulogic/internal/board"

// Engine runs an ordered technique list to a fixpoint. After any technique
// progresses it restarts from the cheapest one, so expensive pattern
// matchers only run once the cheap deductions are spent.
type Engine struct {
	techs []Technique
}

// NewEngine builds an engine over the given techniques; an empty list
// degrades the caller to pure backtracking.
func NewEngine(techs []Technique) *Engine {
	return &Engine{techs: techs}
}

// Run deduces until no technique progresses or one finds a contradiction.
// Returns Progress if anything changed, NoProgress at an immediate
// fixpoint, Contradiction as soon as one is found.
func (e *Engine) Run(b *board.Board) Outcome {
	overall := NoProgress
	for i := 0; i < len(e.techs); {
		switch e.techs[i].Apply(b) {
		case Progress:
			overall = Progress
			i = 0
		case NoProgress:
			i++
		case Contradiction:
			return Contradiction
		}
	}
	return overall
}
