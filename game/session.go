/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import (
	"math/rand/v2"

	"github.com/Seednode/characterdle/character"
)

// Phase is where a Session is in its lifecycle.
type Phase int

const (
	Idle Phase = iota
	Active
	Complete
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Outcome is how a completed session ended.
type Outcome int

const (
	Undecided Outcome = iota
	Won
	GaveUp
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case GaveUp:
		return "gave_up"
	}
	return "undecided"
}

// Picker returns an index in [0, n). Sessions use it to choose a target.
type Picker func(n int) int

// UniformPicker chooses uniformly at random.
func UniformPicker(n int) int {
	return rand.IntN(n)
}

// Renderer is told about every evaluated guess, with the columns in the
// order they should be displayed. Rendering is entirely the host's concern.
type Renderer interface {
	RenderGuess(guess *character.Record, v Verdict, order []character.Field)
}

// Guess is one entry of the session history.
type Guess struct {
	Record  *character.Record
	Verdict Verdict
}

// Session is a single game. It is not safe for concurrent use; the host
// serializes events per game.
//
//	Idle --Start--> Active --Guess (solved)--> Complete
//	                Active --GiveUp----------> Complete
//	any  --Reset--> Idle
//	any  --Start--> Active (abandons whatever was in progress)
type Session struct {
	phase   Phase
	outcome Outcome
	target  *character.Record
	pool    []*character.Record
	history []Guess
	hints   int
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Target returns the hidden character, or nil when idle.
func (s *Session) Target() *character.Record {
	return s.target
}

// Pool returns the candidates the target was drawn from.
func (s *Session) Pool() []*character.Record {
	return s.pool
}

// Guesses returns the number of guesses made this session.
func (s *Session) Guesses() int {
	return len(s.history)
}

// History returns the guesses made so far, oldest first.
func (s *Session) History() []Guess {
	out := make([]Guess, len(s.history))
	copy(out, s.history)
	return out
}

// Start begins a new game with a target drawn from pool. On an empty pool
// it returns ErrEmptyPool and leaves the session as it was.
func (s *Session) Start(pool []*character.Record, pick Picker) error {
	if len(pool) == 0 {
		return ErrEmptyPool
	}
	if pick == nil {
		pick = UniformPicker
	}

	s.Reset()
	s.pool = pool
	s.target = pool[pick(len(pool))]
	s.phase = Active

	return nil
}

// Guess evaluates rec against the target. A fully correct verdict
// completes the session as won.
func (s *Session) Guess(rec *character.Record) (Verdict, error) {
	if s.phase != Active {
		return Verdict{}, ErrNotActive
	}

	v, err := Compare(s.target, rec)
	if err != nil {
		return Verdict{}, err
	}

	s.history = append(s.history, Guess{Record: rec, Verdict: v})

	if v.Solved() {
		s.phase = Complete
		s.outcome = Won
	}

	return v, nil
}

// Play is Guess followed by handing the verdict to r.
func (s *Session) Play(rec *character.Record, r Renderer) (Verdict, error) {
	v, err := s.Guess(rec)
	if err != nil {
		return v, err
	}

	if r != nil {
		r.RenderGuess(rec, v, character.Columns)
	}

	return v, nil
}

// GiveUp ends the session and returns the target compared with itself, so
// the answer can be shown as a final row.
func (s *Session) GiveUp() (Verdict, error) {
	if s.phase != Active {
		return Verdict{}, ErrNotActive
	}

	v, err := Compare(s.target, s.target)
	if err != nil {
		return Verdict{}, err
	}

	s.phase = Complete
	s.outcome = GaveUp

	return v, nil
}

// Hint reveals the target's next hint and how many remain after it.
func (s *Session) Hint() (string, int, error) {
	if s.phase != Active {
		return "", 0, ErrNotActive
	}
	if s.hints >= len(s.target.Hints) {
		return "", 0, ErrNoHints
	}

	hint := s.target.Hints[s.hints]
	s.hints++

	return hint, len(s.target.Hints) - s.hints, nil
}

// Reset returns the session to Idle.
func (s *Session) Reset() {
	*s = Session{}
}
