package tui

// phase is the display state of one screen's result slot.
type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseSuccess
	phaseFailure
)

// screenState is the per-screen display slot shared by all four AI
// screens. Each screen owns exactly one; screens never touch each
// other's state.
type screenState struct {
	err   error
	phase phase
	seq   int
}

// begin starts a new invocation: bumps the sequence counter, discards the
// previous display state, and returns the tag the result message must
// carry to be accepted.
func (s *screenState) begin() int {
	s.seq++
	s.phase = phaseLoading
	s.err = nil
	return s.seq
}

// accept reports whether a result tagged with seq is still the latest
// triggered invocation. Stale results are dropped by the caller.
func (s *screenState) accept(seq int) bool {
	return seq == s.seq
}

// loading reports whether an invocation is in flight; actions are gated
// on it.
func (s *screenState) loading() bool {
	return s.phase == phaseLoading
}

func (s *screenState) succeed() {
	s.phase = phaseSuccess
	s.err = nil
}

func (s *screenState) fail(err error) {
	s.phase = phaseFailure
	s.err = err
}
