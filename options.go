package cubiecube

// Option configures a Tracker.
type Option func(*config)

type config struct {
	moveHistory bool
	start       State
	onSolved    func(State)
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		start:       Identity(),
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves(),
// and Undo works. Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithStart sets the state the Tracker starts from and returns to on Reset.
func WithStart(s State) Option {
	return func(c *config) {
		c.start = s
	}
}

// WithSolvedCallback sets a callback that fires when a move takes the cube
// from an unsolved state to the solved state.
func WithSolvedCallback(cb func(State)) Option {
	return func(c *config) {
		c.onSolved = cb
	}
}
