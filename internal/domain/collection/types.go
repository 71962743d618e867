package collection

type State string

const (
	StateNotStarted State = "not_started"
	StateOpen       State = "open"
	StateEnded      State = "ended"
)

func (s State) String() string {
	return string(s)
}

// WindowState places now in a [start, end] sale window; end 0 never closes.
func WindowState(start, end, now uint64) State {
	switch {
	case now < start:
		return StateNotStarted
	case end != 0 && now > end:
		return StateEnded
	default:
		return StateOpen
	}
}
