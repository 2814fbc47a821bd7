package invaders

// EventKind identifies something the host may want to log or play a sound for.
type EventKind int

const (
	EventShot EventKind = iota
	EventKill
	EventWave
	EventGameOver
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventKill:
		return "kill"
	case EventWave:
		return "wave"
	case EventGameOver:
		return "game over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event records the wave and score at the moment it happened.
type Event struct {
	Kind  EventKind
	Wave  int
	Score int
}
