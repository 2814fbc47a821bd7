package invaders

// Position is the top-left corner of an actor's bounding box.
type Position struct {
	X, Y float64
}

// Size is an actor's bounding box extent.
type Size struct {
	W, H float64
}

// Player marks the ship. There is exactly one.
type Player struct {
	Speed float64
}

// Bullet is a player projectile travelling up the playfield.
type Bullet struct {
	Speed float64
}

// Enemy is one member of the wave formation. Direction is +1 (right) or -1 (left).
type Enemy struct {
	Direction float64
	Speed     float64
}

// Playfield holds the canvas bounds and the grid cell used for the next wave.
type Playfield struct {
	Width        float64
	Height       float64
	EnemyWidth   float64
	EnemyHeight  float64
	EnemyPadding float64
}

// Tuning holds per-session speeds taken from Config.
type Tuning struct {
	PlayerSpeed float64
	BulletSpeed float64
}

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State is the scoreboard and the parameters of the current wave.
type State struct {
	Phase         Phase
	Score         int
	Lives         int
	Wave          int
	EnemySpeed    float64
	RotationSpeed float64
	// Rotation is the angle shared by every enemy silhouette, advanced once per rendered frame.
	Rotation float64
	Shape    Shape
	Elapsed  float64
	Frames   int64
}

// Controls carries the Input consumed by the update in progress.
type Controls struct {
	Input Input
}

// Canvas carries the Surface drawn on by the render pass in progress.
type Canvas struct {
	Surface Surface
}

// EventLog collects the events emitted since the host last drained them.
type EventLog struct {
	Events []Event
}

func (l *EventLog) emit(kind EventKind, state *State) {
	l.Events = append(l.Events, Event{Kind: kind, Wave: state.Wave, Score: state.Score})
}

const (
	PlayerWidth  = 50
	PlayerHeight = 30
	// PlayerInset is the distance from the bottom of the playfield to the ship's top.
	PlayerInset = 50

	BulletWidth  = 4
	BulletHeight = 10
	BulletRadius = 4

	EnemyRows           = 5
	EnemyCols           = 8
	DefaultEnemySize    = 40
	DefaultEnemyPadding = 20
	GridOrigin          = 50
	EdgeDrop            = 20
	MaxEnemySpeed       = 3

	KillScore     = 100
	StartingLives = 3
)
