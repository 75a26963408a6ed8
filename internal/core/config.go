package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its field from the terminal.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	CellW    float64 // World units covered by one column
	CellH    float64 // World units covered by one row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// An 80x24 terminal maps onto an 800x600 field.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		CellW:    10,
		CellH:    25,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LeftScore  int  // Points won by the left player
	RightScore int  // Points won by the right player
	Paused     bool // Whether the game is paused
}

// StepResult is returned after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota + 1
	EventPaddleBounce
	EventPoint
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleBounce:
		return "paddle-bounce"
	case EventPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Event is a single tick event. Side is the paddle that bounced the ball
// or the player who won the point.
type Event struct {
	Kind EventKind
	Side Side
}
