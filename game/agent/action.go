package agent

import "github.com/ThutaCodes/rational-vacuum-cleaner-agent/game/grid"

// ActionKind identifies one of the agent's actuators.
type ActionKind int

const (
	MoveKind ActionKind = iota + 1
	SuckKind
	EmptyKind
)

func (k ActionKind) String() string {
	switch k {
	case MoveKind:
		return "MOVE"
	case SuckKind:
		return "SUCK"
	case EmptyKind:
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is one decision of the policy. Direction is only set for moves.
type Action struct {
	Kind      ActionKind
	Direction grid.Direction
}

// MoveAction builds a move in direction d.
func MoveAction(d grid.Direction) Action {
	return Action{Kind: MoveKind, Direction: d}
}

// SuckAction builds a suck action.
func SuckAction() Action {
	return Action{Kind: SuckKind}
}

// EmptyAction builds an empty-bag action.
func EmptyAction() Action {
	return Action{Kind: EmptyKind}
}

// String returns the action token: N, S, E, W, SUCK or EMPTY.
func (a Action) String() string {
	if a.Kind == MoveKind {
		return string(a.Direction)
	}
	return a.Kind.String()
}
