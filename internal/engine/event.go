package engine

import "fmt"

// EventKind classifies a grid change.
type EventKind int

const (
	// Created is a newly spawned tile at To.
	Created EventKind = iota
	// Moved is a tile that slid from From to To without merging.
	Moved
	// Merged is a tile at From absorbed into the tile at To. Value is the
	// doubled result; the source tile no longer exists.
	Merged
	// Destroyed is a tile at From removed by a reset.
	Destroyed
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case Created:
		return "created"
	case Moved:
		return "moved"
	case Merged:
		return "merged"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Event describes one change to the grid.
type Event struct {
	Kind  EventKind
	From  Pos
	To    Pos
	Value int // value at To after the change (value removed for Destroyed)
}

// String returns a compact description such as "merged (0,1)->(0,0)=4".
func (e Event) String() string {
	switch e.Kind {
	case Created, Destroyed:
		return fmt.Sprintf("%s %v=%d", e.Kind, e.To, e.Value)
	default:
		return fmt.Sprintf("%s %v->%v=%d", e.Kind, e.From, e.To, e.Value)
	}
}

// PointsPerMerge is the score awarded for each merge. Score counts merges,
// not merged tile values.
const PointsPerMerge = 1

// Outcome is the result of one Move call.
type Outcome struct {
	Direction Direction
	Changed   bool    // some tile slid or merged
	Merges    int     // number of merges performed
	Full      bool    // no empty cell remains after the move
	Events    []Event // Moved and Merged events in sweep order
}

// ScoreDelta returns the points earned by the move.
func (o Outcome) ScoreDelta() int {
	return o.Merges * PointsPerMerge
}
