package store

import "fmt"

// Mode is the persisted workflow phase. Exactly one of the two values is
// legal; an unrecognized persisted integer means the database is corrupt and
// is reported, never clamped.
type Mode int64

const (
	// ModeGather fetches, scores, and lists new recipes.
	ModeGather Mode = 0
	// ModeReview collects ratings for the pending batch.
	ModeReview Mode = 1
)

// ParseMode converts a persisted integer into a Mode.
func ParseMode(value int64) (Mode, error) {
	switch Mode(value) {
	case ModeGather, ModeReview:
		return Mode(value), nil
	default:
		return 0, fmt.Errorf("workflow state holds unknown mode %d", value)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeGather:
		return "gather"
	case ModeReview:
		return "review"
	default:
		return fmt.Sprintf("mode(%d)", int64(m))
	}
}

// State is the singleton workflow record: the current phase and the count of
// catalog recipes consumed so far.
type State struct {
	Mode   Mode
	Offset int64
}

// Tag is a persisted tag row with its accumulated preference score.
type Tag struct {
	ID    int64
	Likes int64
}

// Recipe is a persisted recipe row. Only identity and name are kept; the full
// catalog record is not stored.
type Recipe struct {
	ID   int64
	Name string
}
