package workflow

import (
	"fmt"
	"strings"
)

// Rating captures how much the user liked a recipe. Its value feeds directly
// into the preference score of every tag on the rated recipe.
type Rating int64

const (
	RatingDislike Rating = -1
	RatingNone    Rating = 0
	RatingLike    Rating = 1
	RatingLove    Rating = 2
)

// ParseRating converts user input into a rating. Anything but the four
// recognized words is an error so the prompt loop can ask again.
func ParseRating(text string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "dislike":
		return RatingDislike, nil
	case "none":
		return RatingNone, nil
	case "like":
		return RatingLike, nil
	case "love":
		return RatingLove, nil
	default:
		return 0, fmt.Errorf("unrecognized rating %q", text)
	}
}

func (r Rating) String() string {
	switch r {
	case RatingDislike:
		return "dislike"
	case RatingNone:
		return "none"
	case RatingLike:
		return "like"
	case RatingLove:
		return "love"
	default:
		return fmt.Sprintf("rating(%d)", int64(r))
	}
}

// Value returns the score delta applied to each tag of the rated recipe.
func (r Rating) Value() int64 {
	return int64(r)
}
