package scheduling

const MaxIdempotencyKeyLength = 64

type Rating int

const (
	RatingDontRemember Rating = 0
	RatingRemembered   Rating = 1
	RatingInstant      Rating = 2
)

func NewRating(v int) (Rating, error) {
	r := Rating(v)
	if !r.IsValid() {
		return 0, ErrInvalidRating
	}
	return r, nil
}

func (r Rating) IsValid() bool {
	switch r {
	case RatingDontRemember, RatingRemembered, RatingInstant:
		return true
	default:
		return false
	}
}

func (r Rating) Value() int {
	return int(r)
}

// Label returns the fixed Japanese display label for the rating.
func (r Rating) Label() string {
	switch r {
	case RatingDontRemember:
		return "分からない"
	case RatingRemembered:
		return "分かる"
	case RatingInstant:
		return "簡単"
	default:
		return ""
	}
}

// IdempotencyKey is a client-chosen bounded string that, together with
// (user, card), deduplicates retried requests. The key is opaque; no
// normalization is applied.
type IdempotencyKey struct {
	value string
}

func NewIdempotencyKey(s string) (IdempotencyKey, error) {
	if s == "" {
		return IdempotencyKey{}, ErrEmptyIdempotencyKey
	}
	if len(s) > MaxIdempotencyKeyLength {
		return IdempotencyKey{}, ErrIdempotencyKeyTooLong
	}
	return IdempotencyKey{value: s}, nil
}

func (k IdempotencyKey) String() string {
	return k.value
}
