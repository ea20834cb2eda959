package scheduling

// Policy holds the interval constants of the scheduling rule. It is
// read-only after construction and injected, so tests can run with
// alternative constants.
type Policy struct {
	MaxIntervalSeconds int64
	RetrySeconds       int64
	FirstInterval      map[Rating]int64
	Growth             map[Rating]float64
}

func DefaultPolicy() Policy {
	return Policy{
		MaxIntervalSeconds: 365 * 24 * 3600,
		RetrySeconds:       60,
		FirstInterval: map[Rating]int64{
			RatingRemembered: 24 * 3600,     // 1 day
			RatingInstant:    4 * 24 * 3600, // 4 days (longest initial)
		},
		Growth: map[Rating]float64{
			RatingRemembered: 1.6,
			RatingInstant:    2.5,
		},
	}
}

// NextInterval computes the next review interval in seconds from the
// rating, the previous interval and whether this is the first review.
// The caller must have validated the rating.
//
// Growth uses IEEE-754 double-precision multiplication followed by
// truncation toward zero. For non-zero ratings the result never shrinks
// below lastIntervalSeconds and never exceeds MaxIntervalSeconds.
func (p Policy) NextInterval(rating Rating, lastIntervalSeconds int64, isFirst bool) int64 {
	if rating == RatingDontRemember {
		return p.RetrySeconds
	}

	if isFirst {
		return min(p.FirstInterval[rating], p.MaxIntervalSeconds)
	}

	proposed := int64(float64(lastIntervalSeconds) * p.Growth[rating])
	return max(min(proposed, p.MaxIntervalSeconds), lastIntervalSeconds)
}
