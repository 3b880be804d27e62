package emoji

import "math"

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	Zero         = "🥜"
	SlightlyDown = "🌶"
	Down         = "🐞"
	Up           = "🦠"
	SlightlyUp   = "🥦"

	Error = "🚫"

	HasValue = "🏳‍🌈"
	NoValue  = "‍☠️"
)

// MapBool maps a boolean to an emoji.
func MapBool(s bool) string {
	if s {
		return HasValue
	}
	return NoValue
}

// MapToSentiment maps the given float value according to it's sign.
func MapToSentiment(f float64) string {
	emo := Zero
	if f > 0 {
		emo = Up
	} else if f < 0 {
		emo = Down
	}
	return emo
}

// MapTrend maps the relative change between two consecutive values.
// Changes smaller than the threshold count as slight.
func MapTrend(prev, next, threshold float64) string {
	if math.IsNaN(prev) || math.IsNaN(next) {
		return Error
	}
	diff := next - prev
	if diff == 0 {
		return Zero
	}
	ref := math.Abs(prev)
	rel := diff
	if ref > 0 {
		rel = diff / ref
	}
	switch {
	case rel > threshold:
		return Up
	case rel > 0:
		return SlightlyUp
	case rel < -threshold:
		return Down
	default:
		return SlightlyDown
	}
}
