package generate

import "time"

// SeasonMultiplier encodes holiday and summer spending bumps: December and
// January carry the holiday peak, July and August a vacation bump, February
// and March a post-holiday dip. Deterministic for any date.
func SeasonMultiplier(date time.Time) float64 {
	switch date.Month() {
	case time.December, time.January:
		return 1.3
	case time.July, time.August:
		return 1.15
	case time.February, time.March:
		return 0.9
	default:
		return 1.0
	}
}

// WeekdayMultiplier encodes the weekend spending bump, front-loaded on
// Friday. Deterministic for any date.
func WeekdayMultiplier(date time.Time) float64 {
	switch date.Weekday() {
	case time.Friday:
		return 1.4
	case time.Saturday:
		return 1.3
	case time.Sunday:
		return 1.1
	default:
		return 1.0
	}
}
