package weather

import "time"

// MaxForecastDays bounds the reduced forecast
const MaxForecastDays = 5

type calendarDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) calendarDay {
	y, m, d := t.In(loc).Date()
	return calendarDay{year: y, month: m, day: d}
}

// ReduceForecast collapses a chronologically ordered sub-daily forecast into one
// entry per future calendar day. Samples falling on now's day are dropped, the
// first sample seen for each remaining day is kept, and days are emitted in
// the order they first appear. Calendar days are taken in loc.
func ReduceForecast(samples []ForecastEntry, now time.Time, loc *time.Location) ForecastSet {
	if loc == nil {
		loc = time.Local
	}

	today := dayOf(now, loc)
	seen := make(map[calendarDay]struct{}, MaxForecastDays)
	out := make(ForecastSet, 0, MaxForecastDays)

	for _, s := range samples {
		d := dayOf(s.Timestamp, loc)
		if d == today {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, s)
		if len(out) == MaxForecastDays {
			break
		}
	}

	return out
}
