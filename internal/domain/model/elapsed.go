package model

import "time"

// averageMonthCentidays is the fixed 30.44-day average month in hundredths of
// a day. Months are an approximation and drift against the calendar.
const averageMonthCentidays = 3044

// ElapsedDuration is the time since a reference instant split into display
// fields. Days is usually 0-30 but can read 31 where the 30.44-day average
// rounds down twice. The decomposition formula wins over the nominal 0-30
// range: clamping Days would make months and days no longer add up to the
// total day count.
type ElapsedDuration struct {
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose computes the elapsed duration between reference and now. It keeps
// no state: calling it twice with the same arguments returns the same value.
// An invalid reference, or a now before the reference, yields the zero value.
func Decompose(reference ReferenceInstant, now time.Time) ElapsedDuration {
	if !reference.Valid() {
		return ElapsedDuration{}
	}

	diff := now.Sub(reference.Time())
	if diff < 0 {
		return ElapsedDuration{}
	}

	totalSeconds := int64(diff / time.Second)
	totalMinutes := totalSeconds / 60
	totalHours := totalMinutes / 60
	totalDays := totalHours / 24
	totalMonths := totalDays * 100 / averageMonthCentidays

	return ElapsedDuration{
		Months:  totalMonths,
		Days:    totalDays - totalMonths*averageMonthCentidays/100,
		Hours:   totalHours % 24,
		Minutes: totalMinutes % 60,
		Seconds: totalSeconds % 60,
	}
}

// IsZero reports whether every field is zero.
func (d ElapsedDuration) IsZero() bool {
	return d == ElapsedDuration{}
}

// Lines renders the five fields in display order, each with its unit word.
func (d ElapsedDuration) Lines(labels UnitLabels) []string {
	return []string{
		labels.Months.Format(d.Months),
		labels.Days.Format(d.Days),
		labels.Hours.Format(d.Hours),
		labels.Minutes.Format(d.Minutes),
		labels.Seconds.Format(d.Seconds),
	}
}
