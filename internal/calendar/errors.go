package calendar

import (
	"fmt"
	"time"
)

// UnsupportedYearError reports a year outside the engine's Easter table.
type UnsupportedYearError struct {
	Year    int
	MinYear int
	MaxYear int
}

func (e *UnsupportedYearError) Error() string {
	return fmt.Sprintf("year %d is not supported (supported years: %d-%d)",
		e.Year, e.MinYear, e.MaxYear)
}

// InvalidRangeError reports a range whose start date is after its end date.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s is after end %s",
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

// RangeExhaustedError reports a workday shift that walked past the edge of
// the supported years before satisfying the requested step count. The start
// date itself was valid.
type RangeExhaustedError struct {
	Start   time.Time
	N       int
	MinYear int
	MaxYear int
}

func (e *RangeExhaustedError) Error() string {
	return fmt.Sprintf("shifting %s by %d workdays walked past the supported years (%d-%d)",
		e.Start.Format("2006-01-02"), e.N, e.MinYear, e.MaxYear)
}
