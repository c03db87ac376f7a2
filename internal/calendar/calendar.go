package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/username/dni-robocze/pkg/dateutil"
)

// Holiday is a public holiday resolved for a concrete year.
type Holiday struct {
	Date time.Time
	Name string
}

// FixedHoliday is a holiday that falls on the same month/day every year.
// From limits it to years at or after that year; zero means always.
type FixedHoliday struct {
	Month time.Month
	Day   int
	Name  string
	From  int
}

// MoveableHoliday is a holiday defined as a day offset from Easter Sunday
// of its year.
type MoveableHoliday struct {
	Offset int
	Name   string
}

// Table is the immutable holiday configuration for one jurisdiction.
// Easter maps every supported year to its Easter Sunday date; the engine
// never computes Easter itself, so the covered years are a hard boundary.
type Table struct {
	Fixed    []FixedHoliday
	Moveable []MoveableHoliday
	Easter   map[int]time.Time
}

// Engine answers workday queries against a Table. It is read-only after
// construction, performs no I/O and is safe for concurrent use.
type Engine struct {
	table   Table
	minYear int
	maxYear int
}

// New creates an engine for the given table. The Easter table must be
// non-empty and cover a contiguous range of years.
func New(table Table) (*Engine, error) {
	if len(table.Easter) == 0 {
		return nil, errors.New("easter table is empty")
	}

	minYear, maxYear := 0, 0
	easter := make(map[int]time.Time, len(table.Easter))
	for year, date := range table.Easter {
		easter[year] = Normalize(date)
		if minYear == 0 || year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}

	for year := minYear; year <= maxYear; year++ {
		if _, ok := easter[year]; !ok {
			return nil, fmt.Errorf("easter table has a gap at year %d", year)
		}
	}

	table.Easter = easter
	return &Engine{table: table, minYear: minYear, maxYear: maxYear}, nil
}

// Normalize truncates a date to midnight UTC. Every date the engine stores
// or compares goes through this, so map lookups are reliable.
func Normalize(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// YearRange returns the inclusive bounds of the supported years.
func (e *Engine) YearRange() (minYear, maxYear int) {
	return e.minYear, e.maxYear
}

func (e *Engine) checkYear(year int) error {
	if year < e.minYear || year > e.maxYear {
		return &UnsupportedYearError{Year: year, MinYear: e.minYear, MaxYear: e.maxYear}
	}
	return nil
}

// HolidaySet returns every holiday of the given year keyed by date, with
// the holiday name as value. The set is rebuilt on each call; it is small
// enough that caching would not pay for itself.
func (e *Engine) HolidaySet(year int) (map[time.Time]string, error) {
	if err := e.checkYear(year); err != nil {
		return nil, err
	}

	easter := e.table.Easter[year]

	set := make(map[time.Time]string, len(e.table.Fixed)+len(e.table.Moveable))
	for _, f := range e.table.Fixed {
		if f.From != 0 && year < f.From {
			continue
		}
		set[time.Date(year, f.Month, f.Day, 0, 0, 0, 0, time.UTC)] = f.Name
	}
	for _, m := range e.table.Moveable {
		set[easter.AddDate(0, 0, m.Offset)] = m.Name
	}

	return set, nil
}

// Holidays returns the holidays of the given year sorted ascending by
// date. Holidays never collide in practice; should they ever, declaration
// order (fixed list first, then moveable offsets) breaks the tie.
func (e *Engine) Holidays(year int) ([]Holiday, error) {
	if err := e.checkYear(year); err != nil {
		return nil, err
	}

	easter := e.table.Easter[year]

	holidays := make([]Holiday, 0, len(e.table.Fixed)+len(e.table.Moveable))
	for _, f := range e.table.Fixed {
		if f.From != 0 && year < f.From {
			continue
		}
		holidays = append(holidays, Holiday{
			Date: time.Date(year, f.Month, f.Day, 0, 0, 0, 0, time.UTC),
			Name: f.Name,
		})
	}
	for _, m := range e.table.Moveable {
		holidays = append(holidays, Holiday{
			Date: easter.AddDate(0, 0, m.Offset),
			Name: m.Name,
		})
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return holidays, nil
}

// IsWorkday reports whether the given date is a working day: Monday to
// Friday and not a public holiday. The date's year must be supported.
func (e *Engine) IsWorkday(date time.Time) (bool, error) {
	day := Normalize(date)

	if err := e.checkYear(day.Year()); err != nil {
		return false, err
	}
	if dateutil.IsWeekend(day) {
		return false, nil
	}

	holidays, err := e.HolidaySet(day.Year())
	if err != nil {
		return false, err
	}

	_, holiday := holidays[day]
	return !holiday, nil
}

// CountWorkdays counts the working days in the inclusive range
// [start, end]. Holiday sets are built once per touched year; the range
// itself is walked one day at a time.
func (e *Engine) CountWorkdays(start, end time.Time) (int, error) {
	from := Normalize(start)
	to := Normalize(end)

	if from.After(to) {
		return 0, &InvalidRangeError{Start: from, End: to}
	}

	holidays := make(map[time.Time]string)
	for year := from.Year(); year <= to.Year(); year++ {
		set, err := e.HolidaySet(year)
		if err != nil {
			return 0, err
		}
		for date, name := range set {
			holidays[date] = name
		}
	}

	count := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if !dateutil.IsWeekday(day) {
			continue
		}
		if _, holiday := holidays[day]; !holiday {
			count++
		}
	}

	return count, nil
}

// AddWorkdays shifts start by n working days, forward for positive n and
// backward for negative. The start date itself is never counted. The walk
// visits every calendar day; once it steps outside the supported years it
// fails with a RangeExhaustedError.
func (e *Engine) AddWorkdays(start time.Time, n int) (time.Time, error) {
	current := Normalize(start)
	if n == 0 {
		return current, nil
	}

	step := 1
	if n < 0 {
		step = -1
	}

	remaining := n * step
	for remaining > 0 {
		current = current.AddDate(0, 0, step)

		workday, err := e.IsWorkday(current)
		if err != nil {
			var unsupported *UnsupportedYearError
			if errors.As(err, &unsupported) {
				return time.Time{}, &RangeExhaustedError{
					Start:   Normalize(start),
					N:       n,
					MinYear: e.minYear,
					MaxYear: e.maxYear,
				}
			}
			return time.Time{}, err
		}
		if workday {
			remaining--
		}
	}

	return current, nil
}
