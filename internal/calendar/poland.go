package calendar

import "time"

// christmasEveFrom is the first year Christmas Eve is a public holiday in
// Poland (introduced by the act of 6 December 2024).
const christmasEveFrom = 2025

// polandFixed lists the fixed-date Polish public holidays.
var polandFixed = []FixedHoliday{
	{Month: time.January, Day: 1, Name: "Nowy Rok"},
	{Month: time.January, Day: 6, Name: "Trzech Króli"},
	{Month: time.May, Day: 1, Name: "Święto Pracy"},
	{Month: time.May, Day: 3, Name: "Święto Konstytucji 3 Maja"},
	{Month: time.August, Day: 15, Name: "Wniebowzięcie NMP"},
	{Month: time.November, Day: 1, Name: "Wszystkich Świętych"},
	{Month: time.November, Day: 11, Name: "Święto Niepodległości"},
	{Month: time.December, Day: 24, Name: "Wigilia Bożego Narodzenia", From: christmasEveFrom},
	{Month: time.December, Day: 25, Name: "Boże Narodzenie (pierwszy dzień)"},
	{Month: time.December, Day: 26, Name: "Boże Narodzenie (drugi dzień)"},
}

// polandMoveable lists the Easter-relative Polish public holidays.
var polandMoveable = []MoveableHoliday{
	{Offset: 0, Name: "Wielkanoc"},
	{Offset: 1, Name: "Poniedziałek Wielkanocny"},
	{Offset: 49, Name: "Zielone Świątki"},
	{Offset: 60, Name: "Boże Ciało"},
}

// polandEaster maps each supported year to its Easter Sunday.
var polandEaster = map[int]time.Time{
	2020: time.Date(2020, time.April, 12, 0, 0, 0, 0, time.UTC),
	2021: time.Date(2021, time.April, 4, 0, 0, 0, 0, time.UTC),
	2022: time.Date(2022, time.April, 17, 0, 0, 0, 0, time.UTC),
	2023: time.Date(2023, time.April, 9, 0, 0, 0, 0, time.UTC),
	2024: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	2025: time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC),
	2026: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC),
	2027: time.Date(2027, time.March, 28, 0, 0, 0, 0, time.UTC),
	2028: time.Date(2028, time.April, 16, 0, 0, 0, 0, time.UTC),
	2029: time.Date(2029, time.April, 1, 0, 0, 0, 0, time.UTC),
	2030: time.Date(2030, time.April, 21, 0, 0, 0, 0, time.UTC),
}

// PolandTable returns a fresh copy of the built-in Polish holiday table.
// Callers may replace the Easter map or the threshold year before handing
// the table to New.
func PolandTable() Table {
	easter := make(map[int]time.Time, len(polandEaster))
	for year, date := range polandEaster {
		easter[year] = date
	}

	table := Table{
		Fixed:    make([]FixedHoliday, len(polandFixed)),
		Moveable: make([]MoveableHoliday, len(polandMoveable)),
		Easter:   easter,
	}
	copy(table.Fixed, polandFixed)
	copy(table.Moveable, polandMoveable)

	return table
}

// NewPoland returns an engine preloaded with the built-in Polish table.
func NewPoland() *Engine {
	engine, err := New(PolandTable())
	if err != nil {
		// The built-in table is contiguous; this cannot happen.
		panic(err)
	}
	return engine
}
