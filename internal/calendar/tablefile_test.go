package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easter.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write table file: %v", err)
	}
	return path
}

func TestLoadEasterFile(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	path := writeTableFile(t, `# synthetic three-year table
2031 2031-04-13
2032 2032-03-28

2033 2033-04-17
`)

	easter, err := LoadEasterFile(path, logger)
	if err != nil {
		t.Fatalf("LoadEasterFile() error = %v", err)
	}

	if len(easter) != 3 {
		t.Fatalf("LoadEasterFile() loaded %d years, want 3", len(easter))
	}

	want := time.Date(2032, time.March, 28, 0, 0, 0, 0, time.UTC)
	if !easter[2032].Equal(want) {
		t.Errorf("easter[2032] = %s, want %s", easter[2032].Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestLoadEasterFile_SkipsBadLines(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	path := writeTableFile(t, `2031 2031-04-13
not-a-year 2031-04-13
2032 31.03.2032
2032 2033-04-17
2033
2033 2033-04-17
`)

	easter, err := LoadEasterFile(path, logger)
	if err != nil {
		t.Fatalf("LoadEasterFile() error = %v", err)
	}

	// Only the two well-formed lines whose date matches its year survive
	if len(easter) != 2 {
		t.Errorf("LoadEasterFile() loaded %d years, want 2", len(easter))
	}
	if _, ok := easter[2032]; ok {
		t.Error("LoadEasterFile() kept an entry whose date lies outside its year")
	}
}

func TestLoadEasterFile_Errors(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadEasterFile(filepath.Join(t.TempDir(), "absent.txt"), logger); err == nil {
			t.Error("LoadEasterFile() expected error for a missing file, got nil")
		}
	})

	t.Run("no usable entries", func(t *testing.T) {
		path := writeTableFile(t, "# comments only\n")
		if _, err := LoadEasterFile(path, logger); err == nil {
			t.Error("LoadEasterFile() expected error for an empty table, got nil")
		}
	})
}

func TestLoadEasterFile_FeedsEngine(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	path := writeTableFile(t, `2031 2031-04-13
2032 2032-03-28
`)

	easter, err := LoadEasterFile(path, logger)
	if err != nil {
		t.Fatalf("LoadEasterFile() error = %v", err)
	}

	table := PolandTable()
	table.Easter = easter

	engine, err := New(table)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	minYear, maxYear := engine.YearRange()
	if minYear != 2031 || maxYear != 2032 {
		t.Errorf("YearRange() = (%d, %d), want (2031, 2032)", minYear, maxYear)
	}

	// 2031-04-14 is Easter Monday per the loaded table
	set, err := engine.HolidaySet(2031)
	if err != nil {
		t.Fatalf("HolidaySet(2031) error = %v", err)
	}
	if name := set[time.Date(2031, time.April, 14, 0, 0, 0, 0, time.UTC)]; name != "Poniedziałek Wielkanocny" {
		t.Errorf("holiday on 2031-04-14 = %q, want Poniedziałek Wielkanocny", name)
	}
}
