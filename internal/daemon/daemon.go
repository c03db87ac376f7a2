package daemon

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/username/dni-robocze/internal/calendar"
	"github.com/username/dni-robocze/pkg/dateutil"
	"go.uber.org/zap"
)

// Daemon reports the workday status of the current date once per day at a
// configured local time. It carries no calendar logic of its own; every
// answer comes from the engine.
type Daemon struct {
	engine      *calendar.Engine
	dailyHour   int // Hour of the daily report (0-23)
	dailyMinute int // Minute of the daily report (0-59)
	systemTray  bool
	logger      *zap.Logger
	trayApp     *TrayApp
	done        chan struct{}
	stopOnce    sync.Once

	mu      sync.Mutex
	lastRun time.Time // Last successful report, to avoid duplicates
}

// NewDaemon creates a new daemon instance with a daily schedule
func NewDaemon(engine *calendar.Engine, dailyHour, dailyMinute int, systemTray bool, logger *zap.Logger) *Daemon {
	return &Daemon{
		engine:      engine,
		dailyHour:   dailyHour,
		dailyMinute: dailyMinute,
		systemTray:  systemTray,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Start starts the daemon
func (d *Daemon) Start() error {
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			d.runScheduledLogic()
			return nil
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	d.runScheduledLogic()
	return nil
}

// runScheduledLogic runs the daily report loop (called from tray or standalone)
func (d *Daemon) runScheduledLogic() {
	d.logger.Info("Daemon scheduled logic started",
		zap.Int("daily_hour", d.dailyHour),
		zap.Int("daily_minute", d.dailyMinute))

	// If the scheduled time already passed today, report right away
	now := time.Now()
	scheduledToday := time.Date(now.Year(), now.Month(), now.Day(),
		d.dailyHour, d.dailyMinute, 0, 0, time.Local)

	if now.After(scheduledToday) {
		if err := d.runReport(); err != nil {
			d.logger.Error("Initial report failed", zap.Error(err))
		}
	}

	nextRun := d.calculateNextRun()
	d.logger.Info("Next report scheduled",
		zap.Time("next_run", nextRun),
		zap.Duration("wait_duration", time.Until(nextRun)))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Check every minute if it's time to run
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-d.done:
			d.logger.Info("Daemon stopped")
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return

		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			d.Stop()
			return

		case now := <-ticker.C:
			if !d.shouldRunAt(now) {
				continue
			}

			if err := d.runReport(); err != nil {
				d.logger.Error("Report failed", zap.Error(err))
				continue
			}

			nextRun = d.calculateNextRun()
			d.logger.Info("Next report scheduled",
				zap.Time("next_run", nextRun),
				zap.Duration("wait_duration", time.Until(nextRun)))
		}
	}
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.stopOnce.Do(func() {
		close(d.done)
	})
}

// calculateNextRun calculates the next scheduled run time (local timezone)
func (d *Daemon) calculateNextRun() time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(),
		d.dailyHour, d.dailyMinute, 0, 0, time.Local)

	if now.After(today) || now.Equal(today) {
		return today.AddDate(0, 0, 1)
	}
	return today
}

// shouldRunAt checks if the report should run at the given time
func (d *Daemon) shouldRunAt(now time.Time) bool {
	// Within the one-minute ticker window
	return now.Hour() == d.dailyHour && now.Minute() == d.dailyMinute
}

// runReport logs today's status once; repeated calls on the same day are
// no-ops so the tray and the scheduler cannot double-report.
func (d *Daemon) runReport() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	today := dateutil.Today()
	if dateutil.IsSameDay(d.lastRun, today) {
		d.logger.Debug("Already reported today, skipping")
		return nil
	}

	status, err := d.Status()
	if err != nil {
		return fmt.Errorf("failed to build status: %w", err)
	}

	d.logger.Info("Daily status",
		zap.Time("date", today),
		zap.String("status", status))
	if d.trayApp != nil {
		d.trayApp.SetStatus(status)
	}

	d.lastRun = time.Now()
	return nil
}

// Status describes today in user-facing Polish: workday or not, and the
// next upcoming holiday within the supported years.
func (d *Daemon) Status() (string, error) {
	today := dateutil.Today()

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): ", today.Format("2006-01-02"), dateutil.WeekdayNamePL(today))

	workday, err := d.engine.IsWorkday(today)
	switch {
	case err != nil:
		minYear, maxYear := d.engine.YearRange()
		fmt.Fprintf(&b, "poza obsługiwanym zakresem lat (%d-%d)", minYear, maxYear)
		return b.String(), nil
	case workday:
		b.WriteString("dzień roboczy")
	case dateutil.IsWeekend(today):
		b.WriteString("weekend")
	default:
		name := d.holidayName(today)
		fmt.Fprintf(&b, "święto (%s)", name)
	}

	if next, ok := d.nextHoliday(today); ok {
		fmt.Fprintf(&b, "\nNastępne święto: %s %s (%s)",
			next.Date.Format("2006-01-02"), next.Name, dateutil.WeekdayNamePL(next.Date))
	}

	return b.String(), nil
}

func (d *Daemon) holidayName(date time.Time) string {
	set, err := d.engine.HolidaySet(date.Year())
	if err != nil {
		return ""
	}
	return set[calendar.Normalize(date)]
}

// nextHoliday returns the first holiday strictly after the given date,
// clamped to the supported years.
func (d *Daemon) nextHoliday(after time.Time) (calendar.Holiday, bool) {
	day := calendar.Normalize(after)
	minYear, maxYear := d.engine.YearRange()

	startYear := day.Year()
	if startYear < minYear {
		startYear = minYear
	}

	for year := startYear; year <= maxYear; year++ {
		holidays, err := d.engine.Holidays(year)
		if err != nil {
			return calendar.Holiday{}, false
		}
		for _, holiday := range holidays {
			if holiday.Date.After(day) {
				return holiday, true
			}
		}
	}

	return calendar.Holiday{}, false
}
