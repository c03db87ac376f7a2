package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/dni-robocze/internal/config"
	"github.com/username/dni-robocze/internal/daemon"
	"github.com/username/dni-robocze/pkg/dateutil"
	"go.uber.org/zap"
)

func countCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <start> <end>",
		Short: "Policz dni robocze między dwiema datami (włącznie)",
		Long:  "Count workdays in the inclusive range [start, end]. Dates accept YYYY-MM-DD, dotted and day-first variants, \"today\"/\"dzisiaj\" and signed day offsets like +5.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("Nieprawidłowy format daty: %q. Użyj formatu YYYY-MM-DD.", args[0])
			}
			end, err := dateutil.ParseDate(args[1])
			if err != nil {
				return fmt.Errorf("Nieprawidłowy format daty: %q. Użyj formatu YYYY-MM-DD.", args[1])
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			engine, err := initEngine(cfg)
			if err != nil {
				return err
			}

			result, err := engine.CountWorkdays(start, end)
			if err != nil {
				return err
			}

			if quiet {
				fmt.Println(result)
				return nil
			}
			fmt.Printf("Dni robocze od %s do %s: %d\n",
				start.Format("2006-01-02"), end.Format("2006-01-02"), result)
			return nil
		},
	}

	return cmd
}

func holidaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays <year>",
		Short: "Wyświetl święta ustawowe w danym roku",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("Nieprawidłowy rok: %q.", args[0])
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			engine, err := initEngine(cfg)
			if err != nil {
				return err
			}

			holidays, err := engine.Holidays(year)
			if err != nil {
				return err
			}

			if quiet {
				for _, holiday := range holidays {
					fmt.Printf("%s\t%s\n", holiday.Date.Format("2006-01-02"), holiday.Name)
				}
				return nil
			}

			fmt.Printf("Święta ustawowe w %d roku:\n", year)
			fmt.Printf("%-14s %-16s %s\n", "Data", "Dzień tygodnia", "Nazwa")
			fmt.Println("--------------------------------------------------------")
			for _, holiday := range holidays {
				fmt.Printf("%-14s %-16s %s\n",
					holiday.Date.Format("2006-01-02"),
					dateutil.WeekdayNamePL(holiday.Date),
					holiday.Name)
			}
			return nil
		},
	}

	return cmd
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <start> <days>",
		Short: "Dodaj/odejmij dni robocze od daty",
		Long:  "Shift a date by a signed number of workdays. The start date itself is never counted.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("Nieprawidłowy format daty: %q. Użyj formatu YYYY-MM-DD.", args[0])
			}
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("Nieprawidłowa liczba dni: %q.", args[1])
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			engine, err := initEngine(cfg)
			if err != nil {
				return err
			}

			result, err := engine.AddWorkdays(start, days)
			if err != nil {
				return err
			}

			if quiet {
				fmt.Println(result.Format("2006-01-02"))
				return nil
			}

			direction := "dodaniu"
			if days < 0 {
				direction = "odjęciu"
			}
			abs := days
			if abs < 0 {
				abs = -abs
			}
			fmt.Printf("Po %s %d dni roboczych od %s: %s (%s)\n",
				direction, abs,
				start.Format("2006-01-02"),
				result.Format("2006-01-02"),
				dateutil.WeekdayNamePL(result))
			return nil
		},
	}

	// Allow a bare negative day count ("add 2025-01-10 -3") without "--".
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func daemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Codzienny raport o dniu roboczym (opcjonalnie z ikoną w zasobniku)",
		Long:  "Run in the background and log today's workday status plus the next upcoming holiday once per day at daemon.daily_time. On Windows an optional system tray icon shows the status on demand.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			engine, err := initEngine(cfg)
			if err != nil {
				return err
			}

			hour, minute := cfg.Daemon.GetDailyTime()
			logger.Info("Starting daemon",
				zap.Int("daily_hour", hour),
				zap.Int("daily_minute", minute),
				zap.Bool("system_tray", cfg.Daemon.SystemTray))

			d := daemon.NewDaemon(engine, hour, minute, cfg.Daemon.SystemTray, logger)
			return d.Start()
		},
	}

	return cmd
}
