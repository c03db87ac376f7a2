package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LoadEasterFile reads an Easter table from a local text file, one entry
// per line:
//
//	# comment
//	2031 2031-04-13
//
// Malformed lines are logged and skipped. The resulting map still has to
// pass New's contiguity check, so a file with gaps fails at construction
// rather than here.
func LoadEasterFile(filePath string, logger *zap.Logger) (map[int]time.Time, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open easter table file: %w", err)
	}
	defer file.Close()

	easter := make(map[int]time.Time)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		year, err := strconv.Atoi(parts[0])
		if err != nil {
			logger.Warn("Failed to parse year", zap.String("year", parts[0]), zap.Error(err))
			continue
		}

		date, err := time.Parse("2006-01-02", parts[1])
		if err != nil {
			logger.Warn("Failed to parse date", zap.String("date", parts[1]), zap.Error(err))
			continue
		}

		if date.Year() != year {
			logger.Warn("Easter date outside its year",
				zap.Int("year", year),
				zap.String("date", parts[1]))
			continue
		}

		easter[year] = date
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading easter table file: %w", err)
	}

	if len(easter) == 0 {
		return nil, fmt.Errorf("no usable entries in easter table file: %s", filePath)
	}

	logger.Info("Easter table file loaded",
		zap.String("file", filePath),
		zap.Int("years", len(easter)))

	return easter, nil
}
