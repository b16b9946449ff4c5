// Package export writes the admin list to CSV files for use outside the
// console. Exports operate on projection output, so the file matches exactly
// what the list screen shows with its current search, filter, and sort.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"superadmin/internal/admin"
)

var csvHeader = []string{
	"id", "name", "email", "phone", "status",
	"societies", "last_activity", "created_at", "login_count", "tickets_resolved",
}

// WriteCSV writes the given admins to a timestamped CSV file in dir and
// returns the file path.
func WriteCSV(dir string, admins []admin.Admin, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("admins-%s.csv", now.Format("20060102-150405")))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("export: write header: %w", err)
	}
	for _, a := range admins {
		record := []string{
			strconv.Itoa(a.ID),
			a.Name,
			a.Email,
			a.Phone,
			string(a.Status),
			strconv.Itoa(len(a.AssignedSocieties)),
			a.LastActivity.UTC().Format(time.RFC3339),
			a.CreatedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(a.LoginCount),
			strconv.Itoa(a.TicketsResolved),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("export: write record %d: %w", a.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("export: flush %s: %w", path, err)
	}
	return path, nil
}
