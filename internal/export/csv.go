// Package export renders the employee collection as CSV.
package export

import (
	"errors"
	"strings"
	"time"

	"employee-directory/internal/models"
)

// ErrNoData is returned when an export is attempted with nothing loaded.
var ErrNoData = errors.New("no employee data to export")

// Header is the fixed CSV header row.
const Header = "ID,Name,Email,Department,Phone,Hire Date,Status"

// RemoteFilename accompanies the remote export path.
const RemoteFilename = "employees-data.csv"

// LocalFilename names the synchronous download, stamped with the date.
func LocalFilename(now time.Time) string {
	return "employees_export_" + now.UTC().Format("2006-01-02") + ".csv"
}

// BuildCSV renders header plus one row per record, newline-joined. Fields
// are quoted with internal quotes doubled. An empty collection is an error,
// surfaced to the user without any network call.
func BuildCSV(records []models.EmployeeRecord) (string, error) {
	if len(records) == 0 {
		return "", ErrNoData
	}
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, Header)
	for _, r := range records {
		fields := []string{r.ID, r.Name, r.Email, r.Department, r.Phone, r.HireDate, r.Status}
		for i, f := range fields {
			fields[i] = quote(f)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n"), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
