package export

import (
	"strings"
	"testing"
	"time"

	"employee-directory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSVEmptyCollection(t *testing.T) {
	_, err := BuildCSV(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = BuildCSV([]models.EmployeeRecord{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuildCSVRows(t *testing.T) {
	csvText, err := BuildCSV([]models.EmployeeRecord{
		{ID: "001", Name: "Jane Doe", Email: "jane@example.com", Department: "Engineering",
			Phone: "+1-555-0101", HireDate: "2020-01-15", Status: models.StatusActive},
		{ID: "002", Name: "John Roe", Email: "john@example.com", Department: "Sales",
			Phone: "+1-555-0102", HireDate: "2018-07-03", Status: models.StatusPending},
	})
	require.NoError(t, err)

	lines := strings.Split(csvText, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Name,Email,Department,Phone,Hire Date,Status", lines[0])
	assert.Equal(t, `"001","Jane Doe","jane@example.com","Engineering","+1-555-0101","2020-01-15","Active"`, lines[1])
	assert.Equal(t, `"002","John Roe","john@example.com","Sales","+1-555-0102","2018-07-03","Pending"`, lines[2])
}

func TestBuildCSVDoublesInternalQuotes(t *testing.T) {
	csvText, err := BuildCSV([]models.EmployeeRecord{
		{ID: "001", Name: `Ann "Andy" Smith`, Email: "ann@example.com"},
	})
	require.NoError(t, err)
	assert.Contains(t, csvText, `"Ann ""Andy"" Smith"`)
}

func TestFilenames(t *testing.T) {
	now := time.Date(2025, 3, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "employees_export_2025-03-09.csv", LocalFilename(now))
	assert.Equal(t, "employees-data.csv", RemoteFilename)
}
