package apiclient

import (
	"fmt"
	"math/rand"
	"time"

	"employee-directory/internal/models"
)

// maxListed caps how many remote entries a list pulls into the directory.
const maxListed = 15

var (
	hireDateMin = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	hireDateMax = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Transform reconciles remote users into local employee records. Department
// and status are pure functions of the list position (cyclic lookup); phone
// is synthesized when the remote omits it; the hire date is pseudo-random
// but seeded from the remote id so repeated lists agree.
func Transform(users []models.RemoteUser) []models.EmployeeRecord {
	if len(users) > maxListed {
		users = users[:maxListed]
	}
	records := make([]models.EmployeeRecord, 0, len(users))
	for i, u := range users {
		phone := u.Phone
		if phone == "" {
			phone = synthesizePhone(i)
		}
		records = append(records, models.EmployeeRecord{
			ID:         models.PadID(u.ID),
			Name:       u.Name,
			Email:      u.Email,
			Department: models.Departments[i%len(models.Departments)],
			Phone:      phone,
			HireDate:   hireDate(u.ID),
			Status:     models.Statuses[i%len(models.Statuses)],
		})
	}
	return records
}

func synthesizePhone(index int) string {
	return fmt.Sprintf("+1-555-01%02d", index+1)
}

// hireDate picks a date in [2016-01-01, 2024-12-31], deterministic per id.
func hireDate(id int) string {
	days := int(hireDateMax.Sub(hireDateMin).Hours() / 24)
	rng := rand.New(rand.NewSource(int64(id)))
	return hireDateMin.AddDate(0, 0, rng.Intn(days+1)).Format("2006-01-02")
}
