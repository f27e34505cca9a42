package models

import "fmt"

// EmployeeRecord is the local shape a remote directory entry is reconciled into.
// IDs are zero-padded 3-digit strings ("001", "002", ...).
type EmployeeRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hire_date"` // "YYYY-MM-DD"
	Status     string `json:"status"`
}

// Employee statuses. Assigned cyclically by list position during reconciliation.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusPending  = "Pending"
)

// Statuses is the cyclic status lookup table, indexed by list position.
var Statuses = []string{StatusActive, StatusInactive, StatusPending}

// Departments is the fixed department list. Assigned cyclically by list
// position during reconciliation; also the allowed set for create/update.
var Departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"Human Resources",
	"Finance",
	"Operations",
	"Customer Support",
	"Product",
	"Design",
	"Legal",
	"IT",
	"Quality Assurance",
	"Research",
	"Administration",
	"Logistics",
}

// IsValidDepartment reports whether d is one of the fixed departments.
func IsValidDepartment(d string) bool {
	for _, dep := range Departments {
		if dep == d {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known employee status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	default:
		return false
	}
}

// PadID formats a numeric employee id as a zero-padded 3-digit string.
func PadID(n int) string {
	return fmt.Sprintf("%03d", n)
}

// RemoteUser is the shape the remote directory API returns. Only id, name,
// email and phone are consumed; everything else is ignored.
type RemoteUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateEmployeeInput is the payload for creating an employee. The id is
// assigned locally, never supplied by the caller.
type CreateEmployeeInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hire_date" binding:"required"` // "YYYY-MM-DD"
	Status     string `json:"status" binding:"required"`
}

// UpdateEmployeeInput is the payload for updating an employee in place.
type UpdateEmployeeInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hire_date" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

// Record builds an EmployeeRecord from the input under a given id.
func (in CreateEmployeeInput) Record(id string) EmployeeRecord {
	return EmployeeRecord{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
		Phone:      in.Phone,
		HireDate:   in.HireDate,
		Status:     in.Status,
	}
}

// Record builds an EmployeeRecord from the input, keeping the existing id.
func (in UpdateEmployeeInput) Record(id string) EmployeeRecord {
	return EmployeeRecord{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
		Phone:      in.Phone,
		HireDate:   in.HireDate,
		Status:     in.Status,
	}
}
