package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"employee-directory/internal/apiclient"
	"employee-directory/internal/export"
	"employee-directory/internal/models"
	"employee-directory/internal/store"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	client *apiclient.Client
	dir    *store.Directory
}

func NewEmployeeHandler(client *apiclient.Client, dir *store.Directory) *EmployeeHandler {
	return &EmployeeHandler{client: client, dir: dir}
}

// List fetches the remote directory and replaces the local collection
// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	token := h.dir.BeginOp("Loading employees...")
	records, err := h.client.List(c.Request.Context())
	if err != nil {
		h.dir.FinishOp(token, apiclient.Message(err))
		c.JSON(statusFor(err), gin.H{"error": apiclient.Message(err)})
		return
	}
	h.dir.ReplaceAll(token, records)
	h.dir.FinishOp(token, fmt.Sprintf("Loaded %d employees", len(records)))
	c.JSON(http.StatusOK, gin.H{"data": h.dir.Snapshot(), "count": len(records)})
}

// Create posts a new employee and prepends it locally with a fresh id
// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var in models.CreateEmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if msg := validateEmployeeFields(in.Name, in.Department, in.Status, in.HireDate); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	token := h.dir.BeginOp("Adding employee...")
	if err := h.client.Create(c.Request.Context(), in); err != nil {
		h.dir.FinishOp(token, apiclient.Message(err))
		c.JSON(statusFor(err), gin.H{"error": apiclient.Message(err)})
		return
	}
	rec, applied := h.dir.Prepend(token, in)
	if !applied {
		h.dir.FinishOp(token, "Superseded by a newer operation")
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer operation"})
		return
	}
	h.dir.FinishOp(token, "Employee added")
	c.JSON(http.StatusCreated, gin.H{"data": rec, "message": "Employee added successfully"})
}

// Update puts changed fields to the remote and replaces the record in place.
// An unknown id is a silent no-op locally but still a success when the
// remote accepted the update.
// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var in models.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if msg := validateEmployeeFields(in.Name, in.Department, in.Status, in.HireDate); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	token := h.dir.BeginOp("Updating employee...")
	if err := h.client.Update(c.Request.Context(), id, in); err != nil {
		h.dir.FinishOp(token, apiclient.Message(err))
		c.JSON(statusFor(err), gin.H{"error": apiclient.Message(err)})
		return
	}
	applied, found := h.dir.Replace(token, id, in)
	if !applied {
		h.dir.FinishOp(token, "Superseded by a newer operation")
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer operation"})
		return
	}
	h.dir.FinishOp(token, "Employee updated")
	c.JSON(http.StatusOK, gin.H{
		"data":    in.Record(id),
		"found":   found,
		"message": "Employee updated successfully",
	})
}

// Delete removes the remote entry and every matching local record
// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	token := h.dir.BeginOp("Deleting employee...")
	if err := h.client.Delete(c.Request.Context(), id); err != nil {
		h.dir.FinishOp(token, apiclient.Message(err))
		c.JSON(statusFor(err), gin.H{"error": apiclient.Message(err)})
		return
	}
	applied, removed := h.dir.RemoveAll(token, id)
	if !applied {
		h.dir.FinishOp(token, "Superseded by a newer operation")
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer operation"})
		return
	}
	h.dir.FinishOp(token, "Employee deleted")
	c.JSON(http.StatusOK, gin.H{"removed": removed, "message": "Employee deleted successfully"})
}

// ExportRemote ships the collection as CSV to the export endpoint, then
// unconditionally serves the same data as a download
// POST /api/employees/export
func (h *EmployeeHandler) ExportRemote(c *gin.Context) {
	records := h.dir.Snapshot()
	csvText, err := export.BuildCSV(records)
	if errors.Is(err, export.ErrNoData) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No employee data to export. Load employees first."})
		return
	}

	token := h.dir.BeginOp("Exporting employees...")
	payload := apiclient.ExportPayload{
		Title:       "Employee Data Export",
		Body:        csvText,
		UserID:      1,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		RecordCount: len(records),
	}
	if err := h.client.ExportRemote(c.Request.Context(), payload); err != nil {
		h.dir.FinishOp(token, apiclient.Message(err))
		c.JSON(statusFor(err), gin.H{"error": apiclient.Message(err)})
		return
	}
	h.dir.FinishOp(token, fmt.Sprintf("Exported %d employees", len(records)))
	serveCSV(c, export.RemoteFilename, csvText)
}

// ExportLocal builds the CSV without any network call
// GET /api/employees/export.csv
func (h *EmployeeHandler) ExportLocal(c *gin.Context) {
	csvText, err := export.BuildCSV(h.dir.Snapshot())
	if errors.Is(err, export.ErrNoData) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No employee data to export. Load employees first."})
		return
	}
	serveCSV(c, export.LocalFilename(time.Now()), csvText)
}

// Status reports the activity flag and message the table view polls
// GET /api/status
func (h *EmployeeHandler) Status(c *gin.Context) {
	loading, message := h.dir.Status()
	c.JSON(http.StatusOK, gin.H{"loading": loading, "message": message})
}

func serveCSV(c *gin.Context, filename, csvText string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}

func validateEmployeeFields(name, department, status, hireDate string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	if !models.IsValidDepartment(department) {
		return "department must be one of the known departments"
	}
	if !models.IsValidStatus(status) {
		return "status must be Active, Inactive or Pending"
	}
	if _, err := time.Parse("2006-01-02", hireDate); err != nil {
		return "hire_date must be YYYY-MM-DD"
	}
	return ""
}

// statusFor maps the client error taxonomy onto response codes. Handling is
// identical across classes; only the code and message differ.
func statusFor(err error) int {
	var se *apiclient.StatusError
	switch {
	case errors.Is(err, apiclient.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, apiclient.ErrNetwork):
		return http.StatusBadGateway
	case errors.As(err, &se):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
