// Package store owns the in-memory employee collection. The collection is a
// client-side mirror of the last server-acknowledged state; it does not
// survive a restart.
package store

import (
	"sync"

	"employee-directory/internal/models"
)

// Directory holds the ordered employee collection, the activity status shown
// to the user, and the id counter for locally created records.
//
// Every operation takes a token from BeginOp before its network call and
// presents it when mutating. Only the latest-issued token may mutate, so two
// overlapping operations resolve deterministically: the newer one wins and
// the stale completion is dropped. The id counter only ever moves forward,
// so ids are never reissued after a delete.
type Directory struct {
	mu      sync.RWMutex
	records []models.EmployeeRecord
	nextID  int
	issued  uint64
	loading bool
	status  string
}

func New() *Directory {
	return &Directory{}
}

// BeginOp issues a fresh operation token and flips the activity status to
// loading with the given message.
func (d *Directory) BeginOp(status string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.issued++
	d.loading = true
	d.status = status
	return d.issued
}

// FinishOp clears the loading flag and records the final status message.
// Stale tokens are ignored so a finished older operation cannot clear the
// flag out from under a newer in-flight one.
func (d *Directory) FinishOp(token uint64, status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.issued {
		return
	}
	d.loading = false
	d.status = status
}

// Report updates the in-flight status message (retry counters). Progress
// always belongs to the latest-issued operation, so no token is needed.
func (d *Directory) Report(status string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
}

// Status returns the loading flag and the current status message.
func (d *Directory) Status() (bool, string) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loading, d.status
}

// ReplaceAll swaps in a freshly listed collection and reseeds the id counter
// from its length. Returns false when the token is stale.
func (d *Directory) ReplaceAll(token uint64, records []models.EmployeeRecord) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.issued {
		return false
	}
	d.records = append([]models.EmployeeRecord(nil), records...)
	if len(d.records) > d.nextID {
		d.nextID = len(d.records)
	}
	return true
}

// Prepend allocates the next id, builds the record from the input and puts
// it at the front of the collection. Returns the record and whether the
// mutation was applied.
func (d *Directory) Prepend(token uint64, in models.CreateEmployeeInput) (models.EmployeeRecord, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.issued {
		return models.EmployeeRecord{}, false
	}
	d.nextID++
	rec := in.Record(models.PadID(d.nextID))
	d.records = append([]models.EmployeeRecord{rec}, d.records...)
	return rec, true
}

// Replace swaps the first record matching id with the updated fields. A
// missing id is a silent no-op: applied is still true (the remote accepted
// the update), found is false.
func (d *Directory) Replace(token uint64, id string, in models.UpdateEmployeeInput) (applied, found bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.issued {
		return false, false
	}
	for i := range d.records {
		if d.records[i].ID == id {
			d.records[i] = in.Record(id)
			return true, true
		}
	}
	return true, false
}

// RemoveAll deletes every record matching id and reports how many went.
func (d *Directory) RemoveAll(token uint64, id string) (applied bool, removed int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.issued {
		return false, 0
	}
	kept := d.records[:0]
	for _, r := range d.records {
		if r.ID == id {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	d.records = kept
	return true, removed
}

// Snapshot returns a copy of the collection in order.
func (d *Directory) Snapshot() []models.EmployeeRecord {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.EmployeeRecord(nil), d.records...)
}

// Len returns the current collection size.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}
