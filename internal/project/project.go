// Package project persists saved calculator snapshots.
//
// Projects live as one JSON collection in a single file under the config
// directory. Reads and writes replace the whole collection; that is not
// transactional, which is acceptable for a single-user local store.
package project

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tbakker/roofscope/internal/units"
)

// Status tracks a project's lifecycle.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusCalculating Status = "calculating"
	StatusCompleted   Status = "completed"
	StatusArchived    Status = "archived"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusCalculating, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

// Project is a persisted snapshot of a roof configuration.
//
// Configuration fields are denormalized onto the record so a saved project
// stays readable even if the working-state types evolve. RoofType is a
// foreign key into the catalog and relies on catalog key stability.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Status    Status    `json:"status"`

	AreaValue    float64    `json:"area_value"`
	AreaUnit     units.Unit `json:"area_unit"`
	RoofType     string     `json:"roof_type"`
	IncludeSolar bool       `json:"include_solar"`
	Country      string     `json:"country,omitempty"`
}

// NewID generates a project id of the form project_<unix-ms>_<ulid>.
// The timestamp prefix keeps ids humanly sortable; the ULID carries the
// randomness.
func NewID(now time.Time) string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0) //nolint:gosec // IDs need uniqueness, not secrecy.
	id := ulid.MustNew(ulid.Timestamp(now), entropy)
	return fmt.Sprintf("project_%d_%s", now.UnixMilli(), id.String())
}
