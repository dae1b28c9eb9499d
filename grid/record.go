// Package grid is the data engine behind the roster table: it holds the
// full record set, derives the filtered and sorted view, tracks the
// selection and computes which slice of the view a viewport must render.
//
// Nothing in this package renders anything. All functions other than the
// Controller methods are pure and operate on snapshots.
package grid

import (
	"fmt"
	"strings"
)

type Location string

const (
	LocationKonoha Location = "Konoha"
	LocationSuna   Location = "Suna"
	LocationKiri   Location = "Kiri"
	LocationIwa    Location = "Iwa"
	LocationKumo   Location = "Kumo"
)

// Locations lists every Location in display order.
var Locations = []Location{LocationKonoha, LocationSuna, LocationKiri, LocationIwa, LocationKumo}

type Health string

const (
	HealthHealthy  Health = "Healthy"
	HealthInjured  Health = "Injured"
	HealthCritical Health = "Critical"
)

// HealthStatuses lists every Health value in display order.
var HealthStatuses = []Health{HealthHealthy, HealthInjured, HealthCritical}

// ParseLocation matches s case-insensitively against the known locations.
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	for _, l := range Locations {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown location %q", s)
}

// ParseHealth matches s case-insensitively against the known health statuses.
func ParseHealth(s string) (Health, error) {
	s = strings.TrimSpace(s)
	for _, h := range HealthStatuses {
		if strings.EqualFold(s, string(h)) {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown health status %q", s)
}

// Record is one row of the roster. ID is the identity; only Viewed changes
// during a session.
type Record struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Health   Health   `json:"health"`
	Power    int      `json:"power"`
	Viewed   bool     `json:"viewed"`
}

// Field names a record column that can be sorted on.
type Field string

const (
	FieldNone     Field = ""
	FieldID       Field = "id"
	FieldName     Field = "name"
	FieldLocation Field = "location"
	FieldHealth   Field = "health"
	FieldPower    Field = "power"
	FieldViewed   Field = "viewed"
)

// Value returns the typed value of field: string, int or bool. Unknown
// fields return nil.
func (r Record) Value(field Field) any {
	switch field {
	case FieldID:
		return r.ID
	case FieldName:
		return r.Name
	case FieldLocation:
		return string(r.Location)
	case FieldHealth:
		return string(r.Health)
	case FieldPower:
		return r.Power
	case FieldViewed:
		return r.Viewed
	default:
		return nil
	}
}

// IDs returns the ids of records in order.
func IDs(records []Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
