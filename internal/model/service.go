package model

import "time"

type ServiceKind string

const (
	ServiceManicure ServiceKind = "Manicure"
	ServicePedicure ServiceKind = "Pedicure"
	ServiceCombo    ServiceKind = "Manicure + Pedicure"
	ServiceRemoval  ServiceKind = "Removal"
)

// ServiceEntry is one row of the read-only service catalog.
type ServiceEntry struct {
	Kind            ServiceKind `json:"id"`
	Label           string      `json:"label"`
	DurationMinutes int         `json:"duration"`
}

// ServiceCatalog maps each service kind to its display label and default
// duration. Baked into the build, not runtime-editable.
var ServiceCatalog = []ServiceEntry{
	{Kind: ServiceManicure, Label: "Манікюр", DurationMinutes: 90},
	{Kind: ServicePedicure, Label: "Педикюр", DurationMinutes: 90},
	{Kind: ServiceCombo, Label: "Манікюр + Педикюр", DurationMinutes: 150},
	{Kind: ServiceRemoval, Label: "Зняття", DurationMinutes: 30},
}

// ServiceByKind returns the catalog entry for the given kind.
func ServiceByKind(kind ServiceKind) (ServiceEntry, bool) {
	for _, entry := range ServiceCatalog {
		if entry.Kind == kind {
			return entry, true
		}
	}
	return ServiceEntry{}, false
}

// Valid reports whether the kind is part of the catalog.
func (k ServiceKind) Valid() bool {
	_, ok := ServiceByKind(k)
	return ok
}

// DefaultEnd returns start plus the entry's default duration.
func (e ServiceEntry) DefaultEnd(start time.Time) time.Time {
	return start.Add(time.Duration(e.DurationMinutes) * time.Minute)
}
