// Package types provides type definitions for the facility reference
// directory and the matching/search results built on top of it.
package types

import (
	"time"

	"github.com/google/uuid"
)

// FacilityRecord is a row of the reference facility directory. The engine
// treats it as read-only; the ingestion/ETL process owns mutation.
type FacilityRecord struct {
	ID            uuid.UUID `json:"id"`
	CCN           string    `json:"ccn,omitempty"`
	FacilityName  string    `json:"facility_name"`
	StreetAddress string    `json:"street_address,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	ZipCode       string    `json:"zip_code,omitempty"`
	BedCount      int       `json:"bed_count,omitempty"`
	OwnershipType string    `json:"ownership_type,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are populated.
func (f *FacilityRecord) HasCoordinates() bool {
	return f.Latitude != nil && f.Longitude != nil
}
