// Package address defines the postal address record, the one entity kind that
// is both stored standalone and embedded as a full copy inside Person,
// Organization, and House.
package address

import (
	"github.com/campusdir/campusdir/engine/core"
	"github.com/google/uuid"
)

// Address is the embeddable form: an identifier plus free-text location
// fields. Embedded copies carry no timestamps; the standalone stored form
// served by /addresses is Record.
type Address struct {
	ID         uuid.UUID `json:"id"`
	Street     *string   `json:"street"`
	City       *string   `json:"city"`
	State      *string   `json:"state"`
	PostalCode *string   `json:"postal_code"`
	Country    *string   `json:"country"`
}

// EnsureID assigns a fresh identifier when none was supplied. Parents call
// this for their embedded addresses during normalization.
func (a *Address) EnsureID() {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
}

// CityIs reports whether the address names the given city.
func (a Address) CityIs(city string) bool {
	return a.City != nil && *a.City == city
}

// CountryIs reports whether the address names the given country.
func (a Address) CountryIs(country string) bool {
	return a.Country != nil && *a.Country == country
}

// Record is the standalone stored representation.
type Record struct {
	Address
	core.Meta
}

func (r *Record) RecordID() uuid.UUID      { return r.ID }
func (r *Record) SetRecordID(id uuid.UUID) { r.ID = id }
func (r *Record) Normalize()               {}

// Patch is a partial update: only fields present in the request body are
// applied, and an explicit null clears the field.
type Patch struct {
	Street     core.Optional[*string] `json:"street"`
	City       core.Optional[*string] `json:"city"`
	State      core.Optional[*string] `json:"state"`
	PostalCode core.Optional[*string] `json:"postal_code"`
	Country    core.Optional[*string] `json:"country"`
}

// Apply merges the patch into the record field by field.
func (p *Patch) Apply(r *Record) {
	if p.Street.Set {
		r.Street = p.Street.Value
	}
	if p.City.Set {
		r.City = p.City.Value
	}
	if p.State.Set {
		r.State = p.State.Value
	}
	if p.PostalCode.Set {
		r.PostalCode = p.PostalCode.Value
	}
	if p.Country.Set {
		r.Country = p.Country.Value
	}
}

// Filter holds the optional exact-match constraints for listing addresses.
// Nil fields impose no constraint; supplied fields combine with AND.
type Filter struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// Match reports whether the record satisfies every supplied constraint.
func (f *Filter) Match(r Record) bool {
	if f.Street != nil && (r.Street == nil || *r.Street != *f.Street) {
		return false
	}
	if f.City != nil && (r.City == nil || *r.City != *f.City) {
		return false
	}
	if f.State != nil && (r.State == nil || *r.State != *f.State) {
		return false
	}
	if f.PostalCode != nil && (r.PostalCode == nil || *r.PostalCode != *f.PostalCode) {
		return false
	}
	if f.Country != nil && (r.Country == nil || *r.Country != *f.Country) {
		return false
	}
	return true
}
