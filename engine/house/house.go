// Package house defines the House record: a residence with one embedded
// address and a list of resident UNI tokens. Residents are loose references;
// a listed UNI need not exist in the person store and nothing cascades.
package house

import (
	"github.com/campusdir/campusdir/engine/address"
	"github.com/campusdir/campusdir/engine/core"
	"github.com/google/uuid"
)

// House is the payload form.
type House struct {
	ID      uuid.UUID       `json:"id"`
	Phone   *string         `json:"phone"`
	Address address.Address `json:"address" binding:"required"`
	People  []string        `json:"people"`
}

// Record is the stored representation.
type Record struct {
	House
	core.Meta
}

func (r *Record) RecordID() uuid.UUID      { return r.ID }
func (r *Record) SetRecordID(id uuid.UUID) { r.ID = id }

func (r *Record) Normalize() {
	r.Address.EnsureID()
}

// Patch is a partial update. A supplied people list replaces the stored
// residents wholesale, and a supplied address replaces the embedded address.
type Patch struct {
	Phone   core.Optional[*string]         `json:"phone"`
	Address core.Optional[address.Address] `json:"address"`
	People  core.Optional[[]string]        `json:"people"`
}

func (p *Patch) Apply(r *Record) {
	if p.Phone.Set {
		r.Phone = p.Phone.Value
	}
	if p.Address.Set {
		r.Address = p.Address.Value
	}
	if p.People.Set {
		r.People = p.People.Value
	}
}

// Filter holds the optional constraints for listing houses. PersonUNI is
// existential over the resident list; City and Country test the embedded
// address.
type Filter struct {
	Phone     *string
	PersonUNI *string
	City      *string
	Country   *string
}

func (f *Filter) Match(r Record) bool {
	if f.Phone != nil && (r.Phone == nil || *r.Phone != *f.Phone) {
		return false
	}
	if f.City != nil && !r.Address.CityIs(*f.City) {
		return false
	}
	if f.Country != nil && !r.Address.CountryIs(*f.Country) {
		return false
	}
	if f.PersonUNI != nil && !hasResident(r.People, *f.PersonUNI) {
		return false
	}
	return true
}

func hasResident(people []string, uni string) bool {
	for _, p := range people {
		if p == uni {
			return true
		}
	}
	return false
}
