// Package person defines the Person record: a directory entry identified by
// an institutional UNI token, carrying full copies of its addresses.
package person

import (
	"github.com/campusdir/campusdir/engine/address"
	"github.com/campusdir/campusdir/engine/core"
	"github.com/google/uuid"
)

// Person is the payload form. UNI is an opaque institutional short-code;
// houses reference persons loosely through it, with no integrity checks
// anywhere. Addresses are embedded copies, not references.
type Person struct {
	ID        uuid.UUID         `json:"id"`
	UNI       string            `json:"uni"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Phone     *string           `json:"phone"`
	BirthDate *string           `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Addresses []address.Address `json:"addresses"`
}

// Record is the stored representation.
type Record struct {
	Person
	core.Meta
}

func (r *Record) RecordID() uuid.UUID      { return r.ID }
func (r *Record) SetRecordID(id uuid.UUID) { r.ID = id }

// Normalize assigns identifiers to embedded addresses that arrived without
// one.
func (r *Record) Normalize() {
	for i := range r.Addresses {
		r.Addresses[i].EnsureID()
	}
}

// Patch is a partial update. A supplied addresses list replaces the stored
// collection wholesale; there is no element-level merge.
type Patch struct {
	UNI       core.Optional[string]            `json:"uni"`
	FirstName core.Optional[string]            `json:"first_name"`
	LastName  core.Optional[string]            `json:"last_name"`
	Email     core.Optional[string]            `json:"email"`
	Phone     core.Optional[*string]           `json:"phone"`
	BirthDate core.Optional[*string]           `json:"birth_date"`
	Addresses core.Optional[[]address.Address] `json:"addresses"`
}

func (p *Patch) Apply(r *Record) {
	if p.UNI.Set {
		r.UNI = p.UNI.Value
	}
	if p.FirstName.Set {
		r.FirstName = p.FirstName.Value
	}
	if p.LastName.Set {
		r.LastName = p.LastName.Value
	}
	if p.Email.Set {
		r.Email = p.Email.Value
	}
	if p.Phone.Set {
		r.Phone = p.Phone.Value
	}
	if p.BirthDate.Set {
		r.BirthDate = p.BirthDate.Value
	}
	if p.Addresses.Set {
		r.Addresses = p.Addresses.Value
	}
}

// Filter holds the optional constraints for listing persons. City and Country
// are existential over the embedded addresses and apply independently: a
// person matches city=X country=Y when any address names X and any address
// names Y, not necessarily the same one.
type Filter struct {
	UNI       *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
	City      *string
	Country   *string
}

func (f *Filter) Match(r Record) bool {
	if f.UNI != nil && r.UNI != *f.UNI {
		return false
	}
	if f.FirstName != nil && r.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && r.LastName != *f.LastName {
		return false
	}
	if f.Email != nil && r.Email != *f.Email {
		return false
	}
	if f.Phone != nil && (r.Phone == nil || *r.Phone != *f.Phone) {
		return false
	}
	if f.BirthDate != nil && (r.BirthDate == nil || *r.BirthDate != *f.BirthDate) {
		return false
	}
	if f.City != nil && !anyAddress(r.Addresses, func(a address.Address) bool { return a.CityIs(*f.City) }) {
		return false
	}
	if f.Country != nil && !anyAddress(r.Addresses, func(a address.Address) bool { return a.CountryIs(*f.Country) }) {
		return false
	}
	return true
}

func anyAddress(addrs []address.Address, match func(address.Address) bool) bool {
	for _, a := range addrs {
		if match(a) {
			return true
		}
	}
	return false
}
