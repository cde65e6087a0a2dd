// Package organization defines the Organization record: a named unit with a
// validated contact email and exactly one embedded address.
package organization

import (
	"fmt"

	"github.com/campusdir/campusdir/engine/address"
	"github.com/campusdir/campusdir/engine/core"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Organization is the payload form. Name, email, and the embedded address are
// required on create; the email must be a well-formed address.
type Organization struct {
	ID      uuid.UUID       `json:"id"`
	OrgName string          `json:"org_name" binding:"required"`
	Email   string          `json:"email"    binding:"required,email"`
	Phone   *string         `json:"phone"`
	Address address.Address `json:"address"  binding:"required"`
}

// Record is the stored representation.
type Record struct {
	Organization
	core.Meta
}

func (r *Record) RecordID() uuid.UUID      { return r.ID }
func (r *Record) SetRecordID(id uuid.UUID) { r.ID = id }

func (r *Record) Normalize() {
	r.Address.EnsureID()
}

// Patch is a partial update. A supplied address replaces the embedded address
// wholesale.
type Patch struct {
	OrgName core.Optional[string]          `json:"org_name"`
	Email   core.Optional[string]          `json:"email"`
	Phone   core.Optional[*string]         `json:"phone"`
	Address core.Optional[address.Address] `json:"address"`
}

// Validate enforces the email format when the patch explicitly supplies one.
func (p *Patch) Validate() error {
	if p.Email.Set {
		if err := validate.Var(p.Email.Value, "required,email"); err != nil {
			return fmt.Errorf("invalid email %q: %w", p.Email.Value, err)
		}
	}
	return nil
}

func (p *Patch) Apply(r *Record) {
	if p.OrgName.Set {
		r.OrgName = p.OrgName.Value
	}
	if p.Email.Set {
		r.Email = p.Email.Value
	}
	if p.Phone.Set {
		r.Phone = p.Phone.Value
	}
	if p.Address.Set {
		r.Address = p.Address.Value
	}
}

// Filter holds the optional constraints for listing organizations. City and
// Country test the single embedded address.
type Filter struct {
	OrgName *string
	Email   *string
	Phone   *string
	City    *string
	Country *string
}

func (f *Filter) Match(r Record) bool {
	if f.OrgName != nil && r.OrgName != *f.OrgName {
		return false
	}
	if f.Email != nil && r.Email != *f.Email {
		return false
	}
	if f.Phone != nil && (r.Phone == nil || *r.Phone != *f.Phone) {
		return false
	}
	if f.City != nil && !r.Address.CityIs(*f.City) {
		return false
	}
	if f.Country != nil && !r.Address.CountryIs(*f.Country) {
		return false
	}
	return true
}
