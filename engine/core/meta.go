package core

import "time"

// Meta carries the server-managed timestamps shared by every stored record.
// Assignment happens inside the store operations, never at construction time.
type Meta struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Meta) CreatedTime() time.Time { return m.CreatedAt }

func (m *Meta) UpdatedTime() time.Time { return m.UpdatedAt }

// StampNew sets both timestamps to now, so a freshly created record always
// satisfies created_at == updated_at.
func (m *Meta) StampNew(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch refreshes the update timestamp only.
func (m *Meta) Touch(now time.Time) {
	m.UpdatedAt = now
}

// Now returns the current UTC time truncated to microsecond precision so
// stored timestamps survive a JSON round-trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
