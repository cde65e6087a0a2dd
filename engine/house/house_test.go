package house_test

import (
	"encoding/json"
	"testing"

	"github.com/campusdir/campusdir/engine/address"
	"github.com/campusdir/campusdir/engine/house"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPatch_Apply(t *testing.T) {
	t.Run("Should replace the resident list wholesale", func(t *testing.T) {
		var patch house.Patch
		require.NoError(t, json.Unmarshal([]byte(`{"people":["cd5678"]}`), &patch))
		rec := house.Record{House: house.House{People: []string{"ab1234", "ef9012"}}}
		patch.Apply(&rec)
		assert.Equal(t, []string{"cd5678"}, rec.People)
	})
	t.Run("Should clear residents on an explicit null or empty list", func(t *testing.T) {
		var patch house.Patch
		require.NoError(t, json.Unmarshal([]byte(`{"people":[]}`), &patch))
		rec := house.Record{House: house.House{People: []string{"ab1234"}}}
		patch.Apply(&rec)
		assert.Empty(t, rec.People)
	})
	t.Run("Should keep residents when the field is absent", func(t *testing.T) {
		var patch house.Patch
		require.NoError(t, json.Unmarshal([]byte(`{"phone":"555-0100"}`), &patch))
		rec := house.Record{House: house.House{People: []string{"ab1234"}}}
		patch.Apply(&rec)
		assert.Equal(t, []string{"ab1234"}, rec.People)
		assert.Equal(t, "555-0100", *rec.Phone)
	})
}

func TestFilter_Match(t *testing.T) {
	rec := house.Record{House: house.House{
		Phone:   strPtr("555-0100"),
		Address: address.Address{City: strPtr("NYC"), Country: strPtr("US")},
		People:  []string{"ab1234", "cd5678"},
	}}
	t.Run("Should match a resident UNI existentially", func(t *testing.T) {
		filter := house.Filter{PersonUNI: strPtr("cd5678")}
		assert.True(t, filter.Match(rec))
		filter.PersonUNI = strPtr("zz9999")
		assert.False(t, filter.Match(rec))
	})
	t.Run("Should combine resident and address constraints with AND", func(t *testing.T) {
		filter := house.Filter{PersonUNI: strPtr("ab1234"), City: strPtr("NYC")}
		assert.True(t, filter.Match(rec))
		filter.City = strPtr("Boston")
		assert.False(t, filter.Match(rec))
	})
}
