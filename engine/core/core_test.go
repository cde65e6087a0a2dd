package core_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/campusdir/campusdir/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		City core.Optional[*string] `json:"city"`
		Name core.Optional[string]  `json:"name"`
	}
	t.Run("Should leave absent fields unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.City.Set)
		assert.False(t, p.Name.Set)
	})
	t.Run("Should mark supplied fields as set", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"city":"Boston","name":"x"}`), &p))
		require.True(t, p.City.Set)
		require.NotNil(t, p.City.Value)
		assert.Equal(t, "Boston", *p.City.Value)
		assert.True(t, p.Name.Set)
		assert.Equal(t, "x", p.Name.Value)
	})
	t.Run("Should treat explicit null as set with zero value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"city":null}`), &p))
		assert.True(t, p.City.Set)
		assert.Nil(t, p.City.Value)
		assert.False(t, p.Name.Set)
	})
}

func TestMeta_Stamping(t *testing.T) {
	t.Run("Should set both timestamps on StampNew", func(t *testing.T) {
		var m core.Meta
		now := core.Now()
		m.StampNew(now)
		assert.Equal(t, now, m.CreatedAt)
		assert.Equal(t, now, m.UpdatedAt)
	})
	t.Run("Should only refresh updated_at on Touch", func(t *testing.T) {
		var m core.Meta
		created := core.Now()
		m.StampNew(created)
		later := created.Add(time.Second)
		m.Touch(later)
		assert.Equal(t, created, m.CreatedAt)
		assert.Equal(t, later, m.UpdatedAt)
	})
}

func TestNow_RoundTrip(t *testing.T) {
	t.Run("Should survive a JSON round-trip unchanged", func(t *testing.T) {
		now := core.Now()
		data, err := json.Marshal(now)
		require.NoError(t, err)
		var back time.Time
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, now.Equal(back))
	})
}

func TestDeepCopy(t *testing.T) {
	type inner struct {
		Values []string
	}
	type outer struct {
		Name  *string
		Inner inner
	}
	t.Run("Should detach slices from the source", func(t *testing.T) {
		name := "a"
		src := outer{Name: &name, Inner: inner{Values: []string{"x", "y"}}}
		cp, err := core.DeepCopy(src)
		require.NoError(t, err)
		cp.Inner.Values[0] = "mutated"
		*cp.Name = "mutated"
		assert.Equal(t, "x", src.Inner.Values[0])
		assert.Equal(t, "a", *src.Name)
	})
}
