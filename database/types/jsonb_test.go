package databasetypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gate struct {
	Mode       string             `json:"mode"`
	Thresholds map[string]float64 `json:"thresholds"`
}

func TestJSONB(t *testing.T) {
	t.Run("should roundtrip a struct through the database representation", func(t *testing.T) {
		j := MustJSONBFromStruct(gate{Mode: "both", Thresholds: map[string]float64{"HIGH": 2}})
		value, err := j.Value()
		require.NoError(t, err)

		var scanned JSONB
		require.NoError(t, scanned.Scan(value))

		var g gate
		require.NoError(t, scanned.Decode(&g))
		assert.Equal(t, "both", g.Mode)
		assert.Equal(t, 2.0, g.Thresholds["HIGH"])
	})

	t.Run("should scan strings and null", func(t *testing.T) {
		var j JSONB
		require.NoError(t, j.Scan(`{"a":1}`))
		assert.Equal(t, float64(1), j["a"])

		require.NoError(t, j.Scan(nil))
		assert.Nil(t, j)
	})

	t.Run("should decode a nil document into the zero value", func(t *testing.T) {
		var j JSONB
		var g gate
		require.NoError(t, j.Decode(&g))
		assert.Empty(t, g.Mode)
	})

	t.Run("should reject unsupported types", func(t *testing.T) {
		var j JSONB
		assert.Error(t, j.Scan(42))
	})
}
