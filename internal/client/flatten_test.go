package client_test

import (
	"testing"

	"github.com/ecoflow-tools/ecoflow-tool/internal/client"
	"github.com/stretchr/testify/assert"
)

// TestFlatten_Nested verifies the depth-first dotted-path expansion on a
// two-level payload.
func TestFlatten_Nested(t *testing.T) {
	input := map[string]any{
		"bms": map[string]any{
			"soc": 85,
			"temp": map[string]any{
				"max": 28,
			},
		},
	}

	got := client.Flatten(input)

	want := []client.FlatEntry{
		{Key: "bms.soc", Value: 85},
		{Key: "bms.temp.max", Value: 28},
	}
	assert.Equal(t, want, got)
}

// TestFlatten_AlreadyFlat verifies that a one-level mapping passes through
// unchanged apart from the deterministic key ordering.
func TestFlatten_AlreadyFlat(t *testing.T) {
	input := map[string]any{
		"soc":  85,
		"watt": 120.5,
		"name": "delta",
	}

	got := client.Flatten(input)

	want := []client.FlatEntry{
		{Key: "name", Value: "delta"},
		{Key: "soc", Value: 85},
		{Key: "watt", Value: 120.5},
	}
	assert.Equal(t, want, got)
}

// TestFlatten_ScalarListIsLeaf verifies that a list of scalars is emitted
// as a single leaf value rather than expanded per element.
func TestFlatten_ScalarListIsLeaf(t *testing.T) {
	input := map[string]any{
		"cellVol": []any{3301, 3302, 3299},
	}

	got := client.Flatten(input)

	assert.Len(t, got, 1)
	assert.Equal(t, "cellVol", got[0].Key)
	assert.Equal(t, []any{3301, 3302, 3299}, got[0].Value)
}

// TestFlatten_ListOfMappings verifies that lists containing mappings are
// expanded by index.
func TestFlatten_ListOfMappings(t *testing.T) {
	input := map[string]any{
		"packs": []any{
			map[string]any{"soc": 90},
			map[string]any{"soc": 72},
		},
	}

	got := client.Flatten(input)

	want := []client.FlatEntry{
		{Key: "packs.0.soc", Value: 90},
		{Key: "packs.1.soc", Value: 72},
	}
	assert.Equal(t, want, got)
}

// TestFlatten_Deterministic verifies repeated flattening of the same input
// yields an identical ordered result.
func TestFlatten_Deterministic(t *testing.T) {
	input := map[string]any{
		"pd":  map[string]any{"wattsOutSum": 55, "wattsInSum": 0},
		"bms": map[string]any{"soc": 44},
	}

	first := client.Flatten(input)
	second := client.Flatten(input)
	assert.Equal(t, first, second)

	assert.Equal(t, "bms.soc", first[0].Key)
	assert.Equal(t, "pd.wattsInSum", first[1].Key)
	assert.Equal(t, "pd.wattsOutSum", first[2].Key)
}
