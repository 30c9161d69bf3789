package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

func TestParsePartition(t *testing.T) {
	t.Parallel()

	t.Run("accepts the closed set", func(t *testing.T) {
		t.Parallel()
		for value, want := range map[string]vehicle.Partition{
			"all":     vehicle.PartitionAll,
			"active":  vehicle.PartitionActive,
			"history": vehicle.PartitionHistory,
		} {
			got, err := parsePartition(value)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown values instead of listing everything", func(t *testing.T) {
		t.Parallel()
		for _, value := range []string{"bogus", "", "Active", "ALL"} {
			_, err := parsePartition(value)
			assert.Error(t, err, "value %q", value)
		}
	})
}
