package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.Equal(t, len(records), cat.Len())

	t.Run("KeysSorted", func(t *testing.T) {
		keys := cat.Keys()
		assert.True(t, sort.StringsAreSorted(keys))
		assert.Len(t, keys, cat.Len())
	})

	t.Run("RecordsInKeyOrder", func(t *testing.T) {
		recs := cat.Records()
		keys := cat.Keys()
		require.Len(t, recs, len(keys))
		for i, rec := range recs {
			assert.Equal(t, keys[i], rec.Key)
		}
	})

	t.Run("CostInvariantHoldsForAllRecords", func(t *testing.T) {
		for _, rec := range cat.Records() {
			assert.InDelta(t, rec.TotalCostPerM2, rec.MaterialCostPerM2+rec.LaborCostPerM2, costEpsilon,
				"record %s", rec.Key)
		}
	})
}

func TestLoadRecordsCostInvariant(t *testing.T) {
	bad := map[string]Record{
		"broken": {
			Key:               "broken",
			MaterialCostPerM2: 50,
			LaborCostPerM2:    30,
			TotalCostPerM2:    100, // should be 80
		},
	}
	_, err := loadRecords(bad)
	require.ErrorIs(t, err, ErrCostInvariant)
	assert.Contains(t, err.Error(), "broken")
}

func TestLookup(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	t.Run("Known", func(t *testing.T) {
		rec, err := cat.Lookup("photocatalytic-coating")
		require.NoError(t, err)
		assert.Equal(t, "Photocatalytic Coating", rec.Name)
		assert.InDelta(t, 1.94, rec.CO2PerM2Year, 1e-12)
	})

	t.Run("UnknownFailsLoudly", func(t *testing.T) {
		_, err := cat.Lookup("thatched")
		require.ErrorIs(t, err, ErrUnknownRoofType)
		assert.Contains(t, err.Error(), "thatched")
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := cat.Lookup("")
		require.ErrorIs(t, err, ErrUnknownRoofType)
	})
}

func TestCheckSchema(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "current version", version: SchemaVersion},
		{name: "minimum supported", version: "1.0.0"},
		{name: "future minor", version: "1.9.3"},
		{name: "next major rejected", version: "2.0.0", wantErr: ErrIncompatibleSchema},
		{name: "pre-1.0 rejected", version: "0.9.0", wantErr: ErrIncompatibleSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSchema(tt.version)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("Garbage", func(t *testing.T) {
		require.Error(t, checkSchema("not-a-version"))
	})
}
