package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetLoaded(t *testing.T) {
	assert.Len(t, Districts(), 64)
}

func TestDistrictByName(t *testing.T) {
	d, ok := DistrictByName("Dhaka")
	require.True(t, ok)
	assert.Equal(t, "Dhaka", d.Name)

	// case-insensitive
	d2, ok := DistrictByName("  dhaka ")
	require.True(t, ok)
	assert.Equal(t, d.ID, d2.ID)

	_, ok = DistrictByName("Atlantis")
	assert.False(t, ok)
}

func TestUpazilasOfMatchForeignKey(t *testing.T) {
	// Every district's filtered set must only contain its own upazilas.
	for _, d := range Districts() {
		for _, u := range UpazilasOf(d.ID) {
			assert.Equal(t, d.ID, u.DistrictID, "upazila %s leaked into district %s", u.Name, d.Name)
		}
	}
}

func TestEveryUpazilaReachable(t *testing.T) {
	total := 0
	for _, d := range Districts() {
		total += len(UpazilasOf(d.ID))
	}
	assert.Equal(t, 491, total)
}

func TestBelongs(t *testing.T) {
	assert.True(t, Belongs("Dhaka", "Savar"))
	assert.True(t, Belongs("dhaka", "savar"))
	assert.False(t, Belongs("Dhaka", "Sitakunda")) // Chattogram upazila
	assert.False(t, Belongs("Nowhere", "Savar"))
	assert.False(t, Belongs("Dhaka", ""))
}
