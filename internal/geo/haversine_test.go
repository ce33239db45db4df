package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	testCases := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expectedKm float64
	}{
		{
			name: "same point",
			lat1: 9.9312, lon1: 76.2673,
			lat2: 9.9312, lon2: 76.2673,
			expectedKm: 0,
		},
		{
			name: "one degree of longitude at the equator",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 1,
			expectedKm: 111.19,
		},
		{
			name: "one degree of latitude",
			lat1: 10, lon1: 76,
			lat2: 11, lon2: 76,
			expectedKm: 111.19,
		},
		{
			name: "one degree of longitude at 60N",
			lat1: 60, lon1: 10,
			lat2: 60, lon2: 11,
			expectedKm: 55.60,
		},
		{
			name: "Kochi to Thiruvananthapuram",
			lat1: 9.9312, lon1: 76.2673,
			lat2: 8.5241, lon2: 76.9366,
			expectedKm: 172.9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InDelta(t, tc.expectedKm, got, 0.5)
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	forward := Distance(9.9312, 76.2673, 8.5241, 76.9366)
	backward := Distance(8.5241, 76.9366, 9.9312, 76.2673)
	assert.InDelta(t, forward, backward, 1e-9)
}

// Latitude and longitude are not interchangeable away from the equator: a
// transposed call must give a different answer, which pins the argument order.
func TestDistance_ArgumentOrder(t *testing.T) {
	correct := Distance(60, 10, 60, 11)
	transposed := Distance(10, 60, 11, 60)
	assert.InDelta(t, 55.60, correct, 0.5)
	assert.Greater(t, transposed, correct+10)
}
