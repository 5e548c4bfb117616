package octa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twisty/octa"
	"github.com/katalvlaran/twisty/ray"
)

func TestValidate(t *testing.T) {
	require.NoError(t, ray.Validate[octa.Ray]())
}

// TestTurnOne_BodyDiagonal checks that turning about the UFR/DBL diagonal
// cycles the three faces adjacent to UFR.
func TestTurnOne_BodyDiagonal(t *testing.T) {
	assert.Equal(t, octa.UBR, octa.UFL.TurnOne(octa.DBL))
	assert.Equal(t, octa.DFR, octa.UBR.TurnOne(octa.DBL))
	assert.Equal(t, octa.UFL, octa.DFR.TurnOne(octa.DBL))
	assert.Equal(t, octa.UFR, octa.UFR.TurnOne(octa.UFR))
}

func TestAxis(t *testing.T) {
	assert.Equal(t, []octa.Ray{octa.DBL, octa.UFR}, octa.UFR.Axis())
	assert.Equal(t, []octa.Ray{octa.DFR, octa.UBL}, octa.DFR.Axis())
	assert.Equal(t, octa.DBL, octa.UFR.Opposite())
	assert.Len(t, ray.Heads[octa.Ray](), 4)
}

func TestBits(t *testing.T) {
	for _, r := range ray.All[octa.Ray]() {
		ud, fb, rl := r.Bits()
		assert.Equal(t, r, octa.FromBits(ud, fb, rl))
	}
}

// TestCycleCoversTetrahedralGroup checks the cycle length: third turns of
// the octahedron generate the 12 rotations of the tetrahedral group.
func TestCycleCoversTetrahedralGroup(t *testing.T) {
	assert.Len(t, ray.Cycle[octa.Ray](), 11)
}
