package family_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twisty/family"
	"github.com/katalvlaran/twisty/puzzle"
	"github.com/katalvlaran/twisty/session"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want family.Kind
	}{
		{"Cube Nnn(3)", family.Kind{Family: family.Cube, Variant: family.Nnn, Size: 3}},
		{"Cube Nnn(1)", family.Kind{Family: family.Cube, Variant: family.Nnn, Size: 1}},
		{"Octa FTO(2)", family.Kind{Family: family.Octa, Variant: family.FTO, Size: 2}},
		{"Octa Core", family.Kind{Family: family.Octa, Variant: family.Core}},
		{"Dodeca Pentultimate", family.Kind{Family: family.Dodeca, Variant: family.Pentultimate}},
		{"Dodeca Megaminx", family.Kind{Family: family.Dodeca, Variant: family.Megaminx}},
		{"RDodeca Nnn(2)", family.Kind{Family: family.RDodeca, Variant: family.Nnn, Size: 2}},
		{"  Cube Nnn(4) ", family.Kind{Family: family.Cube, Variant: family.Nnn, Size: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := family.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, "Cube Nnn(3)", family.MustParse("Cube Nnn(3)").String())
	assert.Equal(t, "Octa Core", family.MustParse("Octa Core").String())
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{
		"", "Cube", "Cube Nnn", "Cube Nnn(0)", "Cube Nnn(-2)", "Cube Nnn(x)",
		"Cube Nnn(3", "Cube Megaminx", "Octa Core(2)", "Tetra Nnn(2)",
		"Dodeca Pentultimate(1)", "Cube Nnn(41)", "Cube Nnn(100000)",
		"RDodeca Nnn(7)", "Octa FTO(17)", "Cube Nnn(9223372036854775807)",
	} {
		_, err := family.Parse(in)
		assert.ErrorIs(t, err, family.ErrUnknownSessionType, in)
	}
	assert.Panics(t, func() { family.MustParse("nope") })
}

func TestKind_PieceLimit(t *testing.T) {
	for in, want := range map[string]int{
		"Cube Nnn(40)":        64000,
		"RDodeca Nnn(6)":      46656,
		"Octa FTO(16)":        family.MaxPieces,
		"Dodeca Megaminx":     729,
		"Dodeca Pentultimate": 64,
		"Octa Core":           1,
	} {
		k, err := family.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, k.PieceCount(), in)
	}

	_, err := family.New(family.Kind{Family: family.Cube, Variant: family.Nnn, Size: 100000})
	assert.ErrorIs(t, err, family.ErrUnknownSessionType)
	assert.Zero(t, family.Kind{Family: family.Cube, Variant: family.Nnn, Size: 41}.PieceCount())
}

func TestLayers(t *testing.T) {
	assert.Equal(t, [][]int{{0, 0}}, family.Layers(1))
	assert.Equal(t, [][]int{{-1, 1}, {1, -1}}, family.Layers(2))
	assert.Equal(t, [][]int{{0, 0}, {-2, 2}, {2, -2}}, family.Layers(3))
	assert.Equal(t, [][]int{{-3, 3}, {-1, 1}, {1, -1}, {3, -3}}, family.Layers(4))
	assert.Equal(t, [][]int{{0, 0}, {-4, 4}, {-2, 2}, {2, -2}, {4, -4}}, family.Layers(5))
}

func TestKindGrips(t *testing.T) {
	assert.Equal(t, [][]int{{0, 0}}, family.MustParse("Octa Core").Grips())
	assert.Equal(t, [][]int{{-1, 1}, {1, -1}}, family.MustParse("Dodeca Pentultimate").Grips())
	assert.Equal(t, family.Layers(3), family.MustParse("Dodeca Megaminx").Grips())
	assert.Equal(t, family.Layers(2), family.MustParse("Octa FTO(2)").Grips())
}

func TestNew_PieceCounts(t *testing.T) {
	cases := map[string]int{
		"Cube Nnn(3)":         27,
		"Octa FTO(2)":         16,
		"Octa Core":           1,
		"Dodeca Pentultimate": 64,
		"Dodeca Megaminx":     729,
		"RDodeca Nnn(2)":      64,
	}
	for in, want := range cases {
		g, err := family.New(family.MustParse(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, g.PieceCount(), in)
		assert.True(t, g.IsSolved(), in)
		assert.Equal(t, in, g.Kind().String())
	}

	_, err := family.New(family.Kind{Family: "Tetra", Variant: family.Nnn, Size: 2})
	assert.ErrorIs(t, err, family.ErrUnknownSessionType)
}

func TestGame_Twist(t *testing.T) {
	g, err := family.New(family.MustParse("Cube Nnn(2)"))
	require.NoError(t, err)
	assert.Equal(t, []string{"U", "D", "F", "B", "R", "L"}, g.RayNames())

	require.NoError(t, g.Twist("R", 1, [][]int{{1, -1}}))
	assert.Equal(t, []int{0, 1, 2, 3, 5, 7, 4, 6}, g.Permutation())
	assert.False(t, g.IsSolved())

	assert.ErrorIs(t, g.Twist("X", 1, [][]int{{1, -1}}), family.ErrUnknownRay)
	assert.ErrorIs(t, g.Twist("R", 1, [][]int{{0, 0}}), family.ErrUnknownGrip)
	assert.ErrorIs(t, g.Twist("R", 1, nil), family.ErrNoGrips)

	twists, undone := g.History()
	assert.Equal(t, 1, twists)
	assert.Equal(t, 0, undone)

	require.NoError(t, g.Undo())
	assert.True(t, g.IsSolved())
	require.NoError(t, g.Redo())
	require.NoError(t, g.DoInverse())
	assert.ErrorIs(t, g.Redo(), session.ErrNoRedoAvailable)
}

func TestGame_LogLoad(t *testing.T) {
	for _, kind := range []string{"Cube Nnn(3)", "Octa FTO(3)", "Dodeca Megaminx", "RDodeca Nnn(3)"} {
		t.Run(kind, func(t *testing.T) {
			g, err := family.New(family.MustParse(kind))
			require.NoError(t, err)
			g.Scramble(rand.New(rand.NewSource(4)), puzzle.WithMoves(15))
			names := g.RayNames()
			require.NoError(t, g.Twist(names[0], 1, g.Grips()[1:2]))
			require.NoError(t, g.Twist(names[3], -1, g.Grips()[:1]))

			log := g.Log()
			assert.Equal(t, kind, log.SessionType)

			back, err := family.Load(log)
			require.NoError(t, err)
			assert.Equal(t, g.ID(), back.ID())
			assert.Equal(t, g.Permutation(), back.Permutation())
			assert.Equal(t, g.Log(), back.Log())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := family.Load(session.Log{SessionType: "Hexa Nnn(2)"})
	assert.ErrorIs(t, err, family.ErrUnknownSessionType)

	g, err := family.New(family.MustParse("Cube Nnn(2)"))
	require.NoError(t, err)
	log := g.Log()
	log.SessionType = "Cube Nnn(3)"
	_, err = family.Load(log)
	assert.ErrorIs(t, err, session.ErrInvalidReplayData)
}

func TestValidateRaySystems(t *testing.T) {
	assert.NoError(t, family.ValidateRaySystems())
}
