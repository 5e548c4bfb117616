// SPDX-License-Identifier: MIT
// Package: twisty/family
//
// kind.go - session type strings and grip layouts.
//
// Recognised session types:
//
//	Cube Nnn(n)          n ≥ 1
//	Octa FTO(n)          n ≥ 1
//	Octa Core
//	Dodeca Pentultimate
//	Dodeca Megaminx
//	RDodeca Nnn(n)       n ≥ 1

package family

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/twisty/cube"
	"github.com/katalvlaran/twisty/dodeca"
	"github.com/katalvlaran/twisty/octa"
	"github.com/katalvlaran/twisty/ray"
	"github.com/katalvlaran/twisty/rdodeca"
)

// MaxPieces bounds the piece count of a sized variant.
const MaxPieces = 1 << 16

// Family names a ray system.
type Family string

const (
	Cube    Family = "Cube"
	Octa    Family = "Octa"
	Dodeca  Family = "Dodeca"
	RDodeca Family = "RDodeca"
)

// Families lists every family in a stable order.
var Families = []Family{Cube, Octa, Dodeca, RDodeca}

// Variant names a grip layout within a family.
type Variant string

const (
	Nnn          Variant = "Nnn"
	FTO          Variant = "FTO"
	Core         Variant = "Core"
	Pentultimate Variant = "Pentultimate"
	Megaminx     Variant = "Megaminx"
)

// variants lists the legal variants per family and whether they carry a
// size.
var variants = map[Family]map[Variant]bool{
	Cube:    {Nnn: true},
	Octa:    {FTO: true, Core: false},
	Dodeca:  {Pentultimate: false, Megaminx: false},
	RDodeca: {Nnn: true},
}

// Kind identifies a concrete puzzle. Size is zero for unsized variants.
type Kind struct {
	Family  Family
	Variant Variant
	Size    int
}

// Parse reads a session type such as "Cube Nnn(3)".
// Complexity: O(len(s)).
func Parse(s string) (Kind, error) {
	fam, rest, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownSessionType, s)
	}
	k := Kind{Family: Family(fam)}

	rest = strings.TrimSpace(rest)
	if name, arg, sized := strings.Cut(rest, "("); sized {
		num, found := strings.CutSuffix(arg, ")")
		if !found {
			return Kind{}, fmt.Errorf("%w: %q: missing ')'", ErrUnknownSessionType, s)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return Kind{}, fmt.Errorf("%w: %q: size: %w", ErrUnknownSessionType, s, err)
		}
		k.Variant, k.Size = Variant(name), n
	} else {
		k.Variant = Variant(rest)
	}

	if err := k.Validate(); err != nil {
		return Kind{}, err
	}

	return k, nil
}

// MustParse is Parse that panics on error. For tests and static tables.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return k
}

// Validate reports whether k names a supported puzzle.
func (k Kind) Validate() error {
	vs, ok := variants[k.Family]
	if !ok {
		return fmt.Errorf("%w: family %q", ErrUnknownSessionType, k.Family)
	}
	sized, ok := vs[k.Variant]
	if !ok {
		return fmt.Errorf("%w: %s has no variant %q", ErrUnknownSessionType, k.Family, k.Variant)
	}
	switch {
	case sized && k.Size < 1:
		return fmt.Errorf("%w: %s %s needs a size of at least 1, got %d", ErrUnknownSessionType, k.Family, k.Variant, k.Size)
	case !sized && k.Size != 0:
		return fmt.Errorf("%w: %s %s takes no size", ErrUnknownSessionType, k.Family, k.Variant)
	}
	if _, ok := k.pieceCount(); !ok {
		return fmt.Errorf("%w: %s has more than %d pieces", ErrUnknownSessionType, k, MaxPieces)
	}

	return nil
}

// String formats k as a session type.
func (k Kind) String() string {
	if k.Size > 0 {
		return fmt.Sprintf("%s %s(%d)", k.Family, k.Variant, k.Size)
	}

	return fmt.Sprintf("%s %s", k.Family, k.Variant)
}

// Grips returns the grip layout of k, core first.
func (k Kind) Grips() [][]int {
	switch k.Variant {
	case Core:
		return [][]int{{0, 0}}
	case Pentultimate:
		return [][]int{{-1, 1}, {1, -1}}
	case Megaminx:
		return Layers(3)
	default:
		return Layers(k.Size)
	}
}

// PieceCount returns the number of pieces of k, or 0 when k is invalid.
func (k Kind) PieceCount() int {
	if k.Validate() != nil {
		return 0
	}
	n, _ := k.pieceCount()

	return n
}

// pieceCount returns grips^heads, stopping once it passes MaxPieces; ok is
// false in that case. Sized variants have Size grips, so Grips is never
// built for an oversized kind.
// Complexity: O(heads).
func (k Kind) pieceCount() (n int, ok bool) {
	grips := k.Size
	if grips == 0 {
		grips = len(k.Grips())
	}
	n = 1
	for i := 0; i < axisHeads(k.Family); i++ {
		n *= grips
		if n > MaxPieces {
			return 0, false
		}
	}

	return n, true
}

func axisHeads(f Family) int {
	switch f {
	case Cube:
		return len(ray.Heads[cube.Ray]())
	case Octa:
		return len(ray.Heads[octa.Ray]())
	case Dodeca:
		return len(ray.Heads[dodeca.Ray]())
	default:
		return len(ray.Heads[rdodeca.Ray]())
	}
}

// Layers returns [k, -k] for k = -n+1, -n+3, ..., n-1. When n is odd the
// core [0, 0] is moved to the front.
// Complexity: O(n).
func Layers(n int) [][]int {
	grips := make([][]int, 0, n)
	for k := -n + 1; k < n; k += 2 {
		grips = append(grips, []int{k, -k})
	}
	if n%2 == 1 {
		mid := n / 2
		core := grips[mid]
		copy(grips[1:mid+1], grips[:mid])
		grips[0] = core
	}

	return grips
}
