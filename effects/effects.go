// Package effects packs the six tick-down buff counters, the monotone
// inner-quiet counter and the trained-perfection tri-state flag into a
// single 32-bit word (spec.md §4.6). The packing is load-bearing, not
// cosmetic: state hashing and visited-set memory in the macro solver
// (package macro) depend on Effects being a small, comparable value, the
// same way the teacher keeps core.Vertex/core.Edge as flat comparable
// structs rather than pointer-heavy types.
package effects

// Effects is a packed bitfield. Each tick-down counter gets 4 bits
// (0-8 fits; the extra headroom costs nothing and keeps shifts uniform),
// inner_quiet gets 4 bits (0-10 fits), and trained-perfection gets 2 bits
// for its three states. 30 of 32 bits are used; the top 2 are reserved.
type Effects uint32

const (
	bitsPerCounter = 4
	counterMask    = Effects(1)<<bitsPerCounter - 1

	wasteNotShift      = 0
	venerationShift    = wasteNotShift + bitsPerCounter
	innovationShift    = venerationShift + bitsPerCounter
	greatStridesShift  = innovationShift + bitsPerCounter
	muscleMemoryShift  = greatStridesShift + bitsPerCounter
	manipulationShift  = muscleMemoryShift + bitsPerCounter
	innerQuietShift    = manipulationShift + bitsPerCounter
	trainedPerfShift   = innerQuietShift + bitsPerCounter
	trainedPerfMask    = Effects(1)<<2 - 1
	maxCounter         = 8
	maxInnerQuiet      = 10
)

// SingleUse is the tri-state lifecycle of the trained-perfection flag.
type SingleUse uint8

const (
	Available SingleUse = iota
	Active
	Used
)

func getCounter(e Effects, shift uint) int {
	return int((e >> shift) & counterMask)
}

func setCounter(e Effects, shift uint, v int) Effects {
	if v < 0 {
		v = 0
	}
	if v > maxCounter {
		v = maxCounter
	}
	cleared := e &^ (counterMask << shift)

	return cleared | Effects(v)<<shift
}

func (e Effects) WasteNot() int     { return getCounter(e, wasteNotShift) }
func (e Effects) Veneration() int   { return getCounter(e, venerationShift) }
func (e Effects) Innovation() int   { return getCounter(e, innovationShift) }
func (e Effects) GreatStrides() int { return getCounter(e, greatStridesShift) }
func (e Effects) MuscleMemory() int { return getCounter(e, muscleMemoryShift) }
func (e Effects) Manipulation() int { return getCounter(e, manipulationShift) }

func (e Effects) SetWasteNot(v int) Effects     { return setCounter(e, wasteNotShift, v) }
func (e Effects) SetVeneration(v int) Effects   { return setCounter(e, venerationShift, v) }
func (e Effects) SetInnovation(v int) Effects   { return setCounter(e, innovationShift, v) }
func (e Effects) SetGreatStrides(v int) Effects { return setCounter(e, greatStridesShift, v) }
func (e Effects) SetMuscleMemory(v int) Effects { return setCounter(e, muscleMemoryShift, v) }
func (e Effects) SetManipulation(v int) Effects { return setCounter(e, manipulationShift, v) }

// InnerQuiet returns the monotone stack counter (0-10).
func (e Effects) InnerQuiet() int {
	return int((e >> innerQuietShift) & counterMask)
}

// SetInnerQuiet clamps to [0, 10].
func (e Effects) SetInnerQuiet(v int) Effects {
	if v < 0 {
		v = 0
	}
	if v > maxInnerQuiet {
		v = maxInnerQuiet
	}
	cleared := e &^ (counterMask << innerQuietShift)

	return cleared | Effects(v)<<innerQuietShift
}

// TrainedPerfection returns the tri-state single-use flag.
func (e Effects) TrainedPerfection() SingleUse {
	return SingleUse((e >> trainedPerfShift) & trainedPerfMask)
}

// SetTrainedPerfection overwrites the tri-state flag.
func (e Effects) SetTrainedPerfection(s SingleUse) Effects {
	cleared := e &^ (trainedPerfMask << trainedPerfShift)

	return cleared | Effects(s)<<trainedPerfShift
}

// TickDown decrements every tick-down counter by 1 (floor 0). inner_quiet
// and trained_perfection are not tick-down counters and are untouched.
func (e Effects) TickDown() Effects {
	e = e.SetWasteNot(max0(e.WasteNot() - 1))
	e = e.SetVeneration(max0(e.Veneration() - 1))
	e = e.SetInnovation(max0(e.Innovation() - 1))
	e = e.SetGreatStrides(max0(e.GreatStrides() - 1))
	e = e.SetMuscleMemory(max0(e.MuscleMemory() - 1))
	e = e.SetManipulation(max0(e.Manipulation() - 1))

	return e
}

func max0(v int) int {
	if v < 0 {
		return 0
	}

	return v
}
