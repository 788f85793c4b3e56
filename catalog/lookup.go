package catalog

// byName is built once from moveNames so config loaders (and any other
// caller that only has a move's string spelling, e.g. from a config file or
// CLI flag) can resolve it back to a Move without a linear scan.
var byName = buildByName()

func buildByName() map[string]Move {
	m := make(map[string]Move, Count)
	for mv := Move(0); mv < Count; mv++ {
		m[moveNames[mv]] = mv
	}

	return m
}

// ByName resolves a move's canonical String() spelling back to its Move
// value. ok is false for any name not in the closed enum.
func ByName(name string) (Move, bool) {
	mv, ok := byName[name]

	return mv, ok
}
