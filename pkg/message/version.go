package message

// Per-type protocol version bounds. Purely descriptive metadata: the
// codec decodes whatever it recognizes, and the session layer consults
// these bounds to avoid sending a peer a shape it cannot parse.

// VersionOldest is the oldest protocol revision still supported; every
// type without an explicit minimum is understood from here on.
// Version numbers follow the protocol's M.mm.rr scheme packed into an
// int, e.g. 1109 for 1.1.09 and 2000 for 2.0.00.
const VersionOldest = 1000

// VersionNoMax marks a type with no upper version bound.
const VersionNoMax = 0

var minVersions = map[ID]int{
	GameOptionGetInfosID: 1107,
	PlayerStatsID:        1109,
	GameServerTextID:     2000,
}

var maxVersions = map[ID]int{
	// superseded by the richer 2.x board encodings
	BoardLayoutID: 1999,
}

// MinimumVersion returns the protocol version a peer must run to
// understand messages of the given type.
func MinimumVersion(id ID) int {
	if v, ok := minVersions[id]; ok {
		return v
	}
	return VersionOldest
}

// MaximumVersion returns the last protocol version that understands the
// given type, or VersionNoMax if the type is unbounded.
func MaximumVersion(id ID) int {
	if v, ok := maxVersions[id]; ok {
		return v
	}
	return VersionNoMax
}

// VersionInRange reports whether a peer running the given negotiated
// version understands messages of the given type.
func VersionInRange(id ID, version int) bool {
	if version < MinimumVersion(id) {
		return false
	}
	if max := MaximumVersion(id); max != VersionNoMax && version > max {
		return false
	}
	return true
}
