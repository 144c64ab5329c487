package chemfig

// Family partitions output formats by how figures are rendered: the
// typesetting family gets raw environment/label/ref markup, everything else
// gets decorated captions and literal numbers. The decision is made once per
// run, not re-checked at each branch.
type Family int

const (
	// GenericFamily covers every format without native float environments.
	GenericFamily Family = iota

	// TypesettingFamily covers formats rendered through a LaTeX engine.
	TypesettingFamily
)

// FamilyOf classifies a pandoc output format identifier.
func FamilyOf(format string) Family {
	switch format {
	case "latex", "pdf":
		return TypesettingFamily
	}
	return GenericFamily
}

// String returns the family name for diagnostics.
func (f Family) String() string {
	if f == TypesettingFamily {
		return "typesetting"
	}
	return "generic"
}
