package entities

// MaterialType identifies a workpiece material family in the chipload table.
type MaterialType int

const (
	SoftPlastics MaterialType = iota
	SoftWoodHardPlastics
	HardWoodAluminium
)

func (m MaterialType) String() string {
	switch m {
	case SoftPlastics:
		return "Soft plastics"
	case SoftWoodHardPlastics:
		return "Soft wood & hard plastics"
	case HardWoodAluminium:
		return "Hard wood & aluminium"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined material families.
func (m MaterialType) Valid() bool {
	return m >= SoftPlastics && m <= HardWoodAluminium
}

// AllMaterials returns the material families in display order.
func AllMaterials() []MaterialType {
	return []MaterialType{SoftPlastics, SoftWoodHardPlastics, HardWoodAluminium}
}

// ParseMaterial resolves a display name to its MaterialType.
func ParseMaterial(name string) (MaterialType, error) {
	for _, m := range AllMaterials() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, &UnknownMaterialError{Material: name}
}

// CuttingStyle identifies the radial/axial engagement strategy for a cut.
type CuttingStyle int

const (
	WideShallow CuttingStyle = iota
	NarrowDeep
)

func (s CuttingStyle) String() string {
	switch s {
	case WideShallow:
		return "Wide and Shallow"
	case NarrowDeep:
		return "Narrow and Deep"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined cutting styles.
func (s CuttingStyle) Valid() bool {
	return s == WideShallow || s == NarrowDeep
}

// AllCuttingStyles returns the cutting styles in display order.
func AllCuttingStyles() []CuttingStyle {
	return []CuttingStyle{WideShallow, NarrowDeep}
}

// ParseCuttingStyle resolves a display name to its CuttingStyle.
func ParseCuttingStyle(name string) (CuttingStyle, error) {
	for _, s := range AllCuttingStyles() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, &UnknownStyleError{Style: name}
}
