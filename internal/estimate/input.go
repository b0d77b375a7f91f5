package estimate

// CoatingSystem is the coating chemistry applied to the roof.
type CoatingSystem string

const (
	Silicone CoatingSystem = "Silicone"
	Acrylic  CoatingSystem = "Acrylic"
	Aluminum CoatingSystem = "Aluminum"
)

// AcrylicSystemType selects the acrylic build. It only matters when the
// coating system is Acrylic.
type AcrylicSystemType string

const (
	Standard   AcrylicSystemType = "Standard"
	Reinforced AcrylicSystemType = "Reinforced"
)

// RoofType is the existing roof surface being coated.
type RoofType string

const (
	Capsheet  RoofType = "Capsheet"
	Sprayfoam RoofType = "Sprayfoam"
	SinglePly RoofType = "Single-Ply"
	Metal     RoofType = "Metal"
)

// AccessoryType selects how seams are treated.
type AccessoryType string

const (
	ButterGrade AccessoryType = "Butter Grade"
	Fabric      AccessoryType = "Fabric"
)

// WarrantyYear is one of the offered warranty tiers.
type WarrantyYear int

const (
	Warranty10 WarrantyYear = 10
	Warranty15 WarrantyYear = 15
	Warranty20 WarrantyYear = 20
)

// WarrantyYears lists every tier in ascending order.
var WarrantyYears = []WarrantyYear{Warranty10, Warranty15, Warranty20}

// CoatingSystems lists the supported coating systems in display order.
var CoatingSystems = []CoatingSystem{Silicone, Acrylic, Aluminum}

// RoofTypes lists the supported roof types in display order.
var RoofTypes = []RoofType{Capsheet, Sprayfoam, SinglePly, Metal}

// Valid reports whether s is one of the supported coating systems.
func (s CoatingSystem) Valid() bool {
	switch s {
	case Silicone, Acrylic, Aluminum:
		return true
	}
	return false
}

// Valid reports whether t is a known acrylic build.
func (t AcrylicSystemType) Valid() bool {
	return t == Standard || t == Reinforced
}

// Valid reports whether r is a supported roof type.
func (r RoofType) Valid() bool {
	switch r {
	case Capsheet, Sprayfoam, SinglePly, Metal:
		return true
	}
	return false
}

// Valid reports whether a is a supported accessory type.
func (a AccessoryType) Valid() bool {
	return a == ButterGrade || a == Fabric
}

// Largest inputs a quote may carry. Anything above them is a typo, and far
// larger values overflow the integer quantities.
const (
	MaxRoofSizeSqFt = 10_000_000
	MaxLinearFeet   = 1_000_000
	MaxFactor       = 1
)

// Input is the snapshot of everything the calculator needs. It is rebuilt
// on every edit and never mutated by the calculator.
type Input struct {
	ProjectName       string            `json:"projectName"`
	CoatingSystem     CoatingSystem     `json:"coatingSystem"`
	AcrylicSystemType AcrylicSystemType `json:"acrylicSystemType"`

	SelectedTopcoat     string `json:"selectedTopcoat"`
	SelectedBasecoat    string `json:"selectedBasecoat"`
	SelectedButterGrade string `json:"selectedButterGrade"`
	SelectedFabric      string `json:"selectedFabric"`

	RoofSizeSqFt   float64       `json:"roofSizeSqFt"`
	LinearFeet     float64       `json:"linearFeet"`
	RoofType       RoofType      `json:"roofType"`
	WasteFactor    float64       `json:"wasteFactor"`
	StretchFactor  float64       `json:"stretchFactor"`
	Goldseal       bool          `json:"goldseal"`
	PassedAdhesion bool          `json:"passedAdhesion"`
	HasRust        bool          `json:"hasRust"`
	AccessoryType  AccessoryType `json:"accessoryType"`
}

// DefaultInput returns the state a fresh quote starts from.
func DefaultInput() Input {
	return WithProductDefaults(Input{
		CoatingSystem:     Silicone,
		AcrylicSystemType: Standard,
		RoofType:          Capsheet,
		PassedAdhesion:    true,
		AccessoryType:     ButterGrade,
	})
}

// Squares converts the roof area to roofing squares (100 sq ft each).
func (in Input) Squares() float64 {
	if in.RoofSizeSqFt <= 0 {
		return 0
	}
	return in.RoofSizeSqFt / 100
}

// TotalFactor is the multiplier applied to raw material quantities.
func (in Input) TotalFactor() float64 {
	return 1 + in.WasteFactor + in.StretchFactor
}

// IsReinforcedAcrylic reports whether the input selects the reinforced acrylic build.
func (in Input) IsReinforcedAcrylic() bool {
	return in.CoatingSystem == Acrylic && in.AcrylicSystemType == Reinforced
}
