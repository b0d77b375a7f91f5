package estimate

// SetCoatingSystem switches the coating system and returns the corrected
// input: the acrylic build resets to Standard, Aluminum pulls unsupported
// roof types back to Metal, and product selections are reset to the new
// system's defaults.
func SetCoatingSystem(in Input, system CoatingSystem) Input {
	in.CoatingSystem = system
	in.AcrylicSystemType = Standard

	if system == Aluminum && (in.RoofType == Sprayfoam || in.RoofType == SinglePly) {
		in.RoofType = Metal
	}

	return WithProductDefaults(in)
}

// SetAcrylicSystemType switches the acrylic build. Reinforced acrylic is not
// offered on Metal or Sprayfoam, so those roofs fall back to Capsheet.
func SetAcrylicSystemType(in Input, t AcrylicSystemType) Input {
	in.AcrylicSystemType = t

	if t == Reinforced && (in.RoofType == Metal || in.RoofType == Sprayfoam) {
		in.RoofType = Capsheet
	}

	return in
}

// SetRoofType assigns the roof type. Unsupported combinations are left for
// the calculator to omit.
func SetRoofType(in Input, roof RoofType) Input {
	in.RoofType = roof
	return in
}

// WithProductDefaults selects the first catalog entry of every product list
// for the input's coating system.
func WithProductDefaults(in Input) Input {
	p := productCatalog[in.CoatingSystem]

	in.SelectedTopcoat = firstOrEmpty(p.Topcoats)
	in.SelectedBasecoat = firstOrEmpty(p.Basecoats)
	in.SelectedButterGrade = firstOrEmpty(p.ButterGrades)
	in.SelectedFabric = firstOrEmpty(p.Fabrics)
	if in.AcrylicSystemType == "" {
		in.AcrylicSystemType = Standard
	}

	return in
}
