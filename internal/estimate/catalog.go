package estimate

import "strings"

// Products holds the display names offered for one coating system.
type Products struct {
	Topcoats     []string `json:"topcoats"`
	Basecoats    []string `json:"basecoats"`
	ButterGrades []string `json:"butterGrades"`
	Fabrics      []string `json:"fabrics"`
}

// Brand identifies the manufacturer family a topcoat belongs to.
type Brand string

const (
	Enduraroof Brand = "Enduraroof"
	Prograde   Brand = "Prograde"
)

// Primers names the primer products for a brand.
type Primers struct {
	Adhesion string `json:"adhesion"`
	Rust     string `json:"rust"`
}

const enduraMarker = "Endura"

var fabricOptions = []string{
	"Enduraroof Polyester Fabric",
	"Prograde 195 (SOFT)",
	"Prograde 196 (FIRM)",
}

var productCatalog = map[CoatingSystem]Products{
	Silicone: {
		Topcoats: []string{
			"Enduraroof Premium Silicone",
			"Prograde 988 Silicone",
		},
		Basecoats: []string{
			"Enduraroof BaseCoat & Sealer",
			"Prograde 294 BaseCoat",
		},
		ButterGrades: []string{
			"EnduraRoof Butter Grade",
			"Prograde 923 Butter Grade",
		},
		Fabrics: fabricOptions,
	},
	Acrylic: {
		Topcoats: []string{
			"Enduraroof Elastomeric",
			"Enduraroof Premium Acrylic",
			"Acryshield 400",
			"Acryshield 510",
			"Acryshield 550HT",
			"Acryshield 610",
		},
		Basecoats: []string{
			"Enduraroof Basecoat",
			"Enduraroof Elastomeric",
			"Enduraroof Premium Acrylic",
			"Acryshield Basecoat",
			"Acryshield 400",
			"Acryshield 505",
		},
		ButterGrades: []string{
			"Enduraroof Acrylic Roof Patch",
			"Prograde 289 White Roofing Sealant",
			"Prograde 295 Metal Seam Sealer",
		},
		Fabrics: fabricOptions,
	},
	Aluminum: {
		Topcoats: []string{
			"Enduraroof Fibered Aluminum",
			"Pro-Grade 586",
		},
		Basecoats: []string{},
		ButterGrades: []string{
			"Enduraroof Acrylic Roof Patch",
			"Prograde 289 White Roofing Sealant",
		},
		Fabrics: fabricOptions,
	},
}

var primerCatalog = map[Brand]Primers{
	Prograde: {
		Adhesion: "Prograde 941 Adhesion Promoting Primer",
		Rust:     "PrimeTek Rust Inhibiting Primer",
	},
	Enduraroof: {
		Adhesion: "Enduraroof Silicone Roof Primer",
		Rust:     "Enduraroof Metal Roofing Primer",
	},
}

// ListProducts returns the product options for a coating system. Callers get
// their own copies of the lists.
func ListProducts(system CoatingSystem) Products {
	p := productCatalog[system]
	return Products{
		Topcoats:     append([]string{}, p.Topcoats...),
		Basecoats:    append([]string{}, p.Basecoats...),
		ButterGrades: append([]string{}, p.ButterGrades...),
		Fabrics:      append([]string{}, p.Fabrics...),
	}
}

// BrandOf maps a topcoat name to its brand family.
func BrandOf(topcoat string) Brand {
	if strings.Contains(topcoat, enduraMarker) {
		return Enduraroof
	}
	return Prograde
}

// PrimersFor returns the adhesion and rust primer products of a brand.
func PrimersFor(brand Brand) Primers {
	return primerCatalog[brand]
}

func firstOrEmpty(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
