// Package role adapts presentation order, labels, and help text to the
// selected user persona.
//
// Roles form a closed set dispatched with exhaustive switches. Every lookup
// is total: any role, including Unset, maps to a defined result. Roles only
// drive presentation; they never influence the computed metrics themselves.
package role

import "fmt"

// Role identifies a user persona.
type Role int

const (
	// Unset is the default when no role was selected this session.
	Unset Role = iota

	// ESGExpert prioritizes environmental metrics and reporting depth.
	ESGExpert

	// RoofingSpecialist prioritizes technical and installation details.
	RoofingSpecialist

	// PrivateIndividual prioritizes cost and simple framing.
	PrivateIndividual
)

// Section identifies an input section or metric category in the composed
// presentation.
type Section string

// Input sections.
const (
	SectionRoofSize Section = "roof-size"
	SectionRoofType Section = "roof-type"
	SectionLocation Section = "location"
	SectionSolar    Section = "solar"
)

// Metric categories.
const (
	SectionEnvironmental Section = "environmental"
	SectionFinancial     Section = "financial"
	SectionTechnical     Section = "technical"
)

// String returns the role's stable identifier.
func (r Role) String() string {
	switch r {
	case Unset:
		return "unset"
	case ESGExpert:
		return "esg-expert"
	case RoofingSpecialist:
		return "roofing-specialist"
	case PrivateIndividual:
		return "private-individual"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Parse maps a role identifier to a Role. The empty string parses to Unset.
func Parse(name string) (Role, error) {
	switch name {
	case "", "unset":
		return Unset, nil
	case "esg-expert":
		return ESGExpert, nil
	case "roofing-specialist":
		return RoofingSpecialist, nil
	case "private-individual":
		return PrivateIndividual, nil
	default:
		return Unset, fmt.Errorf("unknown role %q", name)
	}
}

// Roles lists every selectable role, Unset included.
func Roles() []Role {
	return []Role{Unset, ESGExpert, RoofingSpecialist, PrivateIndividual}
}

// defaultOrder is the fixed table used for Unset and PrivateIndividual.
// Roof size deliberately precedes location.
var defaultOrder = []Section{
	SectionRoofSize,
	SectionRoofType,
	SectionLocation,
	SectionSolar,
	SectionFinancial,
	SectionEnvironmental,
	SectionTechnical,
}

var esgOrder = []Section{
	SectionLocation,
	SectionRoofType,
	SectionRoofSize,
	SectionSolar,
	SectionEnvironmental,
	SectionTechnical,
	SectionFinancial,
}

var specialistOrder = []Section{
	SectionRoofType,
	SectionRoofSize,
	SectionSolar,
	SectionLocation,
	SectionTechnical,
	SectionFinancial,
	SectionEnvironmental,
}

// PriorityOrder returns the section ordering for a role. The result covers
// input sections first-class alongside metric categories; consumers filter
// to the subset they render.
func PriorityOrder(r Role) []Section {
	var src []Section
	switch r {
	case ESGExpert:
		src = esgOrder
	case RoofingSpecialist:
		src = specialistOrder
	case PrivateIndividual, Unset:
		src = defaultOrder
	default:
		src = defaultOrder
	}
	out := make([]Section, len(src))
	copy(out, src)
	return out
}

// MetricOrder returns only the metric categories from PriorityOrder, in
// role priority order.
func MetricOrder(r Role) []Section {
	var out []Section
	for _, s := range PriorityOrder(r) {
		switch s {
		case SectionEnvironmental, SectionFinancial, SectionTechnical:
			out = append(out, s)
		case SectionRoofSize, SectionRoofType, SectionLocation, SectionSolar:
			// input sections, not metric categories
		}
	}
	return out
}

// Labels returns the section label table for a role.
func Labels(r Role) map[Section]string {
	switch r {
	case ESGExpert:
		return map[Section]string{
			SectionRoofSize:      "Treated surface",
			SectionRoofType:      "Abatement technology",
			SectionLocation:      "Site conditions",
			SectionSolar:         "PV integration",
			SectionEnvironmental: "Environmental impact",
			SectionFinancial:     "Financial case",
			SectionTechnical:     "Implementation",
		}
	case RoofingSpecialist:
		return map[Section]string{
			SectionRoofSize:      "Roof area",
			SectionRoofType:      "Covering system",
			SectionLocation:      "Site",
			SectionSolar:         "Solar package",
			SectionEnvironmental: "Environmental effect",
			SectionFinancial:     "Project economics",
			SectionTechnical:     "Installation",
		}
	case PrivateIndividual, Unset:
		return map[Section]string{
			SectionRoofSize:      "Roof size",
			SectionRoofType:      "Roof type",
			SectionLocation:      "Your location",
			SectionSolar:         "Solar panels",
			SectionEnvironmental: "Environment",
			SectionFinancial:     "Costs and savings",
			SectionTechnical:     "Installation",
		}
	default:
		return Labels(Unset)
	}
}

// Descriptions returns the section help-text table for a role.
func Descriptions(r Role) map[Section]string {
	switch r {
	case ESGExpert:
		return map[Section]string{
			SectionRoofSize:      "Surface area included in the abatement calculation.",
			SectionRoofType:      "Technology determining offset and depollution coefficients.",
			SectionLocation:      "Irradiance and climate zone driving yield assumptions.",
			SectionSolar:         "Photovoltaic co-installation on the treated surface.",
			SectionEnvironmental: "Annual CO₂, NOₓ, and energy effects with neutrality horizon.",
			SectionFinancial:     "Capital outlay, annual savings, and payback period.",
			SectionTechnical:     "Installation duration and PV yield.",
		}
	case RoofingSpecialist:
		return map[Section]string{
			SectionRoofSize:      "Measured roof area for the quote.",
			SectionRoofType:      "Covering system and its service life.",
			SectionLocation:      "Site address for climate and logistics.",
			SectionSolar:         "Optional PV package added to the bid.",
			SectionEnvironmental: "Environmental figures for the customer.",
			SectionFinancial:     "Material, labor, and payback for the bid.",
			SectionTechnical:     "Crew days at the catalog installation rate.",
		}
	case PrivateIndividual, Unset:
		return map[Section]string{
			SectionRoofSize:      "How big is your roof?",
			SectionRoofType:      "Which roofing are you considering?",
			SectionLocation:      "Where is the house? This affects solar yield.",
			SectionSolar:         "Add solar panels to the new roof.",
			SectionEnvironmental: "What your roof does for the environment each year.",
			SectionFinancial:     "What it costs and what you save.",
			SectionTechnical:     "How long the work takes.",
		}
	default:
		return Descriptions(Unset)
	}
}
