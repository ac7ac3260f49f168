package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allSections is the full closed set a total lookup must cover.
var allSections = []Section{
	SectionRoofSize, SectionRoofType, SectionLocation, SectionSolar,
	SectionEnvironmental, SectionFinancial, SectionTechnical,
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{name: "empty is unset", input: "", want: Unset},
		{name: "explicit unset", input: "unset", want: Unset},
		{name: "esg expert", input: "esg-expert", want: ESGExpert},
		{name: "roofing specialist", input: "roofing-specialist", want: RoofingSpecialist},
		{name: "private individual", input: "private-individual", want: PrivateIndividual},
		{name: "unknown", input: "architect", wantErr: true},
		{name: "case sensitive", input: "ESG-Expert", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, r := range Roles() {
		parsed, err := Parse(r.String())
		require.NoError(t, err, "role %s", r)
		assert.Equal(t, r, parsed)
	}
}

func TestPriorityOrderTotality(t *testing.T) {
	// Every role, Unset included, and even an out-of-range value must map
	// to a defined, complete ordering.
	checked := append(Roles(), Role(99))
	for _, r := range checked {
		order := PriorityOrder(r)
		assert.ElementsMatch(t, allSections, order, "role %s", r)
	}
}

func TestPrivateIndividualOrderStartsWithRoofSize(t *testing.T) {
	// The fixed default table puts roof size ahead of location.
	for _, r := range []Role{PrivateIndividual, Unset} {
		order := PriorityOrder(r)
		require.NotEmpty(t, order)
		assert.Equal(t, SectionRoofSize, order[0], "role %s", r)

		sizeIdx, locIdx := indexOf(order, SectionRoofSize), indexOf(order, SectionLocation)
		assert.Less(t, sizeIdx, locIdx, "role %s", r)
	}
}

func TestRoleSpecificOrderings(t *testing.T) {
	t.Run("ESGExpertLeadsWithEnvironmental", func(t *testing.T) {
		metrics := MetricOrder(ESGExpert)
		require.NotEmpty(t, metrics)
		assert.Equal(t, SectionEnvironmental, metrics[0])
	})

	t.Run("SpecialistLeadsWithTechnical", func(t *testing.T) {
		metrics := MetricOrder(RoofingSpecialist)
		require.NotEmpty(t, metrics)
		assert.Equal(t, SectionTechnical, metrics[0])
	})

	t.Run("DefaultLeadsWithFinancial", func(t *testing.T) {
		metrics := MetricOrder(Unset)
		require.NotEmpty(t, metrics)
		assert.Equal(t, SectionFinancial, metrics[0])
	})
}

func TestMetricOrderExcludesInputSections(t *testing.T) {
	for _, r := range Roles() {
		metrics := MetricOrder(r)
		assert.ElementsMatch(t,
			[]Section{SectionEnvironmental, SectionFinancial, SectionTechnical},
			metrics, "role %s", r)
	}
}

func TestLabelsAndDescriptionsTotality(t *testing.T) {
	checked := append(Roles(), Role(99))
	for _, r := range checked {
		labels := Labels(r)
		descriptions := Descriptions(r)
		for _, s := range allSections {
			assert.NotEmpty(t, labels[s], "role %s label %s", r, s)
			assert.NotEmpty(t, descriptions[s], "role %s description %s", r, s)
		}
	}
}

func TestPriorityOrderReturnsCopy(t *testing.T) {
	order := PriorityOrder(Unset)
	order[0] = SectionSolar
	assert.Equal(t, SectionRoofSize, PriorityOrder(Unset)[0])
}

func indexOf(sections []Section, target Section) int {
	for i, s := range sections {
		if s == target {
			return i
		}
	}
	return -1
}
