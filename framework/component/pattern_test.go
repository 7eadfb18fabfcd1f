package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexkit/hexkit/framework/component"
)

func TestDefaultPattern_Classify(t *testing.T) {
	p := component.DefaultPattern()

	tests := []struct {
		name    string
		want    component.Classification
		matches bool
	}{
		{"OrderCase", component.UseCase, true},
		{"PaymentService", component.Service, true},
		{"OrderHelper", component.Unclassified, false},
		{"ordercase", component.Unclassified, false}, // suffix is case-sensitive
		{"Case", component.Unclassified, false},      // bare suffix is not a name
		{"Service", component.Unclassified, false},
		{"", component.Unclassified, false},
	}
	for _, tt := range tests {
		tag, ok := p.Classify(tt.name)
		assert.Equal(t, tt.matches, ok, tt.name)
		assert.Equal(t, tt.want, tag, tt.name)
	}
}

func TestNewPattern_Validation(t *testing.T) {
	_, err := component.NewPattern()
	require.Error(t, err, "zero rules")

	_, err = component.NewPattern(component.Rule{Suffix: "", Tag: component.UseCase})
	require.Error(t, err, "empty suffix")

	_, err = component.NewPattern(component.Rule{Suffix: "Case", Tag: component.Unclassified})
	require.Error(t, err, "unclassified tag")
}

func TestNewPattern_FirstRuleWins(t *testing.T) {
	p, err := component.NewPattern(
		component.Rule{Suffix: "QueryCase", Tag: component.Service},
		component.Rule{Suffix: "Case", Tag: component.UseCase},
	)
	require.NoError(t, err)

	tag, ok := p.Classify("ListOrdersQueryCase")
	require.True(t, ok)
	assert.Equal(t, component.Service, tag)
}

func TestPattern_String(t *testing.T) {
	assert.Equal(t, "^.+Case$|^.+Service$", component.DefaultPattern().String())
}
