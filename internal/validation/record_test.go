package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/aprl-tools/internal/types"
)

func validRecord() types.Record {
	return types.Record{
		types.FieldDescription:           "Deploy VMs across availability zones",
		types.FieldAprlGUID:              "11111111-1111-4111-8111-111111111111",
		types.FieldRecommendationControl: "HighAvailability",
		types.FieldRecommendationImpact:  "High",
		types.FieldLongDescription:       "Zones protect workloads from datacenter failures.",
		types.FieldPotentialBenefits:     "Resilience to zone outages",
		types.FieldPgVerified:            true,
		types.FieldPublishedToLearn:      false,
		types.FieldPublishedToAdvisor:    true,
		types.FieldAutomationAvailable:   false,
		types.FieldLearnMoreLink:         []any{"https://learn.microsoft.com"},
	}
}

func TestValidateRecord_Valid(t *testing.T) {
	assert.Empty(t, ValidateRecord(validRecord()))
}

func TestValidateRecord_CollectsAll(t *testing.T) {
	rec := validRecord()
	delete(rec, types.FieldPgVerified)
	rec[types.FieldDescription] = strings.Repeat("x", 101)
	rec[types.FieldRecommendationImpact] = "Critical"
	rec[types.FieldLearnMoreLink] = "not a list"

	violations := ValidateRecord(rec)
	require.Len(t, violations, 4)

	assert.Equal(t, "required", violations[0].Field)
	assert.Contains(t, violations[0].Message, "pgVerified")
	assert.Equal(t, types.FieldLearnMoreLink, violations[1].Field)
	assert.Equal(t, types.FieldDescription, violations[2].Field)
	assert.Equal(t, types.FieldRecommendationImpact, violations[3].Field)
	for _, v := range violations {
		assert.Equal(t, -1, v.Index)
	}
}

func TestValidateRecord_MissingFieldsNotDoubleReported(t *testing.T) {
	violations := ValidateRecord(types.Record{})
	require.Len(t, violations, 1)
	assert.Equal(t, "Field 'description' is missing in a recommendation.", violations[0].Message)
}

func TestValidateRecords_Indexes(t *testing.T) {
	bad := validRecord()
	bad[types.FieldAprlGUID] = "not-a-guid"

	result := ValidateRecords([]types.Record{validRecord(), bad, validRecord()})
	require.Len(t, result.Violations, 1)
	assert.Equal(t, 1, result.Violations[0].Index)
	assert.Equal(t, types.FieldAprlGUID, result.Violations[0].Field)
	assert.False(t, result.Empty())

	assert.True(t, ValidateRecords(nil).Empty())
}
