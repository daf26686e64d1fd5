package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_String(t *testing.T) {
	tests := []struct {
		name      string
		violation Violation
		want      string
	}{
		{
			name:      "without record index",
			violation: Violation{Field: FieldDescription, Message: "too long", Index: -1},
			want:      "description: too long",
		},
		{
			name:      "with record index",
			violation: Violation{Field: FieldAprlGUID, Message: "bad guid", Index: 2},
			want:      "record 2: aprlGuid: bad guid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.violation.String())
		})
	}
}

func TestViolations_Empty(t *testing.T) {
	assert.True(t, Violations{}.Empty())
	assert.False(t, Violations{Violations: []Violation{{Field: "required"}}}.Empty())
}

func TestViolations_JSONMarshaling(t *testing.T) {
	v := Violations{Violations: []Violation{{Field: FieldPgVerified, Message: "missing", Index: 0}}}

	jsonBytes, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"violations":[{"field":"pgVerified","message":"missing","index":0}]}`, string(jsonBytes))
}

func TestFileResult_Passed(t *testing.T) {
	assert.True(t, FileResult{Path: "a.yaml"}.Passed())
	assert.False(t, FileResult{Path: "a.yaml", Problems: []string{"x"}}.Passed())
}
