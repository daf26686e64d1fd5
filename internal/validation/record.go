package validation

import "github.com/jonathan/aprl-tools/internal/types"

// fieldValidators run against present fields, in reporting order.
var fieldValidators = []struct {
	field string
	check FieldValidator
}{
	{types.FieldLearnMoreLink, ValidateLearnMoreLink},
	{types.FieldAprlGUID, ValidateAprlGUID},
	{types.FieldDescription, ValidateDescription},
	{types.FieldLongDescription, ValidateLongDescription},
	{types.FieldPotentialBenefits, ValidatePotentialBenefits},
	{types.FieldRecommendationControl, ValidateRecommendationControl},
	{types.FieldRecommendationImpact, ValidateRecommendationImpact},
}

// ValidateRecord runs every field validator and collects all failures.
// A missing required field is reported once; fields that are present are still checked.
func ValidateRecord(rec types.Record) []types.Violation {
	var violations []types.Violation

	if ok, reason := ValidateRequiredFields(rec); !ok {
		violations = append(violations, types.Violation{Field: "required", Message: reason, Index: -1})
	}

	for _, fv := range fieldValidators {
		value, present := rec[fv.field]
		if !present {
			continue
		}
		if ok, reason := fv.check(value); !ok {
			violations = append(violations, types.Violation{Field: fv.field, Message: reason, Index: -1})
		}
	}

	return violations
}

// ValidateRecords validates each record of a file, tagging violations with the record index.
func ValidateRecords(records []types.Record) types.Violations {
	result := types.Violations{}
	for i, rec := range records {
		for _, v := range ValidateRecord(rec) {
			v.Index = i
			result.Violations = append(result.Violations, v)
		}
	}
	return result
}
