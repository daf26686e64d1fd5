// Package validation provides the field-level checks applied to recommendation records.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/aprl-tools/internal/types"
)

// Length limits, counted in characters.
const (
	MaxDescriptionLength       = 100
	MaxLongDescriptionLength   = 3000
	MaxPotentialBenefitsLength = 60
)

const tagAprlGUID = "aprlguid"

// guidPattern matches a UUID v4: version nibble 4, variant nibble 8, 9, a or b, hyphens optional.
var guidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-?[0-9a-f]{4}-?4[0-9a-f]{3}-?[89ab][0-9a-f]{3}-?[0-9a-f]{12}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(tagAprlGUID, func(fl validator.FieldLevel) bool {
		return guidPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register %s validation: %v", tagAprlGUID, err))
	}
	return v
}

// FieldValidator checks one field value and returns whether it is valid and, if not, why.
type FieldValidator func(value any) (bool, string)

// ValidateRequiredFields reports the first required field missing from the record.
func ValidateRequiredFields(rec types.Record) (bool, string) {
	for _, field := range types.RequiredFields {
		if !rec.Has(field) {
			return false, fmt.Sprintf("Field '%s' is missing in a recommendation.", field)
		}
	}
	return true, ""
}

// ValidateLearnMoreLink requires learnMoreLink to be a sequence rather than a scalar.
func ValidateLearnMoreLink(value any) (bool, string) {
	if _, ok := value.([]any); !ok {
		return false, "Learn More Link should be a list."
	}
	return true, ""
}

// ValidateAprlGUID requires a UUID v4 shaped identifier.
func ValidateAprlGUID(value any) (bool, string) {
	s, ok := value.(string)
	if !ok {
		return false, "aprlGuid should be a string."
	}
	if err := validate.Var(s, tagAprlGUID); err != nil {
		return false, fmt.Sprintf("aprlGuid '%s' is not a valid UUID v4.", s)
	}
	return true, ""
}

// ValidateDescription limits description to 100 characters.
func ValidateDescription(value any) (bool, string) {
	return validateLength(value, "Description", MaxDescriptionLength)
}

// ValidateLongDescription limits longDescription to 3000 characters.
func ValidateLongDescription(value any) (bool, string) {
	return validateLength(value, "Long Description", MaxLongDescriptionLength)
}

// ValidatePotentialBenefits limits potentialBenefits to 60 characters.
func ValidatePotentialBenefits(value any) (bool, string) {
	return validateLength(value, "Potential Benefits", MaxPotentialBenefitsLength)
}

// ValidateRecommendationControl requires one of the fixed control categories.
func ValidateRecommendationControl(value any) (bool, string) {
	return validateOneOf(value, "Recommendation Control", types.Controls)
}

// ValidateRecommendationImpact requires High, Medium or Low.
func ValidateRecommendationImpact(value any) (bool, string) {
	return validateOneOf(value, "Recommendation Impact", types.Impacts)
}

func validateLength(value any, label string, limit int) (bool, string) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Sprintf("%s should be a string.", label)
	}
	if err := validate.Var(s, fmt.Sprintf("max=%d", limit)); err != nil {
		return false, fmt.Sprintf("%s should not exceed %d characters.", label, limit)
	}
	return true, ""
}

func validateOneOf(value any, label string, allowed []string) (bool, string) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Sprintf("%s should be a string.", label)
	}
	if err := validate.Var(s, "required,oneof="+strings.Join(allowed, " ")); err != nil {
		return false, fmt.Sprintf("%s '%s' is not one of: %s.", label, s, strings.Join(allowed, ", "))
	}
	return true, ""
}
