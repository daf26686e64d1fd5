// Package types provides type definitions for the recommendation records handled by the aprl tools.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field names of a recommendation record as they appear in recommendations.yaml.
const (
	FieldDescription                 = "description"
	FieldAprlGUID                    = "aprlGuid"
	FieldRecommendationControl       = "recommendationControl"
	FieldRecommendationImpact        = "recommendationImpact"
	FieldRecommendationResourceType  = "recommendationResourceType"
	FieldRecommendationMetadataState = "recommendationMetadataState"
	FieldLongDescription             = "longDescription"
	FieldPotentialBenefits           = "potentialBenefits"
	FieldPgVerified                  = "pgVerified"
	FieldPublishedToLearn            = "publishedToLearn"
	FieldPublishedToAdvisor          = "publishedToAdvisor"
	FieldAutomationAvailable         = "automationAvailable"
	FieldLearnMoreLink               = "learnMoreLink"
)

// RequiredFields lists the keys every recommendation record must carry, in reporting order.
var RequiredFields = []string{
	FieldDescription,
	FieldAprlGUID,
	FieldRecommendationControl,
	FieldRecommendationImpact,
	FieldLongDescription,
	FieldPotentialBenefits,
	FieldPgVerified,
	FieldPublishedToLearn,
	FieldPublishedToAdvisor,
	FieldAutomationAvailable,
	FieldLearnMoreLink,
}

// Impact values accepted for recommendationImpact.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

// Impacts lists the valid recommendationImpact values.
var Impacts = []string{ImpactHigh, ImpactMedium, ImpactLow}

// Controls lists the valid recommendationControl values.
var Controls = []string{
	"HighAvailability",
	"BusinessContinuity",
	"DisasterRecovery",
	"Scalability",
	"MonitoringAndAlerting",
	"ServiceUpgradeAndRetirement",
	"OtherBestPractices",
	"Personalized",
	"Governance",
}

// Record is a single recommendation mapping decoded from YAML.
// It is kept untyped so that presence, type and value can be checked separately.
type Record map[string]any

// Has reports whether the key is present, even when its value is null.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the value for key when it is a string, or def otherwise.
func (r Record) String(key, def string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the value for key when it is a boolean, or def otherwise.
func (r Record) Bool(key string, def bool) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return def
}

// GUID returns the aprlGuid value and whether it is a usable string key.
func (r Record) GUID() (string, bool) {
	s, ok := r[FieldAprlGUID].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
