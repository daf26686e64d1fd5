package types

import "strconv"

// Defaults substituted for missing fields when projecting a record for export.
const (
	DefaultResourceType  = "defaultType"
	DefaultGUID          = "defaultGuid"
	DefaultDescription   = "No description available"
	DefaultControl       = "defaultControl"
	DefaultImpact        = "defaultImpact"
	DefaultMetadataState = "defaultState"
)

// ExportRow is the flattened projection of a recommendation written to the spreadsheet.
type ExportRow struct {
	RecommendationResourceType  string `json:"recommendationResourceType"`
	AprlGUID                    string `json:"aprlGuid"`
	Description                 string `json:"description"`
	RecommendationControl       string `json:"recommendationControl"`
	RecommendationImpact        string `json:"recommendationImpact"`
	RecommendationMetadataState string `json:"recommendationMetadataState"`
	PgVerified                  bool   `json:"pgVerified"`
	PublishedToLearn            bool   `json:"publishedToLearn"`
	PublishedToAdvisor          bool   `json:"publishedToAdvisor"`
	AutomationAvailable         bool   `json:"automationAvailable"`
	AprlURLForResource          string `json:"aprlUrlForResource"`
	RecommendationFilePath      string `json:"recommendationFilePath"`
}

// ExportColumns are the spreadsheet header names, in column order.
var ExportColumns = []string{
	FieldRecommendationResourceType,
	FieldAprlGUID,
	FieldDescription,
	FieldRecommendationControl,
	FieldRecommendationImpact,
	FieldRecommendationMetadataState,
	FieldPgVerified,
	FieldPublishedToLearn,
	FieldPublishedToAdvisor,
	FieldAutomationAvailable,
	"aprlUrlForResource",
	"recommendationFilePath",
}

// Values returns the row cells in ExportColumns order.
func (r ExportRow) Values() []any {
	return []any{
		r.RecommendationResourceType,
		r.AprlGUID,
		r.Description,
		r.RecommendationControl,
		r.RecommendationImpact,
		r.RecommendationMetadataState,
		r.PgVerified,
		r.PublishedToLearn,
		r.PublishedToAdvisor,
		r.AutomationAvailable,
		r.AprlURLForResource,
		r.RecommendationFilePath,
	}
}

// Strings returns the row cells rendered as text, in ExportColumns order.
func (r ExportRow) Strings() []string {
	values := r.Values()
	out := make([]string, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case string:
			out[i] = val
		case bool:
			out[i] = strconv.FormatBool(val)
		}
	}
	return out
}
