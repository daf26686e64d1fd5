// Package filter selects recommendation records by impact and verification status
// and aggregates them into a result set keyed by aprlGuid.
package filter

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jonathan/aprl-tools/internal/types"
	"github.com/jonathan/aprl-tools/internal/walker"
)

// DefaultBaseURL is the documentation site root for resource pages.
const DefaultBaseURL = "https://azure.github.io/Azure-Proactive-Resiliency-Library-v2/azure-resources/"

// ImpactLevel selects which recommendationImpact values pass the filter.
type ImpactLevel string

// Supported impact levels.
const (
	ImpactHigh   ImpactLevel = types.ImpactHigh
	ImpactMedium ImpactLevel = types.ImpactMedium
	ImpactLow    ImpactLevel = types.ImpactLow
	ImpactAll    ImpactLevel = "All"
)

// ImpactLevels lists the accepted impact level names.
var ImpactLevels = []ImpactLevel{ImpactHigh, ImpactMedium, ImpactLow, ImpactAll}

// ParseImpactLevel accepts any letter case and returns the canonical level.
func ParseImpactLevel(s string) (ImpactLevel, error) {
	for _, level := range ImpactLevels {
		if strings.EqualFold(s, string(level)) {
			return level, nil
		}
	}
	return "", fmt.Errorf("invalid impact level %q: must be one of High, Medium, Low, All", s)
}

// Matches reports whether a recommendationImpact value is selected by the level.
// All selects the three valid impacts and nothing else.
func (l ImpactLevel) Matches(impact string) bool {
	if l == ImpactAll {
		return impact == types.ImpactHigh || impact == types.ImpactMedium || impact == types.ImpactLow
	}
	return impact == string(l)
}

// Options controls which records pass and how their documentation URL is built.
type Options struct {
	ImpactLevel        ImpactLevel
	IncludeNonVerified bool
	BaseURL            string
}

// Passes reports whether a record is selected: its impact matches and it is
// PG verified, unless non-verified records are included.
func Passes(rec types.Record, opts Options) bool {
	impact, _ := rec[types.FieldRecommendationImpact].(string)
	if !opts.ImpactLevel.Matches(impact) {
		return false
	}
	if opts.IncludeNonVerified {
		return true
	}
	verified, _ := rec[types.FieldPgVerified].(bool)
	return verified
}

// Project flattens a record for export, substituting defaults for missing fields.
func Project(rec types.Record, file walker.ResourceFile, resourceURL string) types.ExportRow {
	return types.ExportRow{
		RecommendationResourceType:  rec.String(types.FieldRecommendationResourceType, types.DefaultResourceType),
		AprlGUID:                    rec.String(types.FieldAprlGUID, types.DefaultGUID),
		Description:                 rec.String(types.FieldDescription, types.DefaultDescription),
		RecommendationControl:       rec.String(types.FieldRecommendationControl, types.DefaultControl),
		RecommendationImpact:        rec.String(types.FieldRecommendationImpact, types.DefaultImpact),
		RecommendationMetadataState: rec.String(types.FieldRecommendationMetadataState, types.DefaultMetadataState),
		PgVerified:                  rec.Bool(types.FieldPgVerified, false),
		PublishedToLearn:            rec.Bool(types.FieldPublishedToLearn, false),
		PublishedToAdvisor:          rec.Bool(types.FieldPublishedToAdvisor, false),
		AutomationAvailable:         rec.Bool(types.FieldAutomationAvailable, false),
		AprlURLForResource:          resourceURL,
		RecommendationFilePath:      file.AbsPath,
	}
}

// ResourceURL joins base with the namespace and resource type segments of a
// <namespace>/<resourceType>/recommendations.yaml path. The segments are the two
// directories holding the file, so deeper layouts link to the file's own parents.
func ResourceURL(base, path string) (string, error) {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("path %q has no namespace/resourceType segments", path)
	}

	joined, err := url.JoinPath(base, parts[len(parts)-3], parts[len(parts)-2])
	if err != nil {
		return "", fmt.Errorf("failed to build resource URL: %w", err)
	}
	return joined, nil
}
