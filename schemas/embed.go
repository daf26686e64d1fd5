// Package schemas holds the schema documents shipped with the aprl tools.
package schemas

import _ "embed"

// RecommendationSchemaFile is the file name of the default recommendations schema.
const RecommendationSchemaFile = "recommendation.schema.yaml"

// RecommendationSchema is the default schema for recommendations.yaml files.
//
//go:embed recommendation.schema.yaml
var RecommendationSchema []byte
