package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/aprl-tools/internal/walker"
)

const highVerified = `
- description: Use availability zones
  aprlGuid: 273f6b30-68e0-4241-85ea-acf15ffb60bf
  recommendationTypeId: null
  recommendationControl: HighAvailability
  recommendationImpact: High
  recommendationResourceType: Microsoft.Compute/virtualMachines
  recommendationMetadataState: Active
  longDescription: Spread instances across zones.
  potentialBenefits: Zone resiliency
  pgVerified: true
  publishedToLearn: false
  publishedToAdvisor: false
  automationAvailable: true
  learnMoreLink:
    - name: Zones
      url: https://learn.microsoft.com/azure/reliability/availability-zones-overview
`

const lowUnverified = `
- description: Tag resources
  aprlGuid: 5b6f4a1e-0c3d-4f2a-9e7b-1d2c3b4a5f60
  recommendationTypeId: null
  recommendationControl: Governance
  recommendationImpact: Low
  recommendationResourceType: Microsoft.Network/loadBalancers
  recommendationMetadataState: Active
  longDescription: Tags help track ownership.
  potentialBenefits: Easier operations
  pgVerified: false
  publishedToLearn: false
  publishedToAdvisor: false
  automationAvailable: false
  learnMoreLink: []
`

func writeRecommendations(t *testing.T, root, namespace, resourceType, content string) {
	t.Helper()
	dir := filepath.Join(root, namespace, resourceType)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, walker.RecommendationsFileName), []byte(content), 0644))
}

// executeCommand runs a fresh root command in-process and returns its combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandWithEnv(t, nil, args...)
}

// executeCommandWithEnv is executeCommand with the given APRL_* variables set.
func executeCommandWithEnv(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	return runCommand(t, zap.NewNop(), env, args...)
}

func runCommand(t *testing.T, logger *zap.Logger, env map[string]string, args ...string) (string, error) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}

	rootCmd := newRootCmd(&cli{logger: logger})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}
