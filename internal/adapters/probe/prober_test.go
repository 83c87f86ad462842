package probe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runway/internal/adapters/probe"
	"go.trai.ch/runway/internal/core/domain"
)

func installTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // test executable
	return path
}

func TestProber_Probe(t *testing.T) {
	dir := t.TempDir()
	gcc := installTool(t, dir, "gcc")
	curl := installTool(t, dir, "curl")
	env := []string{"PATH=" + dir}

	set := probe.New().Probe(domain.DefaultRequirements(), env)

	require.Len(t, set, 3)
	assert.Equal(t, domain.CapabilityStatus{Capability: domain.CapabilityCompiler, Tool: "gcc", Path: gcc}, set[0])
	assert.Equal(t, domain.CapabilityStatus{Capability: domain.CapabilityBuildDriver}, set[1])
	assert.Equal(t, domain.CapabilityStatus{Capability: domain.CapabilityFetcher, Tool: "curl", Path: curl}, set[2])
	assert.Equal(t, []domain.Capability{domain.CapabilityBuildDriver}, set.Missing())
}

func TestProber_PrefersFirstTool(t *testing.T) {
	dir := t.TempDir()
	cc := installTool(t, dir, "cc")
	installTool(t, dir, "clang")

	set := probe.New().Probe([]domain.Requirement{
		{Capability: domain.CapabilityCompiler, Tools: []string{"cc", "gcc", "clang"}},
	}, []string{"PATH=" + dir})

	status, ok := set.Lookup(domain.CapabilityCompiler)
	require.True(t, ok)
	assert.Equal(t, "cc", status.Tool)
	assert.Equal(t, cc, status.Path)
}

func TestProber_Repeatable(t *testing.T) {
	dir := t.TempDir()
	env := []string{"PATH=" + dir}
	prober := probe.New()

	before := prober.Probe(domain.DefaultRequirements(), env)
	assert.False(t, before.Satisfied())

	installTool(t, dir, "cc")
	installTool(t, dir, "make")
	installTool(t, dir, "wget")

	after := prober.Probe(domain.DefaultRequirements(), env)
	assert.True(t, after.Satisfied())
}
