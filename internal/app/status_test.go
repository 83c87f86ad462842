package app_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runway/internal/app"
	"go.trai.ch/runway/internal/core/domain"
)

func TestRenderStatus(t *testing.T) {
	project := domain.DefaultProject("/work/rmdb")

	tests := []struct {
		name       string
		report     *app.StatusReport
		goldenName string
	}{
		{
			name: "stale release build",
			report: &app.StatusReport{
				Project:         project,
				Mode:            domain.ModeRelease,
				ManifestPresent: true,
				Host:            domain.HostProfile{ID: domain.HostDebian, Version: "12"},
				Capabilities: domain.CapabilitySet{
					{Capability: domain.CapabilityCompiler, Tool: "gcc", Path: "/usr/bin/gcc"},
					{Capability: domain.CapabilityBuildDriver},
					{Capability: domain.CapabilityFetcher, Tool: "curl", Path: "/usr/bin/curl"},
				},
				Toolchain:      domain.Toolchain{Driver: "/home/dev/.cargo/bin/cargo"},
				ToolchainFound: true,
				Artifact:       domain.Artifact{Path: project.ArtifactPath(domain.ModeRelease), Exists: true},
				Decision:       domain.Decision{Rebuild: true, Reason: "input changed", Trigger: "/work/rmdb/src/main.rs"},
				LastBuild: &domain.BuildRecord{
					Mode:     domain.ModeRelease,
					Digest:   "9c2e5f1a0b3d4e67",
					Host:     "debian 12",
					BuiltAt:  time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
					Duration: 42500 * time.Millisecond,
				},
			},
			goldenName: "status_stale",
		},
		{
			name: "fresh checkout",
			report: &app.StatusReport{
				Project:  project,
				Mode:     domain.ModeDebug,
				Host:     domain.UnknownHost(),
				Artifact: domain.Artifact{Path: project.ArtifactPath(domain.ModeDebug)},
				Decision: domain.Decision{Rebuild: true, Reason: "artifact missing"},
			},
			goldenName: "status_fresh_checkout",
		},
		{
			name: "up to date",
			report: &app.StatusReport{
				Project:         project,
				Mode:            domain.ModeDebug,
				ManifestPresent: true,
				Host:            domain.HostProfile{ID: domain.HostArch},
				Toolchain:       domain.Toolchain{Driver: "/usr/bin/cargo"},
				ToolchainFound:  true,
				Artifact:        domain.Artifact{Path: project.ArtifactPath(domain.ModeDebug), Exists: true},
				Decision:        domain.Decision{Reason: "artifact up to date"},
			},
			goldenName: "status_up_to_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderer := lipgloss.NewRenderer(&buf, termenv.WithProfile(termenv.Ascii))

			require.NoError(t, app.RenderStatus(renderer, &buf, tt.report))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
