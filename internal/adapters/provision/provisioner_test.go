package provision_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runway/internal/adapters/provision"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports"
	"go.trai.ch/runway/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var (
	satisfied = domain.CapabilitySet{
		{Capability: domain.CapabilityCompiler, Tool: "cc", Path: "/usr/bin/cc"},
		{Capability: domain.CapabilityBuildDriver, Tool: "make", Path: "/usr/bin/make"},
		{Capability: domain.CapabilityFetcher, Tool: "curl", Path: "/usr/bin/curl"},
	}
	missingCompiler = domain.CapabilitySet{
		{Capability: domain.CapabilityCompiler},
		{Capability: domain.CapabilityBuildDriver, Tool: "make", Path: "/usr/bin/make"},
		{Capability: domain.CapabilityFetcher, Tool: "curl", Path: "/usr/bin/curl"},
	}
)

// available returns a lookPath that only finds the named tools.
func available(tools ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, t := range tools {
			if t == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func root() int    { return 0 }
func nonRoot() int { return 1000 }

func argv(cmd *domain.Command) []string {
	return cmd.Argv()
}

func TestProvisioner_SatisfiedIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	// No expectations: any executor call fails the test.

	p := provision.New(mockExecutor, mockLogger, provision.WithEUID(root), provision.WithLookPath(available()))

	hosts := append([]domain.HostID{domain.HostUnknown}, domain.KnownHosts...)
	for _, host := range hosts {
		report, err := p.Provision(context.Background(), domain.HostProfile{ID: host}, satisfied)
		require.NoError(t, err)
		assert.Equal(t, ports.ProvisionNotNeeded, report.Status)
		assert.Zero(t, report.Invocations)
		assert.Empty(t, report.Warnings)
	}
}

func TestProvisioner_UnknownHostSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provision.New(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl), provision.WithEUID(root))

	report, err := p.Provision(context.Background(), domain.UnknownHost(), missingCompiler)
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionSkipped, report.Status)
	assert.Zero(t, report.Invocations)
	require.Len(t, report.Warnings, 1)
	assert.ErrorContains(t, report.Warnings[0], domain.ErrUnknownHost.Error())
}

func TestProvisioner_DebianAsRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	var calls [][]string
	mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _ []string) error {
			calls = append(calls, argv(cmd))
			return nil
		}).Times(2)

	p := provision.New(mockExecutor, mockLogger, provision.WithEUID(root), provision.WithLookPath(available("apt-get")))

	report, err := p.Provision(context.Background(), domain.HostProfile{ID: domain.HostDebian}, missingCompiler)
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionApplied, report.Status)
	assert.Equal(t, 2, report.Invocations)
	assert.Equal(t, [][]string{
		{"apt-get", "update"},
		{"apt-get", "install", "-y", "build-essential", "pkg-config", "libssl-dev", "curl", "ca-certificates"},
	}, calls)
}

func TestProvisioner_ElevatesWithSudo(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var calls [][]string
	mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _ []string) error {
			calls = append(calls, argv(cmd))
			return nil
		}).Times(2)

	p := provision.New(mockExecutor, mockLogger,
		provision.WithEUID(nonRoot),
		provision.WithLookPath(available("sudo", "doas", "pacman")))

	_, err := p.Provision(context.Background(), domain.HostProfile{ID: domain.HostArch}, missingCompiler)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"sudo", "pacman", "-Sy", "--noconfirm"}, calls[0])
	assert.Equal(t, []string{"sudo", "pacman", "-S", "--needed", "--noconfirm", "base-devel", "pkgconf", "openssl", "curl"}, calls[1])
}

func TestProvisioner_ElevatesWithDoas(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var first []string
	mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _ []string) error {
			if first == nil {
				first = argv(cmd)
			}
			return nil
		}).Times(2)

	p := provision.New(mockExecutor, mockLogger,
		provision.WithEUID(nonRoot),
		provision.WithLookPath(available("doas")))

	_, err := p.Provision(context.Background(), domain.HostProfile{ID: domain.HostAlpine}, missingCompiler)
	require.NoError(t, err)
	assert.Equal(t, []string{"doas", "apk", "update"}, first)
}

func TestProvisioner_NoElevation(t *testing.T) {
	t.Run("privileged platform skips", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := provision.New(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl),
			provision.WithEUID(nonRoot),
			provision.WithLookPath(available()))

		report, err := p.Provision(context.Background(), domain.HostProfile{ID: domain.HostFedora}, missingCompiler)
		require.NoError(t, err)
		assert.Equal(t, ports.ProvisionSkipped, report.Status)
		assert.Zero(t, report.Invocations)
		require.Len(t, report.Warnings, 1)
		assert.True(t, errors.Is(report.Warnings[0], domain.ErrNoElevation))
	})

	t.Run("minimal platform attempts unprivileged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockExecutor := mocks.NewMockExecutor(ctrl)
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Warn("no elevation tool found, attempting an unprivileged install").Times(1)
		mockLogger.EXPECT().Info(gomock.Any()).Times(1)

		var calls [][]string
		mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd *domain.Command, _ []string) error {
				calls = append(calls, argv(cmd))
				return nil
			}).Times(2)

		p := provision.New(mockExecutor, mockLogger,
			provision.WithEUID(nonRoot),
			provision.WithLookPath(available("apk")))

		report, err := p.Provision(context.Background(), domain.HostProfile{ID: domain.HostAlpine}, missingCompiler)
		require.NoError(t, err)
		assert.Equal(t, ports.ProvisionApplied, report.Status)
		assert.Equal(t, []string{"apk", "update"}, calls[0])
		assert.Equal(t, []string{"apk", "add", "build-base", "pkgconf", "openssl-dev", "curl"}, calls[1])
	})
}

func TestProvisioner_FallbackManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("installing build dependencies with yum (missing: compiler)").Times(1)

	var calls [][]string
	mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _ []string) error {
			calls = append(calls, argv(cmd))
			return nil
		}).Times(1)

	p := provision.New(mockExecutor, mockLogger,
		provision.WithEUID(root),
		provision.WithLookPath(available("yum")))

	report, err := p.Provision(context.Background(), domain.HostProfile{ID: domain.HostCentOS}, missingCompiler)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Invocations)
	assert.Equal(t, [][]string{{"yum", "install", "-y", "gcc", "make", "pkgconf-pkg-config", "openssl-devel", "curl"}}, calls)
}

func TestProvisioner_FailuresAreWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	gomock.InOrder(
		mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("exit status 100")),
		mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	p := provision.New(mockExecutor, mockLogger, provision.WithEUID(root))

	report, err := p.Provision(context.Background(), domain.HostProfile{ID: domain.HostUbuntu}, missingCompiler)
	require.NoError(t, err)
	assert.Equal(t, ports.ProvisionPartial, report.Status)
	assert.Equal(t, 2, report.Invocations)
	require.Len(t, report.Warnings, 1)
	assert.ErrorContains(t, report.Warnings[0], domain.ErrPackageManagerFailed.Error())
	assert.ErrorContains(t, report.Warnings[0], "exit status 100")
}

func TestProvisioner_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	mockExecutor.EXPECT().Interact(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Command, _ []string) error {
			cancel()
			return errors.New("signal: interrupt")
		}).Times(1)

	p := provision.New(mockExecutor, mockLogger, provision.WithEUID(root))

	report, err := p.Provision(ctx, domain.HostProfile{ID: domain.HostDebian}, missingCompiler)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Invocations)
}
