package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/runway/internal/app"
	"go.trai.ch/runway/internal/core/domain"
	"go.trai.ch/runway/internal/core/ports/mocks"
	"go.trai.ch/runway/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller) (*app.App, *mocks.MockConfigLoader, *mocks.MockLogger) {
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(mockLoader, pipeline.Deps{
		Identifier:  mocks.NewMockHostIdentifier(ctrl),
		Prober:      mocks.NewMockCapabilityProber(ctrl),
		Provisioner: mocks.NewMockProvisioner(ctrl),
		Toolchain:   mocks.NewMockToolchainInstaller(ctrl),
		Staleness:   mocks.NewMockStalenessChecker(ctrl),
		Builder:     mocks.NewMockBuilder(ctrl),
		Journal:     mocks.NewMockBuildJournal(ctrl),
		Gatekeeper:  mocks.NewMockGatekeeper(ctrl),
		Launcher:    mocks.NewMockLauncher(ctrl),
		Logger:      mockLogger,
	}, mockLogger)

	return application, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, _, mockLogger := newTestApp(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, mockLoader, mockLogger := newTestApp(ctrl)

	mockLoader.EXPECT().Load("/nowhere").Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-C", "/nowhere"}, stderr, provider, func(a *app.App) {
		a.WithOutput(new(bytes.Buffer), new(bytes.Buffer))
	})

	assert.Equal(t, 1, exitCode)
}

// TestRun_ExitStatus verifies that the application's own exit status is propagated without logging.
func TestRun_ExitStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, mockLoader, mockLogger := newTestApp(ctrl)

	mockLoader.EXPECT().Load(".").Return(nil, &domain.ExitStatusError{Code: 3})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"status"}, stderr, provider)

	assert.Equal(t, 3, exitCode)
}

// TestRun_CleanupCalled verifies the provider's cleanup runs after execution.
func TestRun_CleanupCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, _, mockLogger := newTestApp(ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}
