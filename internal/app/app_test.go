package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"go.trai.ch/runviz/internal/adapters/config"
	"go.trai.ch/runviz/internal/adapters/httpapi"
	"go.trai.ch/runviz/internal/adapters/telemetry"
	"go.trai.ch/runviz/internal/app"
	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/core/ports/mocks"
	"go.trai.ch/runviz/internal/engine/runtime"
)

func newTestApp(t *testing.T, opener *mocks.MockCheckpointOpener) *app.App {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	fp := mocks.NewMockFingerprinter(ctrl)
	fp.EXPECT().Fingerprint(gomock.Any()).Return(domain.Fingerprint("fp"), nil).AnyTimes()

	cfg := config.Default()
	cfg.Listen = "127.0.0.1:0"

	rt := runtime.New(opener, fp, log, telemetry.NewNoopTracer(), runtime.Options{
		LogsDir:       t.TempDir(),
		TemplateLease: cfg.Leases.Template(),
		ReloadLease:   cfg.Leases.Reload(),
	})
	server := httpapi.NewServer(rt, log, cfg.Sampling)

	return app.New(rt, server, &cfg, log)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockCheckpointOpener(ctrl)

	a := newTestApp(t, opener)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Serve(ctx, "")
	}()

	// Give the listener a moment to come up, then shut down.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServe_InitialTemplateBindFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockCheckpointOpener(ctrl)
	opener.EXPECT().Open(gomock.Any()).Return(nil, errors.New("no such run"))

	a := newTestApp(t, opener)

	err := a.Serve(context.Background(), "missing-run")
	if err == nil {
		t.Fatal("Expected an error when the initial template cannot be bound")
	}
}
