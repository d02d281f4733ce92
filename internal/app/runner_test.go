package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"shipfront/internal/config"
	"shipfront/internal/logx"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := dig.New()
	require.NoError(t, provideAll(c,
		func() context.Context { return ctx },
		func() logx.Logger { return logx.Nop() },
		testConfig,
		func() *http.Server {
			return &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
		},
	))

	done := make(chan error, 1)
	go func() { done <- run(c) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after context cancellation")
	}
}

func TestStartPprof_DisabledWithoutAddr(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	require.Nil(t, startPprof(cfg, logx.Nop()))
}
