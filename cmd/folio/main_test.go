package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjanphilip/folio/internal/config"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestContentArg(t *testing.T) {
	conf := config.Default()
	conf.ContentPath = "configured.yaml"

	require.Equal(t, "given.yaml", contentArg([]string{"given.yaml"}, conf))
	require.Equal(t, "configured.yaml", contentArg(nil, conf))
}

func TestCheckBuiltIn(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	checkCmd.SetOut(&out)
	t.Cleanup(func() { checkCmd.SetOut(nil) })

	require.NoError(t, check(checkCmd, nil))
	require.Contains(t, out.String(), "built-in content: ok")
}

func TestCheckInvalidFile(t *testing.T) {
	isolate(t)

	target := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(target, []byte("meta: [not, a, map]\n"), 0o600))

	require.Error(t, check(checkCmd, []string{target}))
}

func TestRenderCommand(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	t.Cleanup(func() { renderCmd.SetOut(nil) })

	renderWidth = 80
	renderHeight = 20

	require.NoError(t, render(renderCmd, nil))
	require.Contains(t, out.String(), "All rights reserved.")
}

type fakeUI struct {
	mu   sync.Mutex
	sent []tea.Msg
	stop chan struct{}
}

func (f *fakeUI) Send(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, msg)
}

func (f *fakeUI) Run() error {
	<-f.stop

	return nil
}

func (f *fakeUI) messages() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]tea.Msg(nil), f.sent...)
}

func TestAppForwardsConfig(t *testing.T) {
	updates := make(chan config.Config)
	fake := &fakeUI{stop: make(chan struct{})}
	app := NewApp(config.Default(), fake, updates)

	done := make(chan error)
	go func() { done <- app.Start(context.Background()) }()

	changed := config.Default()
	changed.SmoothScroll = false
	updates <- changed

	require.Eventually(t, func() bool {
		return len(fake.messages()) == 1
	}, time.Second, time.Millisecond*10)
	require.Equal(t, changed, fake.messages()[0])

	close(fake.stop)
	require.NoError(t, <-done)
}

func TestAppLoadsNewContentPath(t *testing.T) {
	updates := make(chan config.Config)
	fake := &fakeUI{stop: make(chan struct{})}
	app := NewApp(config.Default(), fake, updates)

	done := make(chan error)
	go func() { done <- app.Start(context.Background()) }()

	changed := config.Default()
	changed.ContentPath = filepath.Join(t.TempDir(), "missing.yaml")
	updates <- changed

	require.Eventually(t, func() bool {
		return len(fake.messages()) == 2
	}, time.Second, time.Millisecond*10)

	msgs := fake.messages()
	contentErr, ok := msgs[0].(ui.ContentErrorMsg)
	require.True(t, ok)
	require.ErrorIs(t, contentErr.Err, portfolio.ErrRead)
	require.Equal(t, changed, msgs[1])

	close(fake.stop)
	require.NoError(t, <-done)
}
