package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjanphilip/folio/internal/config"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing file changes into the UI.
type App struct {
	ui            UI
	config        config.Config
	configUpdates <-chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call Start().
func NewApp(conf config.Config, userInterface UI, configUpdates <-chan config.Config) *App {
	return &App{
		ui:            userInterface,
		config:        conf,
		configUpdates: configUpdates,
	}
}

// Start runs the UI alongside the watchers feeding it, returning once the UI exits.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})

	group.Go(func() error {
		app.configSyncer(groupCtx)

		return nil
	})

	if contentPath := app.config.ContentPath; contentPath != "" {
		group.Go(func() error {
			err := portfolio.Watch(groupCtx, contentPath, config.DefaultReloadWindow,
				func(content portfolio.Portfolio) { app.ui.Send(content) },
				func(err error) { app.ui.Send(ui.ContentErrorMsg{Err: err}) })
			if err != nil {
				// The page keeps working without live reloads.
				slog.Error("Content watcher stopped", slog.String("error", err.Error()))
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// configSyncer forwards reloaded configs to the UI. A changed content path also swaps the content
// shown, though it is only watched for edits after a restart.
func (app *App) configSyncer(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			if conf.ContentPath != app.config.ContentPath {
				content, err := portfolio.Load(conf.ContentPath)
				if err != nil {
					app.ui.Send(ui.ContentErrorMsg{Err: err})
				} else {
					app.ui.Send(content)
				}
			}

			app.config = conf
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
