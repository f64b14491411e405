package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjanphilip/folio/internal/config"
	"github.com/fjanphilip/folio/internal/portfolio"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, conf config.Config, content portfolio.Portfolio, build BuildInfo, configPath string) *UI {
	zone.NewGlobal()

	return &UI{
		program: tea.NewProgram(
			newRootModel(conf, content, build, configPath),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(conf.FPS)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

// Send delivers a message from outside the program, such as a config or content reload.
func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
