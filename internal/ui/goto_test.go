package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjanphilip/folio/internal/nav"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/stretchr/testify/require"
)

func typeInto(model gotoModel, text string) gotoModel {
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})

	return model
}

func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, inner := range batch {
			msgs = append(msgs, collectMsgs(inner)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

func TestGotoEmptyQueryListsEverything(t *testing.T) {
	entries := portfolio.Default().SearchEntries()
	model, _ := newGotoModel(entries).open()

	require.Len(t, model.matches, len(entries))
	require.Equal(t, nav.SectionProfile, model.matches[0].Section)
}

func TestGotoAcceptNavigates(t *testing.T) {
	model, _ := newGotoModel(portfolio.Default().SearchEntries()).open()
	model = typeInto(model, "Laravel")

	require.NotEmpty(t, model.matches)
	require.Equal(t, "Laravel", model.matches[0].Text)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collectMsgs(cmd)

	require.Contains(t, msgs, tea.Msg(gotoClosedMsg{}))
	require.Contains(t, msgs, tea.Msg(navigateMsg{section: nav.SectionSkills}))
}

func TestGotoNoMatches(t *testing.T) {
	model, _ := newGotoModel(portfolio.Default().SearchEntries()).open()
	model = typeInto(model, "zzzzqqqq")

	require.Empty(t, model.matches)
	require.Contains(t, model.View(), "no matches")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []tea.Msg{gotoClosedMsg{}}, collectMsgs(cmd))
}

func TestGotoSelectionBounds(t *testing.T) {
	model, _ := newGotoModel(portfolio.Default().SearchEntries()).open()

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, model.selected)

	for range maxGotoResults * 2 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	require.Equal(t, maxGotoResults-1, model.selected)
}

func TestGotoEscCloses(t *testing.T) {
	model, _ := newGotoModel(portfolio.Default().SearchEntries()).open()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, []tea.Msg{gotoClosedMsg{}}, collectMsgs(cmd))
}
