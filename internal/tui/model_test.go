package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/h5walk"
	"github.com/bjaus/h5walk/internal/config"
	"github.com/bjaus/h5walk/internal/tui"
)

func newModel(t *testing.T) tui.Model {
	t.Helper()

	mem := h5walk.NewMem()
	require.NoError(t, mem.CreateGroup("/experiment"))
	require.NoError(t, mem.WriteDataset("/experiment/data", h5walk.Array{
		Shape: []int{2},
		Type:  h5walk.TypeInt,
		Elems: []any{int64(1), int64(2)},
	}, nil))
	require.NoError(t, mem.CreateGroup("/empty"))

	m := tui.New(config.Default(), h5walk.NewTree(mem), "bench.h5g")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(tui.Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(tui.Model)
	}
	return m
}

func TestModelRendersListing(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	out := m.View()

	assert.Contains(t, out, "bench.h5g")
	assert.Contains(t, out, "experiment/")
	assert.Contains(t, out, "empty/")
}

func TestModelNavigation(t *testing.T) {
	t.Parallel()

	m := newModel(t)

	m = press(t, m, keyRune('j'), tea.KeyMsg{Type: tea.KeyEnter})
	out := m.View()
	assert.Contains(t, out, "/empty")
	assert.Contains(t, out, "(empty group)")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, keyRune('k'), tea.KeyMsg{Type: tea.KeyEnter})
	out = m.View()
	assert.Contains(t, out, "/experiment")
	assert.Contains(t, out, "data")
}

func TestModelInfoOverlay(t *testing.T) {
	t.Parallel()

	m := newModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, keyRune('i'))
	out := m.View()
	assert.Contains(t, out, "/experiment/data")
	assert.Contains(t, out, "press any key")

	m = press(t, m, keyRune('x'))
	assert.NotContains(t, m.View(), "press any key")
	assert.Contains(t, m.View(), "Path: /experiment")
}

func TestModelInfoRequiresDataset(t *testing.T) {
	t.Parallel()

	m := newModel(t)

	m = press(t, m, keyRune('i'))
	assert.Contains(t, m.View(), "select a dataset")
}
