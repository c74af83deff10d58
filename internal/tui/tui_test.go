package tui

import (
	"context"
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/dataset"
	"github.com/handiism/minoise/internal/model"
	"github.com/handiism/minoise/internal/navigation"
	"github.com/handiism/minoise/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := Options{Projection: model.ProjectionUMAP, Scene: scene.DefaultOptions()}
	m := NewModel(context.Background(), dataset.NewLoader(dataset.NewEmbeddedSource()), opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

// loaded runs a load of p synchronously and feeds the result back.
func loaded(t *testing.T, m Model, p model.Projection) Model {
	t.Helper()
	msg := m.load(m.controller.RequestLoad(p))()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_LoadApplied(t *testing.T) {
	m := loaded(t, newTestModel(t), model.ProjectionUMAP)

	require.NotNil(t, m.controller.Dataset())
	assert.False(t, m.controller.Loading())
	assert.True(t, m.controller.State().IsTop())
	assert.Len(t, m.scene.Entities(), 5)

	center := m.controller.Center()
	assert.InDelta(t, center.X, float64(m.scene.Camera.Target.X), 1e-4)
	assert.InDelta(t, center.Z, float64(m.scene.Camera.Target.Z), 1e-4)

	require.NotEmpty(t, m.logs)
	assert.Equal(t, LevelWarning, m.logs[len(m.logs)-1].Level)
	assert.Contains(t, m.logs[len(m.logs)-1].Message, "1 track(s) without coordinates")
}

func TestModel_KeyboardNavigation(t *testing.T) {
	m := loaded(t, newTestModel(t), model.ProjectionUMAP)

	m, _ = press(t, m, keyTab, keyEnter)
	state := m.controller.State()
	require.Equal(t, navigation.LevelGenreSelected, state.Level())
	assert.Equal(t, "jazz", state.Genre().Name)
	assert.Len(t, m.scene.Entities(), 4)
	assert.Zero(t, m.scene.Fade.Value())

	m, _ = press(t, m, keyTab, keyEnter)
	state = m.controller.State()
	require.Equal(t, navigation.LevelArtistSelected, state.Level())
	assert.Equal(t, state.Genre().Artists[0], state.Artist())

	m, cmd := press(t, m, keyEsc)
	assert.False(t, isQuit(cmd))
	assert.Equal(t, navigation.LevelGenreSelected, m.controller.State().Level())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, m.controller.State().IsTop())
	assert.Len(t, m.scene.Entities(), 5)
}

func TestModel_EscAtTopQuits(t *testing.T) {
	m := loaded(t, newTestModel(t), model.ProjectionUMAP)

	_, cmd := press(t, m, keyEsc)
	assert.True(t, isQuit(cmd))

	_, cmd = press(t, m, runeKey('q'))
	assert.True(t, isQuit(cmd))
}

func TestModel_ProjectionSwitchDiscardsStale(t *testing.T) {
	m := newTestModel(t)

	first := m.load(m.controller.RequestLoad(model.ProjectionUMAP))
	m, cmd := press(t, m, runeKey('p'))
	require.NotNil(t, cmd)
	assert.Equal(t, model.ProjectionPCA, m.controller.Projection())

	// The newer PCA result lands first; the older UMAP one must not win.
	next, _ := m.Update(cmd())
	m = next.(Model)
	next, _ = m.Update(first())
	m = next.(Model)

	require.NotNil(t, m.controller.Dataset())
	assert.Equal(t, model.ProjectionPCA, m.controller.Dataset().Projection)
	assert.False(t, m.controller.Loading())
}

func TestModel_FailedLoadIsLogged(t *testing.T) {
	m := newTestModel(t)
	req := m.controller.RequestLoad(model.ProjectionPCA)

	next, _ := m.Update(LoadDoneMsg{Result: navigation.LoadResult{Request: req, Err: errors.New("boom")}})
	m = next.(Model)

	assert.Nil(t, m.controller.Dataset())
	require.Len(t, m.logs, 1)
	assert.Equal(t, LevelError, m.logs[0].Level)
	assert.Contains(t, m.logs[0].Message, "boom")
	assert.Contains(t, m.View(), "No dataset loaded")
}

func TestModel_MouseSelectsGenre(t *testing.T) {
	m := loaded(t, newTestModel(t), model.ProjectionUMAP)

	w, h := m.canvasSize()
	placed := m.scene.Place(scene.NewTerminalProjector(w, h))
	var x, y int
	found := false
	for i := len(placed) - 1; i >= 0 && !found; i-- {
		x, y = int(math.Floor(placed[i].Screen.X)), int(math.Floor(placed[i].Screen.Y))
		found = x >= 0 && x < w && y >= 0 && y < h
	}
	require.True(t, found, "no genre on screen")
	want, ok := scene.Pick(placed, float64(x)+0.5, float64(y)+0.5, 0.6, scene.TerminalCellAspect)
	require.True(t, ok)

	next, _ := m.Update(tea.MouseMsg{X: x, Y: y + headerHeight, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m = next.(Model)
	hovered, ok := m.scene.Hovered()
	require.True(t, ok)
	assert.Equal(t, want.Key, hovered.Key)

	next, _ = m.Update(tea.MouseMsg{X: x, Y: y + headerHeight, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	state := m.controller.State()
	require.Equal(t, navigation.LevelGenreSelected, state.Level())
	assert.Equal(t, want.Genre, state.Genre())
}

func TestModel_HeaderButtons(t *testing.T) {
	m := loaded(t, newTestModel(t), model.ProjectionUMAP)

	for _, s := range m.headerSegments() {
		assert.NotEqual(t, actionBack, s.action, "back is hidden at top")
	}

	m, _ = press(t, m, keyTab, keyEnter)
	require.False(t, m.controller.State().IsTop())

	x := 0
	for _, s := range m.headerSegments() {
		if s.action == actionBack {
			break
		}
		x += lipgloss.Width(s.text)
	}
	require.Equal(t, actionBack, m.headerActionAt(x+1))
	next, _ := m.Update(tea.MouseMsg{X: x + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	assert.True(t, m.controller.State().IsTop())
}

func TestModel_View(t *testing.T) {
	m := loaded(t, newTestModel(t), model.ProjectionUMAP)

	view := m.View()
	assert.Contains(t, view, "minoise")
	assert.Contains(t, view, "UMAP")
	assert.Contains(t, view, "PCA")
	assert.Contains(t, view, "Select a genre")
	assert.Contains(t, view, "All genres")
	assert.NotContains(t, view, "Back")

	m, _ = press(t, m, keyTab, keyEnter, keyTab, keyEnter)
	artist := m.controller.State().Artist()
	require.NotNil(t, artist)

	view = m.View()
	assert.Contains(t, view, "Back")
	assert.Contains(t, view, artist.Name)
	assert.Contains(t, view, artist.Tracks[0].Name)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
}
