// Package tui provides the Bubble Tea terminal user interface for minoise.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/minoise/internal/config"
	"github.com/handiism/minoise/internal/dataset"
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
	"github.com/handiism/minoise/internal/navigation"
	"github.com/handiism/minoise/internal/render"
	"github.com/handiism/minoise/internal/scene"
	"github.com/handiism/minoise/internal/watch"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B28BFF"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6E6E6")).
			Background(lipgloss.Color("#2A2A3A")).
			Padding(0, 1)

	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#12121C")).
				Background(lipgloss.Color("#B28BFF")).
				Bold(true)
)

const (
	headerHeight = 3
	maxLogs      = 3

	orbitStep = 0.15
	zoomStep  = 1.1

	// maxFrameGap caps the animation step after a stall.
	maxFrameGap = 250 * time.Millisecond
)

// Level indicates the severity of a status log entry.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// LogEntry represents a status message in the UI.
type LogEntry struct {
	Message string
	Level   Level
}

// Message types
type (
	// LoadDoneMsg is sent when a dataset load finishes.
	LoadDoneMsg struct {
		Result  navigation.LoadResult
		Elapsed time.Duration
	}

	// ReloadMsg asks for the asset of a projection to be loaded again,
	// e.g. after it changed on disk.
	ReloadMsg struct {
		Projection model.Projection
	}

	// FrameMsg drives the animation.
	FrameMsg time.Time
)

// action is something a header button does.
type action int

const (
	actionNone action = iota
	actionPCA
	actionUMAP
	actionBack
)

// segment is a piece of the header line.
type segment struct {
	text   string
	action action
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctx        context.Context
	loader     *dataset.Loader
	controller *navigation.Controller
	scene      *scene.Scene
	initial    model.Projection

	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	logs     []LogEntry
	verbose  bool
	showHelp bool

	lastFrame time.Time

	width  int
	height int
}

// Options configures NewModel.
type Options struct {
	Projection model.Projection
	Scene      scene.Options
	Verbose    bool
}

// OptionsFromSettings converts settings to model options.
func OptionsFromSettings(s *config.Settings) (Options, error) {
	p, err := s.InitialProjection()
	if err != nil {
		return Options{}, err
	}
	layout := scene.NewLayout()
	layout.GenreScale = s.GenreScale
	return Options{
		Projection: p,
		Scene: scene.Options{
			FPS:             s.FPS,
			AutoRotate:      s.AutoRotate,
			AutoRotateSpeed: s.AutoRotateSpeed,
			CameraDistance:  s.CameraDistance,
			Layout:          layout,
		},
		Verbose: s.Verbose,
	}, nil
}

// NewModel creates a new TUI model. Loads run with ctx.
func NewModel(ctx context.Context, loader *dataset.Loader, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#B28BFF"))

	sc := scene.New(opts.Scene)
	controller := navigation.NewController(opts.Projection)
	controller.OnFade(func(*model.Genre) {
		sc.Fade.Reset()
	})

	return Model{
		ctx:        ctx,
		loader:     loader,
		controller: controller,
		scene:      sc,
		initial:    opts.Projection,
		spinner:    sp,
		help:       help.New(),
		keys:       defaultKeyMap(),
		logs:       make([]LogEntry, 0),
		verbose:    opts.Verbose,
		width:      80,
		height:     24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.load(m.controller.RequestLoad(m.initial)),
		m.tickFrame(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		m.applyLoad(msg)

	case ReloadMsg:
		if msg.Projection == m.controller.Projection() {
			m.addLog(LevelInfo, fmt.Sprintf("%s asset changed, reloading", msg.Projection.Label()))
			cmds = append(cmds, m.load(m.controller.Reload()))
		}

	case FrameMsg:
		now := time.Time(msg)
		dt := m.scene.FrameDuration()
		if !m.lastFrame.IsZero() {
			dt = min(now.Sub(m.lastFrame), maxFrameGap)
		}
		m.lastFrame = now
		m.scene.Step(dt)
		cmds = append(cmds, m.tickFrame())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if msg.String() == "esc" && m.controller.State().IsTop() {
			return m, tea.Quit
		}
		m.back()

	case key.Matches(msg, m.keys.Next):
		m.scene.HoverNext(1)

	case key.Matches(msg, m.keys.Prev):
		m.scene.HoverNext(-1)

	case key.Matches(msg, m.keys.Select):
		if e, ok := m.scene.Hovered(); ok {
			m.selectEntity(e)
		}

	case key.Matches(msg, m.keys.PCA):
		return m, m.switchProjection(model.ProjectionPCA)

	case key.Matches(msg, m.keys.UMAP):
		return m, m.switchProjection(model.ProjectionUMAP)

	case key.Matches(msg, m.keys.Reload):
		m.addLog(LevelInfo, fmt.Sprintf("Reloading %s", m.controller.Projection().Label()))
		return m, m.load(m.controller.Reload())

	case key.Matches(msg, m.keys.AutoRotate):
		m.scene.Camera.AutoRotate = !m.scene.Camera.AutoRotate

	case key.Matches(msg, m.keys.OrbitLeft):
		m.scene.Camera.Orbit(-orbitStep, 0)

	case key.Matches(msg, m.keys.OrbitRight):
		m.scene.Camera.Orbit(orbitStep, 0)

	case key.Matches(msg, m.keys.OrbitUp):
		m.scene.Camera.Orbit(0, orbitStep)

	case key.Matches(msg, m.keys.OrbitDown):
		m.scene.Camera.Orbit(0, -orbitStep)

	case key.Matches(msg, m.keys.ZoomIn):
		m.scene.Camera.Zoom(1 / zoomStep)

	case key.Matches(msg, m.keys.ZoomOut):
		m.scene.Camera.Zoom(zoomStep)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scene.Camera.Zoom(1 / zoomStep)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scene.Camera.Zoom(zoomStep)
		return m, nil
	}

	if msg.Y == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch m.headerActionAt(msg.X) {
		case actionPCA:
			return m, m.switchProjection(model.ProjectionPCA)
		case actionUMAP:
			return m, m.switchProjection(model.ProjectionUMAP)
		case actionBack:
			m.back()
		}
		return m, nil
	}

	w, h := m.canvasSize()
	y := msg.Y - headerHeight
	if y < 0 || y >= h {
		return m, nil
	}

	placed := m.scene.Place(scene.NewTerminalProjector(w, h))
	hit, ok := scene.Pick(placed, float64(msg.X)+0.5, float64(y)+0.5, 0.6, scene.TerminalCellAspect)

	switch msg.Action {
	case tea.MouseActionMotion:
		if ok {
			m.scene.Hover(hit.Key)
		} else {
			m.scene.Hover("")
		}
	case tea.MouseActionPress:
		if ok && msg.Button == tea.MouseButtonLeft {
			m.scene.Hover(hit.Key)
			m.selectEntity(hit.Entity)
		}
	}
	return m, nil
}

func (m *Model) selectEntity(e scene.Entity) {
	before := m.controller.State()
	switch e.Kind {
	case scene.KindGenre:
		m.controller.SelectGenre(e.Genre)
	case scene.KindArtist:
		m.controller.SelectArtist(e.Artist)
	default:
		return
	}
	if m.controller.State() != before {
		logging.Debugw("Navigation", "state", m.controller.State().String())
		m.refreshEntities()
	}
}

func (m *Model) back() {
	if m.controller.State().IsTop() {
		return
	}
	m.controller.Back()
	logging.Debugw("Navigation", "state", m.controller.State().String())
	m.refreshEntities()
}

func (m *Model) switchProjection(p model.Projection) tea.Cmd {
	if p == m.controller.Projection() && !m.controller.Loading() && m.controller.Dataset() != nil {
		return nil
	}
	m.addLog(LevelInfo, fmt.Sprintf("Loading %s", p.Label()))
	return m.load(m.controller.RequestLoad(p))
}

func (m *Model) refreshEntities() {
	c := m.controller
	m.scene.SetEntities(navigation.Entities(m.scene.Layout, c.Dataset(), c.State()))
}

func (m *Model) applyLoad(msg LoadDoneMsg) {
	res := msg.Result
	label := res.Request.Projection.Label()

	switch m.controller.ApplyLoad(res) {
	case navigation.OutcomeApplied:
		m.scene.Retarget(m.controller.Center())
		m.scene.Hover("")
		m.refreshEntities()

		stats := res.Dataset.Stats()
		m.addLog(LevelSuccess, fmt.Sprintf("Loaded %s: %d genres, %d artists, %d tracks (%s)",
			label, stats.Genres, stats.Artists, stats.Tracks, msg.Elapsed.Round(time.Millisecond)))
		if skipped := stats.Tracks - stats.PositionedTracks; skipped > 0 {
			m.addLog(LevelWarning, fmt.Sprintf("%d track(s) without coordinates", skipped))
		}

	case navigation.OutcomeFailed:
		m.addLog(LevelError, fmt.Sprintf("Could not load %s: %v", label, res.Err))

	case navigation.OutcomeStale:
		m.addLog(LevelVerbose, fmt.Sprintf("Ignored outdated %s result", label))
	}
}

func (m *Model) addLog(level Level, message string) {
	if level == LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: message, Level: level})
	// Keep only the last few logs
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// load returns a command loading the dataset for req.
func (m Model) load(req navigation.LoadRequest) tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		start := time.Now()
		ds, err := loader.Load(ctx, req.Projection)
		return LoadDoneMsg{
			Result:  navigation.LoadResult{Request: req, Dataset: ds, Err: err},
			Elapsed: time.Since(start),
		}
	}
}

// tickFrame returns a command for the next animation frame.
func (m Model) tickFrame() tea.Cmd {
	return tea.Tick(m.scene.FrameDuration(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(truncate(navigation.Breadcrumb(m.controller.State()), m.width)))
	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")

	w, h := m.canvasSize()
	b.WriteString(render.Terminal(m.scene, w, h).String())
	b.WriteString("\n")

	b.WriteString(m.renderLogs())
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// headerSegments lays out the header line: title, projection selector,
// load spinner and the back button when not at Top.
func (m Model) headerSegments() []segment {
	segs := []segment{
		{text: titleStyle.Render("minoise") + " "},
	}
	for _, p := range model.Projections() {
		style := buttonStyle
		if p == m.controller.Projection() {
			style = activeButtonStyle
		}
		act := actionPCA
		if p == model.ProjectionUMAP {
			act = actionUMAP
		}
		segs = append(segs, segment{text: style.Render(p.Label()), action: act}, segment{text: " "})
	}
	if m.controller.Loading() {
		segs = append(segs, segment{text: m.spinner.View() + subtitleStyle.Render("loading ")})
	}
	if !m.controller.State().IsTop() {
		segs = append(segs, segment{text: buttonStyle.Render("← Back"), action: actionBack})
	}
	return segs
}

func (m Model) renderHeader() string {
	var b strings.Builder
	for _, s := range m.headerSegments() {
		b.WriteString(s.text)
	}
	return b.String()
}

// headerActionAt returns the header button under column x.
func (m Model) headerActionAt(x int) action {
	col := 0
	for _, s := range m.headerSegments() {
		w := lipgloss.Width(s.text)
		if x >= col && x < col+w {
			return s.action
		}
		col += w
	}
	return actionNone
}

// renderSummary renders the tier caption, fading in with the scene.
func (m Model) renderSummary() string {
	state := m.controller.State()
	text := navigation.Summary(state)

	if m.controller.Dataset() == nil {
		text = "No dataset loaded"
	} else if a := state.Artist(); a != nil {
		var names []string
		for _, t := range a.Tracks {
			if t.Name != "" {
				names = append(names, t.Name)
			}
		}
		if len(names) > 0 {
			text += ": " + strings.Join(names, ", ")
		}
	}

	palette := m.scene.Layout.Palette
	fg := palette.Shade(colorful.Color{R: 0.95, G: 0.95, B: 0.95}, 1, m.scene.Fade.Value())
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(fg.Hex())).Render(truncate(text, m.width))
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case LevelError:
			style = errorStyle
			prefix = "✗"
		case LevelWarning:
			style = warningStyle
			prefix = "!"
		case LevelSuccess:
			style = successStyle
			prefix = "✓"
		case LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(truncate(prefix+" "+log.Message, m.width)))
		b.WriteString("\n")
	}

	return b.String()
}

// canvasSize returns the size of the scene area.
func (m Model) canvasSize() (int, int) {
	footer := len(m.logs) + lipgloss.Height(m.help.View(m.keys))
	return max(m.width, 10), max(m.height-headerHeight-footer, 3)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// Run starts the TUI with the given settings.
func Run(settings *config.Settings) error {
	opts, err := OptionsFromSettings(settings)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := dataset.NewLoader(settings.ToSource())
	logging.Infow("Starting TUI", "source", loader.Source().Describe(), "projection", opts.Projection.String())

	p := tea.NewProgram(NewModel(ctx, loader, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())

	if settings.CanWatch() {
		watcher, err := watch.NewAssetWatcher(settings.DataDir, settings.WatchDebounce(), func(proj model.Projection) {
			p.Send(ReloadMsg{Projection: proj})
		})
		if err != nil {
			logging.Warnw("Hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	_, err = p.Run()
	return err
}
