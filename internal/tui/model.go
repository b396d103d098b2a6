package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bjaus/h5walk"
	"github.com/bjaus/h5walk/gridfile"
	"github.com/bjaus/h5walk/internal/config"
)

type mode int

const (
	modeBrowse mode = iota
	modePrompt
	modeOverlay
)

type promptKind int

const (
	promptOpen promptKind = iota
	promptExportCSV
	promptExportContainer
)

// Model is the bubbletea model of the browser. Navigation and export run
// synchronously in Update: the tool is interactive and single-threaded,
// and export latency simply blocks the loop, as the original did.
type Model struct {
	cfg    config.Config
	keys   KeyMap
	styles Styles

	tree *h5walk.Tree
	file string
	cur  h5walk.Cursor

	width  int
	height int
	scroll int

	mode      mode
	prompt    textinput.Model
	promptFor promptKind
	overlay   string

	status    string
	statusErr bool
}

// New builds the browser over an already-open tree; tree may be nil when
// the user starts without a file.
func New(cfg config.Config, tree *h5walk.Tree, file string) Model {
	m := Model{
		cfg:    cfg,
		keys:   DefaultKeyMap(cfg.VimKeys),
		styles: defaultStyles(),
		tree:   tree,
		file:   file,
		prompt: textinput.New(),
	}
	if tree != nil {
		if cur, err := tree.Root(); err == nil {
			m.cur = cur
			m.status = "Opened: " + file
		} else {
			m.setError(err)
		}
	} else {
		m.status = "No file opened - press 'o' to open a container"
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeOverlay:
			m.mode = modeBrowse
			return m, nil
		case modePrompt:
			return m.updatePrompt(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.tree != nil {
			m.tree.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		return m.startPrompt(promptOpen, "Container path: ", ""), nil
	}
	if m.tree == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cur = m.tree.Move(m.cur, -1)
	case key.Matches(msg, m.keys.Down):
		m.cur = m.tree.Move(m.cur, 1)
	case key.Matches(msg, m.keys.Top):
		m.cur = m.tree.Move(m.cur, -1<<30)
	case key.Matches(msg, m.keys.Bottom):
		m.cur = m.tree.Move(m.cur, 1<<30)
	case key.Matches(msg, m.keys.Enter):
		m.cur = m.tree.Enter(m.cur)
	case key.Matches(msg, m.keys.Leave):
		m.cur = m.tree.Leave(m.cur)
	case key.Matches(msg, m.keys.Info):
		m.showInfo()
	case key.Matches(msg, m.keys.ExportCSV):
		if n, ok := m.exportTarget(); ok {
			return m.startPrompt(promptExportCSV,
				fmt.Sprintf("Export %q to: ", n.Name()),
				filepath.Join(m.cfg.ExportDir, exportBase(n))), nil
		}
		m.setErrorf("nothing to export here")
	case key.Matches(msg, m.keys.ExportContainer):
		if n, ok := m.exportTarget(); ok && n.IsGroup() {
			return m.startPrompt(promptExportContainer,
				fmt.Sprintf("Export group %q to container: ", n.Name()),
				filepath.Join(m.cfg.ExportDir, n.Name()+".h5g")), nil
		}
		m.setErrorf("select a group to export")
	}
	m.clampScroll()
	return m, nil
}

func (m Model) startPrompt(kind promptKind, label, initial string) Model {
	m.mode = modePrompt
	m.promptFor = kind
	m.prompt = textinput.New()
	m.prompt.Prompt = label
	m.prompt.SetValue(initial)
	m.prompt.Focus()
	return m
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		m.mode = modeBrowse
		if value == "" {
			return m, nil
		}
		m.submitPrompt(value)
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) submitPrompt(value string) {
	switch m.promptFor {
	case promptOpen:
		m.openContainer(value)
	case promptExportCSV:
		m.exportCSV(value)
	case promptExportContainer:
		m.exportContainer(value)
	}
}

func (m *Model) openContainer(path string) {
	c, err := gridfile.Open(path)
	if err != nil {
		m.setError(err)
		return
	}
	if m.tree != nil {
		m.tree.Close()
	}
	m.tree = h5walk.NewTree(c)
	m.file = path
	m.scroll = 0
	cur, err := m.tree.Root()
	if err != nil {
		m.setError(err)
		return
	}
	m.cur = cur
	m.setStatusf("Opened: %s", path)
}

// exportTarget picks the node an export acts on: the selection when there
// is one, otherwise the current group when not at the root.
func (m *Model) exportTarget() (h5walk.Node, bool) {
	if n, ok := m.tree.Selected(m.cur); ok {
		return n, true
	}
	if m.cur.Path != h5walk.RootPath {
		return h5walk.Node{Path: m.cur.Path, Kind: h5walk.KindGroup}, true
	}
	return h5walk.Node{}, false
}

// exportBase suggests a destination name: datasets and flat groups become
// .csv files, anything else a directory named after the node.
func exportBase(n h5walk.Node) string {
	if n.IsDataset() {
		return n.Name() + ".csv"
	}
	return n.Name()
}

func (m *Model) exportCSV(dest string) {
	n, ok := m.exportTarget()
	if !ok {
		return
	}
	p, err := m.tree.Plan(n)
	if err != nil {
		m.setError(err)
		return
	}
	if p.Kind == h5walk.PlanSingleDataset || p.Kind == h5walk.PlanFlatGroup {
		dest = ensureExt(dest, ".csv")
	}
	rep := h5walk.NewExporter(m.tree).ExportCSV(n, dest)
	if rep.HasFailures() {
		m.setErrorf("Export finished: %s", rep.Summary())
		return
	}
	m.setStatusf("Exported to %s (%s)", dest, rep.Summary())
}

func (m *Model) exportContainer(dest string) {
	n, ok := m.exportTarget()
	if !ok || !n.IsGroup() {
		return
	}
	dest = ensureExt(dest, ".h5g")
	w, err := gridfile.Create(dest)
	if err != nil {
		m.setError(err)
		return
	}
	if err := h5walk.NewExporter(m.tree).ExportContainer(n, w); err != nil {
		w.Close()
		m.setError(err)
		return
	}
	if err := w.Close(); err != nil {
		m.setError(err)
		return
	}
	m.setStatusf("Exported group %s to %s", n.Path, dest)
}

func (m *Model) showInfo() {
	n, ok := m.tree.Selected(m.cur)
	if !ok || !n.IsDataset() {
		m.setErrorf("select a dataset to view info")
		return
	}
	info, err := m.tree.Describe(n)
	if err != nil {
		m.setError(err)
		return
	}
	var sb strings.Builder
	border := h5walk.BorderRounded
	if m.cfg.ASCIIBorders {
		border = h5walk.BorderASCII
	}
	h5walk.WriteTable(&sb, h5walk.InfoFrame(info), h5walk.TableOptions{Border: border})

	if a, err := m.tree.ReadArray(n.Path); err == nil {
		if f, err := h5walk.Flatten(a); err == nil {
			sb.WriteString("\n")
			h5walk.WriteTable(&sb, f, h5walk.TableOptions{
				Border:       border,
				MaxRows:      m.cfg.PreviewRows,
				MaxCellWidth: 24,
			})
		} else {
			sb.WriteString("\npreview unavailable: " + err.Error() + "\n")
		}
	}
	m.overlay = sb.String()
	m.mode = modeOverlay
}

func ensureExt(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

func (m *Model) setStatusf(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setErrorf(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = true
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}
