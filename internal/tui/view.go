package tui

import (
	"fmt"
	"strings"

	"github.com/bjaus/h5walk"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.mode == modeOverlay {
		return m.styles.Overlay.Render(m.overlay) + "\n" +
			m.styles.Hint.Render("press any key to close")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("h5walk"))
	sb.WriteString("\n")
	if m.file != "" {
		sb.WriteString(fmt.Sprintf("File: %s | Path: %s\n", m.file, m.cur.Path))
	} else {
		sb.WriteString("No file opened\n")
	}
	sb.WriteString(strings.Repeat("-", max(1, m.width-1)))
	sb.WriteString("\n")

	sb.WriteString(m.renderList())

	sb.WriteString("\n")
	if m.mode == modePrompt {
		sb.WriteString(m.prompt.View())
	} else if m.statusErr {
		sb.WriteString(m.styles.Error.Render(m.status))
	} else {
		sb.WriteString(m.styles.Status.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Hint.Render(
		"o:open  ↑↓:navigate  ←→:parent/enter  g/G:top/bottom  e:export container  c:export CSV  i:info  q:quit"))
	return sb.String()
}

func (m Model) renderList() string {
	if m.tree == nil {
		return ""
	}
	nodes, err := m.tree.Children(m.cur.Path)
	if err != nil {
		return m.styles.Error.Render(err.Error()) + "\n"
	}
	if len(nodes) == 0 {
		return m.styles.Status.Render("(empty group)") + "\n"
	}

	h := m.listHeight()
	end := min(len(nodes), m.scroll+h)
	var sb strings.Builder
	for i := m.scroll; i < end; i++ {
		line := nodeLine(nodes[i])
		switch {
		case i == m.cur.Index:
			line = m.styles.Selected.Render(line)
		case nodes[i].IsGroup():
			line = m.styles.Group.Render(line)
		default:
			line = m.styles.Dataset.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func nodeLine(n h5walk.Node) string {
	if n.IsGroup() {
		return n.Name() + "/"
	}
	return fmt.Sprintf("%s  (shape %s, %s)", n.Name(), shapeLabel(n.Shape), n.Type)
}

func shapeLabel(shape []int) string {
	if len(shape) == 0 {
		return "scalar"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (m Model) listHeight() int {
	return max(1, m.height-6)
}

func (m *Model) clampScroll() {
	if m.cur.Index == h5walk.NoSelection {
		m.scroll = 0
		return
	}
	h := m.listHeight()
	if m.cur.Index < m.scroll {
		m.scroll = m.cur.Index
	} else if m.cur.Index >= m.scroll+h {
		m.scroll = m.cur.Index - h + 1
	}
}
