package h5walk

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Border controls the table border characters used by [WriteTable].
type Border int

const (
	BorderRounded Border = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                 // +-+|
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[Border]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// TableOptions configures [WriteTable].
type TableOptions struct {
	Border Border
	// MaxCellWidth truncates wider cells with "...". Zero means no limit.
	MaxCellWidth int
	// MaxRows caps the number of data rows; when the frame is larger, a
	// line reporting the omitted count is rendered after the table. Zero
	// means all rows.
	MaxRows int
}

// WriteTable renders a frame as a bordered terminal table. It backs the
// dataset preview and information views; export output goes through CSV,
// never through this renderer.
func WriteTable(w io.Writer, f Frame, opts TableOptions) error {
	rows := f.Rows
	omitted := 0
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		omitted = len(rows) - opts.MaxRows
		rows = rows[:opts.MaxRows]
	}

	widths := tableWidths(f.Header, rows)
	if opts.MaxCellWidth > 0 {
		for i := range widths {
			if widths[i] > opts.MaxCellWidth {
				widths[i] = opts.MaxCellWidth
			}
		}
	}

	bc := borderSets[opts.Border]
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(f.Header) > 0 {
		if err := drawRow(w, f.Header, widths, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	if err := drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight); err != nil {
		return err
	}
	if omitted > 0 {
		if _, err := fmt.Fprintf(w, "... %d more rows\n", omitted); err != nil {
			return err
		}
	}
	return nil
}

// InfoFrame lays out a dataset description as a two-column frame for
// rendering with [WriteTable].
func InfoFrame(info Info) Frame {
	f := Frame{
		Header: []string{"field", "value"},
		Rows: [][]string{
			{"path", info.Path},
			{"shape", shapeString(info.Shape)},
			{"type", info.Type.String()},
			{"size", fmt.Sprintf("%d", info.Size)},
		},
	}
	for _, name := range info.AttributeNames() {
		f.Rows = append(f.Rows, []string{name, info.Attributes[name]})
	}
	return f
}

func shapeString(shape []int) string {
	if len(shape) == 0 {
		return "scalar"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func tableWidths(header []string, rows [][]string) []int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	widths := make([]int, n)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < n && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(fitCell(cell, width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func fitCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
