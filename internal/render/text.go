package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

// MinColumnWidth is the narrowest a text column is padded to.
const MinColumnWidth = 5

// cells are measured as narrow regardless of the terminal locale
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

type TextOption func(*textOptions)

type textOptions struct {
	color bool
}

// WithColor paints true cells green, false cells red and the header bold.
func WithColor(enabled bool) TextOption {
	return func(o *textOptions) {
		o.color = enabled
	}
}

type palette struct {
	header, yes, no *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.Bold),
		yes:    color.New(color.FgGreen),
		no:     color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.header, p.yes, p.no} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Text writes the bordered table followed by the summary lines.
func Text(w io.Writer, res *truthtable.Result, opts ...TextOption) error {
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	writeTable(&b, res, newPalette(o.color))
	writeSummary(&b, res)

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders res without color.
func String(res *truthtable.Result) string {
	var b strings.Builder
	writeTable(&b, res, newPalette(false))
	writeSummary(&b, res)
	return b.String()
}

func columnWidths(res *truthtable.Result) []int {
	widths := make([]int, len(res.Columns))
	for i, c := range res.Columns {
		widths[i] = max(MinColumnWidth, widthCond.StringWidth(c.Label))
	}
	return widths
}

func writeTable(b *strings.Builder, res *truthtable.Result, p palette) {
	widths := columnWidths(res)

	border := borderLine(widths)
	b.WriteString(border)

	cells := make([]string, len(widths))
	for i, c := range res.Columns {
		cells[i] = p.header.Sprint(widthCond.FillRight(c.Label, widths[i]))
	}
	writeCells(b, cells)
	b.WriteString(border)

	for _, row := range res.Rows {
		for i, v := range row.Values {
			cells[i] = cell(v, widths[i], p)
		}
		writeCells(b, cells)
	}
	b.WriteString(border)
}

func borderLine(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func writeCells(b *strings.Builder, cells []string) {
	b.WriteByte('|')
	for _, c := range cells {
		b.WriteByte(' ')
		b.WriteString(c)
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}

func cell(v bool, width int, p palette) string {
	if v {
		return p.yes.Sprint(widthCond.FillRight("T", width))
	}
	return p.no.Sprint(widthCond.FillRight("F", width))
}

func writeSummary(b *strings.Builder, res *truthtable.Result) {
	fmt.Fprintf(b, "Result: %s\n", res.Classification())
	fmt.Fprintf(b, "Variables: %d, Rows: %d\n", len(res.Variables), len(res.Rows))
}
