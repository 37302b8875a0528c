// Package pdf rasterizes a document description into PDF bytes.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/singharoy/gst-invoice/internal/document"
)

const fontFamily = "Helvetica"

// Renderer turns document definitions into PDF files. Safe for
// concurrent use; every Render call builds an independent page.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a PDF renderer.
func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render produces the PDF bytes for a document definition. On failure
// no partial output is returned.
func (r *Renderer) Render(def *document.Definition) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", def.PageSize, "")
	m := def.PageMargins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(true, m.Bottom)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	p := &painter{
		pdf:         pdf,
		defaultSize: def.DefaultFontSize,
		margins:     m,
		contentW:    pageW - m.Left - m.Right,
	}

	for _, node := range def.Content {
		p.renderNode(node, m.Left, p.contentW)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("PDF rasterization failed", zap.Error(err))
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	r.logger.Debug("Rendered PDF document", zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// painter walks the content tree keeping gofpdf's cursor in sync.
type painter struct {
	pdf         *gofpdf.Fpdf
	defaultSize float64
	margins     document.Margins
	contentW    float64
}

func (p *painter) renderNode(node document.Node, x, width float64) {
	switch n := node.(type) {
	case document.Text:
		p.renderText(n, x, width)
	case document.Stack:
		for _, child := range n.Nodes {
			p.renderNode(child, x, width)
		}
		p.advance(n.SpaceAfter)
	case document.Columns:
		p.renderColumns(n, x, width)
	case document.Table:
		p.renderTable(n, x, width)
	}
}

func (p *painter) renderText(t document.Text, x, width float64) {
	size := t.FontSize
	if size == 0 {
		size = p.defaultSize
	}
	p.pdf.SetFont(fontFamily, fontStyle(t.Bold, t.Italic), size)

	lineH := size * 1.35
	p.pdf.SetXY(x, p.pdf.GetY())
	p.pdf.MultiCell(width, lineH, t.Value, "", alignString(t.Align), false)
	p.advance(t.SpaceAfter)
}

func (p *painter) renderColumns(c document.Columns, x, width float64) {
	fixed := 0.0
	flexible := 0
	for _, col := range c.Cols {
		if col.Width > 0 {
			fixed += col.Width
		} else {
			flexible++
		}
	}
	flexW := 0.0
	if flexible > 0 {
		flexW = (width - fixed) / float64(flexible)
	}

	startY := p.pdf.GetY()
	maxY := startY
	colX := x
	for _, col := range c.Cols {
		w := col.Width
		if w == 0 {
			w = flexW
		}
		p.pdf.SetY(startY)
		for _, child := range col.Nodes {
			p.renderNode(child, colX, w)
		}
		if y := p.pdf.GetY(); y > maxY {
			maxY = y
		}
		colX += w
	}

	p.pdf.SetY(maxY)
	p.advance(c.SpaceAfter)
}

func (p *painter) renderTable(t document.Table, x, width float64) {
	widths := resolveWidths(t.Widths, width)

	p.pdf.SetDrawColor(0xCC, 0xCC, 0xCC)
	p.pdf.SetLineWidth(0.5)

	if len(t.Header) > 0 {
		p.renderRow(t.Header, widths, x)
	}
	for _, row := range t.Rows {
		p.renderRow(row, widths, x)
	}

	p.pdf.SetDrawColor(0, 0, 0)
	p.advance(t.SpaceAfter)
}

func (p *painter) renderRow(cells []document.Cell, widths []float64, x float64) {
	const padX, padY = 4.0, 3.0

	// Row height follows the tallest cell.
	rowH := 0.0
	heights := make([]float64, len(cells))
	col := 0
	for i, cell := range cells {
		w := spanWidth(widths, col, cell.Span)
		size := cell.FontSize
		if size == 0 {
			size = p.defaultSize
		}
		p.pdf.SetFont(fontFamily, fontStyle(cell.Bold, false), size)
		lineH := size * 1.35
		lines := 0
		for _, part := range strings.Split(cell.Text, "\n") {
			split := p.pdf.SplitLines([]byte(part), w-2*padX)
			if len(split) == 0 {
				lines++
			} else {
				lines += len(split)
			}
		}
		heights[i] = float64(lines)*lineH + 2*padY
		if heights[i] > rowH {
			rowH = heights[i]
		}
		col += spanCount(cell.Span)
	}

	// Break to a new page when the row will not fit.
	_, pageH := p.pdf.GetPageSize()
	if p.pdf.GetY()+rowH > pageH-p.margins.Bottom {
		p.pdf.AddPage()
	}

	y := p.pdf.GetY()
	cellX := x
	col = 0
	for _, cell := range cells {
		w := spanWidth(widths, col, cell.Span)
		size := cell.FontSize
		if size == 0 {
			size = p.defaultSize
		}
		p.pdf.SetFont(fontFamily, fontStyle(cell.Bold, false), size)

		if cell.Fill != "" {
			fr, fg, fb := parseHexColor(cell.Fill)
			p.pdf.SetFillColor(fr, fg, fb)
			p.pdf.Rect(cellX, y, w, rowH, "FD")
		} else {
			p.pdf.Rect(cellX, y, w, rowH, "D")
		}

		if cell.Text != "" {
			p.pdf.SetXY(cellX+padX, y+padY)
			p.pdf.MultiCell(w-2*padX, size*1.35, cell.Text, "", alignString(cell.Align), false)
		}

		cellX += w
		col += spanCount(cell.Span)
	}

	p.pdf.SetXY(x, y+rowH)
}

func (p *painter) advance(space float64) {
	if space > 0 {
		p.pdf.SetY(p.pdf.GetY() + space)
	}
}

func resolveWidths(widths []float64, total float64) []float64 {
	fixed := 0.0
	flexible := 0
	for _, w := range widths {
		if w > 0 {
			fixed += w
		} else {
			flexible++
		}
	}
	out := make([]float64, len(widths))
	for i, w := range widths {
		if w > 0 {
			out[i] = w
		} else {
			out[i] = (total - fixed) / float64(flexible)
		}
	}
	return out
}

func spanCount(span int) int {
	if span < 1 {
		return 1
	}
	return span
}

func spanWidth(widths []float64, col, span int) float64 {
	w := 0.0
	for i := 0; i < spanCount(span) && col+i < len(widths); i++ {
		w += widths[col+i]
	}
	return w
}

func fontStyle(bold, italic bool) string {
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	return style
}

func alignString(a document.Alignment) string {
	switch a {
	case document.AlignCenter:
		return "C"
	case document.AlignRight:
		return "R"
	default:
		return "L"
	}
}

func parseHexColor(s string) (int, int, int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 255, 255, 255
	}
	r, _ := strconv.ParseInt(s[0:2], 16, 32)
	g, _ := strconv.ParseInt(s[2:4], 16, 32)
	b, _ := strconv.ParseInt(s[4:6], 16, 32)
	return int(r), int(g), int(b)
}
