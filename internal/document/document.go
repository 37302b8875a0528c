// Package document describes a printable invoice as a typed content
// tree. The tree is produced by Format and consumed by a rasterizer
// (internal/pdf); it carries layout intent only, never draws anything.
package document

// Alignment of text within a cell or block.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Node is one element of the content tree.
type Node interface {
	node()
}

// Text is a block of text with optional styling.
type Text struct {
	Value      string
	FontSize   float64 // 0 means the document default
	Bold       bool
	Italic     bool
	Align      Alignment
	SpaceAfter float64 // vertical gap below the block, in points
}

// Stack lays out its children top to bottom.
type Stack struct {
	Nodes      []Node
	SpaceAfter float64
}

// Column is one vertical slice of a Columns node. Width 0 means
// "take the remaining space".
type Column struct {
	Width float64
	Nodes []Node
}

// Columns lays out its children side by side.
type Columns struct {
	Cols       []Column
	SpaceAfter float64
}

// Cell is one table cell.
type Cell struct {
	Text     string // may contain "\n" for stacked lines
	Align    Alignment
	Bold     bool
	FontSize float64
	Span     int    // colspan; 0 or 1 means a single column
	Fill     string // hex background, e.g. "#f0f0f0"
}

// Table is a bordered grid. Widths holds one entry per column; a zero
// width column absorbs the remaining page width.
type Table struct {
	Widths     []float64
	Header     []Cell
	Rows       [][]Cell
	SpaceAfter float64
}

func (Text) node()    {}
func (Stack) node()   {}
func (Columns) node() {}
func (Table) node()   {}

// Margins are page margins in points.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Definition is a complete page-formatted document.
type Definition struct {
	PageSize        string // "A4"
	PageMargins     Margins
	DefaultFontSize float64
	Content         []Node
}
