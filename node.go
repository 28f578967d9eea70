package note2doc

// NodeKind identifies a block node's type. The string value doubles as
// the lower-case marker family name in diagnostics.
type NodeKind string

// Block node kinds.
const (
	KindHeading   NodeKind = "heading"
	KindParagraph NodeKind = "paragraph"
	KindBullet    NodeKind = "bullet"
	KindNumbered  NodeKind = "numbered"
	KindCode      NodeKind = "code"
	KindTable     NodeKind = "table"
	KindQuote     NodeKind = "quote"
	KindNote      NodeKind = "note"
	KindASCII     NodeKind = "ascii"
	KindImage     NodeKind = "image"
	KindLink      NodeKind = "link"
	KindFootnote  NodeKind = "footnote"
	KindTOC       NodeKind = "toc"
	KindWatermark NodeKind = "watermark"
)

// Alignment values for paragraphs and images.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Node is one block in the parsed document. Only the fields relevant
// to the kind are populated: Text for text-bearing kinds, Items for
// lists, Rows for tables, Path/Caption for images, URL for links, and
// Index for footnotes.
type Node struct {
	Kind    NodeKind
	Text    string
	Level   int // heading level 1..6
	Items   []string
	Rows    [][]string
	Align   string // "left", "center", "right"; empty means left
	Path    string
	Caption string
	URL     string
	Index   int // 1-based footnote number
}

// Heading is one entry in the document outline, in source order.
type Heading struct {
	Level int
	Text  string
}

// StructureSummary holds document statistics derived during parsing.
type StructureSummary struct {
	WordCount          int
	HeadingCount       int
	ReadingTimeMinutes float64
}

// ParseResult is the complete outcome of one parse: the node sequence,
// accumulated warnings in source order, the heading outline, and the
// structure summary.
type ParseResult struct {
	Nodes    []Node
	Warnings []string
	Headings []Heading
	Summary  StructureSummary
}
