package slides

// TextContent is the text attached to a shape or table cell.
type TextContent struct {
	TextElements []*TextElement       `json:"textElements,omitempty"`
	Lists        map[string]*ListInfo `json:"lists,omitempty"`
}

// Plain concatenates the text runs of this content.
func (t *TextContent) Plain() string {
	if t == nil {
		return ""
	}
	var out string
	for _, el := range t.TextElements {
		if el.TextRun != nil {
			out += el.TextRun.Content
		}
	}
	return out
}

// TextElement is one segment of text content. Exactly one of the kind
// fields is populated.
type TextElement struct {
	StartIndex *int64 `json:"startIndex,omitempty"`
	EndIndex   *int64 `json:"endIndex,omitempty"`

	TextRun         *TextRun         `json:"textRun,omitempty"`
	ParagraphMarker *ParagraphMarker `json:"paragraphMarker,omitempty"`
	AutoText        *AutoText        `json:"autoText,omitempty"`
}

// TextRun is a run of text sharing one style.
type TextRun struct {
	Content string     `json:"content,omitempty"`
	Style   *TextStyle `json:"style,omitempty"`
}

// AutoText is text that is replaced by the server, such as a slide number.
type AutoText struct {
	Type    string     `json:"type,omitempty"`
	Content string     `json:"content,omitempty"`
	Style   *TextStyle `json:"style,omitempty"`
}

// ParagraphMarker marks the start of a new paragraph.
type ParagraphMarker struct {
	Style  *ParagraphStyle `json:"style,omitempty"`
	Bullet *Bullet         `json:"bullet,omitempty"`
}

// Bullet describes the bullet of a list paragraph.
type Bullet struct {
	ListID       string     `json:"listId,omitempty"`
	NestingLevel int64      `json:"nestingLevel,omitempty"`
	Glyph        string     `json:"glyph,omitempty"`
	BulletStyle  *TextStyle `json:"bulletStyle,omitempty"`
}

// ListInfo describes a list shared by multiple paragraphs.
type ListInfo struct {
	ListID        string                    `json:"listId,omitempty"`
	NestingLevel  map[string]*NestingLevel  `json:"nestingLevel,omitempty"`
}

// NestingLevel holds the bullet style for a list nesting level.
type NestingLevel struct {
	BulletStyle *TextStyle `json:"bulletStyle,omitempty"`
}

// TextStyle is the character styling of a run.
type TextStyle struct {
	Bold            *bool          `json:"bold,omitempty"`
	Italic          *bool          `json:"italic,omitempty"`
	Underline       *bool          `json:"underline,omitempty"`
	Strikethrough   *bool          `json:"strikethrough,omitempty"`
	SmallCaps       *bool          `json:"smallCaps,omitempty"`
	FontFamily      string         `json:"fontFamily,omitempty"`
	FontSize        *Dimension     `json:"fontSize,omitempty"`
	ForegroundColor *OptionalColor `json:"foregroundColor,omitempty"`
	BackgroundColor *OptionalColor `json:"backgroundColor,omitempty"`
	BaselineOffset  string         `json:"baselineOffset,omitempty"`
	Link            *Link          `json:"link,omitempty"`
	WeightedFontFamily *WeightedFontFamily `json:"weightedFontFamily,omitempty"`
}

// NewTextStyle builds a TextStyle, validating the baseline offset.
func NewTextStyle(baselineOffset string) (*TextStyle, error) {
	if err := checkEnum("baseline offset", baselineOffset, validBaselineOffsets); err != nil {
		return nil, err
	}
	return &TextStyle{BaselineOffset: baselineOffset}, nil
}

// WeightedFontFamily is a font family with a weight.
type WeightedFontFamily struct {
	FontFamily string `json:"fontFamily,omitempty"`
	Weight     int64  `json:"weight,omitempty"`
}

// OptionalColor is a color that can be explicitly absent.
type OptionalColor struct {
	OpaqueColor *OpaqueColor `json:"opaqueColor,omitempty"`
}

// ParagraphStyle is the styling of an entire paragraph.
type ParagraphStyle struct {
	Alignment       string     `json:"alignment,omitempty"`
	LineSpacing     float64    `json:"lineSpacing,omitempty"`
	Direction       string     `json:"direction,omitempty"`
	IndentStart     *Dimension `json:"indentStart,omitempty"`
	IndentEnd       *Dimension `json:"indentEnd,omitempty"`
	IndentFirstLine *Dimension `json:"indentFirstLine,omitempty"`
	SpaceAbove      *Dimension `json:"spaceAbove,omitempty"`
	SpaceBelow      *Dimension `json:"spaceBelow,omitempty"`
	SpacingMode     string     `json:"spacingMode,omitempty"`
}

// NewParagraphStyle builds a ParagraphStyle, validating the alignment.
func NewParagraphStyle(alignment string) (*ParagraphStyle, error) {
	if err := checkEnum("alignment", alignment, validAlignments); err != nil {
		return nil, err
	}
	return &ParagraphStyle{Alignment: alignment}, nil
}

// Range addresses a span of text. Type is FIXED_RANGE, FROM_START_INDEX or
// ALL; index fields apply to the first two.
type Range struct {
	Type       string `json:"type,omitempty"`
	StartIndex *int64 `json:"startIndex,omitempty"`
	EndIndex   *int64 `json:"endIndex,omitempty"`
}

var validRangeTypes = stringSet("FIXED_RANGE", "FROM_START_INDEX", "ALL")

// NewRange builds a Range, validating the range type.
func NewRange(rangeType string, start, end *int64) (*Range, error) {
	if err := checkEnum("range type", rangeType, validRangeTypes); err != nil {
		return nil, err
	}
	return &Range{Type: rangeType, StartIndex: start, EndIndex: end}, nil
}

// AllRange addresses the whole of a text body.
func AllRange() *Range {
	return &Range{Type: "ALL"}
}
