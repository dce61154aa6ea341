// Package slides is a thin client binding for the Google Slides REST API.
// The types in this file mirror the API's JSON schema; they carry no
// behavior beyond construction-time validation of a few enum fields.
// Cross-object invariants (table consistency, text range ordering, revision
// checks) are enforced by the remote service only.
package slides

// Presentation is the top-level document resource.
type Presentation struct {
	PresentationID string  `json:"presentationId,omitempty"`
	Title          string  `json:"title,omitempty"`
	Locale         string  `json:"locale,omitempty"`
	RevisionID     string  `json:"revisionId,omitempty"`
	PageSize       *Size   `json:"pageSize,omitempty"`
	Slides         []*Page `json:"slides,omitempty"`
	Masters        []*Page `json:"masters,omitempty"`
	Layouts        []*Page `json:"layouts,omitempty"`
	NotesMaster    *Page   `json:"notesMaster,omitempty"`
}

// Page is a slide, layout, master or notes page.
type Page struct {
	ObjectID         string            `json:"objectId,omitempty"`
	PageType         string            `json:"pageType,omitempty"`
	RevisionID       string            `json:"revisionId,omitempty"`
	PageElements     []*PageElement    `json:"pageElements,omitempty"`
	SlideProperties  *SlideProperties  `json:"slideProperties,omitempty"`
	LayoutProperties *LayoutProperties `json:"layoutProperties,omitempty"`
	MasterProperties *MasterProperties `json:"masterProperties,omitempty"`
	PageProperties   *PageProperties   `json:"pageProperties,omitempty"`
}

// SlideProperties holds properties specific to slide pages.
type SlideProperties struct {
	LayoutObjectID string `json:"layoutObjectId,omitempty"`
	MasterObjectID string `json:"masterObjectId,omitempty"`
	NotesPage      *Page  `json:"notesPage,omitempty"`
	IsSkipped      bool   `json:"isSkipped,omitempty"`
}

// LayoutProperties holds properties specific to layout pages.
type LayoutProperties struct {
	MasterObjectID string `json:"masterObjectId,omitempty"`
	Name           string `json:"name,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
}

// MasterProperties holds properties specific to master pages.
type MasterProperties struct {
	DisplayName string `json:"displayName,omitempty"`
}

// PageProperties holds the page background and color scheme.
type PageProperties struct {
	PageBackgroundFill *PageBackgroundFill `json:"pageBackgroundFill,omitempty"`
}

// PageBackgroundFill describes how a page is filled.
type PageBackgroundFill struct {
	PropertyState    string            `json:"propertyState,omitempty"`
	SolidFill        *SolidFill        `json:"solidFill,omitempty"`
	StretchedPicture *StretchedPicture `json:"stretchedPicture,omitempty"`
}

// StretchedPicture is a picture stretched to fill the page.
type StretchedPicture struct {
	ContentURL string `json:"contentUrl,omitempty"`
	Size       *Size  `json:"size,omitempty"`
}

// PageElement is a visual element on a page. Exactly one of the element
// kind fields is populated by the server.
type PageElement struct {
	ObjectID    string           `json:"objectId,omitempty"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Size        *Size            `json:"size,omitempty"`
	Transform   *AffineTransform `json:"transform,omitempty"`

	Shape        *Shape        `json:"shape,omitempty"`
	Image        *Image        `json:"image,omitempty"`
	Video        *Video        `json:"video,omitempty"`
	Line         *Line         `json:"line,omitempty"`
	Table        *Table        `json:"table,omitempty"`
	ElementGroup *ElementGroup `json:"elementGroup,omitempty"`
}

// ElementGroup is a set of page elements joined as a single unit.
type ElementGroup struct {
	Children []*PageElement `json:"children,omitempty"`
}

// Shape is a page element with a geometry and optional text.
type Shape struct {
	ShapeType       string           `json:"shapeType,omitempty"`
	Text            *TextContent     `json:"text,omitempty"`
	ShapeProperties *ShapeProperties `json:"shapeProperties,omitempty"`
	Placeholder     *Placeholder     `json:"placeholder,omitempty"`
}

// NewShape builds a Shape, validating the shape type against the API's
// ShapeType enumeration.
func NewShape(shapeType string) (*Shape, error) {
	if err := checkEnum("shape type", shapeType, validShapeTypes); err != nil {
		return nil, err
	}
	return &Shape{ShapeType: shapeType}, nil
}

// Placeholder links a shape to the corresponding placeholder on the layout.
type Placeholder struct {
	Type           string `json:"type,omitempty"`
	Index          int64  `json:"index,omitempty"`
	ParentObjectID string `json:"parentObjectId,omitempty"`
}

// ShapeProperties holds shape fill, outline and shadow.
type ShapeProperties struct {
	ShapeBackgroundFill *ShapeBackgroundFill `json:"shapeBackgroundFill,omitempty"`
	Outline             *Outline             `json:"outline,omitempty"`
	ContentAlignment    string               `json:"contentAlignment,omitempty"`
	Autofit             *Autofit             `json:"autofit,omitempty"`
	Link                *Link                `json:"link,omitempty"`
}

// Autofit describes how text is fitted to its shape.
type Autofit struct {
	AutofitType string `json:"autofitType,omitempty"`
}

// NewAutofit builds an Autofit, validating the autofit type.
func NewAutofit(autofitType string) (*Autofit, error) {
	if err := checkEnum("autofit type", autofitType, validAutofitTypes); err != nil {
		return nil, err
	}
	return &Autofit{AutofitType: autofitType}, nil
}

// ShapeBackgroundFill describes how a shape is filled.
type ShapeBackgroundFill struct {
	PropertyState string     `json:"propertyState,omitempty"`
	SolidFill     *SolidFill `json:"solidFill,omitempty"`
}

// Outline is a border around a page element.
type Outline struct {
	PropertyState string       `json:"propertyState,omitempty"`
	OutlineFill   *OutlineFill `json:"outlineFill,omitempty"`
	Weight        *Dimension   `json:"weight,omitempty"`
	DashStyle     string       `json:"dashStyle,omitempty"`
}

// OutlineFill describes the fill of an outline.
type OutlineFill struct {
	SolidFill *SolidFill `json:"solidFill,omitempty"`
}

// SolidFill is a single-color fill with optional transparency.
type SolidFill struct {
	Color *OpaqueColor `json:"color,omitempty"`
	Alpha *float64     `json:"alpha,omitempty"`
}

// OpaqueColor is either an RGB color or a theme color reference.
type OpaqueColor struct {
	RGBColor   *RGBColor `json:"rgbColor,omitempty"`
	ThemeColor string    `json:"themeColor,omitempty"`
}

// RGBColor is a color in the RGB color space, channels in [0, 1].
type RGBColor struct {
	Red   float64 `json:"red,omitempty"`
	Green float64 `json:"green,omitempty"`
	Blue  float64 `json:"blue,omitempty"`
}

// Image is a picture page element.
type Image struct {
	ContentURL      string           `json:"contentUrl,omitempty"`
	SourceURL       string           `json:"sourceUrl,omitempty"`
	ImageProperties *ImageProperties `json:"imageProperties,omitempty"`
}

// ImageProperties holds image recolor, brightness and crop settings.
type ImageProperties struct {
	Transparency float64         `json:"transparency,omitempty"`
	Brightness   float64         `json:"brightness,omitempty"`
	Contrast     float64         `json:"contrast,omitempty"`
	CropProperties *CropProperties `json:"cropProperties,omitempty"`
	Outline      *Outline        `json:"outline,omitempty"`
	Link         *Link           `json:"link,omitempty"`
}

// CropProperties describes the crop rectangle and rotation of an image.
type CropProperties struct {
	LeftOffset   float64 `json:"leftOffset,omitempty"`
	RightOffset  float64 `json:"rightOffset,omitempty"`
	TopOffset    float64 `json:"topOffset,omitempty"`
	BottomOffset float64 `json:"bottomOffset,omitempty"`
	Angle        float64 `json:"angle,omitempty"`
}

// Video is an embedded video page element.
type Video struct {
	URL             string           `json:"url,omitempty"`
	Source          string           `json:"source,omitempty"`
	ID              string           `json:"id,omitempty"`
	VideoProperties *VideoProperties `json:"videoProperties,omitempty"`
}

// VideoProperties holds video playback settings.
type VideoProperties struct {
	AutoPlay bool       `json:"autoPlay,omitempty"`
	Start    int64      `json:"start,omitempty"`
	End      int64      `json:"end,omitempty"`
	Mute     bool       `json:"mute,omitempty"`
	Outline  *Outline   `json:"outline,omitempty"`
}

// Line is a non-connector line, straight connector, curved connector or
// bent connector.
type Line struct {
	LineType       string          `json:"lineType,omitempty"`
	LineCategory   string          `json:"lineCategory,omitempty"`
	LineProperties *LineProperties `json:"lineProperties,omitempty"`
}

// LineProperties holds line fill, weight and arrow styles.
type LineProperties struct {
	LineFill   *OutlineFill `json:"lineFill,omitempty"`
	Weight     *Dimension   `json:"weight,omitempty"`
	DashStyle  string       `json:"dashStyle,omitempty"`
	StartArrow string       `json:"startArrow,omitempty"`
	EndArrow   string       `json:"endArrow,omitempty"`
	Link       *Link        `json:"link,omitempty"`
}

// Table is a grid of cells.
type Table struct {
	Rows         int64          `json:"rows,omitempty"`
	Columns      int64          `json:"columns,omitempty"`
	TableRows    []*TableRow    `json:"tableRows,omitempty"`
	TableColumns []*TableColumnProperties `json:"tableColumns,omitempty"`
}

// NewTable builds a Table with the given grid dimensions.
func NewTable(rows, columns int64) (*Table, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errInvalidf("table dimensions must be positive, got %dx%d", rows, columns)
	}
	return &Table{Rows: rows, Columns: columns}, nil
}

// TableRow is one row of a table.
type TableRow struct {
	RowHeight  *Dimension    `json:"rowHeight,omitempty"`
	TableCells []*TableCell  `json:"tableCells,omitempty"`
}

// TableColumnProperties holds the width of a table column.
type TableColumnProperties struct {
	ColumnWidth *Dimension `json:"columnWidth,omitempty"`
}

// TableCell is one cell of a table.
type TableCell struct {
	Location            *TableCellLocation   `json:"location,omitempty"`
	RowSpan             int64                `json:"rowSpan,omitempty"`
	ColumnSpan          int64                `json:"columnSpan,omitempty"`
	Text                *TextContent         `json:"text,omitempty"`
	TableCellProperties *TableCellProperties `json:"tableCellProperties,omitempty"`
}

// TableCellLocation addresses a cell by zero-based row and column.
type TableCellLocation struct {
	RowIndex    int64 `json:"rowIndex,omitempty"`
	ColumnIndex int64 `json:"columnIndex,omitempty"`
}

// TableCellProperties holds cell fill and alignment.
type TableCellProperties struct {
	TableCellBackgroundFill *ShapeBackgroundFill `json:"tableCellBackgroundFill,omitempty"`
	ContentAlignment        string               `json:"contentAlignment,omitempty"`
}

// Link is a hyperlink to a URL, slide or external resource.
type Link struct {
	URL            string `json:"url,omitempty"`
	SlideIndex     *int64 `json:"slideIndex,omitempty"`
	PageObjectID   string `json:"pageObjectId,omitempty"`
	RelativeLink   string `json:"relativeLink,omitempty"`
}

// Size is a width and a height.
type Size struct {
	Width  *Dimension `json:"width,omitempty"`
	Height *Dimension `json:"height,omitempty"`
}

// Dimension is a magnitude in a single direction with a unit.
type Dimension struct {
	Magnitude float64 `json:"magnitude,omitempty"`
	Unit      string  `json:"unit,omitempty"`
}

// NewDimension builds a Dimension, validating the unit.
func NewDimension(magnitude float64, unit string) (*Dimension, error) {
	if err := checkEnum("unit", unit, validUnits); err != nil {
		return nil, err
	}
	return &Dimension{Magnitude: magnitude, Unit: unit}, nil
}

// AffineTransform positions and scales a page element. Units follow the
// Unit field; the API works in EMU internally.
type AffineTransform struct {
	ScaleX     float64 `json:"scaleX,omitempty"`
	ScaleY     float64 `json:"scaleY,omitempty"`
	ShearX     float64 `json:"shearX,omitempty"`
	ShearY     float64 `json:"shearY,omitempty"`
	TranslateX float64 `json:"translateX,omitempty"`
	TranslateY float64 `json:"translateY,omitempty"`
	Unit       string  `json:"unit,omitempty"`
}

// PageElementProperties places a new element on a page.
type PageElementProperties struct {
	PageObjectID string           `json:"pageObjectId,omitempty"`
	Size         *Size            `json:"size,omitempty"`
	Transform    *AffineTransform `json:"transform,omitempty"`
}

// Thumbnail is a rendered image of a page.
type Thumbnail struct {
	ContentURL string `json:"contentUrl,omitempty"`
	Width      int64  `json:"width,omitempty"`
	Height     int64  `json:"height,omitempty"`
}

const emuPerPoint = 12700

// PointsToEMU converts typographic points to English Metric Units.
func PointsToEMU(points float64) float64 {
	return points * emuPerPoint
}
