package slides

import (
	"fmt"

	"github.com/google/uuid"
)

// Request is the batchUpdate oneof wrapper. Exactly one variant field must
// be set; the field's JSON key is the wire name of the variant. Use the
// New*Request constructors, which validate their inputs, rather than
// filling the struct directly.
type Request struct {
	CreateSlide                *CreateSlideRequest                `json:"createSlide,omitempty"`
	CreateShape                *CreateShapeRequest                `json:"createShape,omitempty"`
	CreateTable                *CreateTableRequest                `json:"createTable,omitempty"`
	CreateImage                *CreateImageRequest                `json:"createImage,omitempty"`
	CreateVideo                *CreateVideoRequest                `json:"createVideo,omitempty"`
	CreateLine                 *CreateLineRequest                 `json:"createLine,omitempty"`
	InsertText                 *InsertTextRequest                 `json:"insertText,omitempty"`
	DeleteText                 *DeleteTextRequest                 `json:"deleteText,omitempty"`
	ReplaceAllText             *ReplaceAllTextRequest             `json:"replaceAllText,omitempty"`
	DeleteObject               *DeleteObjectRequest               `json:"deleteObject,omitempty"`
	DuplicateObject            *DuplicateObjectRequest            `json:"duplicateObject,omitempty"`
	UpdateTextStyle            *UpdateTextStyleRequest            `json:"updateTextStyle,omitempty"`
	UpdateParagraphStyle       *UpdateParagraphStyleRequest       `json:"updateParagraphStyle,omitempty"`
	UpdateShapeProperties      *UpdateShapePropertiesRequest      `json:"updateShapeProperties,omitempty"`
	UpdatePageElementTransform *UpdatePageElementTransformRequest `json:"updatePageElementTransform,omitempty"`
	UpdateSlidesPosition       *UpdateSlidesPositionRequest       `json:"updateSlidesPosition,omitempty"`
	InsertTableRows            *InsertTableRowsRequest            `json:"insertTableRows,omitempty"`
	InsertTableColumns         *InsertTableColumnsRequest         `json:"insertTableColumns,omitempty"`
	DeleteTableRow             *DeleteTableRowRequest             `json:"deleteTableRow,omitempty"`
	DeleteTableColumn          *DeleteTableColumnRequest          `json:"deleteTableColumn,omitempty"`
}

// variants lists every variant field of a Request with its wire name.
func (r Request) variants() []struct {
	kind string
	set  bool
} {
	return []struct {
		kind string
		set  bool
	}{
		{"createSlide", r.CreateSlide != nil},
		{"createShape", r.CreateShape != nil},
		{"createTable", r.CreateTable != nil},
		{"createImage", r.CreateImage != nil},
		{"createVideo", r.CreateVideo != nil},
		{"createLine", r.CreateLine != nil},
		{"insertText", r.InsertText != nil},
		{"deleteText", r.DeleteText != nil},
		{"replaceAllText", r.ReplaceAllText != nil},
		{"deleteObject", r.DeleteObject != nil},
		{"duplicateObject", r.DuplicateObject != nil},
		{"updateTextStyle", r.UpdateTextStyle != nil},
		{"updateParagraphStyle", r.UpdateParagraphStyle != nil},
		{"updateShapeProperties", r.UpdateShapeProperties != nil},
		{"updatePageElementTransform", r.UpdatePageElementTransform != nil},
		{"updateSlidesPosition", r.UpdateSlidesPosition != nil},
		{"insertTableRows", r.InsertTableRows != nil},
		{"insertTableColumns", r.InsertTableColumns != nil},
		{"deleteTableRow", r.DeleteTableRow != nil},
		{"deleteTableColumn", r.DeleteTableColumn != nil},
	}
}

// Kind returns the wire name of the variant set on this request, or ""
// when no variant is set.
func (r Request) Kind() string {
	for _, v := range r.variants() {
		if v.set {
			return v.kind
		}
	}
	return ""
}

// Validate checks that exactly one variant is set.
func (r Request) Validate() error {
	var set []string
	for _, v := range r.variants() {
		if v.set {
			set = append(set, v.kind)
		}
	}
	switch len(set) {
	case 0:
		return errInvalidf("request has no variant set")
	case 1:
		return nil
	default:
		return errInvalidf("request has multiple variants set: %v", set)
	}
}

// WriteControl carries optimistic-concurrency information. The revision ID
// is opaque and forwarded verbatim; the server rejects the batch when it no
// longer matches.
type WriteControl struct {
	RequiredRevisionID string `json:"requiredRevisionId,omitempty"`
}

// NewObjectID generates a unique object ID with the given prefix, suitable
// for the ObjectID field of create requests.
func NewObjectID(prefix string) string {
	if prefix == "" {
		prefix = "obj"
	}
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// SlideLayoutReference selects the layout of a new slide, either by a
// predefined layout name or by layout object ID.
type SlideLayoutReference struct {
	PredefinedLayout string `json:"predefinedLayout,omitempty"`
	LayoutID         string `json:"layoutId,omitempty"`
}

// CreateSlideRequest creates a slide.
type CreateSlideRequest struct {
	ObjectID             string                `json:"objectId,omitempty"`
	InsertionIndex       *int64                `json:"insertionIndex,omitempty"`
	SlideLayoutReference *SlideLayoutReference `json:"slideLayoutReference,omitempty"`
}

// NewCreateSlide builds a createSlide request. An empty layout means the
// server picks the default; insertionIndex nil appends at the end.
func NewCreateSlide(objectID, predefinedLayout string, insertionIndex *int64) (Request, error) {
	if err := checkEnum("predefined layout", predefinedLayout, validPredefinedLayouts); err != nil {
		return Request{}, err
	}
	req := &CreateSlideRequest{
		ObjectID:       objectID,
		InsertionIndex: insertionIndex,
	}
	if predefinedLayout != "" {
		req.SlideLayoutReference = &SlideLayoutReference{PredefinedLayout: predefinedLayout}
	}
	return Request{CreateSlide: req}, nil
}

// CreateShapeRequest creates a shape.
type CreateShapeRequest struct {
	ObjectID          string                 `json:"objectId,omitempty"`
	ShapeType         string                 `json:"shapeType,omitempty"`
	ElementProperties *PageElementProperties `json:"elementProperties,omitempty"`
}

// NewCreateShape builds a createShape request.
func NewCreateShape(objectID, shapeType string, props *PageElementProperties) (Request, error) {
	if shapeType == "" {
		return Request{}, errInvalidf("shape type is required")
	}
	if err := checkEnum("shape type", shapeType, validShapeTypes); err != nil {
		return Request{}, err
	}
	if props == nil || props.PageObjectID == "" {
		return Request{}, errInvalidf("element properties with a page object ID are required")
	}
	return Request{CreateShape: &CreateShapeRequest{
		ObjectID:          objectID,
		ShapeType:         shapeType,
		ElementProperties: props,
	}}, nil
}

// CreateTableRequest creates a table.
type CreateTableRequest struct {
	ObjectID          string                 `json:"objectId,omitempty"`
	ElementProperties *PageElementProperties `json:"elementProperties,omitempty"`
	Rows              int64                  `json:"rows,omitempty"`
	Columns           int64                  `json:"columns,omitempty"`
}

// NewCreateTable builds a createTable request.
func NewCreateTable(objectID string, props *PageElementProperties, rows, columns int64) (Request, error) {
	if rows <= 0 || columns <= 0 {
		return Request{}, errInvalidf("table dimensions must be positive, got %dx%d", rows, columns)
	}
	return Request{CreateTable: &CreateTableRequest{
		ObjectID:          objectID,
		ElementProperties: props,
		Rows:              rows,
		Columns:           columns,
	}}, nil
}

// CreateImageRequest creates an image from a publicly accessible URL.
type CreateImageRequest struct {
	ObjectID          string                 `json:"objectId,omitempty"`
	URL               string                 `json:"url,omitempty"`
	ElementProperties *PageElementProperties `json:"elementProperties,omitempty"`
}

// NewCreateImage builds a createImage request.
func NewCreateImage(objectID, url string, props *PageElementProperties) (Request, error) {
	if url == "" {
		return Request{}, errInvalidf("image URL is required")
	}
	return Request{CreateImage: &CreateImageRequest{
		ObjectID:          objectID,
		URL:               url,
		ElementProperties: props,
	}}, nil
}

// CreateVideoRequest creates a video.
type CreateVideoRequest struct {
	ObjectID          string                 `json:"objectId,omitempty"`
	Source            string                 `json:"source,omitempty"`
	ID                string                 `json:"id,omitempty"`
	ElementProperties *PageElementProperties `json:"elementProperties,omitempty"`
}

var validVideoSources = stringSet("YOUTUBE", "DRIVE")

// NewCreateVideo builds a createVideo request.
func NewCreateVideo(objectID, source, videoID string, props *PageElementProperties) (Request, error) {
	if videoID == "" {
		return Request{}, errInvalidf("video ID is required")
	}
	if err := checkEnum("video source", source, validVideoSources); err != nil {
		return Request{}, err
	}
	return Request{CreateVideo: &CreateVideoRequest{
		ObjectID:          objectID,
		Source:            source,
		ID:                videoID,
		ElementProperties: props,
	}}, nil
}

// CreateLineRequest creates a line.
type CreateLineRequest struct {
	ObjectID          string                 `json:"objectId,omitempty"`
	Category          string                 `json:"category,omitempty"`
	ElementProperties *PageElementProperties `json:"elementProperties,omitempty"`
}

// NewCreateLine builds a createLine request.
func NewCreateLine(objectID, category string, props *PageElementProperties) (Request, error) {
	if err := checkEnum("line category", category, validLineCategories); err != nil {
		return Request{}, err
	}
	return Request{CreateLine: &CreateLineRequest{
		ObjectID:          objectID,
		Category:          category,
		ElementProperties: props,
	}}, nil
}

// InsertTextRequest inserts text into a shape or table cell.
type InsertTextRequest struct {
	ObjectID       string             `json:"objectId,omitempty"`
	CellLocation   *TableCellLocation `json:"cellLocation,omitempty"`
	Text           string             `json:"text,omitempty"`
	InsertionIndex int64              `json:"insertionIndex,omitempty"`
}

// NewInsertText builds an insertText request.
func NewInsertText(objectID, text string, insertionIndex int64) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	if text == "" {
		return Request{}, errInvalidf("text is required")
	}
	if insertionIndex < 0 {
		return Request{}, errInvalidf("insertion index must not be negative")
	}
	return Request{InsertText: &InsertTextRequest{
		ObjectID:       objectID,
		Text:           text,
		InsertionIndex: insertionIndex,
	}}, nil
}

// DeleteTextRequest deletes a text range from a shape or table cell.
type DeleteTextRequest struct {
	ObjectID     string             `json:"objectId,omitempty"`
	CellLocation *TableCellLocation `json:"cellLocation,omitempty"`
	TextRange    *Range             `json:"textRange,omitempty"`
}

// NewDeleteText builds a deleteText request. A nil textRange deletes all
// the text.
func NewDeleteText(objectID string, textRange *Range) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	if textRange == nil {
		textRange = AllRange()
	}
	return Request{DeleteText: &DeleteTextRequest{
		ObjectID:  objectID,
		TextRange: textRange,
	}}, nil
}

// SubstringMatchCriteria matches text by substring.
type SubstringMatchCriteria struct {
	Text      string `json:"text,omitempty"`
	MatchCase bool   `json:"matchCase,omitempty"`
}

// ReplaceAllTextRequest replaces every match of a string.
type ReplaceAllTextRequest struct {
	ContainsText  *SubstringMatchCriteria `json:"containsText,omitempty"`
	ReplaceText   string                  `json:"replaceText,omitempty"`
	PageObjectIDs []string                `json:"pageObjectIds,omitempty"`
}

// NewReplaceAllText builds a replaceAllText request.
func NewReplaceAllText(find, replace string, matchCase bool, pageObjectIDs ...string) (Request, error) {
	if find == "" {
		return Request{}, errInvalidf("search text is required")
	}
	return Request{ReplaceAllText: &ReplaceAllTextRequest{
		ContainsText:  &SubstringMatchCriteria{Text: find, MatchCase: matchCase},
		ReplaceText:   replace,
		PageObjectIDs: pageObjectIDs,
	}}, nil
}

// DeleteObjectRequest deletes a page or page element.
type DeleteObjectRequest struct {
	ObjectID string `json:"objectId,omitempty"`
}

// NewDeleteObject builds a deleteObject request.
func NewDeleteObject(objectID string) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	return Request{DeleteObject: &DeleteObjectRequest{ObjectID: objectID}}, nil
}

// DuplicateObjectRequest duplicates a slide or page element.
type DuplicateObjectRequest struct {
	ObjectID  string            `json:"objectId,omitempty"`
	ObjectIDs map[string]string `json:"objectIds,omitempty"`
}

// NewDuplicateObject builds a duplicateObject request. objectIDs maps
// source IDs to the IDs their duplicates should get.
func NewDuplicateObject(objectID string, objectIDs map[string]string) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	return Request{DuplicateObject: &DuplicateObjectRequest{
		ObjectID:  objectID,
		ObjectIDs: objectIDs,
	}}, nil
}

// UpdateTextStyleRequest restyles a range of text.
type UpdateTextStyleRequest struct {
	ObjectID     string             `json:"objectId,omitempty"`
	CellLocation *TableCellLocation `json:"cellLocation,omitempty"`
	Style        *TextStyle         `json:"style,omitempty"`
	TextRange    *Range             `json:"textRange,omitempty"`
	Fields       string             `json:"fields,omitempty"`
}

// NewUpdateTextStyle builds an updateTextStyle request. fields is the
// FieldMask naming the style fields to change.
func NewUpdateTextStyle(objectID string, style *TextStyle, textRange *Range, fields string) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	if style == nil {
		return Request{}, errInvalidf("style is required")
	}
	if fields == "" {
		return Request{}, errInvalidf("field mask is required")
	}
	if err := checkEnum("baseline offset", style.BaselineOffset, validBaselineOffsets); err != nil {
		return Request{}, err
	}
	if textRange == nil {
		textRange = AllRange()
	}
	return Request{UpdateTextStyle: &UpdateTextStyleRequest{
		ObjectID:  objectID,
		Style:     style,
		TextRange: textRange,
		Fields:    fields,
	}}, nil
}

// UpdateParagraphStyleRequest restyles the paragraphs overlapping a range.
type UpdateParagraphStyleRequest struct {
	ObjectID     string             `json:"objectId,omitempty"`
	CellLocation *TableCellLocation `json:"cellLocation,omitempty"`
	Style        *ParagraphStyle    `json:"style,omitempty"`
	TextRange    *Range             `json:"textRange,omitempty"`
	Fields       string             `json:"fields,omitempty"`
}

// NewUpdateParagraphStyle builds an updateParagraphStyle request.
func NewUpdateParagraphStyle(objectID string, style *ParagraphStyle, textRange *Range, fields string) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	if style == nil {
		return Request{}, errInvalidf("style is required")
	}
	if fields == "" {
		return Request{}, errInvalidf("field mask is required")
	}
	if err := checkEnum("alignment", style.Alignment, validAlignments); err != nil {
		return Request{}, err
	}
	if textRange == nil {
		textRange = AllRange()
	}
	return Request{UpdateParagraphStyle: &UpdateParagraphStyleRequest{
		ObjectID:  objectID,
		Style:     style,
		TextRange: textRange,
		Fields:    fields,
	}}, nil
}

// UpdateShapePropertiesRequest updates the properties of a shape.
type UpdateShapePropertiesRequest struct {
	ObjectID        string           `json:"objectId,omitempty"`
	ShapeProperties *ShapeProperties `json:"shapeProperties,omitempty"`
	Fields          string           `json:"fields,omitempty"`
}

// NewUpdateShapeProperties builds an updateShapeProperties request.
func NewUpdateShapeProperties(objectID string, props *ShapeProperties, fields string) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	if props == nil {
		return Request{}, errInvalidf("shape properties are required")
	}
	if fields == "" {
		return Request{}, errInvalidf("field mask is required")
	}
	return Request{UpdateShapeProperties: &UpdateShapePropertiesRequest{
		ObjectID:        objectID,
		ShapeProperties: props,
		Fields:          fields,
	}}, nil
}

// UpdatePageElementTransformRequest moves or scales a page element.
type UpdatePageElementTransformRequest struct {
	ObjectID  string           `json:"objectId,omitempty"`
	Transform *AffineTransform `json:"transform,omitempty"`
	ApplyMode string           `json:"applyMode,omitempty"`
}

var validApplyModes = stringSet("RELATIVE", "ABSOLUTE")

// NewUpdatePageElementTransform builds an updatePageElementTransform
// request.
func NewUpdatePageElementTransform(objectID string, transform *AffineTransform, applyMode string) (Request, error) {
	if objectID == "" {
		return Request{}, errInvalidf("object ID is required")
	}
	if transform == nil {
		return Request{}, errInvalidf("transform is required")
	}
	if err := checkEnum("apply mode", applyMode, validApplyModes); err != nil {
		return Request{}, err
	}
	return Request{UpdatePageElementTransform: &UpdatePageElementTransformRequest{
		ObjectID:  objectID,
		Transform: transform,
		ApplyMode: applyMode,
	}}, nil
}

// UpdateSlidesPositionRequest reorders slides.
type UpdateSlidesPositionRequest struct {
	SlideObjectIDs []string `json:"slideObjectIds,omitempty"`
	InsertionIndex int64    `json:"insertionIndex"`
}

// NewUpdateSlidesPosition builds an updateSlidesPosition request.
func NewUpdateSlidesPosition(slideObjectIDs []string, insertionIndex int64) (Request, error) {
	if len(slideObjectIDs) == 0 {
		return Request{}, errInvalidf("at least one slide object ID is required")
	}
	if insertionIndex < 0 {
		return Request{}, errInvalidf("insertion index must not be negative")
	}
	return Request{UpdateSlidesPosition: &UpdateSlidesPositionRequest{
		SlideObjectIDs: slideObjectIDs,
		InsertionIndex: insertionIndex,
	}}, nil
}

// InsertTableRowsRequest inserts rows into a table.
type InsertTableRowsRequest struct {
	TableObjectID string             `json:"tableObjectId,omitempty"`
	CellLocation  *TableCellLocation `json:"cellLocation,omitempty"`
	InsertBelow   bool               `json:"insertBelow"`
	Number        int64              `json:"number,omitempty"`
}

// NewInsertTableRows builds an insertTableRows request.
func NewInsertTableRows(tableObjectID string, at *TableCellLocation, below bool, number int64) (Request, error) {
	if tableObjectID == "" {
		return Request{}, errInvalidf("table object ID is required")
	}
	if number <= 0 {
		return Request{}, errInvalidf("number of rows must be positive")
	}
	return Request{InsertTableRows: &InsertTableRowsRequest{
		TableObjectID: tableObjectID,
		CellLocation:  at,
		InsertBelow:   below,
		Number:        number,
	}}, nil
}

// InsertTableColumnsRequest inserts columns into a table.
type InsertTableColumnsRequest struct {
	TableObjectID string             `json:"tableObjectId,omitempty"`
	CellLocation  *TableCellLocation `json:"cellLocation,omitempty"`
	InsertRight   bool               `json:"insertRight"`
	Number        int64              `json:"number,omitempty"`
}

// NewInsertTableColumns builds an insertTableColumns request.
func NewInsertTableColumns(tableObjectID string, at *TableCellLocation, right bool, number int64) (Request, error) {
	if tableObjectID == "" {
		return Request{}, errInvalidf("table object ID is required")
	}
	if number <= 0 {
		return Request{}, errInvalidf("number of columns must be positive")
	}
	return Request{InsertTableColumns: &InsertTableColumnsRequest{
		TableObjectID: tableObjectID,
		CellLocation:  at,
		InsertRight:   right,
		Number:        number,
	}}, nil
}

// DeleteTableRowRequest deletes the row containing a cell.
type DeleteTableRowRequest struct {
	TableObjectID string             `json:"tableObjectId,omitempty"`
	CellLocation  *TableCellLocation `json:"cellLocation,omitempty"`
}

// NewDeleteTableRow builds a deleteTableRow request.
func NewDeleteTableRow(tableObjectID string, at *TableCellLocation) (Request, error) {
	if tableObjectID == "" {
		return Request{}, errInvalidf("table object ID is required")
	}
	if at == nil {
		return Request{}, errInvalidf("cell location is required")
	}
	return Request{DeleteTableRow: &DeleteTableRowRequest{
		TableObjectID: tableObjectID,
		CellLocation:  at,
	}}, nil
}

// DeleteTableColumnRequest deletes the column containing a cell.
type DeleteTableColumnRequest struct {
	TableObjectID string             `json:"tableObjectId,omitempty"`
	CellLocation  *TableCellLocation `json:"cellLocation,omitempty"`
}

// NewDeleteTableColumn builds a deleteTableColumn request.
func NewDeleteTableColumn(tableObjectID string, at *TableCellLocation) (Request, error) {
	if tableObjectID == "" {
		return Request{}, errInvalidf("table object ID is required")
	}
	if at == nil {
		return Request{}, errInvalidf("cell location is required")
	}
	return Request{DeleteTableColumn: &DeleteTableColumnRequest{
		TableObjectID: tableObjectID,
		CellLocation:  at,
	}}, nil
}

// Reply is one entry in a batchUpdate response. Only requests that produce
// information get a non-empty reply.
type Reply struct {
	CreateSlide     *ObjectIDReply       `json:"createSlide,omitempty"`
	CreateShape     *ObjectIDReply       `json:"createShape,omitempty"`
	CreateTable     *ObjectIDReply       `json:"createTable,omitempty"`
	CreateImage     *ObjectIDReply       `json:"createImage,omitempty"`
	CreateVideo     *ObjectIDReply       `json:"createVideo,omitempty"`
	CreateLine      *ObjectIDReply       `json:"createLine,omitempty"`
	DuplicateObject *ObjectIDReply       `json:"duplicateObject,omitempty"`
	ReplaceAllText  *ReplaceAllTextReply `json:"replaceAllText,omitempty"`
}

// ObjectIDReply carries the object ID of a created element.
type ObjectIDReply struct {
	ObjectID string `json:"objectId,omitempty"`
}

// ReplaceAllTextReply carries the number of replaced occurrences.
type ReplaceAllTextReply struct {
	OccurrencesChanged int64 `json:"occurrencesChanged,omitempty"`
}

// BatchUpdateResponse is the response of presentations.batchUpdate.
type BatchUpdateResponse struct {
	PresentationID string        `json:"presentationId,omitempty"`
	Replies        []*Reply      `json:"replies,omitempty"`
	WriteControl   *WriteControl `json:"writeControl,omitempty"`
}
