package slides

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	tests := []struct {
		name      string
		shapeType string
		wantErr   bool
	}{
		{name: "rectangle", shapeType: "RECTANGLE"},
		{name: "text box", shapeType: "TEXT_BOX"},
		{name: "flowchart", shapeType: "FLOW_CHART_DECISION"},
		{name: "empty accepted", shapeType: ""},
		{name: "unknown rejected", shapeType: "DODECAHEDRON", wantErr: true},
		{name: "lowercase rejected", shapeType: "rectangle", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := NewShape(tt.shapeType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEnum)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.shapeType, shape.ShapeType)
		})
	}
}

func TestNewDimension(t *testing.T) {
	d, err := NewDimension(12700, UnitEMU)
	require.NoError(t, err)
	assert.Equal(t, 12700.0, d.Magnitude)
	assert.Equal(t, "EMU", d.Unit)

	_, err = NewDimension(1, "FURLONG")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestNewTable(t *testing.T) {
	table, err := NewTable(3, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), table.Rows)
	assert.Equal(t, int64(4), table.Columns)

	_, err = NewTable(0, 4)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = NewTable(3, -1)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestNewTextStyle(t *testing.T) {
	style, err := NewTextStyle("SUPERSCRIPT")
	require.NoError(t, err)
	assert.Equal(t, "SUPERSCRIPT", style.BaselineOffset)

	_, err = NewTextStyle("MIDSCRIPT")
	assert.ErrorIs(t, err, ErrInvalidEnum)

	_, err = NewTextStyle("")
	assert.NoError(t, err)
}

func TestNewParagraphStyle(t *testing.T) {
	style, err := NewParagraphStyle("CENTER")
	require.NoError(t, err)
	assert.Equal(t, "CENTER", style.Alignment)

	_, err = NewParagraphStyle("MIDDLE")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestNewAutofit(t *testing.T) {
	a, err := NewAutofit("SHAPE_AUTOFIT")
	require.NoError(t, err)
	assert.Equal(t, "SHAPE_AUTOFIT", a.AutofitType)

	_, err = NewAutofit("SQUEEZE")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestNewRange(t *testing.T) {
	start, end := int64(2), int64(7)
	r, err := NewRange("FIXED_RANGE", &start, &end)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *r.StartIndex)
	assert.Equal(t, int64(7), *r.EndIndex)

	_, err = NewRange("EVERYTHING", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidEnum)

	assert.Equal(t, "ALL", AllRange().Type)
}

// Omitted fields must be absent from the JSON, not serialized as nulls or
// zero values.
func TestOmittedFieldsAbsentFromJSON(t *testing.T) {
	shape, err := NewShape("ELLIPSE")
	require.NoError(t, err)

	data, err := json.Marshal(shape)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shapeType":"ELLIPSE"}`, string(data))

	data, err = json.Marshal(&Presentation{Title: "Quarterly"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Quarterly"}`, string(data))
}

func TestTextStylePointersRoundTrip(t *testing.T) {
	bold := true
	style := &TextStyle{Bold: &bold, FontFamily: "Arial"}

	data, err := json.Marshal(style)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bold":true,"fontFamily":"Arial"}`, string(data))

	// An explicit false still serializes; only nil is absent.
	unbold := false
	data, err = json.Marshal(&TextStyle{Bold: &unbold})
	require.NoError(t, err)
	assert.JSONEq(t, `{"bold":false}`, string(data))
}

func TestTextContentPlain(t *testing.T) {
	content := &TextContent{
		TextElements: []*TextElement{
			{ParagraphMarker: &ParagraphMarker{}},
			{TextRun: &TextRun{Content: "Hello "}},
			{TextRun: &TextRun{Content: "world"}},
		},
	}
	assert.Equal(t, "Hello world", content.Plain())

	var nilContent *TextContent
	assert.Equal(t, "", nilContent.Plain())
}

func TestPointsToEMU(t *testing.T) {
	assert.Equal(t, 12700.0, PointsToEMU(1))
	assert.Equal(t, 0.0, PointsToEMU(0))
	assert.Equal(t, 6350.0, PointsToEMU(0.5))
}
