package slides

import "fmt"

// Enum sets mirror the Slides API documentation. Membership is only checked
// when a value is supplied; empty means "let the server default apply".

// Units for dimensions.
const (
	UnitEMU = "EMU"
	UnitPT  = "PT"
)

// Thumbnail sizes accepted by pages.getThumbnail.
const (
	ThumbnailLarge  = "LARGE"
	ThumbnailMedium = "MEDIUM"
	ThumbnailSmall  = "SMALL"
)

var validUnits = stringSet(UnitEMU, UnitPT)

var validThumbnailSizes = stringSet(ThumbnailLarge, ThumbnailMedium, ThumbnailSmall)

var validAlignments = stringSet("START", "CENTER", "END", "JUSTIFIED")

var validBaselineOffsets = stringSet("NONE", "SUPERSCRIPT", "SUBSCRIPT")

var validAutofitTypes = stringSet("NONE", "TEXT_AUTOFIT", "SHAPE_AUTOFIT")

var validLineCategories = stringSet("STRAIGHT", "BENT", "CURVED")

var validPredefinedLayouts = stringSet(
	"BLANK",
	"CAPTION_ONLY",
	"TITLE",
	"TITLE_AND_BODY",
	"TITLE_AND_TWO_COLUMNS",
	"TITLE_ONLY",
	"SECTION_HEADER",
	"SECTION_TITLE_AND_DESCRIPTION",
	"ONE_COLUMN_TEXT",
	"MAIN_POINT",
	"BIG_NUMBER",
)

var validShapeTypes = stringSet(
	"TEXT_BOX",
	"RECTANGLE", "ROUND_RECTANGLE", "ELLIPSE", "TRIANGLE", "RIGHT_TRIANGLE",
	"DIAMOND", "PARALLELOGRAM", "TRAPEZOID", "PENTAGON", "HEXAGON",
	"HEPTAGON", "OCTAGON", "DECAGON", "DODECAGON",
	"STAR_4", "STAR_5", "STAR_6", "STAR_7", "STAR_8", "STAR_10", "STAR_12",
	"STAR_16", "STAR_24", "STAR_32",
	"ARROW_EAST", "ARROW_NORTH", "ARROW_NORTH_EAST",
	"LEFT_ARROW", "RIGHT_ARROW", "UP_ARROW", "DOWN_ARROW",
	"LEFT_RIGHT_ARROW", "UP_DOWN_ARROW", "QUAD_ARROW", "BENT_ARROW",
	"BENT_UP_ARROW", "CURVED_LEFT_ARROW", "CURVED_RIGHT_ARROW",
	"CURVED_UP_ARROW", "CURVED_DOWN_ARROW", "NOTCHED_RIGHT_ARROW",
	"STRIPED_RIGHT_ARROW", "U_TURN_ARROW", "CHEVRON", "HOME_PLATE",
	"CLOUD", "HEART", "LIGHTNING_BOLT", "SUN", "MOON", "SMILEY_FACE",
	"ARC", "BLOCK_ARC", "CHORD", "PIE", "DONUT", "NO_SMOKING",
	"CUBE", "CAN", "BEVEL", "FOLDED_CORNER", "FRAME", "HALF_FRAME",
	"CORNER", "DIAGONAL_STRIPE", "L_SHAPE", "PLAQUE", "TEARDROP",
	"RIBBON", "RIBBON_2", "WAVE", "DOUBLE_WAVE", "CROSS", "PLUS",
	"MINUS", "MULTIPLY", "DIVIDE", "EQUAL", "NOT_EQUAL",
	"LEFT_BRACKET", "RIGHT_BRACKET", "LEFT_BRACE", "RIGHT_BRACE",
	"BRACKET_PAIR", "BRACE_PAIR",
	"WEDGE_RECTANGLE_CALLOUT", "WEDGE_ROUND_RECTANGLE_CALLOUT",
	"WEDGE_ELLIPSE_CALLOUT", "CLOUD_CALLOUT",
	"FLOW_CHART_PROCESS", "FLOW_CHART_DECISION", "FLOW_CHART_INPUT_OUTPUT",
	"FLOW_CHART_PREDEFINED_PROCESS", "FLOW_CHART_INTERNAL_STORAGE",
	"FLOW_CHART_DOCUMENT", "FLOW_CHART_MULTIDOCUMENT",
	"FLOW_CHART_TERMINATOR", "FLOW_CHART_PREPARATION",
	"FLOW_CHART_MANUAL_INPUT", "FLOW_CHART_MANUAL_OPERATION",
	"FLOW_CHART_CONNECTOR", "FLOW_CHART_PUNCHED_CARD",
	"FLOW_CHART_PUNCHED_TAPE", "FLOW_CHART_SUMMING_JUNCTION",
	"FLOW_CHART_OR", "FLOW_CHART_COLLATE", "FLOW_CHART_SORT",
	"FLOW_CHART_EXTRACT", "FLOW_CHART_MERGE",
	"FLOW_CHART_OFFLINE_STORAGE", "FLOW_CHART_ONLINE_STORAGE",
	"FLOW_CHART_MAGNETIC_TAPE", "FLOW_CHART_MAGNETIC_DISK",
	"FLOW_CHART_MAGNETIC_DRUM", "FLOW_CHART_DISPLAY", "FLOW_CHART_DELAY",
	"FLOW_CHART_ALTERNATE_PROCESS",
	"SNIP_1_RECTANGLE", "SNIP_2_SAME_RECTANGLE",
	"SNIP_2_DIAGONAL_RECTANGLE", "SNIP_ROUND_RECTANGLE",
	"ROUND_1_RECTANGLE", "ROUND_2_SAME_RECTANGLE",
	"ROUND_2_DIAGONAL_RECTANGLE",
	"IRREGULAR_SEAL_1", "IRREGULAR_SEAL_2",
	"CUSTOM",
)

func stringSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// checkEnum validates an optional enum value against its documented set.
// Empty is always accepted; the server applies its own default.
func checkEnum(field, value string, allowed map[string]struct{}) error {
	if value == "" {
		return nil
	}
	if _, ok := allowed[value]; !ok {
		return fmt.Errorf("%w: %q is not a valid %s", ErrInvalidEnum, value, field)
	}
	return nil
}
