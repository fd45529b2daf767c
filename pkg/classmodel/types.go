package classmodel

import "strings"

// AttributeTypeMask is a bitset drawn from the skin language's attribute
// type vocabulary. Composite types are disjunctions, e.g. Shape|Uri,
// Rect|StrNone, Int|StrForever. NoType is the identity under bitwise-OR;
// every other bit is a mutually exclusive "kind tag" when used alone.
type AttributeTypeMask uint32

// Attribute type bits.
const (
	NoType AttributeTypeMask = 0
	Bool   AttributeTypeMask = 1 << iota
	Int
	Float
	String
	Enum
	Color
	Size
	Rect
	Image
	Point
	Point3D
	Uri
	Style
	StyleArray
	Shape
	Font
	Form
	FontSize
	Duration
	StrNone
	StrForever
)

var maskNames = []struct {
	bit  AttributeTypeMask
	name string
}{
	{Bool, "Bool"},
	{Int, "Int"},
	{Float, "Float"},
	{String, "String"},
	{Enum, "Enum"},
	{Color, "Color"},
	{Size, "Size"},
	{Rect, "Rect"},
	{Image, "Image"},
	{Point, "Point"},
	{Point3D, "Point3D"},
	{Uri, "Uri"},
	{Style, "Style"},
	{StyleArray, "StyleArray"},
	{Shape, "Shape"},
	{Font, "Font"},
	{Form, "Form"},
	{FontSize, "FontSize"},
	{Duration, "Duration"},
	{StrNone, "StrNone"},
	{StrForever, "StrForever"},
}

// Has reports whether mask carries bit.
func (m AttributeTypeMask) Has(bit AttributeTypeMask) bool {
	return m&bit != 0
}

// String renders the mask as a "|"-joined list of bit names, e.g. "Shape|Uri".
func (m AttributeTypeMask) String() string {
	if m == NoType {
		return "NoType"
	}
	var parts []string
	for _, mn := range maskNames {
		if m.Has(mn.bit) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseTypeName maps a single class-model type-name token (as found in a
// Model.Member's "type" attribute) to its AttributeTypeMask bit(s). Unknown
// names map to NoType; guessType's name heuristics then decide the type.
func ParseTypeName(name string) AttributeTypeMask {
	switch name {
	case "Bool", "bool":
		return Bool
	case "Int", "int":
		return Int
	case "Float", "float":
		return Float
	case "String", "string":
		return String
	case "Enum", "enum":
		return Enum
	case "Color", "color":
		return Color
	case "Size", "size":
		return Size
	case "Rect", "rect":
		return Rect
	case "Image", "image":
		return Image
	case "Point", "point":
		return Point
	case "Point3D", "point3d":
		return Point3D
	case "Uri", "uri":
		return Uri
	case "Style", "style":
		return Style
	case "StyleArray", "stylearray":
		return StyleArray
	case "Shape", "shape":
		return Shape
	case "Font", "font":
		return Font
	case "Form", "form":
		return Form
	case "FontSize", "fontsize":
		return FontSize
	case "Duration", "duration":
		return Duration
	case "StrNone", "strnone":
		return StrNone
	case "StrForever", "strforever":
		return StrForever
	default:
		return NoType
	}
}

// ClassDef describes one element class in the skin language's type system.
type ClassDef struct {
	Name string
	// Parent is the class this inherits attributes and schema information
	// from, empty for root classes.
	Parent string
	// Abstract classes never appear as completion candidates for element
	// names (find_skin_element_definitions with ignore_abstract=true).
	Abstract bool
	// Attributes maps attribute name to its declared type mask, as found
	// directly on this class (not including inherited attributes; callers
	// walk Parent via the Manager to get the full set).
	Attributes map[string]AttributeTypeMask
	// SchemaGroups lists the groups this class belongs to, for
	// is_skin_element_valid_in_scope. Empty means "inherit from Parent".
	SchemaGroups []string
	// ChildrenGroup names the schema group that a valid child of this
	// class must belong to. Empty means "inherit from Parent".
	ChildrenGroup string
	// Doc holds the extracted documentation, if any.
	Doc ClassDoc
}

// ClassDoc holds the brief/detailed/code documentation extracted from a
// Model.Documentation block, used to render hovers.
type ClassDoc struct {
	Brief    string
	Detailed string
	Code     string
}

// EnumDef describes one named enumeration and its entries.
type EnumDef struct {
	Name    string
	Entries []string
	// Parent denotes inherited entries via a dotted "Class.attribute" key
	// into another class's enum declaration for that attribute, used by
	// find_valid_enum_entries' inheritance chain walk.
	Parent string
}
