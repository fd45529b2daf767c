package classmodel

import "strings"

// guessType applies the skin language's name-heuristic attribute typing
// (spec.md §4.1 "guess_type") on top of whatever the class model declared
// for elem.attr. The heuristics are applied exactly once, after the model
// lookup, and take priority over the declared model type — the model
// frequently under-specifies attribute types (leaving them String or
// untyped) and relies on the name convention to carry the real type.
func guessType(elem, attr string, declared AttributeTypeMask) AttributeTypeMask {
	lower := strings.ToLower(attr)

	switch {
	case strings.HasSuffix(lower, "color") || strings.HasSuffix(lower, "color.disabled") || strings.HasSuffix(lower, "color.on"):
		return Color
	case lower == "style" || lower == "inherit":
		return StyleArray
	case elem == "StyleAlias" && lower == "styles", elem == "styleselector" && lower == "styles":
		return StyleArray
	case lower == "shaperef":
		return Shape
	case lower == "url":
		if elem == "ShapeImage" {
			return Shape | Uri
		}
		return Uri
	case strings.HasSuffix(lower, "image") || strings.HasSuffix(lower, "icon") || strings.HasSuffix(lower, "background"):
		return Image
	case elem == "Font" && lower == "themeid":
		return Font
	case (elem == "View" || elem == "Target" || elem == "ScrollView") && lower == "name":
		return Form
	case lower == "form.name":
		return Form
	case elem == "Layout" && lower == "layout.class":
		return Enum
	case elem == "Font" && lower == "size":
		return FontSize
	case elem == "Style" && lower == "textsize":
		return FontSize
	case elem == "Animation" && lower == "repeat":
		return Int | StrForever
	case lower == "sizelimits":
		return Rect | StrNone
	case strings.Contains(lower, "duration"):
		return Duration
	}

	return declared
}
