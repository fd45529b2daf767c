package skinindex

import "github.com/dimelords/skinlang/pkg/skinxml"

// Category identifies what kind of named thing a definition is.
type Category string

const (
	CategoryStyle       Category = "style"
	CategoryAppStyle    Category = "appstyle"
	CategoryForm        Category = "form"
	CategoryImage       Category = "image"
	CategoryShape       Category = "shape"
	CategoryResource    Category = "resource"
	CategoryColorScheme Category = "colorscheme"
)

// categoryTags maps a skin-document element name to the Category it
// defines a named member of.
var categoryTags = map[string]Category{
	"Style":       CategoryStyle,
	"AppStyle":    CategoryAppStyle,
	"Form":        CategoryForm,
	"Image":       CategoryImage,
	"Shape":       CategoryShape,
	"Resource":    CategoryResource,
	"ColorScheme": CategoryColorScheme,
}

// Platform identifies which platform-gated region a definition lives
// in, derived from `<?platform mac?>`/`<?platform win?>`/`<?not:mac?>`
// processing-instruction siblings.
type Platform int

const (
	PlatformAny Platform = iota
	PlatformMac
	PlatformWin
)

// Definition is one named thing defined somewhere in a skin document.
type Definition struct {
	Name     string
	Node     *skinxml.Node
	Category Category
	Platform Platform
	Override bool
}

// Duplicate records two definitions of the same name, in the same
// category and platform scope, neither marked override="true" — a
// diagnostic-worthy conflict per spec.md's duplicate-detection rule.
type Duplicate struct {
	Category Category
	Name     string
	First    *skinxml.Node
	Second   *skinxml.Node
}

// SkinFileInfo is the full index built for one skin document.
type SkinFileInfo struct {
	URI string

	// Definitions holds every named definition, keyed by category then
	// name; a name may have more than one Definition (platform variants,
	// or an unresolved duplicate).
	Definitions map[Category]map[string][]*Definition

	// Delegates maps a delegate name to every <Delegate> node declaring
	// it (any "size" variant). Legacy quirk, preserved intentionally:
	// sized delegates are never duplicate-checked, since the same name
	// legitimately recurs once per size.
	Delegates map[string][]*skinxml.Node

	ViewInstantiations []*skinxml.Node

	// FormDependencies maps a form's name to the names of every other
	// form it instantiates via <ViewInstantiation form="...">, directly
	// in its body (not inside an <If>/<Switch>, and recorded only once
	// per target name regardless of how many times it's instantiated).
	FormDependencies map[string][]string

	Duplicates []Duplicate
}

func newSkinFileInfo(uri string) *SkinFileInfo {
	return &SkinFileInfo{
		URI:                uri,
		Definitions:        map[Category]map[string][]*Definition{},
		Delegates:          map[string][]*skinxml.Node{},
		FormDependencies:   map[string][]string{},
	}
}

// Lookup returns every definition named name in category.
func (info *SkinFileInfo) Lookup(cat Category, name string) []*Definition {
	return info.Definitions[cat][name]
}

func (info *SkinFileInfo) addDefinition(def *Definition) {
	byName, ok := info.Definitions[def.Category]
	if !ok {
		byName = map[string][]*Definition{}
		info.Definitions[def.Category] = byName
	}
	existing := byName[def.Name]
	for _, e := range existing {
		if !def.Override && !e.Override && def.Platform == e.Platform {
			info.Duplicates = append(info.Duplicates, Duplicate{
				Category: def.Category,
				Name:     def.Name,
				First:    e.Node,
				Second:   def.Node,
			})
		}
	}
	byName[def.Name] = append(existing, def)
}

func appendUnique(list []string, name string) []string {
	for _, s := range list {
		if s == name {
			return list
		}
	}
	return append(list, name)
}
