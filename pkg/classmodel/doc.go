// Package classmodel loads the two class-model XML files ("Skin Elements"
// and "Visual Styles") that define the skin language's type system: element
// classes, inheritance, attributes, enumerations, schema/child groups,
// default colors, theme metrics, and the localized language list.
//
// A Manager is process-wide and long-lived (grounded on the teacher's
// ResourceManager in pkg/idml/resourcemgr.go, which likewise caches a
// parsed schema across many queries): Load re-parses a model file only
// when its modification time changes, and every query method is a pure
// read against the cached ClassDef/EnumDef maps.
package classmodel
