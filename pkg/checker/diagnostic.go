package checker

import "github.com/dimelords/skinlang/pkg/position"

// Severity classifies a Diagnostic's importance.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Code identifies what kind of problem a Diagnostic reports, used by
// editor integrations to filter/group diagnostics and by golden tests
// to pin exact output.
type Code string

const (
	CodeUnclosedTag        Code = "unclosed-tag"
	// CodeMismatchedTag marks a closing tag with no corresponding open
	// element anywhere in the document (skinxml.Node.Dangling), not a
	// name/tag mismatch (a mismatched open/close pair is folded into
	// CodeUnclosedTag, matching the lenient parser's recovery).
	CodeMismatchedTag       Code = "mismatched-tag"
	CodeDuplicateDefinition Code = "duplicate-definition"
	CodeUndefinedReference  Code = "undefined-reference"
	CodeUnknownAttribute    Code = "unknown-attribute"
	CodeRedefinedAttribute  Code = "redefined-attribute"
	CodeInvalidValue        Code = "invalid-value"
	CodeUndefinedEnumEntry  Code = "undefined-enum-entry"
	CodeExpressionError     Code = "expression-error"
	CodeInvalidScope        Code = "invalid-scope"
	CodeUnknownElement      Code = "unknown-element"
	CodeMalformedProcInst   Code = "malformed-proc-inst"
	CodeMissingClassModel   Code = "missing-class-model"
	CodeNotInPack           Code = "not-in-pack"
	CodeUnresolvedExternal  Code = "unresolved-external"
)

// RelatedInfo points a Diagnostic at a second, related location — e.g.
// the first definition in a duplicate-definition pair.
type RelatedInfo struct {
	Location position.Location
	Message  string
}

// Diagnostic is one problem found in a document.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Range    position.Range
	Message  string
	Related  []RelatedInfo
}
