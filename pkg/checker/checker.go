package checker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dimelords/skinlang/pkg/classmodel"
	"github.com/dimelords/skinlang/pkg/docmanager"
	"github.com/dimelords/skinlang/pkg/exprlang"
	"github.com/dimelords/skinlang/pkg/fsutil"
	"github.com/dimelords/skinlang/pkg/intellisense"
	"github.com/dimelords/skinlang/pkg/scope"
	"github.com/dimelords/skinlang/pkg/skinindex"
	"github.com/dimelords/skinlang/pkg/skinxml"
	"github.com/dimelords/skinlang/pkg/variables"
)

// Result is the outcome of one Check call.
type Result struct {
	Diagnostics []Diagnostic
	// Truncated is true if the walk stopped early because Budget
	// reported exceeded or the epoch token went stale; the caller is
	// responsible for rescheduling the remainder.
	Truncated bool
}

// statementVariableElements are the control-flow elements whose
// "variable" attribute is checked for a leading "$" (spec.md §4.5).
var statementVariableElements = map[string]bool{
	"if": true, "switch": true, "foreach": true, "styleselector": true,
}

// exprPrefixes names the directive prefixes only legal inside <define>.
var exprPrefixes = []string{"@eval:", "@select:", "@property:"}

// Checker validates one document against the class model and the
// cross-file scope graph.
type Checker struct {
	Classes   *classmodel.Manager
	Scope     *scope.Scope
	Pack      string
	Env       exprlang.Env      // optional; nil disables variable lookups during expression checks
	Variables *variables.Resolver // optional; nil disables $-token expansion before value checks
	FS        fsutil.Probe        // optional; nil disables Uri existence checks
	// IsPackRoot is true when the document being checked is its pack's
	// skin.xml root file, the only place external-pattern requests left
	// unresolved after the whole-file walk are reported (spec.md §4.5
	// "iterate all accumulated external requests").
	IsPackRoot bool
}

// externalRequest is one reference that resolved only through a
// fallback <External name="pat*"/> pattern rather than a concrete
// definition, pending a final root-only report.
type externalRequest struct {
	kind       string
	name       string
	start, end int
}

// Check walks doc.Root, emitting diagnostics. budget and epoch/token
// gate cooperative yielding; pass Unbounded{} and a nil epoch to run to
// completion unconditionally (used by tests and golden-file fixtures).
func (c *Checker) Check(doc *docmanager.Document, info *skinindex.SkinFileInfo, budget Budget, epoch *EpochCounter, token int64) Result {
	if c.Classes == nil || !c.Classes.IsClassModelLoaded() {
		return Result{Diagnostics: []Diagnostic{{
			Severity: SeverityError,
			Code:     CodeMissingClassModel,
			Message:  "class model could not be found",
		}}}
	}

	w := &walker{checker: c, doc: doc, budget: budget, epoch: epoch, token: token}

	if c.Scope != nil && info == nil {
		w.add(SeverityWarning, CodeNotInPack, 0, 0,
			"file is not part of its own skin pack")
	}

	if rootElem, ok := doc.Root.RootElement(); ok {
		w.walk(rootElem)
	}
	w.appendUnclosed(doc.Root)
	w.appendDangling(doc.Root)
	w.appendMalformedProcInst()
	w.appendDuplicates(info)
	w.appendExternalRequests()
	return Result{Diagnostics: w.diags, Truncated: w.truncated}
}

type walker struct {
	checker   *Checker
	doc       *docmanager.Document
	budget    Budget
	epoch     *EpochCounter
	token     int64
	diags     []Diagnostic
	truncated bool
	externals []externalRequest
}

func (w *walker) stillGood() bool {
	if w.truncated {
		return false
	}
	if w.budget != nil && w.budget.Exceeded() {
		w.truncated = true
		return false
	}
	if w.epoch != nil && !w.epoch.StillCurrent(w.token) {
		w.truncated = true
		return false
	}
	return true
}

func (w *walker) add(severity Severity, code Code, start, end int, message string) {
	w.diags = append(w.diags, Diagnostic{
		Severity: severity,
		Code:     code,
		Range:    w.doc.RangeFor(start, end),
		Message:  message,
	})
}

func (w *walker) walk(n *skinxml.Node) {
	if !w.stillGood() {
		return
	}
	if n.IsProcInst {
		// Malformed instructions (missing their closing "?") never
		// survive as a Node at all: encoding/xml's tokenizer hunts for a
		// literal "?>" and, failing to find one, reports a syntax error
		// that the lenient parser resyncs past rather than recovers into
		// a Node. appendMalformedProcInst catches that case directly
		// against doc.Text instead.
		return
	}

	if className, ok := w.checkElementName(n); ok {
		w.checkAttributes(n, className)
	}
	w.checkStyleReferences(n)
	w.checkExpressionAttributes(n)

	for _, child := range n.Children {
		if !w.stillGood() {
			return
		}
		w.walk(child)
	}
}

// appendMalformedProcInst scans doc.Text directly for every "<?...>"
// span and flags the ones that close on a bare ">" rather than "?>"
// (spec.md §4.5's "<?pi?> without trailing ? -> error"). This runs
// independently of the parsed DOM because a malformed instruction never
// survives as an IsProcInst Node: encoding/xml.Decoder.Token hunts for a
// literal "?>" terminator and, failing to find one before the next "<",
// reports a syntax error that the lenient parser resyncs past instead of
// recovering into a node.
func (w *walker) appendMalformedProcInst() {
	text := w.doc.Text
	pos := 0
	for {
		rel := strings.Index(text[pos:], "<?")
		if rel < 0 {
			return
		}
		start := pos + rel
		closeRel := strings.IndexByte(text[start+2:], '>')
		if closeRel < 0 {
			return
		}
		end := start + 2 + closeRel + 1
		if text[end-2] != '?' {
			w.add(SeverityError, CodeMalformedProcInst, start, end, "Malformed processing instruction")
		}
		pos = end
	}
}

// checkElementName validates n's tag against the class model: unknown
// (error), known only under a different case (warning), or known but
// not valid in its parent's scope (error), with the contextual
// exceptions spec.md §4.5 calls out. It returns the class name to use
// for the subsequent attribute check (n.Name itself, or the
// case-corrected match) and ok=false when the element is unrecognized
// under any casing, so the caller skips the meaningless attribute check.
func (w *walker) checkElementName(n *skinxml.Node) (string, bool) {
	className := n.Name
	if _, ok := w.checker.Classes.Class(n.Name); !ok {
		correct, ok := w.checker.Classes.ClassNameCaseInsensitive(n.Name)
		if !ok {
			w.add(SeverityError, CodeUnknownElement, n.NameStart, n.NameStart+len(n.Name),
				"Unknown element \""+n.Name+"\".")
			return "", false
		}
		w.add(SeverityWarning, CodeUnknownElement, n.NameStart, n.NameStart+len(n.Name),
			fmt.Sprintf("Incorrect casing: did you mean \"%s\"?", correct))
		className = correct
	}

	if n.Parent == nil || n.Parent.IsRoot() {
		return className, true
	}

	switch n.Name {
	case "default":
		if n.Parent.Name != "switch" {
			w.add(SeverityWarning, CodeInvalidScope, n.NameStart, n.NameStart+len(n.Name),
				"<default> outside <switch>; use a <switch> to hold it")
		}
		return className, true
	case "externals":
		if n.Parent.Parent != nil {
			w.add(SeverityWarning, CodeInvalidScope, n.NameStart, n.NameStart+len(n.Name),
				"<externals> is only valid at the skin root")
		}
		return className, true
	}

	if !w.checker.Classes.IsSkinElementValidInScope(n.Parent.Name, className) {
		w.add(SeverityError, CodeInvalidScope, n.NameStart, n.NameStart+len(n.Name),
			fmt.Sprintf("Element %q is not a valid child for %q.", n.Name, n.Parent.Name))
	}
	return className, true
}

// checkAttributes validates every attribute against the class model:
// the three-tier lookup (exact, underscore-insensitive, case-
// insensitive) of spec.md §4.5, redefinition, and "data.*"/"<define>"
// always-allow exceptions.
func (w *walker) checkAttributes(n *skinxml.Node, className string) {
	if n.Name == "define" {
		return
	}
	valid := w.checker.Classes.FindValidAttributes(className)

	seen := map[string]bool{}
	for _, attr := range n.Attrs {
		if seen[attr.Name] {
			w.add(SeverityError, CodeRedefinedAttribute, attr.NameStart, attr.NameEnd,
				"attribute \""+attr.Name+"\" is defined more than once")
			continue
		}
		seen[attr.Name] = true

		if strings.HasPrefix(attr.Name, "data.") {
			continue
		}

		attrType, ok := w.lookupAttribute(valid, attr)
		if !ok {
			w.add(SeverityError, CodeUnknownAttribute, attr.NameStart, attr.NameEnd,
				"invalid attribute \""+attr.Name+"\" on <"+n.Name+">")
			continue
		}
		w.checkValueType(n, attr, attrType)
	}
}

// lookupAttribute resolves attr's declared type against valid using the
// three-tier name match: exact, then ignoring underscores, then
// case-insensitive. The second and third tiers report a casing warning
// (the caller's attr carries the original spelling; the warning is
// emitted here since only this function knows which tier matched).
func (w *walker) lookupAttribute(valid map[string]classmodel.AttributeTypeMask, attr skinxml.Attr) (classmodel.AttributeTypeMask, bool) {
	name := attr.Name
	if t, ok := valid[name]; ok {
		return t, true
	}
	stripped := stripUnderscores(name)
	for k, t := range valid {
		if stripUnderscores(k) == stripped {
			w.add(SeverityWarning, CodeUnknownAttribute, attr.NameStart, attr.NameEnd,
				fmt.Sprintf("Incorrect casing: did you mean \"%s\"?", k))
			return t, true
		}
	}
	lower := strings.ToLower(name)
	for k, t := range valid {
		if strings.ToLower(k) == lower {
			w.add(SeverityWarning, CodeUnknownAttribute, attr.NameStart, attr.NameEnd,
				fmt.Sprintf("Incorrect casing: did you mean \"%s\"?", k))
			return t, true
		}
	}
	return 0, false
}

func stripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

func (w *walker) checkValueType(n *skinxml.Node, attr skinxml.Attr, t classmodel.AttributeTypeMask) {
	if strings.Contains(attr.Value, "@eval:") || strings.Contains(attr.Value, "@select:") || strings.Contains(attr.Value, "@property:") {
		// Validity of the directive prefix itself is handled by
		// checkExpressionAttributes; skip ordinary value-type checking.
		return
	}

	if attr.Value == "" {
		if attr.Name == "name" || !t.Has(classmodel.String) {
			w.add(SeverityWarning, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
				attr.Name+" has no value. Consider removing it.")
		}
		return
	}

	if strings.Contains(attr.Value, "$") && w.checker.Variables != nil {
		for _, tok := range w.checker.Variables.ResolveVariable(attr.Value) {
			if !tok.IsConcrete {
				// Unresolved expansions are silently accepted; they may
				// come from an outer, not-yet-visible scope.
				continue
			}
			resolved := attr
			resolved.Value = tok.Value
			w.checkConcreteValue(n, resolved, t)
		}
		return
	}

	w.checkConcreteValue(n, attr, t)
}

func (w *walker) checkConcreteValue(n *skinxml.Node, attr skinxml.Attr, t classmodel.AttributeTypeMask) {
	switch {
	case t.Has(classmodel.Bool):
		if !strings.EqualFold(attr.Value, "true") && !strings.EqualFold(attr.Value, "false") {
			w.add(SeverityError, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
				"expected a boolean (\"true\"/\"false\") for \""+attr.Name+"\", got \""+attr.Value+"\"")
		}
	case t.Has(classmodel.Int):
		w.checkNumeric(attr, false, "")
	case t.Has(classmodel.FontSize):
		w.checkNumeric(attr, true, "")
	case t.Has(classmodel.Duration):
		w.checkNumeric(attr, false, "ms")
	case t.Has(classmodel.Float):
		w.checkNumeric(attr, false, "")
	case t.Has(classmodel.Enum):
		w.checkEnum(n, attr)
	case t.Has(classmodel.Color):
		if _, ok := intellisense.ResolveColor(attr.Value, w.checker.Classes); !ok {
			w.add(SeverityError, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
				"\""+attr.Value+"\" is not a valid color for \""+attr.Name+"\"")
		}
	case t.Has(classmodel.Size):
		w.checkFloatList(attr, 1, 4)
	case t.Has(classmodel.Rect):
		w.checkFloatList(attr, 4, 4)
	case t.Has(classmodel.Point3D):
		w.checkFloatList(attr, 3, 3)
	case t.Has(classmodel.Point):
		w.checkFloatList(attr, 2, 2)
	case t.Has(classmodel.StrNone):
		if attr.Value != "none" {
			w.add(SeverityError, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
				"expected \"none\" for \""+attr.Name+"\", got \""+attr.Value+"\"")
		}
	case t.Has(classmodel.StrForever):
		if attr.Value != "forever" {
			w.add(SeverityError, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
				"expected \"forever\" for \""+attr.Name+"\", got \""+attr.Value+"\"")
		}
	case t.Has(classmodel.Uri):
		w.checkURI(attr)
	case t.Has(classmodel.Style), t.Has(classmodel.StyleArray):
		w.checkStyleArray(attr)
	case t.Has(classmodel.Image):
		w.checkDefinedness("image", skinindex.CategoryImage, attr)
	case t.Has(classmodel.Shape):
		w.checkDefinedness("shape", skinindex.CategoryShape, attr)
	case t.Has(classmodel.Form):
		w.checkDefinedness("form", skinindex.CategoryForm, attr)
	case t.Has(classmodel.Font):
		// No CategoryFont tracking exists in pkg/skinindex; accept any
		// non-empty value (already guaranteed above) rather than
		// reporting spurious "not defined" errors.
	}
}

func (w *walker) checkNumeric(attr skinxml.Attr, allowLeadingPlus bool, trimSuffix string) {
	raw := attr.Value
	text := raw
	if trimSuffix != "" {
		text = strings.TrimSuffix(text, trimSuffix)
	}
	if allowLeadingPlus {
		text = strings.TrimPrefix(text, "+")
	}

	trimmed := strings.TrimSpace(text)
	var err error
	if strings.Contains(text, ".") || trimSuffix != "" || allowLeadingPlus {
		_, err = strconv.ParseFloat(trimmed, 64)
	} else {
		_, err = strconv.Atoi(trimmed)
	}
	if err != nil {
		w.add(SeverityError, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
			"expected a number for \""+attr.Name+"\", got \""+raw+"\"")
		return
	}
	if trimmed != text {
		w.add(SeverityWarning, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
			"\""+attr.Name+"\" value contains spaces")
	}
}

func (w *walker) checkFloatList(attr skinxml.Attr, min, max int) {
	parts := strings.Split(attr.Value, ",")
	if len(parts) < min || len(parts) > max {
		w.add(SeverityError, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
			"\""+attr.Value+"\" is not a valid value for \""+attr.Name+"\"")
		return
	}
	for _, p := range parts {
		if _, err := strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			w.add(SeverityError, CodeInvalidValue, attr.ValueStart, attr.ValueEnd,
				"\""+attr.Value+"\" is not a valid value for \""+attr.Name+"\"")
			return
		}
	}
}

func (w *walker) checkEnum(n *skinxml.Node, attr skinxml.Attr) {
	siblings := map[string]string{}
	for _, a := range n.Attrs {
		siblings[a.Name] = a.Value
	}
	entries := w.checker.Classes.FindValidEnumEntries(n.Name, attr.Name, siblings)
	if len(entries) == 0 {
		return
	}
	for _, tok := range strings.Fields(attr.Value) {
		if containsFold(entries, tok) || containsFold(entries, stripUnderscores(tok)) {
			continue
		}
		w.add(SeverityError, CodeUndefinedEnumEntry, attr.ValueStart, attr.ValueEnd,
			"\""+tok+"\" is not a valid value for \""+attr.Name+"\"")
	}
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if s == v || strings.EqualFold(stripUnderscores(s), stripUnderscores(v)) {
			return true
		}
	}
	return false
}

func (w *walker) checkStyleArray(attr skinxml.Attr) {
	for _, name := range strings.Fields(attr.Value) {
		if name == "native" {
			continue
		}
		w.checkDefinedness("style", skinindex.CategoryStyle, skinxml.Attr{
			Name: attr.Name, Value: name, ValueStart: attr.ValueStart, ValueEnd: attr.ValueEnd,
		})
	}
}

// checkDefinedness resolves name in cat through the scope graph,
// reporting an immediate error when no pack (own, imported, or
// external-pattern) can explain it, and queuing a root-only report when
// it resolves only via an <External> glob (spec.md §4.5/§4.2).
func (w *walker) checkDefinedness(kind string, cat skinindex.Category, attr skinxml.Attr) {
	if w.checker.Scope == nil {
		return
	}
	cand, ok := w.checker.Scope.LookupDefinition(w.checker.Pack, cat, attr.Value)
	if !ok {
		w.add(SeverityError, CodeUndefinedReference, attr.ValueStart, attr.ValueEnd,
			fmt.Sprintf("No definition found for %s %q.", kind, attr.Value))
		return
	}
	if cand.Definition == nil {
		w.externals = append(w.externals, externalRequest{kind: kind, name: attr.Value, start: attr.ValueStart, end: attr.ValueEnd})
	}
}

func (w *walker) checkURI(attr skinxml.Attr) {
	v := attr.Value
	if strings.HasPrefix(v, "https://") || strings.HasPrefix(v, "http://") ||
		strings.HasPrefix(v, "local://$") || strings.HasPrefix(v, "object://") {
		return
	}
	if w.checker.FS == nil {
		return
	}
	dir := w.checker.FS.Dir(w.doc.URI)
	abs := w.checker.FS.Join(dir, v)
	if !w.checker.FS.Exists(abs) {
		w.add(SeverityError, CodeUndefinedReference, attr.ValueStart, attr.ValueEnd,
			"\""+v+"\" could not be found")
	}
}

// checkStyleReferences validates "style"/"inherit" (space-separated
// StyleArray) attributes against the scope graph. These are not
// schema-typed on most elements (they're a universal convention), so
// they're checked independently of checkAttributes' type-mask dispatch;
// an attribute the element's class does declare is left to that
// dispatch, so each reference is reported once.
func (w *walker) checkStyleReferences(n *skinxml.Node) {
	if w.checker.Scope == nil {
		return
	}
	for _, attrName := range []string{"style", "inherit"} {
		attr, ok := n.Attr(attrName)
		if !ok || attr.Value == "" {
			continue
		}
		if w.checker.Classes != nil {
			if _, typed := w.checker.Classes.FindAttributeType(n.Name, attrName); typed {
				continue
			}
		}
		for _, name := range strings.Fields(attr.Value) {
			if name == "native" {
				continue
			}
			w.checkDefinedness("style", skinindex.CategoryStyle, skinxml.Attr{
				Name: attrName, Value: name, ValueStart: attr.ValueStart, ValueEnd: attr.ValueEnd,
			})
		}
	}
}

// checkExpressionAttributes enforces that @eval:/@select:/@property:
// directives only appear inside <define>, and warns when a statement
// element's "variable" attribute is missing its "$" prefix.
func (w *walker) checkExpressionAttributes(n *skinxml.Node) {
	if n.Name != "define" {
		for _, attr := range n.Attrs {
			for _, prefix := range exprPrefixes {
				if strings.HasPrefix(attr.Value, prefix) {
					w.add(SeverityError, CodeExpressionError, attr.ValueStart, attr.ValueEnd,
						"\""+prefix+"\" is only allowed inside <define>")
				}
			}
		}
	} else {
		for _, attr := range n.Attrs {
			for _, prefix := range exprPrefixes {
				if !strings.HasPrefix(attr.Value, prefix) {
					continue
				}
				_, errs := exprlang.Eval(strings.TrimPrefix(attr.Value, prefix), w.checker.Env)
				for _, e := range errs {
					w.add(SeverityError, CodeExpressionError, attr.ValueStart, attr.ValueEnd, e.Message)
				}
			}
		}
	}

	if !statementVariableElements[n.Name] {
		return
	}
	attr, ok := n.Attr("variable")
	if !ok || attr.Value == "" {
		return
	}
	if strings.HasPrefix(attr.Value, "$") {
		return
	}
	msg := "\"variable\" should start with \"$\""
	if w.checker.Env != nil {
		if _, known := w.checker.Env.Lookup(attr.Value); known {
			msg += "; this seems to be a variable"
		}
	}
	w.add(SeverityWarning, CodeExpressionError, attr.ValueStart, attr.ValueEnd, msg)
}

func (w *walker) appendUnclosed(root *skinxml.Node) {
	root.Walk(func(n *skinxml.Node) {
		if n.IsRoot() || n.IsProcInst {
			return
		}
		if n.Unclosed {
			w.add(SeverityError, CodeUnclosedTag, n.NameStart, n.NameStart+len(n.Name),
				"No closing tag found for <"+n.Name+">.")
		}
	})
}

func (w *walker) appendDangling(root *skinxml.Node) {
	for _, d := range root.Dangling {
		w.add(SeverityError, CodeMismatchedTag, d.Start, d.End,
			"Dangling tag </"+d.Name+"> found.")
	}
}

func (w *walker) appendDuplicates(info *skinindex.SkinFileInfo) {
	if info == nil {
		return
	}
	for _, dup := range info.Duplicates {
		w.add(SeverityError, CodeDuplicateDefinition, dup.Second.NameStart, dup.Second.NameStart+len(dup.Second.Name),
			"duplicate definition of \""+dup.Name+"\"")
	}
}

// appendExternalRequests reports, only for the skin-pack root file,
// every reference this check pass resolved solely through an
// <External name="pat*"/> glob rather than a concrete definition
// (spec.md §4.5's "iterate all accumulated external requests"). Requests
// recorded while checking a non-root file are silently dropped: a full
// repository-wide ledger spanning every file's check pass would need a
// shared store threaded through pkg/analyzer, which is out of scope
// here (see DESIGN.md).
func (w *walker) appendExternalRequests() {
	if !w.checker.IsPackRoot {
		return
	}
	for _, ext := range w.externals {
		w.add(SeverityError, CodeUnresolvedExternal, ext.start, ext.end,
			fmt.Sprintf("No definition found for %s %q.", ext.kind, ext.name))
	}
}
