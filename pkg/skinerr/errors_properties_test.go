package skinerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestErrorConstructionConsistency checks that every wrapping constructor
// attaches package/op/path context and preserves the wrapped error chain
// (spec.md §7's "validation never throws across document boundaries"
// relies on every internal error being inspectable this way).
func TestErrorConstructionConsistency(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Wrap includes package and operation", prop.ForAll(
		func(pkg, op string, err error) bool {
			if pkg == "" || op == "" || err == nil {
				return true
			}
			wrapped := Wrap(pkg, op, err)
			if wrapped == nil || !errors.Is(wrapped, err) {
				return false
			}
			var se *Error
			if !errors.As(wrapped, &se) {
				return false
			}
			return se.Package == pkg && se.Op == op && se.Path == "" && errors.Is(se.Err, err)
		},
		genPackageName(), genOperationName(), genError(),
	))

	properties.Property("WrapPath includes package, operation, and path", prop.ForAll(
		func(pkg, op, path string, err error) bool {
			if pkg == "" || op == "" || err == nil {
				return true
			}
			wrapped := WrapPath(pkg, op, path, err)
			if wrapped == nil || !errors.Is(wrapped, err) {
				return false
			}
			var se *Error
			if !errors.As(wrapped, &se) {
				return false
			}
			return se.Package == pkg && se.Op == op && se.Path == path && errors.Is(se.Err, err)
		},
		genPackageName(), genOperationName(), gen.AlphaString(), genError(),
	))

	properties.Property("error chains preserve Is/As through multiple levels", prop.ForAll(
		func(pkg1, op1, pkg2, op2 string, base error) bool {
			if pkg1 == "" || op1 == "" || pkg2 == "" || op2 == "" || base == nil {
				return true
			}
			level1 := Wrap(pkg1, op1, base)
			level2 := Wrap(pkg2, op2, level1)
			if !errors.Is(level2, base) || !errors.Is(level2, level1) {
				return false
			}
			var e1, e2 *Error
			return errors.As(level1, &e1) && errors.As(level2, &e2)
		},
		genPackageName(), genOperationName(), genPackageName(), genOperationName(), genError(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func genPackageName() gopter.Gen {
	return gen.OneConstOf(
		"classmodel", "fsutil", "skinxml", "docmanager", "exprlang",
		"variables", "skinindex", "scope", "checker", "intellisense", "analyzer",
	)
}

func genOperationName() gopter.Gen {
	return gen.OneConstOf(
		"load", "parse", "resolve", "validate", "lookup", "walk", "index", "qualify",
	)
}

func genError() gopter.Gen {
	return gen.OneConstOf(
		errors.New("test error"),
		fmt.Errorf("formatted error: %s", "test"),
		ErrNotFound,
		ErrInvalidFormat,
		ErrAlreadyExists,
		ErrCycle,
	)
}
