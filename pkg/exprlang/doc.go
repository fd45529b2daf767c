// Package exprlang implements the Skin Expression Language evaluator:
// a small recursive-descent parser/evaluator for the `@eval:`/`@select:`
// and If/Switch/ForEach condition expressions embedded in skin
// documents. Grammar (loosest to tightest binding):
//
//	expr   -> bool
//	bool   -> rel ( ("&" | "&&" | "|" | "||") rel )*
//	rel    -> sum ( ("=" | "==" | "!=" | "<" | "<=" | ">" | ">=") sum )*
//	sum    -> prod ( ("+" | "-") prod )*
//	prod   -> factor ( ("*" | "/" | "%") factor )*
//	factor -> NUMBER | STRING | IDENT | "!" factor | "(" expr ")" | "-" factor
//
// The single-character forms (`&`, `|`, `=`) are the skin language's own
// operators; the two-character forms are accepted as an equivalent
// superset. Values are dynamically typed (bool/number/string) with the
// same loose coercion rules as the legacy evaluator this replaces:
// arithmetic operators coerce strings that parse as numbers and error on
// ones that don't (no string concatenation), and boolean operators
// coerce any non-zero/non-empty value to true.
package exprlang
