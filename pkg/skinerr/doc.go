// Package skinerr provides the structured error type shared across every
// skinlang package.
//
// All of skinlang's internal failures — a malformed class model file, a
// skin-pack include cycle, a missing repo.json entry — are wrapped in a
// single Error type that records which package and operation produced the
// failure. This keeps error handling consistent from the class model
// loader down to the CLI, and plays well with errors.Is / errors.As.
package skinerr
