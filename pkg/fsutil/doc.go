// Package fsutil is the "Filesystem Helper" component: it finds a skin
// repository's root via a marker file, resolves class-model and skins
// locations from an already-decoded repo.json, and walks directories.
//
// fsutil never touches the network or performs raw syscalls itself — every
// operation goes through the injected Probe interface (exists/stat/read/
// readdir), so editor-integration hosts and the CLI can each supply their
// own I/O layer (a real os.* backed Probe, or an in-memory one for tests),
// matching the external-collaborator boundary from spec.md §1.
package fsutil
