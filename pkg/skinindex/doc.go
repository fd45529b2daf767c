// Package skinindex builds the per-file SkinFileInfo (spec.md §2
// component 8): an index of every named definition in one skin
// document — styles, app styles, delegates (sized, by design with no
// duplicate detection — see addDefinition), forms, images (including
// the synthetic per-frame sub-names a `frames="a b c"` attribute
// fabricates), shapes, resources, color schemes — plus
// view-instantiation edges and the resulting form-to-form dependency
// graph, duplicate-definition diagnostics, and platform gating derived
// from `<?platform mac?> ... <?platform?>`-shaped processing-instruction
// siblings.
//
// The concrete skin-pack element vocabulary indexed here (<Style>,
// <AppStyle>, <Delegate>, <Form>, <Image>, <Shape>, <Resource>,
// <ColorScheme>, <ViewInstantiation>) is this project's own invented
// concrete syntax for the abstract element kinds spec.md describes.
package skinindex
