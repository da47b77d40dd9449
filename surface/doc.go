// Package surface defines the editable host a tag input controller drives,
// and Headless, an in-memory host with the quirks of a native editable
// region.
//
// A host owns the rendered nodes and the live caret. It may be inconsistent
// with the controller's buffer between events (text typed next to the pending
// region instead of inside it, a vanished selection, no caret geometry); the
// controller re-derives canonical state from it on every input event.
package surface
