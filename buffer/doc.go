// Package buffer implements the pure document model of a tag input: an
// ordered run of committed tags followed by exactly one editable pending
// fragment.
//
// Tags are atomic. The buffer appends or removes whole tags and never edits
// their fields. The pending fragment is always the right-most region.
package buffer
