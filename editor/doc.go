// Package editor provides the tag input state machine and a Bubble Tea
// component that hosts it.
//
// Controller reduces host input events to an accurate pending fragment, a
// live suggestion list, and tag commit/removal transitions. Presenter holds
// the suggestion popup and Locate derives its anchor from caret geometry.
// Model renders tags as chips with the popup composited under the caret.
package editor
