// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// One [Model] drives the whole surface: a filterable catalog list, a
// now-playing line fed by the playback queue, and a transient notice line
// standing in for the browser app's toast notifications. Favorite toggles run
// through the shared favorites protocol, so the list's ♥ markers re-read the
// session store after every toggle and stay consistent with any other surface
// mutating favorites.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, f, v, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
