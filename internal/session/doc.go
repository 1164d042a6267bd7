// Package session holds the locally mirrored user sessions.
//
// The browser original kept a JSON user blob in localStorage and broadcast a
// custom DOM event after each mutation; independent components may or may not
// have been listening. [Store] replaces that with a single observable store:
// SQLite-backed slots (one for the main app, one for the admin surface) and
// synchronous subscriber callbacks fired after every [Store.Put] and
// [Store.Clear]. Reads return deep copies, so the only write path is Put.
package session
