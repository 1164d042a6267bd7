// Package models defines domain entities shared across the quaver client.
//
// The package contains two categories of types:
//
// 1. Catalog records decoded from the backend:
//   - [Song], [Artist], [Album], [Genre], [Mood], [Video]
//
// 2. Session records mirrored locally:
//   - [User] : account with embedded favorites and playlists
//   - [Playlist] : ordered list of song ids
//
// The [ID] type normalizes the backend's inconsistent identity fields
// ("id" vs "_id", string vs numeric) into one comparable string form at the
// decode boundary. [ToggleID] implements the non-mutating set toggle that the
// favorites protocol builds on.
package models
