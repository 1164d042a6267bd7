// Package api implements the HTTP data-access layer for the streaming catalog backend.
//
// One [Client] serves every resource (songs, artists, albums, genres, moods,
// users, playlists, favorites, videos, auth). All responses pass through the
// envelope unwrapper, which tolerates the raw-array, {"data": ...},
// {"data": {"data": ...}}, and named-key shapes the coexisting backend
// generations produce.
//
// # Error Handling
//
// Failed requests wrap [shared.ErrAPIRequest] and carry a [StatusError] so
// callers can branch on status (see [IsNotFound]). Resource getters translate
// 404s into typed not-found sentinels such as [shared.ErrSongNotFound].
//
// # Throttling and Auth
//
// Requests flow through a [rate.Limiter] and carry a bearer token from an
// [oauth2.TokenSource] once [Client.SetToken] has been called.
package api
