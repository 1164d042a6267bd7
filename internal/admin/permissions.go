package admin

// Account levels as the backend encodes them.
const (
	LevelAdmin     = "l1"
	LevelModerator = "l2"
	LevelUser      = "l3"
)

// Permission predicates over the session's level string.
//
// Presentation-layer gating only: the same client issues the raw mutation
// calls, so the real authorization boundary, if any, lives server-side.

// CanEditSongs reports whether level may edit songs (admin and moderator).
func CanEditSongs(level string) bool {
	return level == LevelAdmin || level == LevelModerator
}

// CanDeleteSongs reports whether level may delete songs (admin only).
func CanDeleteSongs(level string) bool {
	return level == LevelAdmin
}

// CanAddSongs reports whether level may add songs (admin only).
func CanAddSongs(level string) bool {
	return level == LevelAdmin
}

// CanManageUsers reports whether level may manage user accounts (admin only).
func CanManageUsers(level string) bool {
	return level == LevelAdmin
}
