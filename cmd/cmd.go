// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize config file, database, and migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authenticate and store the session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "signup",
				Usage: "Register a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the stored session and token expiry",
				Action: r.AuthStatus,
			},
			{
				Name:  "whoami",
				Usage: "Fetch the account behind the current token",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AuthWhoami,
			},
		},
	}
}

// songsCommand handles catalog browsing operations
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "songs",
		Aliases: []string{"catalog"},
		Usage:   "Browse the song catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List songs, filtered and sorted by view count",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "genre",
						Usage: "Filter by genre id or name",
					},
					&cli.StringFlag{
						Name:  "mood",
						Usage: "Filter by mood id or name",
					},
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Filter by artist id or name",
					},
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Search titles and artists (diacritic-insensitive)",
					},
					&cli.BoolFlag{
						Name:  "favorites",
						Usage: "Only show the logged-in user's favorites",
					},
					&cli.BoolFlag{
						Name:  "cached",
						Usage: "Read from the local cache instead of the API",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.SongsList,
			},
			{
				Name:  "get",
				Usage: "Show a single song",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.SongsGet,
			},
			{
				Name:   "sync",
				Usage:  "Fetch the catalog and store it in the local cache",
				Action: r.SongsSync,
			},
		},
	}
}

// artistsCommand handles artist browsing
func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artists",
		Usage: "Browse artists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all artists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ArtistsList,
			},
		},
	}
}

// albumsCommand handles album browsing
func albumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "albums",
		Usage: "Browse albums",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all albums",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AlbumsList,
			},
		},
	}
}

// tagsCommand lists genre and mood tags
func tagsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "Browse genre and mood tags",
		Commands: []*cli.Command{
			{
				Name:   "genres",
				Usage:  "List all genres",
				Action: r.GenresList,
			},
			{
				Name:   "moods",
				Usage:  "List all moods",
				Action: r.MoodsList,
			},
		},
	}
}

// favoritesCommand handles the favorites set
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage the logged-in user's favorites",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorited songs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "toggle",
				Usage: "Toggle a song in/out of favorites",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "song-id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "replace",
						Usage: "Persist by replacing the whole favorites array instead of sending a toggle intent",
					},
				},
				Action: r.FavoritesToggle,
			},
		},
	}
}

// playlistsCommand handles playlist management
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Manage the logged-in user's playlists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistsList,
			},
			{
				Name:  "create",
				Usage: "Create an empty playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.PlaylistsCreate,
			},
			{
				Name:  "rename",
				Usage: "Rename a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "New playlist name",
						Required: true,
					},
				},
				Action: r.PlaylistsRename,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.PlaylistsDelete,
			},
			{
				Name:  "add",
				Usage: "Add a song to a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "playlist",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "song",
						Usage:    "Song ID",
						Required: true,
					},
				},
				Action: r.PlaylistsAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a song from a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "playlist",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "song",
						Usage:    "Song ID",
						Required: true,
					},
				},
				Action: r.PlaylistsRemove,
			},
			{
				Name:   "pull",
				Usage:  "Replace local playlists with the server's copy",
				Action: r.PlaylistsPull,
			},
			{
				Name:  "push",
				Usage: "Upload a playlist to the server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
				},
				Action: r.PlaylistsPush,
			},
			{
				Name:  "export",
				Usage: "Export a playlist to csv, markdown, or text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Playlist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (csv, markdown, txt)",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.PlaylistsExport,
			},
		},
	}
}

// videosCommand handles music video browsing
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "videos",
		Usage: "Browse music videos",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all videos",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.VideosList,
			},
			{
				Name:  "get",
				Usage: "Show a single video",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.VideosGet,
			},
		},
	}
}

// adminCommand handles back-office operations, gated on the admin session's level
func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Back-office catalog management",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authenticate against the admin backend",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Admin username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Admin password",
						Required: true,
					},
				},
				Action: r.AdminLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the admin session",
				Action: r.AdminLogout,
			},
			{
				Name:   "songs",
				Usage:  "List the catalog through the admin API",
				Action: r.AdminSongs,
			},
			{
				Name:  "add-song",
				Usage: "Create a song (admin only)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Song title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "artist",
						Usage:    "Artist name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "album",
						Usage: "Album name",
					},
					&cli.StringFlag{
						Name:  "genre",
						Usage: "Genre name",
					},
					&cli.StringFlag{
						Name:  "mood",
						Usage: "Mood name",
					},
					&cli.IntFlag{
						Name:  "duration",
						Usage: "Duration in seconds",
					},
					&cli.StringFlag{
						Name:  "audio-url",
						Usage: "Audio file URL",
					},
					&cli.StringFlag{
						Name:  "image-url",
						Usage: "Cover image URL",
					},
				},
				Action: r.AdminAddSong,
			},
			{
				Name:  "edit-song",
				Usage: "Edit a song (admin and moderator)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "Song title",
					},
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Artist name",
					},
					&cli.StringFlag{
						Name:  "album",
						Usage: "Album name",
					},
					&cli.StringFlag{
						Name:  "genre",
						Usage: "Genre name",
					},
					&cli.StringFlag{
						Name:  "mood",
						Usage: "Mood name",
					},
					&cli.IntFlag{
						Name:  "duration",
						Usage: "Duration in seconds",
					},
				},
				Action: r.AdminEditSong,
			},
			{
				Name:  "delete-song",
				Usage: "Delete a song (admin only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.AdminDeleteSong,
			},
			{
				Name:   "users",
				Usage:  "List accounts (admin only)",
				Action: r.AdminUsers,
			},
			{
				Name:  "set-level",
				Usage: "Change an account's permission level (admin only)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "User ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "level",
						Usage:    "Permission level (l1, l2, l3)",
						Required: true,
					},
				},
				Action: r.AdminSetLevel,
			},
			{
				Name:  "add-artist",
				Usage: "Create an artist record (admin only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.AdminAddArtist,
			},
			{
				Name:  "add-genre",
				Usage: "Create a genre tag (admin only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.AdminAddGenre,
			},
			{
				Name:  "delete-genre",
				Usage: "Delete a genre tag (admin only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.AdminDeleteGenre,
			},
			{
				Name:  "add-mood",
				Usage: "Create a mood tag (admin only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.AdminAddMood,
			},
			{
				Name:  "delete-mood",
				Usage: "Delete a mood tag (admin only)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.AdminDeleteMood,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive catalog browser",
		Action:  r.TUI,
	}
}
