package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/quaverlabs/quaver/internal/admin"
	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/favorites"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/player"
	"github.com/quaverlabs/quaver/internal/playlists"
	"github.com/quaverlabs/quaver/internal/repositories"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	client    *api.Client
	admin     *admin.Client
	store     *session.Store
	db        *sql.DB
	repo      *repositories.SongRepository
	playlists *playlists.Manager
	toggler   *favorites.Toggler
	queue     *player.Queue
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client *api.Client
	Admin  *admin.Client
	Store  *session.Store
	DB     *sql.DB
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		config: opts.Config,
		client: opts.Client,
		admin:  opts.Admin,
		store:  opts.Store,
		db:     opts.DB,
		logger: opts.Logger,
		output: opts.Output,
		queue:  player.New(opts.Config.Player.Shuffle),
	}

	if opts.DB != nil {
		r.repo = repositories.NewSongRepository(opts.DB)
	}
	if opts.Client != nil && opts.Store != nil {
		r.playlists = playlists.NewManager(opts.Store, opts.Client, opts.Logger)
		r.toggler = favorites.NewToggler(favorites.Opts{
			Store:    opts.Store,
			Persist:  favorites.NewTogglePersister(opts.Client),
			Notifier: &cliNotifier{runner: r},
			Logger:   opts.Logger,
		})
	}

	return r
}

// SetLogger swaps the runner's logger, used by the TUI to redirect logs away
// from the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// sessionsNotice prints the degraded-mode line for session-backed actions.
// When the local database fails to open at startup the store, toggler, and
// playlist manager all stay nil; those actions notify instead of running.
func (r *Runner) sessionsNotice() error {
	return r.writePlain("✗ Sessions unavailable. Run 'quaver setup' first\n")
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, songsCommand, artistsCommand, albumsCommand,
		tagsCommand, favoritesCommand, playlistsCommand, videosCommand, adminCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// cliNotifier renders favorite outcomes as terminal lines, the CLI's stand-in
// for the original UI's toasts.
type cliNotifier struct {
	runner *Runner
}

func (n *cliNotifier) FavoriteAdded(songID models.ID) {
	n.runner.writePlain("♥ %s added to favorites\n", songID)
}

func (n *cliNotifier) FavoriteRemoved(songID models.ID) {
	n.runner.writePlain("%s removed from favorites\n", songID)
}

func (n *cliNotifier) FavoriteFailed(songID models.ID, err error) {
	n.runner.writePlain("✗ favorite %s failed: %v\n", songID, err)
}

func (n *cliNotifier) LoginRequired(returnTo string) {
	n.runner.writePlain("✗ Not logged in. Run 'quaver auth login' first (%s)\n", returnTo)
}
