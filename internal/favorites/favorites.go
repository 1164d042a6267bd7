// package favorites implements the optimistic favorites toggle protocol.
//
// The browser original duplicated this logic across half a dozen components,
// each with its own persistence target and id handling. Here it exists once:
// a [Toggler] bound to the session store and parameterized by a [Persister],
// composed into every surface that can favorite a song.
package favorites

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Persister persists a favorites change to the backend.
//
// Implementations cover the two coexisting backend variants:
//   - full replace: the client-computed array is written as-is; the returned
//     authoritative slice is nil and the optimistic value stands.
//   - toggle intent: only the song id is sent; the server computes the result
//     and the returned slice overwrites the optimistic guess.
type Persister interface {
	Persist(ctx context.Context, user *models.User, songID models.ID, next []models.ID) (authoritative []models.ID, err error)
}

// Notifier receives user-facing outcome notifications, the transient toast of
// the original UI.
type Notifier interface {
	FavoriteAdded(songID models.ID)
	FavoriteRemoved(songID models.ID)
	FavoriteFailed(songID models.ID, err error)
	LoginRequired(returnTo string)
}

// State is the terminal state of one toggle invocation.
type State int

const (
	Confirmed State = iota
	RolledBack
)

func (s State) String() string {
	if s == RolledBack {
		return "rolled_back"
	}
	return "confirmed"
}

// Result describes the outcome of one toggle invocation.
type Result struct {
	State     State
	Added     bool        // true when the song ended up favorited
	Favorites []models.ID // final favorites set after reconciliation
}

// Toggler coordinates one user's favorites set across local UI state, the
// session mirror, and the remote store.
type Toggler struct {
	store    *session.Store
	slot     string
	persist  Persister
	notifier Notifier
	logger   *log.Logger
	origin   string
}

// Opts configures a [Toggler].
type Opts struct {
	Store    *session.Store
	Slot     string   // session slot, defaults to [session.SlotUser]
	Persist  Persister
	Notifier Notifier
	Logger   *log.Logger
	Origin   string // location preserved on the login redirect
}

// NewToggler creates a Toggler.
func NewToggler(opts Opts) *Toggler {
	if opts.Slot == "" {
		opts.Slot = session.SlotUser
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Notifier == nil {
		opts.Notifier = noopNotifier{}
	}

	return &Toggler{
		store:    opts.Store,
		slot:     opts.Slot,
		persist:  opts.Persist,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		origin:   opts.Origin,
	}
}

// Toggle flips songID's membership in the current user's favorites set.
//
// The new set is applied to the session mirror immediately and subscribers
// are notified before any network round-trip; persistence then either
// confirms (server-returned arrays win over the optimistic guess) or rolls
// the mirror back to the pre-toggle snapshot.
//
// Concurrent toggles on different songs are safe: each invocation closes over
// its own snapshot. Two rapid toggles of the same song can still interleave
// badly, since a failed first call rolls back past the second call's
// optimistic apply; callers needing stronger semantics must serialize.
func (t *Toggler) Toggle(ctx context.Context, songID models.ID) (*Result, error) {
	if songID.IsZero() {
		return nil, fmt.Errorf("%w: empty song id", shared.ErrInvalidInput)
	}

	user := t.store.Current(t.slot)
	if user == nil {
		t.notifier.LoginRequired(loginPath(t.origin))
		return nil, shared.ErrNotAuthenticated
	}

	snapshot := user.Clone()

	next, added := models.ToggleID(user.Favorites, songID)
	user.Favorites = next

	// Optimistic apply: the mirror (and every subscriber) sees the new set
	// with zero perceived latency.
	if err := t.store.Put(t.slot, user); err != nil {
		return nil, fmt.Errorf("failed to apply optimistic update: %w", err)
	}

	authoritative, err := t.persist.Persist(ctx, user, songID, next)
	if err != nil {
		t.logger.Warn("favorite toggle failed, rolling back", "song", songID, "error", err)

		if putErr := t.store.Put(t.slot, snapshot); putErr != nil {
			t.logger.Error("rollback failed", "song", songID, "error", putErr)
		}
		t.notifier.FavoriteFailed(songID, err)

		return &Result{State: RolledBack, Added: false, Favorites: snapshot.Favorites}, err
	}

	final := next
	if authoritative != nil {
		final = authoritative
		added = models.ContainsID(final, songID)

		// Server wins: reconcile the mirror against the returned array,
		// resolving any race the optimistic guess lost.
		if current := t.store.Current(t.slot); current != nil {
			current.Favorites = final
			if err := t.store.Put(t.slot, current); err != nil {
				t.logger.Error("failed to store authoritative favorites", "song", songID, "error", err)
			}
		}
	}

	if added {
		t.notifier.FavoriteAdded(songID)
	} else {
		t.notifier.FavoriteRemoved(songID)
	}

	return &Result{State: Confirmed, Added: added, Favorites: final}, nil
}

// loginPath builds the login entry point preserving the origin location for
// the post-login return.
func loginPath(origin string) string {
	if origin == "" {
		return "/login"
	}
	return "/login?from=" + origin
}

type noopNotifier struct{}

func (noopNotifier) FavoriteAdded(models.ID)         {}
func (noopNotifier) FavoriteRemoved(models.ID)       {}
func (noopNotifier) FavoriteFailed(models.ID, error) {}
func (noopNotifier) LoginRequired(string)            {}
