// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// NewTestDB opens an in-memory SQLite database with migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// MockPersister is a scriptable favorites persister.
//
// Calls are recorded; Result is returned as the authoritative array and Err
// as the persistence failure.
type MockPersister struct {
	mu     sync.Mutex
	Result []models.ID
	Err    error
	Calls  []PersistCall
}

// PersistCall records one persistence attempt.
type PersistCall struct {
	UserID models.ID
	SongID models.ID
	Next   []models.ID
}

func (m *MockPersister) Persist(_ context.Context, user *models.User, songID models.ID, next []models.ID) ([]models.ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, PersistCall{UserID: user.ID, SongID: songID, Next: append([]models.ID(nil), next...)})
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return nil, nil
	}
	return append([]models.ID(nil), m.Result...), nil
}

// RecordingNotifier captures favorite outcome notifications.
type RecordingNotifier struct {
	mu        sync.Mutex
	Added     []models.ID
	Removed   []models.ID
	Failed    []models.ID
	Redirects []string
}

func (n *RecordingNotifier) FavoriteAdded(id models.ID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Added = append(n.Added, id)
}

func (n *RecordingNotifier) FavoriteRemoved(id models.ID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Removed = append(n.Removed, id)
}

func (n *RecordingNotifier) FavoriteFailed(id models.ID, _ error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Failed = append(n.Failed, id)
}

func (n *RecordingNotifier) LoginRequired(returnTo string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Redirects = append(n.Redirects, returnTo)
}

// ErrPersistence is a reusable failure for persister scripting.
var ErrPersistence = errors.New("persistence failed")
