// package player holds the in-memory playback context.
package player

import (
	"math/rand"
	"sync"

	"github.com/quaverlabs/quaver/internal/models"
)

// Queue is the playback context: the loaded song list and a cursor into it.
//
// Mirrors the browser app's global player state (current song, playlist,
// index); actual audio transport is out of scope, the queue only tracks what
// is "playing".
type Queue struct {
	mu      sync.Mutex
	songs   []models.Song
	index   int
	playing bool
	shuffle bool
}

// New creates an empty queue.
func New(shuffle bool) *Queue {
	return &Queue{index: -1, shuffle: shuffle}
}

// Load replaces the queue contents and resets the cursor to start, or to the
// song with startID when it is present.
func (q *Queue) Load(songs []models.Song, startID models.ID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.songs = append([]models.Song(nil), songs...)
	q.index = 0
	q.playing = len(q.songs) > 0

	if !startID.IsZero() {
		for i, s := range q.songs {
			if s.ID == startID {
				q.index = i
				break
			}
		}
	}
	if len(q.songs) == 0 {
		q.index = -1
		q.playing = false
	}
}

// Current returns the song under the cursor, or nil when the queue is empty.
func (q *Queue) Current() *models.Song {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.index < 0 || q.index >= len(q.songs) {
		return nil
	}
	song := q.songs[q.index]
	return &song
}

// Next advances the cursor, wrapping at the end, and returns the new current
// song. With shuffle enabled the next index is random.
func (q *Queue) Next() *models.Song {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.advance(1)
}

// Previous moves the cursor back, wrapping at the start.
func (q *Queue) Previous() *models.Song {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.advance(-1)
}

func (q *Queue) advance(step int) *models.Song {
	n := len(q.songs)
	if n == 0 {
		return nil
	}

	if q.shuffle && n > 1 {
		next := q.index
		for next == q.index {
			next = rand.Intn(n)
		}
		q.index = next
	} else {
		q.index = ((q.index+step)%n + n) % n
	}

	song := q.songs[q.index]
	return &song
}

// TogglePause flips the playing flag and reports the new value.
func (q *Queue) TogglePause() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.index >= 0 {
		q.playing = !q.playing
	}
	return q.playing
}

// Playing reports whether the queue considers itself playing.
func (q *Queue) Playing() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.playing
}

// SetShuffle toggles shuffle mode.
func (q *Queue) SetShuffle(on bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.shuffle = on
}

// Len returns the number of loaded songs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.songs)
}
