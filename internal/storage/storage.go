package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"
)

// Storage keys.
const (
	keyStats   = "stats"
	gamePrefix = "game:"
)

// ErrGameNotFound is returned when no saved game has the requested name.
var ErrGameNotFound = errors.New("saved game not found")

// SavedGame is a named snapshot of a finished or suspended game. The
// position is held in its textual (extended FEN) form.
type SavedGame struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Setup   string    `json:"setup"`
	Moves   []string  `json:"moves"`
	Outcome string    `json:"outcome"`
	SavedAt time.Time `json:"saved_at"`
}

// Stats stores aggregate play statistics.
type Stats struct {
	GamesPlayed   int            `json:"games_played"`
	Wins          int            `json:"wins"`
	Losses        int            `json:"losses"`
	Draws         int            `json:"draws"`
	WinsByDiff    map[string]int `json:"wins_by_difficulty"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{WinsByDiff: make(map[string]int)}
}

// WinRate returns the win rate as a percentage (0-100).
func (s *Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// Store wraps BadgerDB. Records are JSON compressed with zstd.
type Store struct {
	db  *badger.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open opens the store in the platform data directory.
func Open() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the store in a specific directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	return &Store{db: db, enc: enc, dec: dec}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	compressed := s.enc.EncodeAll(data, nil)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), compressed)
	})
}

func (s *Store) getJSON(key string, v any) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			data, err := s.dec.DecodeAll(val, nil)
			if err != nil {
				return err
			}
			return json.Unmarshal(data, v)
		})
	})
	return found, err
}

// SaveGame stores a saved game under its name, overwriting any previous
// save with the same name.
func (s *Store) SaveGame(g *SavedGame) error {
	if g.Name == "" {
		return errors.New("saved game needs a name")
	}
	g.SavedAt = time.Now()
	return s.putJSON(gamePrefix+g.Name, g)
}

// LoadGame loads a saved game by name.
func (s *Store) LoadGame(name string) (*SavedGame, error) {
	g := &SavedGame{}
	found, err := s.getJSON(gamePrefix+name, g)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, name)
	}
	return g, nil
}

// DeleteGame removes a saved game by name.
func (s *Store) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gamePrefix + name))
	})
}

// ListGames returns the names of all saved games.
func (s *Store) ListGames() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), gamePrefix))
		}
		return nil
	})
	return names, err
}

// LoadStats loads statistics, returning empty stats when none are stored.
func (s *Store) LoadStats() (*Stats, error) {
	stats := NewStats()
	if _, err := s.getJSON(keyStats, stats); err != nil {
		return nil, err
	}
	if stats.WinsByDiff == nil {
		stats.WinsByDiff = make(map[string]int)
	}
	return stats, nil
}

// SaveStats stores statistics.
func (s *Store) SaveStats(stats *Stats) error {
	return s.putJSON(keyStats, stats)
}

// RecordResult records a completed game from the human player's
// perspective and updates statistics.
func (s *Store) RecordResult(won, draw bool, difficulty string) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch {
	case draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case won:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
		stats.WinsByDiff[difficulty]++
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}
