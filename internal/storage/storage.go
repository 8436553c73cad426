package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keySavedGame   = "saved_game"
	keyFirstLaunch = "first_launch"
)

// ErrNoSavedGame is returned by LoadGame when nothing has been saved.
var ErrNoSavedGame = errors.New("no saved game")

// UserPreferences stores user settings
type UserPreferences struct {
	Username   string    `json:"username"`
	ShowHints  bool      `json:"show_hints"`
	Flipped    bool      `json:"flipped"`
	LastPlayed time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:   "Player",
		ShowHints:  true,
		LastPlayed: time.Now(),
	}
}

// SavedGame is an unfinished game kept between sessions.
type SavedGame struct {
	// Placement is the board in "<piece placement> <side to move>" form.
	Placement string    `json:"placement"`
	LastMove  string    `json:"last_move,omitempty"`
	SavedAt   time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in dir, or in the platform data directory
// when dir is empty.
func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		var err error
		dir, err = GetDatabaseDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// Open opens the configured backend: "badger" for a database in dir, "none"
// for no persistence, in which case it returns nil without error.
func Open(backend, dir string) (*Storage, error) {
	switch backend {
	case "none":
		return nil, nil
	case "badger", "":
		return NewStorage(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// NewMemoryStorage opens a database that lives only as long as the process.
func NewMemoryStorage() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	var firstLaunch bool = true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	_, err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveGame stores the game in progress, replacing any earlier one.
func (s *Storage) SaveGame(game *SavedGame) error {
	game.SavedAt = time.Now()
	return s.put(keySavedGame, game)
}

// LoadGame returns the stored game or ErrNoSavedGame.
func (s *Storage) LoadGame() (*SavedGame, error) {
	game := &SavedGame{}
	found, err := s.get(keySavedGame, game)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSavedGame
	}
	return game, nil
}

// DeleteGame forgets the stored game.
func (s *Storage) DeleteGame() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keySavedGame))
	})
}

// put stores v as JSON under key.
func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the JSON under key into v. A missing key leaves v untouched
// and reports found=false.
func (s *Storage) get(key string, v any) (found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}
