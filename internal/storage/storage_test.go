package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/chessboard/internal/board"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewMemoryStorage()
	if err != nil {
		t.Fatalf("NewMemoryStorage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("Expected username 'Player', got '%s'", prefs.Username)
		}
		if !prefs.ShowHints {
			t.Errorf("Expected hints enabled by default")
		}
		if prefs.Flipped {
			t.Errorf("Expected unflipped board by default")
		}
	})

	t.Run("PreferencesRoundTrip", func(t *testing.T) {
		s := newTestStorage(t)

		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if prefs.Username != "Player" {
			t.Errorf("Expected defaults before saving, got %+v", prefs)
		}

		prefs.Username = "Ada"
		prefs.ShowHints = false
		prefs.Flipped = true
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences: %v", err)
		}

		got, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if got.Username != "Ada" || got.ShowHints || !got.Flipped {
			t.Errorf("Loaded %+v", got)
		}
		if got.LastPlayed.IsZero() {
			t.Errorf("LastPlayed not recorded")
		}
	})

	t.Run("FirstLaunch", func(t *testing.T) {
		s := newTestStorage(t)

		first, err := s.IsFirstLaunch()
		if err != nil || !first {
			t.Fatalf("IsFirstLaunch = %v, %v; want true", first, err)
		}
		if err := s.MarkFirstLaunchComplete(); err != nil {
			t.Fatal(err)
		}
		first, err = s.IsFirstLaunch()
		if err != nil || first {
			t.Errorf("IsFirstLaunch = %v, %v; want false", first, err)
		}
	})
}

func TestSavedGame(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Fatalf("LoadGame on empty db error = %v, want ErrNoSavedGame", err)
	}

	b := board.NewBoard()
	for _, m := range []board.Move{board.NewMove(board.E2, board.E4), board.NewMove(board.E7, board.E5)} {
		if err := b.ExecuteMove(m.From, m.To); err != nil {
			t.Fatal(err)
		}
	}
	last := board.NewMove(board.E7, board.E5)

	if err := s.SaveGame(NewSavedGame(b, last)); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	saved, err := s.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if saved.SavedAt.IsZero() {
		t.Error("SavedAt not recorded")
	}

	got, gotLast, err := saved.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !got.Equal(b) {
		t.Errorf("restored board differs:%s\nwant:%s", got, b)
	}
	if gotLast != last {
		t.Errorf("last move = %v, want %v", gotLast, last)
	}

	if err := s.DeleteGame(); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if _, err := s.LoadGame(); !errors.Is(err, ErrNoSavedGame) {
		t.Errorf("LoadGame after delete error = %v", err)
	}
}

func TestSavedGameRestoreErrors(t *testing.T) {
	bad := []*SavedGame{
		{Placement: "garbage"},
		{Placement: board.StartPlacement, LastMove: "e2"},
	}
	for _, g := range bad {
		if _, _, err := g.Restore(); err == nil {
			t.Errorf("Restore(%+v) should fail", g)
		}
	}

	g := NewSavedGame(board.NewBoard(), board.NoMove)
	if g.LastMove != "" {
		t.Errorf("LastMove = %q, want empty", g.LastMove)
	}
	_, last, err := g.Restore()
	if err != nil || last != board.NoMove {
		t.Errorf("Restore = %v, %v", last, err)
	}
}

func TestOnDiskStorage(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	if err := s.SaveGame(NewSavedGame(board.NewBoard(), board.NoMove)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewStorage(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	saved, err := s.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame after reopen: %v", err)
	}
	if saved.Placement != board.StartPlacement {
		t.Errorf("placement = %q", saved.Placement)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}

func TestOpenBackends(t *testing.T) {
	s, err := Open("none", "")
	if s != nil || err != nil {
		t.Errorf("Open(none) = %v, %v", s, err)
	}

	if _, err := Open("sqlite", t.TempDir()); err == nil {
		t.Error("Open(sqlite) should fail")
	}

	s, err = Open("badger", t.TempDir())
	if err != nil {
		t.Fatalf("Open(badger): %v", err)
	}
	defer s.Close()
	if first, err := s.IsFirstLaunch(); err != nil || !first {
		t.Errorf("fresh database: first launch = %v, %v", first, err)
	}
}

func TestBaseDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("APPDATA", "")

	tests := []struct {
		goos string
		want string
	}{
		{"linux", filepath.Join(home, ".local", "share")},
		{"darwin", filepath.Join(home, "Library", "Application Support")},
		{"windows", filepath.Join(home, "AppData", "Roaming")},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := baseDataDir(tt.goos)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("baseDataDir(%s) = %s, want %s", tt.goos, got, tt.want)
			}
		})
	}

	t.Setenv("XDG_DATA_HOME", "/xdg")
	if got, _ := baseDataDir("linux"); got != "/xdg" {
		t.Errorf("XDG_DATA_HOME ignored: %s", got)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	name := "no-such-settings.yaml"

	got := FindConfigFile(name)
	if filepath.Base(got) != name || got == name {
		t.Errorf("missing local file should resolve into the data dir, got %s", got)
	}

	local := filepath.Join(t.TempDir(), "here.yaml")
	if err := os.WriteFile(local, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigFile(local); got != local {
		t.Errorf("existing file = %s, want %s", got, local)
	}
}
