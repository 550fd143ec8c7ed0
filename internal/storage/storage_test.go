package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStorage(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if !prefs.ShowHeatmap || !prefs.ShowCounts || !prefs.ShowPieces {
			t.Errorf("Expected every layer shown by default, got %+v", prefs)
		}
	})

	t.Run("PreferencesRoundTrip", func(t *testing.T) {
		s, err := NewStorage(t.TempDir())
		if err != nil {
			t.Fatalf("NewStorage failed: %v", err)
		}
		defer s.Close()

		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if !prefs.ShowCounts {
			t.Errorf("Expected defaults from an empty database")
		}

		prefs.ShowCounts = false
		prefs.ShowHeatmap = false
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences failed: %v", err)
		}

		got, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if got.ShowCounts || got.ShowHeatmap || !got.ShowPieces {
			t.Errorf("Loaded %+v, want counts and heatmap hidden", got)
		}
		if got.LastOpened.IsZero() {
			t.Errorf("Expected LastOpened to be stamped")
		}
	})

	t.Run("FirstLaunch", func(t *testing.T) {
		s, err := NewInMemoryStorage()
		if err != nil {
			t.Fatalf("NewInMemoryStorage failed: %v", err)
		}
		defer s.Close()

		first, err := s.IsFirstLaunch()
		if err != nil || !first {
			t.Fatalf("IsFirstLaunch = %v, %v; want true", first, err)
		}
		if err := s.MarkFirstLaunchComplete(); err != nil {
			t.Fatalf("MarkFirstLaunchComplete failed: %v", err)
		}
		first, err = s.IsFirstLaunch()
		if err != nil || first {
			t.Errorf("IsFirstLaunch = %v, %v; want false", first, err)
		}
	})
}

func TestDataPaths(t *testing.T) {
	base := t.TempDir()
	dbDir, err := GetDatabaseDir(base)
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if dbDir != filepath.Join(base, "db") {
		t.Errorf("GetDatabaseDir = %s, want %s", dbDir, filepath.Join(base, "db"))
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}

	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("HOME", base)
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if filepath.Base(dataDir) != appName {
		t.Errorf("GetDataDir = %s, want a %s directory", dataDir, appName)
	}
	if _, err := os.Stat(dataDir); err != nil {
		t.Errorf("Data directory was not created: %v", err)
	}
}
