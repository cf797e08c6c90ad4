package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStorage(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	defer s.Close()

	rook := &MagicSet{Family: "rook", Seed: 42, Attempts: 123456}
	for i := range rook.Numbers {
		rook.Numbers[i] = 0x8000000000000000 | uint64(i)<<7 | 1
	}

	t.Run("MissingFamily", func(t *testing.T) {
		if _, err := s.LoadMagics("bishop"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := s.SaveMagics(rook); err != nil {
			t.Fatalf("SaveMagics failed: %v", err)
		}
		if rook.FoundAt.IsZero() {
			t.Error("Expected FoundAt to be set on save")
		}

		got, err := s.LoadMagics("rook")
		if err != nil {
			t.Fatalf("LoadMagics failed: %v", err)
		}
		if got.Numbers != rook.Numbers {
			t.Error("Loaded numbers differ from saved numbers")
		}
		if got.Seed != 42 || got.Attempts != 123456 {
			t.Errorf("Expected seed 42 and 123456 attempts, got %d and %d", got.Seed, got.Attempts)
		}
	})

	t.Run("Families", func(t *testing.T) {
		if err := s.SaveMagics(&MagicSet{Family: "bishop"}); err != nil {
			t.Fatalf("SaveMagics failed: %v", err)
		}
		families, err := s.Families()
		if err != nil {
			t.Fatalf("Families failed: %v", err)
		}
		if len(families) != 2 || families[0] != "bishop" || families[1] != "rook" {
			t.Errorf("Expected [bishop rook], got %v", families)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.DeleteMagics("bishop"); err != nil {
			t.Fatalf("DeleteMagics failed: %v", err)
		}
		if _, err := s.LoadMagics("bishop"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("NoFamily", func(t *testing.T) {
		if err := s.SaveMagics(&MagicSet{}); err == nil {
			t.Error("Expected an error for a set without a family")
		}
	})
}

func TestStorageOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	set := &MagicSet{Family: "bishop"}
	set.Numbers[27] = 0x0040081000200100
	if err := s.SaveMagics(set); err != nil {
		t.Fatalf("SaveMagics failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer s.Close()

	got, err := s.LoadMagics("bishop")
	if err != nil {
		t.Fatalf("LoadMagics failed: %v", err)
	}
	if got.Numbers[27] != 0x0040081000200100 {
		t.Errorf("Expected the d4 number to survive a reopen, got %#x", got.Numbers[27])
	}
}

func TestDataPaths(t *testing.T) {
	base := filepath.Join(t.TempDir(), "data")
	t.Setenv(DataDirEnv, base)

	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dataDir != base {
		t.Errorf("Expected %s, got %s", base, dataDir)
	}

	dbDir, err := DatabaseDir()
	if err != nil {
		t.Fatalf("DatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
	if filepath.Dir(dbDir) != base {
		t.Errorf("Expected database directory under %s, got %s", base, dbDir)
	}
}
