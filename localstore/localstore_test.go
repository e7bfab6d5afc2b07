package localstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/canhoto/carteira"
	"github.com/canhoto/carteira/date"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), "investment-data", zerolog.Nop())
}

func testSnapshot(t *testing.T) *carteira.Snapshot {
	t.Helper()
	tx := carteira.NewTransaction(date.MustParse("2025-01-10"), carteira.Buy, 100,
		decimal.RequireFromString("10.00"), decimal.Zero)
	s, err := carteira.NewSnapshot().AddAsset(carteira.NewAsset("XYZ1", carteira.Stock,
		decimal.RequireFromString("12.00"), tx))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoadAbsent(t *testing.T) {
	s := testStore(t)
	if _, err := s.Load(); !errors.Is(err, carteira.ErrNoSnapshot) {
		t.Errorf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	if err := s.Save(testSnapshot(t)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	a, ok := got.Asset("XYZ1")
	if !ok {
		t.Fatal("asset missing after load")
	}
	if a.Quantity != 100 || !a.CurrentValue.Equal(decimal.RequireFromString("1200")) {
		t.Errorf("loaded asset = %+v", a)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := testStore(t)
	if err := s.Save(testSnapshot(t)); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "investment-data.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected files: %v", names)
	}
}

func TestLoadCorruptBlob(t *testing.T) {
	s := testStore(t)
	if err := os.WriteFile(filepath.Join(s.dir, "investment-data.json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load()
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want a PersistenceError", err)
	}
	if perr.Op != "decode" {
		t.Errorf("Op = %q, want decode", perr.Op)
	}
}

func TestClearAbsentIsFine(t *testing.T) {
	s := testStore(t)
	if err := s.Clear(); err != nil {
		t.Errorf("clearing nothing: %v", err)
	}
}

func TestResetTwoStep(t *testing.T) {
	s := testStore(t)
	if err := s.Save(testSnapshot(t)); err != nil {
		t.Fatal(err)
	}

	done, err := s.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Fatal("first call must only arm")
	}
	if _, err := s.Load(); err != nil {
		t.Errorf("arming must not clear: %v", err)
	}

	done, err = s.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("second call within the window must clear")
	}
	if _, err := s.Load(); !errors.Is(err, carteira.ErrNoSnapshot) {
		t.Errorf("blob not cleared: %v", err)
	}
}

func TestResetWindowExpires(t *testing.T) {
	s := testStore(t)
	if err := s.Save(testSnapshot(t)); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	// pretend the confirmation comes too late
	s.now = func() time.Time { return time.Now().Add(ResetWindow + time.Second) }

	done, err := s.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Fatal("expired window must re-arm, not clear")
	}
	if _, err := s.Load(); err != nil {
		t.Errorf("blob cleared after expired window: %v", err)
	}
}
