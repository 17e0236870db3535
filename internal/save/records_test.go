package save

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func createTestManager(t *testing.T) *gdata.Manager {
	appName := fmt.Sprintf("gopher_runner_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return manager
}

func TestMergeBestTime(t *testing.T) {
	rec := RunRecord{Level: "demo"}

	if !Merge(&rec, RunResult{Level: "demo", Time: 12, Gates: 3, Speed: 14, Finished: true}) {
		t.Error("First finished run should be a new best")
	}
	if Merge(&rec, RunResult{Level: "demo", Time: 15, Gates: 5, Speed: 11, Finished: true}) {
		t.Error("Slower run should not be a new best")
	}
	if Merge(&rec, RunResult{Level: "demo", Time: 3, Distance: 40}) {
		t.Error("Unfinished run should never be a new best")
	}

	if rec.Runs != 3 {
		t.Errorf("Expected 3 runs, got %d", rec.Runs)
	}
	if rec.BestTime != 12 || rec.BestGates != 5 || rec.TopSpeed != 14 {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if rec.LastDistance != 40 {
		t.Errorf("Expected last distance 40, got %v", rec.LastDistance)
	}
}

func TestDisabledStoreIsNoop(t *testing.T) {
	store := NewRecordStore(nil)

	if store.Enabled() {
		t.Error("Store without manager should be disabled")
	}
	rec, improved, err := store.Record(RunResult{Level: "demo", Time: 10, Finished: true})
	if err != nil {
		t.Fatalf("Disabled store should not error, got %v", err)
	}
	if !improved || rec.Runs != 1 {
		t.Errorf("Record should still merge in memory, got %+v improved=%v", rec, improved)
	}

	loaded, err := store.Load("demo")
	if err != nil || loaded.Runs != 0 {
		t.Errorf("Disabled store should load empty records, got %+v, %v", loaded, err)
	}

	var nilStore *RecordStore
	if nilStore.Enabled() {
		t.Error("Nil store should be disabled")
	}
}

func TestRecordPersists(t *testing.T) {
	manager := createTestManager(t)
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	store := NewRecordStore(manager)

	if _, _, err := store.Record(RunResult{Level: "demo", Time: 20, Gates: 2, Finished: true}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, _, err := store.Record(RunResult{Level: "demo", Time: 18, Gates: 1, Finished: true}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	rec, err := store.Load("demo")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rec.Runs != 2 || rec.BestTime != 18 || rec.BestGates != 2 {
		t.Errorf("Unexpected persisted record: %+v", rec)
	}
}
