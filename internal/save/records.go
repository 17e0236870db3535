package save

import (
	"fmt"

	"GopherRunner/internal/logger"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const recordsObject = "records"

// RunRecord is the best result kept for a level
type RunRecord struct {
	Level        string  `yaml:"level"`
	Runs         int     `yaml:"runs"`
	BestTime     float32 `yaml:"best_time"`
	BestGates    int     `yaml:"best_gates"`
	TopSpeed     float32 `yaml:"top_speed"`
	LastDistance float32 `yaml:"last_distance"`
}

// RunResult is the outcome of a single finished run
type RunResult struct {
	Level    string
	Time     float32
	Distance float32
	Gates    int
	Speed    float32
	Finished bool
}

// RecordStore persists run records. A store without a data manager keeps
// nothing, so games still run where no user data directory exists.
type RecordStore struct {
	manager *gdata.Manager
}

// Open creates a store backed by the per-user data directory of appName
func Open(appName string) (*RecordStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &RecordStore{}, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return &RecordStore{manager: m}, nil
}

func NewRecordStore(m *gdata.Manager) *RecordStore {
	return &RecordStore{manager: m}
}

// Enabled reports whether records are actually persisted
func (s *RecordStore) Enabled() bool {
	return s != nil && s.manager != nil
}

// Load returns the stored record for a level, or an empty one
func (s *RecordStore) Load(level string) (RunRecord, error) {
	empty := RunRecord{Level: level}
	if !s.Enabled() || !s.manager.ObjectPropExists(recordsObject, level) {
		return empty, nil
	}
	data, err := s.manager.LoadObjectProp(recordsObject, level)
	if err != nil {
		return empty, fmt.Errorf("save: load %s: %w", level, err)
	}
	var rec RunRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return empty, fmt.Errorf("save: unmarshal %s: %w", level, err)
	}
	return rec, nil
}

func (s *RecordStore) Save(rec RunRecord) error {
	if !s.Enabled() {
		return nil
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("save: marshal %s: %w", rec.Level, err)
	}
	if err := s.manager.SaveObjectProp(recordsObject, rec.Level, data); err != nil {
		return fmt.Errorf("save: write %s: %w", rec.Level, err)
	}
	return nil
}

// Record folds a run into the level's record and stores it.
// It reports whether the run set a new best time.
func (s *RecordStore) Record(result RunResult) (RunRecord, bool, error) {
	rec, err := s.Load(result.Level)
	if err != nil {
		logger.Log.Warn("Discarding unreadable run record",
			zap.String("level", result.Level),
			zap.Error(err))
		rec = RunRecord{Level: result.Level}
	}

	improved := Merge(&rec, result)
	if err := s.Save(rec); err != nil {
		return rec, improved, err
	}
	return rec, improved, nil
}

// Merge updates rec with result and reports whether result is a new best time.
// Unfinished runs count but never set a best time.
func Merge(rec *RunRecord, result RunResult) bool {
	rec.Runs++
	rec.LastDistance = result.Distance
	if result.Gates > rec.BestGates {
		rec.BestGates = result.Gates
	}
	if result.Speed > rec.TopSpeed {
		rec.TopSpeed = result.Speed
	}
	if !result.Finished {
		return false
	}
	if rec.BestTime == 0 || result.Time < rec.BestTime {
		rec.BestTime = result.Time
		return true
	}
	return false
}
