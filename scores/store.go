package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/balance/constants"
)

// Record is one finished round
type Record struct {
	ID     uuid.UUID `msgpack:"id"`
	Score  int       `msgpack:"score"`
	Frames int64     `msgpack:"frames"`
	Time   time.Time `msgpack:"time"`
}

// Table is the persisted score history, newest round first
type Table struct {
	Best   int      `msgpack:"best"`
	Rounds []Record `msgpack:"rounds"`
}

// Store persists the score table as msgpack
type Store struct {
	mu   sync.Mutex
	path string
	keep int
}

// NewStore creates a store at path keeping at most keep rounds; keep <= 0 uses the default
func NewStore(path string, keep int) *Store {
	if path == "" {
		path = constants.DefaultScoresPath
	}
	if keep <= 0 {
		keep = constants.ScoresKeep
	}
	return &Store{path: path, keep: keep}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load reads the table. A missing file is an empty table
func (s *Store) Load() (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Table, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read scores: %w", err)
	}
	var t Table
	if err := msgpack.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("decode scores %s: %w", s.path, err)
	}
	return t, nil
}

// Record appends a round, trims history and writes the table. Returns the updated table
func (s *Store) Record(score int, frames int64, at time.Time) (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.load()
	if err != nil {
		return Table{}, err
	}

	rec := Record{ID: uuid.New(), Score: score, Frames: frames, Time: at.UTC()}
	t.Rounds = append([]Record{rec}, t.Rounds...)
	if len(t.Rounds) > s.keep {
		t.Rounds = t.Rounds[:s.keep]
	}
	t.Best = max(t.Best, score)

	if err := s.save(t); err != nil {
		return Table{}, err
	}
	return t, nil
}

// save writes through a temp file so a crash never leaves a half-written table
func (s *Store) save(t Table) error {
	data, err := msgpack.Marshal(&t)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create scores dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}
