package resume

import (
	"log/slog"
	"os"
	"sync"

	"github.com/avoronov/go_skillmap/internal/roadmap"
)

// Log is the on-disk shape of the analysis history file.
type Log struct {
	Resumes []Analysis `json:"resumes"`
}

// Store persists analyses to a single JSON file, append-only. The mutex
// serializes concurrent uploads; the whole file is rewritten on each append,
// which is fine at the volumes a resume endpoint sees.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the full history. A missing file is an empty log, a corrupt
// file is logged and treated the same so one bad write cannot brick uploads.
func (s *Store) Load() *Log {
	var log Log
	if _, err := os.Stat(s.path); err != nil {
		return &Log{Resumes: []Analysis{}}
	}
	if err := roadmap.ReadJSON(s.path, &log); err != nil {
		slog.Warn("resume: existing analyses unreadable, starting fresh", slog.Any("error", err))
		return &Log{Resumes: []Analysis{}}
	}
	if log.Resumes == nil {
		log.Resumes = []Analysis{}
	}
	return &log
}

// Append adds one analysis to the history and writes it back.
func (s *Store) Append(a *Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.Load()
	log.Resumes = append(log.Resumes, *a)
	return roadmap.WriteJSON(s.path, log)
}
