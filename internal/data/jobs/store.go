package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-timesheet/internal/core/color"
	"github.com/penwyp/go-timesheet/internal/core/model"
	"github.com/penwyp/go-timesheet/internal/util"
)

// DefaultJobNames seed the job list when none is stored
var DefaultJobNames = []string{"Job1", "Job2"}

// ColorSource supplies the default color of a job
type ColorSource interface {
	HexFor(name string) string
}

// Store reads and writes the job list file
type Store struct {
	path   string
	colors ColorSource
}

// NewStore creates a Store for path
func NewStore(path string, colors ColorSource) *Store {
	return &Store{path: path, colors: colors}
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Defaults returns the built-in two-job list
func (s *Store) Defaults() []model.Job {
	jobs := make([]model.Job, 0, len(DefaultJobNames))
	for _, name := range DefaultJobNames {
		jobs = append(jobs, model.Job{Name: name, Color: s.colors.HexFor(name)})
	}
	return jobs
}

// Load returns the stored jobs. Legacy bare-string entries are upgraded with their assigned
// color and malformed entries are dropped. A missing or invalid file, or nothing left after
// normalization, yields Defaults.
func (s *Store) Load() []model.Job {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			util.LogWarn("Failed to read job list, using defaults", util.F("path", s.path), util.F("error", err))
		}
		return s.Defaults()
	}

	var entries []model.JobEntry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		util.LogWarn("Job list is not valid JSON, using defaults", util.F("path", s.path), util.F("error", err))
		return s.Defaults()
	}

	jobs := make([]model.Job, 0, len(entries))
	for _, entry := range entries {
		if !entry.Valid {
			continue
		}
		job := entry.Job
		if entry.Legacy {
			job.Color = s.colors.HexFor(job.Name)
		}
		jobs = append(jobs, job)
	}

	if len(jobs) == 0 {
		return s.Defaults()
	}
	return jobs
}

// Save writes jobs, dropping entries with blank names. An empty result saves Defaults.
func (s *Store) Save(jobs []model.Job) error {
	cleaned := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		job.Name = strings.TrimSpace(job.Name)
		if job.Name == "" {
			continue
		}
		if job.Color == "" {
			job.Color = s.colors.HexFor(job.Name)
		}
		cleaned = append(cleaned, job)
	}
	if len(cleaned) == 0 {
		cleaned = s.Defaults()
	}

	data, err := sonic.MarshalIndent(cleaned, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal job list: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create job list directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write job list: %w", err)
	}

	util.LogDebug("Saved job list", util.F("path", s.path), util.F("jobs", len(cleaned)))
	return nil
}

// Add appends a job. An empty hex uses the assigned color.
func (s *Store) Add(name, hex string) ([]model.Job, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("job name must not be empty")
	}
	if err := validateHex(hex); err != nil {
		return nil, err
	}

	jobs := s.Load()
	if indexOf(jobs, name) >= 0 {
		return nil, fmt.Errorf("job %q already exists", name)
	}
	if hex == "" {
		hex = s.colors.HexFor(name)
	}
	jobs = append(jobs, model.Job{Name: name, Color: hex})
	return jobs, s.Save(jobs)
}

// Remove deletes the job called name
func (s *Store) Remove(name string) ([]model.Job, error) {
	jobs := s.Load()
	i := indexOf(jobs, name)
	if i < 0 {
		return nil, fmt.Errorf("job %q not found", name)
	}
	jobs = append(jobs[:i], jobs[i+1:]...)
	if err := s.Save(jobs); err != nil {
		return nil, err
	}
	return s.Load(), nil
}

// SetColor changes a job's color. An empty hex restores the assigned color.
func (s *Store) SetColor(name, hex string) ([]model.Job, error) {
	if err := validateHex(hex); err != nil {
		return nil, err
	}
	jobs := s.Load()
	i := indexOf(jobs, name)
	if i < 0 {
		return nil, fmt.Errorf("job %q not found", name)
	}
	if hex == "" {
		hex = s.colors.HexFor(name)
	}
	jobs[i].Color = hex
	return jobs, s.Save(jobs)
}

// Rename changes a job's name, keeping its color
func (s *Store) Rename(oldName, newName string) ([]model.Job, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("job name must not be empty")
	}
	jobs := s.Load()
	i := indexOf(jobs, oldName)
	if i < 0 {
		return nil, fmt.Errorf("job %q not found", oldName)
	}
	if newName != oldName && indexOf(jobs, newName) >= 0 {
		return nil, fmt.Errorf("job %q already exists", newName)
	}
	jobs[i].Name = newName
	return jobs, s.Save(jobs)
}

func validateHex(hex string) error {
	if hex == "" {
		return nil
	}
	_, err := color.ParseHex(hex)
	return err
}

func indexOf(jobs []model.Job, name string) int {
	for i, job := range jobs {
		if job.Name == name {
			return i
		}
	}
	return -1
}
