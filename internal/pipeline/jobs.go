package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// JobStatus represents the state of a batch conversion job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusConverting JobStatus = "converting"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
	StatusPartial    JobStatus = "partial"
)

// Input is one document queued for conversion.
type Input struct {
	Filename string
	Data     []byte
}

// FileResult is the outcome for one converted document.
type FileResult struct {
	Filename string `json:"filename"`
	LaTeX    string `json:"latex,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Job tracks the state of one batch conversion.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	inputs  []Input
	results []FileResult
	errors  []string
}

// Progress tracks conversion progress.
type Progress struct {
	TotalFiles     int      `json:"total_files"`
	FilesConverted int      `json:"files_converted"`
	Errors         []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// AddResult records the outcome for one file, advancing the converted count
// when the file succeeded.
func (j *Job) AddResult(res FileResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.results = append(j.results, res)
	if res.Error == "" {
		j.Progress.FilesConverted++
	}
	j.UpdatedAt = time.Now()
}

// SetInputs stores the documents to convert.
func (j *Job) SetInputs(inputs []Input) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inputs = inputs
	j.Progress.TotalFiles = len(inputs)
}

// Inputs returns the queued documents.
func (j *Job) Inputs() []Input {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inputs
}

// Results returns a copy of the per-file outcomes so far.
func (j *Job) Results() []FileResult {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]FileResult, len(j.results))
	copy(out, j.results)
	return out
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:     j.ID,
		Status: j.Status,
		Phase:  j.Phase,
		Progress: Progress{
			TotalFiles:     j.Progress.TotalFiles,
			FilesConverted: j.Progress.FilesConverted,
			Errors:         errs,
		},
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
