package store

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rcliao/threadlink/internal/model"
	"github.com/rcliao/threadlink/internal/validate"
)

// Error kinds the CLI renders as plain messages rather than fatal failures.
var (
	ErrThreadExists    = errors.New("thread already exists")
	ErrThreadNotFound  = errors.New("thread not found")
	ErrFileNotLinked   = errors.New("file not linked")
	ErrNoThreadForFile = errors.New("no thread references file")
)

// CreateParams holds parameters for creating a thread.
type CreateParams struct {
	Tag     string // optional; a ULID is generated when empty
	Summary string
	ChatURL string
}

// Create registers a new thread. The ID is the validated tag when given,
// otherwise a generated ULID, and auto_generated records which it was.
func (s *Store) Create(p CreateParams) (string, *model.Thread, error) {
	var id string
	auto := p.Tag == ""
	if auto {
		id = s.newID()
	} else {
		var err error
		if id, err = validate.Tag(p.Tag); err != nil {
			return "", nil, err
		}
	}

	chatURL, err := validate.URL(p.ChatURL)
	if err != nil {
		return "", nil, err
	}

	reg, err := s.Load()
	if err != nil {
		return "", nil, err
	}
	if reg.Has(id) {
		return "", nil, fmt.Errorf("thread %q: %w", id, ErrThreadExists)
	}

	t := &model.Thread{
		Summary:       validate.SanitizeText(p.Summary, validate.MaxSummaryLen),
		LinkedFiles:   []string{},
		ChatURL:       chatURL,
		DateCreated:   time.Now(),
		AutoGenerated: auto,
	}
	reg.Put(id, t)
	if err := s.Save(reg); err != nil {
		return "", nil, err
	}
	return id, t, nil
}

// QuickCreateParams holds parameters for quick thread creation.
type QuickCreateParams struct {
	Summary string
	ChatURL string
}

// QuickCreate derives the ID from the summary slug plus today's date,
// suffixing _2, _3, ... until unique.
func (s *Store) QuickCreate(p QuickCreateParams) (string, *model.Thread, error) {
	summary := validate.SanitizeText(p.Summary, validate.MaxSummaryLen)
	if summary == "" {
		return "", nil, fmt.Errorf("%w: summary is empty", validate.ErrInvalid)
	}
	chatURL, err := validate.URL(p.ChatURL)
	if err != nil {
		return "", nil, err
	}

	reg, err := s.Load()
	if err != nil {
		return "", nil, err
	}

	slug := validate.Slugify(summary, validate.SlugMaxWords, validate.SlugMaxChars)
	base := slug + "_" + time.Now().Format("2006-01-02")
	id := base
	for i := 2; reg.Has(id); i++ {
		id = base + "_" + strconv.Itoa(i)
	}

	t := &model.Thread{
		Summary:       summary,
		LinkedFiles:   []string{},
		ChatURL:       chatURL,
		DateCreated:   time.Now(),
		AutoGenerated: true,
	}
	reg.Put(id, t)
	if err := s.Save(reg); err != nil {
		return "", nil, err
	}
	return id, t, nil
}

// AttachParams holds parameters for attaching a file to a thread.
type AttachParams struct {
	Tag  string
	File string
	// Confirm decides whether a path that does not exist on disk may still
	// be attached. Nil declines.
	Confirm func(path string) bool
}

// AttachResult reports what Attach did with the resolved path.
type AttachResult struct {
	ThreadID      string
	Path          string
	Warning       string
	AlreadyLinked bool
	Declined      bool
}

// Attach links a file to a thread. Idempotent: an already-linked path is a
// no-op reported in the result. Missing files go through Confirm first.
func (s *Store) Attach(p AttachParams) (*AttachResult, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}
	t, ok := reg.Get(p.Tag)
	if !ok {
		return nil, fmt.Errorf("thread %q: %w", p.Tag, ErrThreadNotFound)
	}

	path, warning, err := validate.FilePath(p.File)
	if err != nil {
		return nil, err
	}
	res := &AttachResult{ThreadID: p.Tag, Path: path, Warning: warning}

	// Already linked is a no-op, prompt or not.
	if t.HasFile(path) {
		res.AlreadyLinked = true
		return res, nil
	}

	if _, err := os.Stat(path); err != nil {
		if p.Confirm == nil || !p.Confirm(path) {
			res.Declined = true
			return res, nil
		}
	}

	t.LinkFile(path)
	if err := s.Save(reg); err != nil {
		return nil, err
	}
	return res, nil
}

// DetachParams holds parameters for detaching a file from a thread.
type DetachParams struct {
	Tag  string
	File string
}

// DetachResult reports the resolved path Detach removed.
type DetachResult struct {
	ThreadID string
	Path     string
	Warning  string
}

// Detach removes the resolved path from a thread's linked files.
func (s *Store) Detach(p DetachParams) (*DetachResult, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}
	t, ok := reg.Get(p.Tag)
	if !ok {
		return nil, fmt.Errorf("thread %q: %w", p.Tag, ErrThreadNotFound)
	}

	path, warning, err := validate.FilePath(p.File)
	if err != nil {
		return nil, err
	}
	if !t.UnlinkFile(path) {
		return nil, fmt.Errorf("file %q: %w", path, ErrFileNotLinked)
	}
	if err := s.Save(reg); err != nil {
		return nil, err
	}
	return &DetachResult{ThreadID: p.Tag, Path: path, Warning: warning}, nil
}

// Show returns the full record for a thread.
func (s *Store) Show(tag string) (*model.Thread, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}
	t, ok := reg.Get(tag)
	if !ok {
		return nil, fmt.Errorf("thread %q: %w", tag, ErrThreadNotFound)
	}
	return t, nil
}
