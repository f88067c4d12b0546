package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
)

const (
	indexFile    = "projects.json"
	artifactsDir = "artifacts"
	docsFile     = "docs.json"
	visualsFile  = "visuals.json"
	buildFile    = "build.json"
)

// Store persists projects and their artifacts as JSON files under a data
// root: an index file holding every Project record, plus one directory per
// project for docs, visuals and the build result.
//
// Every operation takes the store lock and performs a full
// read-modify-write of the file it touches. Two concurrent requests against
// the same project still race at the phase level (last full cycle wins);
// the lock only prevents torn files, not lost updates.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates the data root and index file if they do not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, artifactsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{dir: dir}
	idx := filepath.Join(dir, indexFile)
	if _, err := os.Stat(idx); errors.Is(err, os.ErrNotExist) {
		if err := writeJSON(idx, []domain.Project{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat index: %w", err)
	}
	return s, nil
}

// Dir returns the data root the store was opened on.
func (s *Store) Dir() string { return s.dir }

// CreateProject appends a new NEW-status project to the index and creates
// its artifact directory.
func (s *Store) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: idea text required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	progress, phase := domain.PhaseProgress(domain.StatusNew)
	p := domain.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		Status:      domain.StatusNew,
		Metrics: domain.ProjectMetrics{
			Progress:     progress,
			CurrentPhase: phase,
			LastUpdated:  now,
		},
	}

	projects = append(projects, p)
	if err := s.writeIndex(projects); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.projectDir(p.ID), 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &p, nil
}

// ListProjects returns every project in creation order.
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readIndex()
}

// GetProject returns the project with the given id.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// SetStatus updates a project's status and derived progress metrics.
// A FAILED status keeps the prior progress value.
func (s *Store) SetStatus(ctx context.Context, id string, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.readIndex()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		projects[i].Status = status
		progress, phase := domain.PhaseProgress(status)
		if progress >= 0 {
			projects[i].Metrics.Progress = progress
		}
		projects[i].Metrics.CurrentPhase = phase
		projects[i].Metrics.LastUpdated = time.Now().UTC()
		return s.writeIndex(projects)
	}
	return domain.ErrNotFound
}

// DeleteProject removes the project record and its artifact directory.
// Deleting an unknown id is a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.readIndex()
	if err != nil {
		return err
	}
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.writeIndex(kept); err != nil {
		return err
	}
	if err := os.RemoveAll(s.projectDir(id)); err != nil {
		return fmt.Errorf("remove artifact dir: %w", err)
	}
	return nil
}

// GetDocs returns the stored docs for a project, empty when none exist.
func (s *Store) GetDocs(ctx context.Context, projectID string) ([]domain.GeneratedDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []domain.GeneratedDoc
	ok, err := readJSON(s.artifactPath(projectID, docsFile), &docs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.GeneratedDoc{}, nil
	}
	return docs, nil
}

// SaveDoc stores a doc for a category, replacing any prior doc of the same
// category and leaving other categories untouched.
func (s *Store) SaveDoc(ctx context.Context, projectID string, category domain.Category, title, content string) (*domain.GeneratedDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []domain.GeneratedDoc
	if _, err := readJSON(s.artifactPath(projectID, docsFile), &docs); err != nil {
		return nil, err
	}

	doc := domain.GeneratedDoc{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Category:  category,
		Title:     title,
		Content:   content,
		IsFinal:   true,
	}

	kept := docs[:0]
	for _, d := range docs {
		if d.Category != category {
			kept = append(kept, d)
		}
	}
	kept = append(kept, doc)

	if err := s.ensureProjectDir(projectID); err != nil {
		return nil, err
	}
	if err := writeJSON(s.artifactPath(projectID, docsFile), kept); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetVisuals returns the stored visual assets, empty when none exist.
func (s *Store) GetVisuals(ctx context.Context, projectID string) ([]domain.UIAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var visuals []domain.UIAsset
	ok, err := readJSON(s.artifactPath(projectID, visualsFile), &visuals)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.UIAsset{}, nil
	}
	return visuals, nil
}

// SaveVisuals replaces the full visual-asset set for a project.
func (s *Store) SaveVisuals(ctx context.Context, projectID string, visuals []domain.UIAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureProjectDir(projectID); err != nil {
		return err
	}
	return writeJSON(s.artifactPath(projectID, visualsFile), visuals)
}

// GetBuildResult returns the stored build result, or nil when none exists.
func (s *Store) GetBuildResult(ctx context.Context, projectID string) (*domain.BuildResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.BuildResult
	ok, err := readJSON(s.artifactPath(projectID, buildFile), &result)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &result, nil
}

// SaveBuildResult replaces the build result wholesale.
func (s *Store) SaveBuildResult(ctx context.Context, projectID string, result *domain.BuildResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureProjectDir(projectID); err != nil {
		return err
	}
	return writeJSON(s.artifactPath(projectID, buildFile), result)
}

// UpdateBuildFile rewrites the content of the first stored file matching
// path. It fails when no build result exists or the path is unknown.
func (s *Store) UpdateBuildFile(ctx context.Context, projectID, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.BuildResult
	ok, err := readJSON(s.artifactPath(projectID, buildFile), &result)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrFileNotFound
	}

	for i := range result.Files {
		if result.Files[i].Path == path {
			result.Files[i].Content = content
			return writeJSON(s.artifactPath(projectID, buildFile), &result)
		}
	}
	return domain.ErrFileNotFound
}

// ArtifactIDs lists the project ids that currently have artifact
// directories on disk, whether or not they are still in the index.
func (s *Store) ArtifactIDs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, artifactsDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read artifacts dir: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

// RemoveArtifacts deletes a project's artifact directory without touching
// the index. Used by the janitor to reap orphans.
func (s *Store) RemoveArtifacts(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.RemoveAll(s.projectDir(id))
}

func (s *Store) projectDir(id string) string {
	return filepath.Join(s.dir, artifactsDir, id)
}

func (s *Store) artifactPath(id, name string) string {
	return filepath.Join(s.projectDir(id), name)
}

func (s *Store) ensureProjectDir(id string) error {
	if err := os.MkdirAll(s.projectDir(id), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	return nil
}

func (s *Store) readIndex() ([]domain.Project, error) {
	var projects []domain.Project
	ok, err := readJSON(filepath.Join(s.dir, indexFile), &projects)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *Store) writeIndex(projects []domain.Project) error {
	return writeJSON(filepath.Join(s.dir, indexFile), projects)
}

// readJSON reports false without error when the file does not exist.
func readJSON(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// writeJSON writes via a temp file and rename so readers never observe a
// torn file.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
