package service

import (
	"context"
	"strings"

	"github.com/idea-to-deploy/forge-backend/internal/generation/analyst"
	"github.com/idea-to-deploy/forge-backend/internal/generation/builder"
	"github.com/idea-to-deploy/forge-backend/internal/generation/designer"
	"github.com/idea-to-deploy/forge-backend/internal/generation/extract"
	"github.com/idea-to-deploy/forge-backend/internal/logger"
	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
	"github.com/idea-to-deploy/forge-backend/internal/projects/repository"
)

// name is capped so list views stay readable; the full idea lives in the
// description.
const maxNameLen = 50

// ProjectService drives a project through the analysis, design and build
// phases, persisting every artifact as it goes.
type ProjectService struct {
	store    *repository.Store
	analyst  *analyst.Analyst
	designer *designer.Designer
	log      *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(store *repository.Store, an *analyst.Analyst, ds *designer.Designer, log *logger.Logger) *ProjectService {
	return &ProjectService{
		store:    store,
		analyst:  an,
		designer: ds,
		log:      log,
	}
}

// Create registers a new project for an idea. The project name is the idea
// itself, truncated for display. The cut counts runes, not bytes, so
// multi-byte ideas never produce an invalid UTF-8 name.
func (s *ProjectService) Create(ctx context.Context, idea string) (*domain.Project, error) {
	name := idea
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen]) + "..."
	}
	return s.store.CreateProject(ctx, name, idea)
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListProjects(ctx)
}

// Get returns a single project by ID
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

// Delete removes a project and all of its artifacts
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteProject(ctx, id)
}

// RunAnalysis generates the eight planning documents for a project and
// moves it to PLANNING. Each run replaces the previous document set.
func (s *ProjectService) RunAnalysis(ctx context.Context, id string) error {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAdvance(project.Status, domain.PhaseAnalysis) {
		return domain.ErrInvalidTransition
	}
	if err := s.store.SetStatus(ctx, id, domain.StatusAnalysis); err != nil {
		return err
	}

	docs, err := s.analyst.AnalyzeIdea(ctx, project.Description)
	if err != nil {
		return s.fail(ctx, id, err)
	}
	for _, category := range domain.Categories {
		if _, err := s.store.SaveDoc(ctx, id, category, domain.CategoryTitles[category], docs[category]); err != nil {
			return s.fail(ctx, id, err)
		}
	}

	return s.store.SetStatus(ctx, id, domain.StatusPlanning)
}

// RunDesign derives screens from the UI/UX document and generates one
// mockup per screen. Documents written before the parseable screen format
// existed are regenerated first.
func (s *ProjectService) RunDesign(ctx context.Context, id string) error {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAdvance(project.Status, domain.PhaseDesign) {
		return domain.ErrInvalidTransition
	}
	if err := s.store.SetStatus(ctx, id, domain.StatusDesign); err != nil {
		return err
	}

	uiux, err := s.uiuxDoc(ctx, id, project.Description)
	if err != nil {
		return s.fail(ctx, id, err)
	}

	screens := extract.Screens(uiux)
	visuals := s.designer.GenerateVisuals(id, project.Description, screens)
	if err := s.store.SaveVisuals(ctx, id, visuals); err != nil {
		return s.fail(ctx, id, err)
	}

	return s.store.SetStatus(ctx, id, domain.StatusDesigned)
}

// RunBuild scaffolds the codebase from the stored documents and moves the
// project to COMPLETED. It may be re-run from any status; each run replaces
// the previous build result.
func (s *ProjectService) RunBuild(ctx context.Context, id string) error {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAdvance(project.Status, domain.PhaseBuild) {
		return domain.ErrInvalidTransition
	}
	if err := s.store.SetStatus(ctx, id, domain.StatusCoding); err != nil {
		return err
	}

	result, err := s.buildFromDocs(ctx, project)
	if err != nil {
		return s.fail(ctx, id, err)
	}
	if err := s.store.SaveBuildResult(ctx, id, result); err != nil {
		return s.fail(ctx, id, err)
	}

	return s.store.SetStatus(ctx, id, domain.StatusCompleted)
}

// Docs returns the generated documents for a project.
func (s *ProjectService) Docs(ctx context.Context, id string) ([]domain.GeneratedDoc, error) {
	if _, err := s.store.GetProject(ctx, id); err != nil {
		return nil, err
	}
	return s.store.GetDocs(ctx, id)
}

// Visuals returns the generated mockups for a project.
func (s *ProjectService) Visuals(ctx context.Context, id string) ([]domain.UIAsset, error) {
	if _, err := s.store.GetProject(ctx, id); err != nil {
		return nil, err
	}
	return s.store.GetVisuals(ctx, id)
}

// Build returns the stored build result, or nil when the project has not
// been built. A COMPLETED project with no stored result is rebuilt on the
// spot so the read never comes back empty for a finished project.
func (s *ProjectService) Build(ctx context.Context, id string) (*domain.BuildResult, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	result, err := s.store.GetBuildResult(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil && project.Status == domain.StatusCompleted {
		s.log.Info("backfilling missing build result", "projectId", id)
		result, err = s.buildFromDocs(ctx, project)
		if err != nil {
			return nil, err
		}
		if err := s.store.SaveBuildResult(ctx, id, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UpdateBuildFile patches the content of one scaffolded file.
func (s *ProjectService) UpdateBuildFile(ctx context.Context, id, path, content string) error {
	if _, err := s.store.GetProject(ctx, id); err != nil {
		return err
	}
	return s.store.UpdateBuildFile(ctx, id, path, content)
}

// uiuxDoc returns the UI/UX document, regenerating it when it is missing
// or lacks screen headings the extractor can parse.
func (s *ProjectService) uiuxDoc(ctx context.Context, id, idea string) (string, error) {
	docs, err := s.store.GetDocs(ctx, id)
	if err != nil {
		return "", err
	}
	content := docByCategory(docs, domain.CategoryUIUX)
	if strings.Contains(content, "### ") {
		return content, nil
	}

	s.log.Info("regenerating ui/ux document", "projectId", id)
	content = s.analyst.GenerateUIUX(ctx, idea)
	if _, err := s.store.SaveDoc(ctx, id, domain.CategoryUIUX, domain.CategoryTitles[domain.CategoryUIUX], content); err != nil {
		return "", err
	}
	return content, nil
}

func (s *ProjectService) buildFromDocs(ctx context.Context, project *domain.Project) (*domain.BuildResult, error) {
	docs, err := s.store.GetDocs(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	features := extract.Features(docByCategory(docs, domain.CategoryRequirements))
	screens := extract.Screens(docByCategory(docs, domain.CategoryUIUX))
	return builder.Build(project.ID, project.Description, features, screens), nil
}

// fail marks the project FAILED and passes the original error through.
func (s *ProjectService) fail(ctx context.Context, id string, cause error) error {
	if err := s.store.SetStatus(ctx, id, domain.StatusFailed); err != nil {
		s.log.Error("marking project failed", "projectId", id, "error", err)
	}
	return cause
}

func docByCategory(docs []domain.GeneratedDoc, category domain.Category) string {
	for _, doc := range docs {
		if doc.Category == category {
			return doc.Content
		}
	}
	return ""
}
