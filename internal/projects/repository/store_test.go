package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewStore_CreatesLayout(t *testing.T) {
	dir := t.TempDir()
	_, err := NewStore(dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "projects.json"))
	assert.DirExists(t, filepath.Join(dir, "artifacts"))

	// reopening an existing data root must not wipe the index
	s, err := NewStore(dir)
	require.NoError(t, err)
	_, err = s.CreateProject(context.Background(), "p", "an idea")
	require.NoError(t, err)
	s2, err := NewStore(dir)
	require.NoError(t, err)
	projects, err := s2.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestCreateProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("initializes status and metrics", func(t *testing.T) {
		p, err := s.CreateProject(ctx, "Plant shop", "An online shop for plants")
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, domain.StatusNew, p.Status)
		assert.Equal(t, 0, p.Metrics.Progress)
		assert.Equal(t, "Initialization", p.Metrics.CurrentPhase)
		assert.False(t, p.CreatedAt.IsZero())
		assert.DirExists(t, filepath.Join(s.Dir(), "artifacts", p.ID))
	})

	t.Run("rejects empty idea", func(t *testing.T) {
		_, err := s.CreateProject(ctx, "", "   ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestGetProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, "n", "idea")
	require.NoError(t, err)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = s.GetProject(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProject(ctx, "n", "idea")
	require.NoError(t, err)

	t.Run("updates derived metrics", func(t *testing.T) {
		require.NoError(t, s.SetStatus(ctx, p.ID, domain.StatusPlanning))
		got, err := s.GetProject(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPlanning, got.Status)
		assert.Equal(t, 40, got.Metrics.Progress)
		assert.Equal(t, "Planning", got.Metrics.CurrentPhase)
	})

	t.Run("failed keeps prior progress", func(t *testing.T) {
		require.NoError(t, s.SetStatus(ctx, p.ID, domain.StatusFailed))
		got, err := s.GetProject(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusFailed, got.Status)
		assert.Equal(t, 40, got.Metrics.Progress)
		assert.Equal(t, "Failed", got.Metrics.CurrentPhase)
	})

	t.Run("unknown project", func(t *testing.T) {
		assert.ErrorIs(t, s.SetStatus(ctx, "missing", domain.StatusCoding), domain.ErrNotFound)
	})
}

func TestDeleteProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, "n", "idea")
	require.NoError(t, err)
	_, err = s.SaveDoc(ctx, p.ID, domain.CategoryRequirements, "t", "c")
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(ctx, p.ID))

	_, err = s.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, statErr := os.Stat(filepath.Join(s.Dir(), "artifacts", p.ID))
	assert.True(t, os.IsNotExist(statErr), "artifact dir must be removed")

	// no-op on repeat or unknown id
	assert.NoError(t, s.DeleteProject(ctx, p.ID))
	assert.NoError(t, s.DeleteProject(ctx, "missing"))
}

func TestDocs_SlotReplacement(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProject(ctx, "n", "idea")
	require.NoError(t, err)

	docs, err := s.GetDocs(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	first, err := s.SaveDoc(ctx, p.ID, domain.CategoryRequirements, "Requirement Document", "v1")
	require.NoError(t, err)
	assert.True(t, first.IsFinal)

	_, err = s.SaveDoc(ctx, p.ID, domain.CategoryPlanning, "Project Planning Document", "plan")
	require.NoError(t, err)

	// saving the same category again replaces the earlier doc
	second, err := s.SaveDoc(ctx, p.ID, domain.CategoryRequirements, "Requirement Document", "v2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	docs, err = s.GetDocs(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, d := range docs {
		if d.Category == domain.CategoryRequirements {
			assert.Equal(t, "v2", d.Content)
		}
	}
}

func TestVisuals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProject(ctx, "n", "idea")
	require.NoError(t, err)

	visuals, err := s.GetVisuals(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, visuals)

	set1 := []domain.UIAsset{{ID: "a", ProjectID: p.ID, ScreenName: "Dashboard"}}
	require.NoError(t, s.SaveVisuals(ctx, p.ID, set1))

	// second save replaces the whole set
	set2 := []domain.UIAsset{
		{ID: "b", ProjectID: p.ID, ScreenName: "Checkout"},
		{ID: "c", ProjectID: p.ID, ScreenName: "Settings"},
	}
	require.NoError(t, s.SaveVisuals(ctx, p.ID, set2))

	visuals, err = s.GetVisuals(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, visuals, 2)
	assert.Equal(t, "Checkout", visuals[0].ScreenName)
}

func TestBuildResult(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProject(ctx, "n", "idea")
	require.NoError(t, err)

	got, err := s.GetBuildResult(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	result := &domain.BuildResult{
		Status: "success",
		Files: []domain.BuildFile{
			{Path: "package.json", Content: "{}"},
			{Path: "apps/api/src/index.ts", Content: "code"},
		},
		Pipeline: []domain.PipelineStep{{Step: "Scaffolding Monorepo", Status: "done"}},
	}
	require.NoError(t, s.SaveBuildResult(ctx, p.ID, result))

	got, err = s.GetBuildResult(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "success", got.Status)
	assert.Len(t, got.Files, 2)
}

func TestUpdateBuildFile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, err := s.CreateProject(ctx, "n", "idea")
	require.NoError(t, err)

	t.Run("no build result yet", func(t *testing.T) {
		err := s.UpdateBuildFile(ctx, p.ID, "package.json", "x")
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	result := &domain.BuildResult{
		Status: "success",
		Files:  []domain.BuildFile{{Path: "package.json", Content: "{}"}},
	}
	require.NoError(t, s.SaveBuildResult(ctx, p.ID, result))

	t.Run("patches matching path", func(t *testing.T) {
		require.NoError(t, s.UpdateBuildFile(ctx, p.ID, "package.json", `{"name":"x"}`))
		got, err := s.GetBuildResult(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"x"}`, got.Files[0].Content)
	})

	t.Run("unknown path", func(t *testing.T) {
		err := s.UpdateBuildFile(ctx, p.ID, "nope.ts", "x")
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})
}

func TestArtifactIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p1, err := s.CreateProject(ctx, "a", "idea a")
	require.NoError(t, err)
	p2, err := s.CreateProject(ctx, "b", "idea b")
	require.NoError(t, err)

	ids, err := s.ArtifactIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{p1.ID, p2.ID}, ids)

	require.NoError(t, s.RemoveArtifacts(p1.ID))
	ids, err = s.ArtifactIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{p2.ID}, ids)
}
