// Package janitor removes artifact directories left behind by interrupted
// deletes. The store deletes the index entry first, so a crash between the
// two writes can orphan a project's artifact directory.
package janitor

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/idea-to-deploy/forge-backend/internal/logger"
	"github.com/idea-to-deploy/forge-backend/internal/projects/repository"
)

type Janitor struct {
	store *repository.Store
	log   *logger.Logger
	cron  *cron.Cron
}

func New(store *repository.Store, log *logger.Logger) *Janitor {
	return &Janitor{
		store: store,
		log:   log,
		cron:  cron.New(cron.WithSeconds()),
	}
}

// Start schedules the sweep on the given cron spec and runs the scheduler
// in the background.
func (j *Janitor) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, func() {
		if err := j.Sweep(context.Background()); err != nil {
			j.log.Error("artifact sweep failed", "error", err)
		}
	}); err != nil {
		return err
	}
	j.cron.Start()
	j.log.Info("janitor started", "schedule", schedule)
	return nil
}

func (j *Janitor) Stop() {
	j.cron.Stop()
}

// Sweep deletes every artifact directory with no matching project in the
// index. Directories are listed before the index is read: a directory is
// only ever judged against a newer index, so a project created between the
// two reads is never mistaken for an orphan.
func (j *Janitor) Sweep(ctx context.Context) error {
	ids, err := j.store.ArtifactIDs()
	if err != nil {
		return err
	}

	projects, err := j.store.ListProjects(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(projects))
	for _, p := range projects {
		known[p.ID] = true
	}
	for _, id := range ids {
		if known[id] {
			continue
		}
		if err := j.store.RemoveArtifacts(id); err != nil {
			j.log.Warn("removing orphaned artifacts", "projectId", id, "error", err)
			continue
		}
		j.log.Info("removed orphaned artifacts", "projectId", id)
	}
	return nil
}
