// Package analyst turns a raw product idea into the eight planning
// documents. Generation either delegates to an external text-generation
// service or fills deterministic per-category templates; external failures
// always recover through the fallback and are never surfaced to callers.
package analyst

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idea-to-deploy/forge-backend/internal/generation/llm"
	"github.com/idea-to-deploy/forge-backend/internal/generation/prompts"
	"github.com/idea-to-deploy/forge-backend/internal/logger"
	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
)

var categoryPrompts = map[domain.Category]string{
	domain.CategoryRequirements:   prompts.Requirements,
	domain.CategoryPlanning:       prompts.Planning,
	domain.CategoryArchitecture:   prompts.Architecture,
	domain.CategoryIPMP:           prompts.IPMP,
	domain.CategoryScheduleCost:   prompts.ScheduleCost,
	domain.CategoryQualityRisk:    prompts.QualityRisk,
	domain.CategoryTestingRelease: prompts.TestingRelease,
	domain.CategoryUIUX:           prompts.UIUX,
}

type Analyst struct {
	client *llm.Client
	log    *logger.Logger
}

// New builds an Analyst. client may be nil or disabled; every document then
// comes from the fallback templates.
func New(client *llm.Client, log *logger.Logger) *Analyst {
	return &Analyst{
		client: client,
		log:    log.With("component", "analyst"),
	}
}

// AnalyzeIdea produces one document per category. The idea is first
// normalized into canonical JSON, which is threaded into every
// per-category prompt; the eight documents then generate concurrently,
// each writing to its own category slot.
func (a *Analyst) AnalyzeIdea(ctx context.Context, idea string) (map[domain.Category]string, error) {
	profile := Profile(idea)
	vars := map[string]string{
		"idea":               idea,
		"category":           profile.Category,
		"features":           strings.Join(profile.Features, ", "),
		"project_complexity": profile.Complexity,
	}

	vars["canonical_json"] = a.canonicalJSON(ctx, idea, profile, vars)

	results := make([]string, len(domain.Categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range domain.Categories {
		i, category := i, category
		g.Go(func() error {
			results[i] = a.generateOne(gctx, category, idea, profile, vars)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make(map[domain.Category]string, len(domain.Categories))
	for i, category := range domain.Categories {
		docs[category] = results[i]
	}
	return docs, nil
}

// GenerateUIUX regenerates only the UI/UX document. The design phase uses
// this when the stored doc is missing or predates the screen wire format.
func (a *Analyst) GenerateUIUX(ctx context.Context, idea string) string {
	profile := Profile(idea)
	vars := map[string]string{
		"idea":               idea,
		"category":           profile.Category,
		"features":           strings.Join(profile.Features, ", "),
		"project_complexity": profile.Complexity,
	}
	vars["canonical_json"] = a.canonicalJSON(ctx, idea, profile, vars)
	return a.generateOne(ctx, domain.CategoryUIUX, idea, profile, vars)
}

func (a *Analyst) canonicalJSON(ctx context.Context, idea string, profile IdeaProfile, vars map[string]string) string {
	if !a.client.Enabled() {
		return fallbackCanonical(idea, profile)
	}

	raw, err := a.client.Complete(ctx, prompts.Render(prompts.CanonicalJSON, vars))
	if err != nil {
		a.log.Warn("canonical generation failed, using fallback", "error", err)
		return fallbackCanonical(idea, profile)
	}

	cleaned := stripFences(raw)
	if !json.Valid([]byte(cleaned)) {
		// Tolerated: downstream prompts receive the raw text as-is.
		a.log.Warn("canonical output is not valid JSON, proceeding with raw text")
	}
	return cleaned
}

func (a *Analyst) generateOne(ctx context.Context, category domain.Category, idea string, profile IdeaProfile, vars map[string]string) string {
	if !a.client.Enabled() {
		return fallbackDoc(category, idea, profile)
	}

	content, err := a.client.Complete(ctx, prompts.Render(categoryPrompts[category], vars))
	if err != nil {
		a.log.Warn("generation failed, using fallback", "category", category, "error", err)
		return fallbackDoc(category, idea, profile)
	}
	return content
}

// stripFences removes a surrounding markdown code fence, with or without a
// json language tag.
func stripFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```json")
		out = strings.TrimPrefix(out, "```")
		if idx := strings.LastIndex(out, "```"); idx >= 0 {
			out = out[:idx]
		}
		out = strings.TrimSpace(out)
	}
	return out
}
