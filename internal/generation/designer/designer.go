// Package designer maps extracted screens to mockup image references.
// Two interchangeable strategies exist: a curated per-domain image set and
// a dynamic image-service URL built from an encoded prompt.
package designer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/idea-to-deploy/forge-backend/internal/generation/extract"
	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
)

// Strategy produces an image URL and the prompt string recorded with it
// for the screen at the given extraction index.
type Strategy interface {
	Image(category string, index int, screen extract.Screen, idea string) (url, prompt string)
}

type Designer struct {
	strategy Strategy
}

func New(strategy Strategy) *Designer {
	return &Designer{strategy: strategy}
}

// imageCategories drive mockup selection. First matching rule wins;
// business-app is the default.
var imageCategoryRules = []struct {
	label    string
	keywords []string
}{
	{"ecommerce", []string{"ecommerce", "shop", "store"}},
	{"social-media", []string{"social", "chat", "connect"}},
	{"gaming", []string{"game", "play"}},
	{"healthcare", []string{"health", "fitness"}},
	{"finance", []string{"finance", "bank", "money"}},
}

const defaultImageCategory = "business-app"

// ImageCategory infers the mockup domain from the project description.
func ImageCategory(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range imageCategoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return defaultImageCategory
}

// GenerateVisuals builds one asset per screen in extraction order. A nil or
// empty screen list yields exactly one default Dashboard asset.
func (d *Designer) GenerateVisuals(projectID, description string, screens []extract.Screen) []domain.UIAsset {
	category := ImageCategory(description)

	if len(screens) == 0 {
		screens = []extract.Screen{{
			Name:         extract.DefaultScreenName,
			Purpose:      "Overview of system status",
			Roles:        []string{},
			Components:   []string{},
			Interactions: []string{},
			States:       []string{},
		}}
	}

	assets := make([]domain.UIAsset, 0, len(screens))
	for i, screen := range screens {
		url, prompt := d.strategy.Image(category, i, screen, description)

		desc := screen.Purpose
		if desc == "" {
			desc = "Interface for " + screen.Name
		}

		assets = append(assets, domain.UIAsset{
			ID:           uuid.New().String(),
			ProjectID:    projectID,
			ScreenName:   screen.Name,
			Description:  desc,
			ImageURL:     url,
			PromptUsed:   prompt,
			Purpose:      screen.Purpose,
			Roles:        screen.Roles,
			Components:   screen.Components,
			Interactions: screen.Interactions,
			States:       screen.States,
		})
	}
	return assets
}
