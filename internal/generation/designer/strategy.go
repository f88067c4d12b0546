package designer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/idea-to-deploy/forge-backend/internal/generation/extract"
)

// Curated selects from fixed per-domain mockup lists, cycling when screens
// outnumber curated images.
type Curated struct{}

// imageParams keep sizing and cropping consistent across every mockup.
const imageParams = "?q=80&w=1200&auto=format&fit=crop"

var curatedMockups = map[string][]string{
	"ecommerce": {
		"https://images.unsplash.com/photo-1557821552-17105176677c",
		"https://images.unsplash.com/photo-1472851294608-062f824d29cc",
		"https://images.unsplash.com/photo-1523275335684-37898b6baf30",
		"https://images.unsplash.com/photo-1556742049-0cfed4f6a45d",
		"https://images.unsplash.com/photo-1517245386807-bb43f82c33c4",
	},
	"social-media": {
		"https://images.unsplash.com/photo-1611162617474-5b21e879e113",
		"https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0",
		"https://images.unsplash.com/photo-1611605851314-72663f9a11d4",
		"https://images.unsplash.com/photo-1611606063065-ee7946f0787a",
		"https://images.unsplash.com/photo-1611162618071-b39a2ec055fb",
	},
	"business-app": {
		"https://images.unsplash.com/photo-1551288049-bebda4e38f71",
		"https://images.unsplash.com/photo-1460925895917-afdab827c52f",
		"https://images.unsplash.com/photo-1542744094-24638eff586b",
		"https://images.unsplash.com/photo-1551434678-e076c223a692",
		"https://images.unsplash.com/photo-1531403009284-440f080d1e12",
	},
}

func (Curated) Image(category string, index int, screen extract.Screen, idea string) (string, string) {
	mockups, ok := curatedMockups[category]
	if !ok {
		mockups = curatedMockups[defaultImageCategory]
	}
	base := mockups[index%len(mockups)]
	return base + imageParams, "Professional UI Mockup: " + screen.Name
}

// Prompted builds a dynamic image-service URL from a URL-encoded
// descriptive prompt instead of selecting from a curated set.
type Prompted struct {
	BaseURL string
}

func (p Prompted) Image(category string, index int, screen extract.Screen, idea string) (string, string) {
	prompt := fmt.Sprintf("Clean modern %s UI mockup of a %s screen", category, screen.Name)
	if len(screen.Components) > 0 {
		prompt += " showing " + strings.Join(screen.Components, ", ")
	}
	if idea != "" {
		prompt += " for " + idea
	}

	base := strings.TrimRight(p.BaseURL, "/")
	return base + "/" + url.PathEscape(prompt) + "?width=1200&height=800", prompt
}
