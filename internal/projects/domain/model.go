package domain

import "time"

// Project is the top-level record for one idea-to-deploy pipeline run.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	Status      Status         `json:"status"`
	Metrics     ProjectMetrics `json:"metrics"`
}

type ProjectMetrics struct {
	Progress     int       `json:"progress"` // 0-100
	CurrentPhase string    `json:"currentPhase"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// Status values for the project lifecycle.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusAnalysis  Status = "ANALYSIS"
	StatusPlanning  Status = "PLANNING"
	StatusDesign    Status = "DESIGN"
	StatusDesigned  Status = "DESIGNED"
	StatusCoding    Status = "CODING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Category tags the eight generated documents.
type Category string

const (
	CategoryRequirements   Category = "REQUIREMENTS"
	CategoryPlanning       Category = "PLANNING"
	CategoryArchitecture   Category = "ARCHITECTURE"
	CategoryIPMP           Category = "IPMP"
	CategoryScheduleCost   Category = "SCHEDULE_COST"
	CategoryQualityRisk    Category = "QUALITY_RISK"
	CategoryTestingRelease Category = "TESTING_RELEASE"
	CategoryUIUX           Category = "UI_UX"
)

// Categories lists every document category in generation order.
var Categories = []Category{
	CategoryRequirements,
	CategoryPlanning,
	CategoryArchitecture,
	CategoryIPMP,
	CategoryScheduleCost,
	CategoryQualityRisk,
	CategoryTestingRelease,
	CategoryUIUX,
}

// CategoryTitles maps each category to its stored document title.
var CategoryTitles = map[Category]string{
	CategoryRequirements:   "Requirement Document",
	CategoryPlanning:       "Project Planning Document",
	CategoryArchitecture:   "Technical Architecture & Delivery Plan",
	CategoryIPMP:           "Integrated Project Management Plan (IPMP)",
	CategoryScheduleCost:   "Schedule & Cost Plan",
	CategoryQualityRisk:    "Quality, Risk & Procurement Plan",
	CategoryTestingRelease: "Testing & Release Plan",
	CategoryUIUX:           "UI/UX Design Specification",
}

// GeneratedDoc is one generated planning document. A project holds at most
// one doc per category; saving a category again replaces the prior doc.
type GeneratedDoc struct {
	ID        string   `json:"id"`
	ProjectID string   `json:"projectId"`
	Category  Category `json:"category"`
	Title     string   `json:"title"`
	Content   string   `json:"content"` // Markdown
	IsFinal   bool     `json:"isFinal"`
}

// UIAsset is one mockup image reference plus the screen metadata it was
// derived from. The full set for a project is replaced on every design run.
type UIAsset struct {
	ID           string   `json:"id"`
	ProjectID    string   `json:"projectId"`
	ScreenName   string   `json:"screenName"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	PromptUsed   string   `json:"promptUsed"`
	Purpose      string   `json:"purpose,omitempty"`
	Roles        []string `json:"roles,omitempty"`
	Components   []string `json:"components,omitempty"`
	Interactions []string `json:"interactions,omitempty"`
	States       []string `json:"states,omitempty"`
}

// BuildResult is the scaffolded codebase for a project. Paths are
// forward-slash relative; duplicates are not rejected, so consumers must
// tolerate them.
type BuildResult struct {
	Status   string         `json:"status"`
	Files    []BuildFile    `json:"files"`
	Pipeline []PipelineStep `json:"pipeline"`
}

type BuildFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type PipelineStep struct {
	Step   string `json:"step"`
	Status string `json:"status"`
}
