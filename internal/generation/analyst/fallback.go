package analyst

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/idea-to-deploy/forge-backend/internal/projects/domain"
)

// fallbackDoc synthesizes a document for one category from a fixed markdown
// skeleton. It is a pure function of (category, idea, profile): the same
// inputs always produce byte-identical output, and it never returns an
// empty document.
func fallbackDoc(category domain.Category, idea string, p IdeaProfile) string {
	features := p.Features
	if len(features) == 0 {
		features = []string{"Core system functionality"}
	}

	switch category {
	case domain.CategoryRequirements:
		return requirementsDoc(idea, p, features)
	case domain.CategoryPlanning:
		return planningDoc(idea, p, features)
	case domain.CategoryArchitecture:
		return architectureDoc(idea, p, features)
	case domain.CategoryIPMP:
		return ipmpDoc(idea, p, features)
	case domain.CategoryScheduleCost:
		return scheduleCostDoc(idea, p, features)
	case domain.CategoryQualityRisk:
		return qualityRiskDoc(idea, p, features)
	case domain.CategoryTestingRelease:
		return testingReleaseDoc(idea, p, features)
	case domain.CategoryUIUX:
		return uiuxDoc(idea)
	default:
		return fmt.Sprintf(`# %s Document for %s

This document contains the professional-grade %s specifications for your **%s** project. It is designed to be actionable, measurable, and auditable.

**Details:**
- Complexity: %s
- Feature Set: %s
- Compliance: PMBOK / PMP Standards
`, category, idea, category, p.Category, p.Complexity, strings.Join(features, ", "))
	}
}

func requirementsDoc(idea string, p IdeaProfile, features []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `# 1. Document Control & Versioning
Author: Idea-to-Deploy Platform
Version: 1.0.0 (Baseline)

# 2. Project Background & Objectives
This project, **%[1]s**, is designed to deliver a high-quality solution in the **%[2]s** domain. The primary objective is to streamline operations and provide value through specialized features.

# 3. Stakeholder Identification
- Project Sponsor: Business Stakeholder
- Technical Lead: AI Architect
- End Users: Users interacting with %[2]s services.

# 4. Assumptions & Constraints
- Assumption: Scalable cloud infrastructure is available for deployment.
- Constraint: Delivery within a 12-week timeframe as per standard PMP guidelines.

# 5. In-Scope / Out-of-Scope
- In-Scope: Implementation of %[3]s and core %[2]s logic.
- Out-of-Scope: Physical hardware procurement and third-party legacy data cleaning.

# 6. Functional Requirements
`, idea, p.Category, strings.Join(firstN(features, 3), ", "))

	for _, f := range features {
		fmt.Fprintf(&b, "- **%s**: The system shall provide robust %s capabilities to support the core functionality of %s.\n", f, f, idea)
	}

	fmt.Fprintf(&b, `
# 7. Non-Functional Requirements
- NFR-001 (Performance): The %[1]s system must load within 2 seconds.
- NFR-002 (Security): All data for %[2]s must be encrypted at rest and in transit.

# 8. User Roles & Permissions
- Admin: Full access to manage the %[1]s platform.
- Standard User: Access to core %[2]s features.

# 9. Business Rules
Data integrity must be maintained across all **%[2]s** transactions.

# 10. Use Cases / User Stories
- US-001: As a user, I want to use %[3]s so that I can achieve my task in %[1]s.

# 11. UI/UX & Screen References
The interface will follow modern design principles tailored for the **%[2]s** industry.

# 12. Data Requirements
Relational database storage optimized for **%[2]s** data entities.

# 13. Regulatory & Compliance Requirements
Compliance with industry standards relevant to **%[2]s** and GDPR.

# 14. Requirement Traceability Matrix (RTM)
Linking all %[4]d functional requirements to business objectives.
`, idea, p.Category, features[0], len(features))
	return b.String()
}

func planningDoc(idea string, p IdeaProfile, features []string) string {
	half := (len(features) + 1) / 2
	return fmt.Sprintf(`# 1. Project Overview
Project **%[1]s** is a %[3]s complexity project in the **%[2]s** sector.

# 2. Project Governance Structure
Strict PMP-based governance with a Project Manager overseeing the implementation of %[1]s.

# 3. Project Organization & Roles
- Project Manager: Managing the 12-week schedule.
- Developers: Implementing %[4]s.

# 4. Project Methodology (Agile)
Agile Scrum methodology with 2-week sprints to iterate on **%[1]s** features.

# 5. Work Breakdown Structure (WBS)
- Phase 1: Initial Analysis & %[2]s Domain Research
- Phase 2: Development of %[5]s
- Phase 3: Integration of remaining features
- Phase 4: Final Testing & Deployment of %[1]s

# 6. Deliverables & Milestones
- MS-1: Requirement Sign-off (Week 2)
- MS-2: %[2]s MVP Completion (Week 8)
- MS-3: Final Handover of **%[1]s** (Week 12)

# 7. Resource Planning
Engineers specializing in **%[2]s** technology stack and cloud architects.

# 8. Communication Management Plan
Bi-weekly status meetings regarding **%[1]s** progress.

# 9. Change Management Plan
Standard change request process for any scope adjustments in the **%[1]s** roadmap.

# 10. Dependency Management
Depends on the completion of the core **%[2]s** engine.

# 11. Assumptions & Constraints
Assumes availability of %[2]s domain experts for validation.
`, idea, p.Category, p.Complexity, strings.Join(features, ", "), strings.Join(firstN(features, half), ", "))
}

func architectureDoc(idea string, p IdeaProfile, features []string) string {
	stack := "Next.js, Node.js, PostgreSQL, TailwindCSS"
	if p.Category == "E-commerce" || p.Category == "SaaS / Subscription" {
		stack = "Next.js, Node.js, PostgreSQL, Stripe Integration"
	}
	return fmt.Sprintf(`# 1. Architecture Overview
Technical architecture design for **%[1]s**, optimized for the **%[2]s** domain.

# 2. System Context Diagram
Shows how %[1]s interacts with users and external %[2]s APIs.

# 3. Logical Architecture
Breakdown of the system into frontend, backend, and %[2]s-specific services.

# 4. Physical Architecture
Hosted on scalable cloud infrastructure to support the %[3]s nature of **%[1]s**.

# 5. Technology Stack
Utilizing: %[4]s.

# 6. Application Architecture
Modular design pattern to separate %[5]s from core platform logic.

# 7. Database & Data Flow Design
Schema design for **%[1]s** entities including users and %[2]s specific data.

# 8. API & Integration Strategy
Secure RESTful endpoints for %[1]s communication.

# 9. Security Architecture
JWT-based authentication and role-based access for %[1]s users.

# 10. Scalability & Performance Design
Load balancing to handle %[2]s traffic spikes.

# 11. Deployment Architecture
Automated CI/CD pipeline for rapid %[1]s iterations.

# 12. Technical Risks & Mitigations
Risk: Integration delay with %[2]s third-party tools.
Mitigation: Early prototyping of external interfaces.
`, idea, p.Category, p.Complexity, stack, strings.Join(firstN(features, 3), ", "))
}

func ipmpDoc(idea string, p IdeaProfile, features []string) string {
	return fmt.Sprintf(`# 1. IPMP Purpose & Scope
This Integrated Project Management Plan defines the execution strategy for **%[1]s**.

# 2. Project Objectives & Success Criteria
- Objective: Successful deployment of %[1]s with %[3]d core features.
- Success Criteria: User acceptance of the %[2]s workflow.

# 3. Integrated Baselines (Scope, Schedule, Cost)
A unified baseline for **%[1]s** ensures alignment between scope and the 12-week schedule.

# 4. Governance & Decision Framework
Escalation matrix focused on %[2]s industry standards.

# 5. Integrated Change Control
Ensures that adding new features to **%[1]s** is evaluated for impact on the %[2]s delivery.

# 6. Risk, Quality & Procurement Integration
Integrated management of all %[1]s project facets.

# 7. Stakeholder Engagement Strategy
Regular demos of **%[2]s** components.

# 8. Performance Measurement (KPIs, EV, Metrics)
Tracking velocity of the development of %[4]s and other modules.

# 9. Reporting & Review Cadence
Phased reviews at each milestone of **%[1]s**.

# 10. Escalation & Issue Resolution
Defined path for resolving technical blockers in the **%[1]s** stack.

# 11. Compliance & Audit Strategy
Adherence to %[2]s compliance standards.
`, idea, p.Category, len(features), features[0])
}

func scheduleCostDoc(idea string, p IdeaProfile, features []string) string {
	return fmt.Sprintf(`# 1. Schedule Management Approach
Methodology for managing the timeline of **%[1]s**.

# 2. Project Timeline & Milestones
High-level roadmap for %[1]s: 12 weeks total.

# 3. Task Dependencies
Core %[2]s engine must be completed before UI integration.

# 4. Resource Allocation
Staffing plan including %[2]s specialists.

# 5. Critical Path Analysis
The development of %[4]s is on the critical path for **%[1]s**.

# 6. Cost Estimation Methodology
Bottom-up estimation based on the %[3]s nature of **%[1]s**.

# 7. Budget Breakdown (CAPEX / OPEX)
Infrastructure costs for hosting **%[1]s** and development labor.

# 8. Cost Baseline
Approved budget for the delivery of %[1]s.

# 9. Cost Control & Tracking
Monthly tracking of expenses against the **%[2]s** project budget.

# 10. Earned Value Management (EVM)
Measuring performance against the planned schedule for **%[1]s**.

# 11. Schedule & Cost Risks
Risk: Scope creep in **%[2]s** features affecting the %[1]s budget.
`, idea, p.Category, p.Complexity, features[0])
}

func qualityRiskDoc(idea string, p IdeaProfile, features []string) string {
	return fmt.Sprintf(`# 1. Quality Management
Quality philosophy for the **%[1]s** project.

# 2. Quality Objectives
Ensuring a bug-free experience for %[2]s users.

# 3. Quality Standards & Metrics
Code coverage and performance targets for **%[1]s**.

# 4. Quality Assurance Process
Defect prevention during the development of %[3]s.

# 5. Quality Control Activities
Continuous integration and manual testing of **%[1]s**.

# 6. Risk Management
Identifying risks specific to the **%[2]s** domain.

# 7. Risk Identification
- RISK-001: Data privacy issues in %[1]s.
- RISK-002: Scaling challenges for the %[2]s platform.

# 8. Risk Register
Comprehensive log of all identified risks for **%[1]s**.

# 9. Risk Analysis & Prioritization
Focusing on high-impact risks to the %[1]s launch.

# 10. Risk Response Strategies
Mitigation plans for technical hurdles in **%[1]s**.

# 11. Procurement Management
Sourcing strategy for **%[1]s** external dependencies.

# 12. Procurement Strategy
Utilizing open-source libraries and cloud services for the **%[1]s** tech stack.

# 13. Vendor Selection Criteria
Standards for third-party %[2]s service providers.

# 14. Contract Types
Standardized agreements for the **%[1]s** vendors.

# 15. SLA & Performance Monitoring
Uptime requirements for the %[1]s production environment.
`, idea, p.Category, strings.Join(firstN(features, 2), " and "))
}

func testingReleaseDoc(idea string, p IdeaProfile, features []string) string {
	return fmt.Sprintf(`# 1. Test Strategy
Testing approach for **%[1]s** to ensure %[2]s compliance.

# 2. Test Scope & Objectives
Verification of all features including %[3]s.

# 3. Test Environment Setup
Staging environment mirroring the %[1]s production setup.

# 4. Test Types (Unit, Integration, System, UAT)
Comprehensive testing phases for the **%[1]s** platform.

# 5. Test Data Management
Mocking **%[2]s** data for secure and effective testing.

# 6. Defect Management Process
Bug tracking for all issues found in **%[1]s**.

# 7. Entry & Exit Criteria
Milestones that must be met before releasing **%[1]s**.

# 8. Release Management Strategy
Phased rollout plan for the %[2]s market.

# 9. Deployment Plan
Step-by-step procedure for the **%[1]s** go-live.

# 10. Rollback & Recovery Plan
Safety procedures in case of %[1]s deployment failure.

# 11. Post-Release Validation
Smoke tests to confirm %[1]s functionality in production.

# 12. Maintenance & Support Strategy
Post-launch support for users of the **%[1]s** platform.
`, idea, p.Category, strings.Join(features, ", "))
}

// fallbackScreens are the fixed screens the deterministic UI/UX skeleton
// emits, in order.
var fallbackScreens = []string{"Dashboard", "User Profile", "Settings", "Search Results", "Detail View"}

func uiuxDoc(idea string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# UI/UX Design Specification for %s\n", idea)
	for _, s := range fallbackScreens {
		fmt.Fprintf(&b, `
### %[1]s Screen
- **Purpose**: Providing users with a clear %[2]s view for %[3]s workflows.
- **Roles**: Admin, Standard User
- **Components**: Header, Navigation, Main Content Area, Footer
- **Interactions**: Click-through navigation and data interaction.
- **States**: Loading, Active, Empty
`, s, strings.ToLower(s), idea)
	}
	return b.String()
}

// fallbackCanonical produces a deterministic canonical JSON when the
// external service is unavailable.
func fallbackCanonical(idea string, p IdeaProfile) string {
	doc := map[string]interface{}{
		"project_overview": map[string]interface{}{
			"summary":           idea,
			"problem_statement": "Manual processes in " + idea + " are inefficient.",
			"objectives":        []string{"Automate workflows", "Improve user experience", "Provide data insights"},
		},
		"users": map[string]interface{}{
			"target_users": []string{"Internal Staff", "System Administrators"},
			"user_roles":   []string{"Standard User", "Admin"},
		},
		"scope": map[string]interface{}{
			"in_scope":     []string{"Web interface", "Core database", "User authentication"},
			"out_of_scope": []string{"Mobile application", "Offline mode"},
		},
		"features": map[string]interface{}{
			"must_have":    p.Features,
			"nice_to_have": []string{"Dark Mode", "Push Notifications"},
		},
		"constraints": map[string]interface{}{
			"time":       "12 weeks",
			"budget":     "Enterprise standard",
			"technical":  "Modern web stack",
			"regulatory": "GDPR Compliance",
		},
		"assumptions":              []string{"Stable internet connectivity", "Basic technical proficiency"},
		"risks":                    []string{"Data security vulnerabilities", "Integration challenges"},
		"success_metrics":          []string{"90% user adoption", "Reduced processing time"},
		"scalability_expectations": "Support up to 10,000 users",
	}
	out, _ := json.MarshalIndent(doc, "", "  ")
	return string(out)
}

func firstN(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
