package domain

// Phase is one of the three caller-triggered pipeline stages.
type Phase string

const (
	PhaseAnalysis Phase = "ANALYSIS"
	PhaseDesign   Phase = "DESIGN"
	PhaseBuild    Phase = "BUILD"
)

// CanAdvance reports whether a phase trigger is legal from the given status.
// The lifecycle is not a strict forward-only automaton: design re-runs are
// idempotent and build may be re-triggered from any status (that is how
// retry works).
func CanAdvance(from Status, phase Phase) bool {
	switch phase {
	case PhaseAnalysis:
		return from != StatusFailed
	case PhaseDesign:
		return from == StatusPlanning || from == StatusDesign || from == StatusDesigned
	case PhaseBuild:
		return true
	default:
		return false
	}
}

// PhaseProgress maps a status to the progress metrics shown to callers.
func PhaseProgress(s Status) (int, string) {
	switch s {
	case StatusNew:
		return 0, "Initialization"
	case StatusAnalysis:
		return 15, "Analysis"
	case StatusPlanning:
		return 40, "Planning"
	case StatusDesign:
		return 55, "Design"
	case StatusDesigned:
		return 70, "Design"
	case StatusCoding:
		return 85, "Build"
	case StatusCompleted:
		return 100, "Completed"
	case StatusFailed:
		return -1, "Failed"
	default:
		return 0, string(s)
	}
}
