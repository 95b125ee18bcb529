package primary

import "context"

// AssignmentProposal is a recommendation that has not been applied. Pilot
// and Drone are nil when no eligible candidate exists; Issues lists what
// blocked a full match. Issues non-empty blocks the assignment action.
type AssignmentProposal struct {
	ProjectID string
	Pilot     *Pilot
	Drone     *Drone
	Issues    []string
}

// Satisfiable reports whether the proposal covers both resources with no
// outstanding issues.
func (p AssignmentProposal) Satisfiable() bool {
	return p.Pilot != nil && p.Drone != nil && len(p.Issues) == 0
}

// AssignmentResult is the outcome of applying a proposal.
type AssignmentResult struct {
	ProjectID string
	Pilot     *Pilot
	Drone     *Drone
	Issues    []string
	Applied   bool
}

// AssignmentService is the primary port for the recommendation engine.
// Recommend and Assign are separate, non-atomic steps; the hosting process
// serializes mutating operations per store.
type AssignmentService interface {
	// Recommend matches the mission to the first eligible pilot and drone
	// without persisting anything.
	Recommend(ctx context.Context, projectID string) (*AssignmentProposal, error)

	// Assign recommends and, when the proposal is satisfiable, persists
	// the assignment on both resources and records it in the activity
	// log. A proposal with issues is returned unapplied.
	Assign(ctx context.Context, projectID string) (*AssignmentResult, error)
}

// ConflictService is the primary port for the conflict detector.
type ConflictService interface {
	// DetectConflicts scans all current assignments and returns the
	// conflict descriptions in detector order. Empty means consistent.
	DetectConflicts(ctx context.Context) ([]string, error)
}

// ReplanService is the primary port for the urgent reassignment planner.
type ReplanService interface {
	// UrgentReassignments returns the planner's proposal lines.
	UrgentReassignments(ctx context.Context) ([]string, error)
}
