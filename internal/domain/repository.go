package domain

// DataRepository is the single owner of all collections. Every mutating
// operation stamps ids and timestamps, appends to the activity log where the
// contract says so, and synchronizes all three collections to the persistent
// store. Accessors return copies; no entity is shared by reference outside
// the repository.
type DataRepository interface {
	Candidates() []Candidate
	GetCandidate(id string) (*Candidate, bool)
	AddCandidate(input CandidateInput) Candidate
	// UpdateCandidate is a silent no-op when id is unknown.
	UpdateCandidate(id string, patch CandidatePatch)
	DeleteCandidate(id string)
	// ScheduleInterview appends an interview and forces the candidate's
	// status to "interview". Returns nil when the candidate is unknown.
	ScheduleInterview(candidateID string, input InterviewInput) *Interview
	// AddEvaluation appends an evaluation with the derived mean total score.
	// Returns nil when the candidate is unknown.
	AddEvaluation(candidateID string, input EvaluationInput) *Evaluation

	EducationPosts() []EducationPost
	GetEducationPost(id string) (*EducationPost, bool)
	AddEducationPost(input EducationPostInput) EducationPost
	UpdateEducationPost(id string, patch EducationPostPatch)
	DeleteEducationPost(id string)

	Activities() []Activity
	AddActivity(typ ActivityType, description string)

	ExportSnapshot() Snapshot
	RestoreSnapshot(patch SnapshotPatch)
	Reset()
}
