package domain

import "time"

// Candidate statuses follow the hiring pipeline order.
const (
	StatusNew       = "new"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
)

// CandidateStatuses lists every valid status, pipeline order.
var CandidateStatuses = []string{StatusNew, StatusScreening, StatusInterview, StatusOffer, StatusRejected}

// InterviewTypes are the fixed interview-round labels.
var InterviewTypes = []string{"1차", "2차", "3차", "최종"}

// Candidate is one job applicant. JSON field names follow the backup
// interchange format, so exported documents stay byte-compatible with
// existing ats-backup-*.json files.
type Candidate struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone,omitempty"`
	Position      string       `json:"position,omitempty"`
	Status        string       `json:"status"`
	Notes         string       `json:"notes,omitempty"`
	TechnicalTags []string     `json:"technicalTags"`
	ExperienceTag string       `json:"experienceTag,omitempty"`
	Interviews    []Interview  `json:"interviews,omitempty"`
	Evaluations   []Evaluation `json:"evaluations,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Interview is embedded in its owning candidate and never addressed on its own.
// Date is kept as the client-supplied datetime-local string (e.g.
// "2024-03-01T10:00") rather than time.Time, so documents written by older
// exports import unchanged.
type Interview struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

// Evaluation is embedded in its owning candidate. TotalScore is the
// arithmetic mean of the three sub-scores.
type Evaluation struct {
	ID                 string    `json:"id"`
	TechnicalScore     int       `json:"technicalScore"`
	CommunicationScore int       `json:"communicationScore"`
	CulturalFitScore   int       `json:"culturalFitScore"`
	TotalScore         float64   `json:"totalScore"`
	Notes              string    `json:"notes,omitempty"`
	EvaluatedAt        time.Time `json:"evaluatedAt"`
}

// CandidateInput carries the caller-supplied fields of a new candidate.
type CandidateInput struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required"`
	Phone         string   `json:"phone"`
	Position      string   `json:"position"`
	Status        string   `json:"status" validate:"omitempty,oneof=new screening interview offer rejected"`
	Notes         string   `json:"notes"`
	TechnicalTags []string `json:"technicalTags"`
	ExperienceTag string   `json:"experienceTag"`
}

// CandidatePatch is a partial update: nil fields are left untouched,
// non-nil fields overwrite the stored value.
type CandidatePatch struct {
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Position      *string   `json:"position"`
	Status        *string   `json:"status" validate:"omitempty,oneof=new screening interview offer rejected"`
	Notes         *string   `json:"notes"`
	TechnicalTags *[]string `json:"technicalTags"`
	ExperienceTag *string   `json:"experienceTag"`
}

type InterviewInput struct {
	Date     string `json:"date" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=1차 2차 3차 최종"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

type EvaluationInput struct {
	TechnicalScore     int    `json:"technicalScore" validate:"required,min=1,max=10"`
	CommunicationScore int    `json:"communicationScore" validate:"required,min=1,max=10"`
	CulturalFitScore   int    `json:"culturalFitScore" validate:"required,min=1,max=10"`
	Notes              string `json:"notes"`
}

// CandidateFilter mirrors the candidate list toolbar: free-text search over
// name/email/position, a status filter, a tag filter matching either a
// technical tag or the experience tag, and sorting.
type CandidateFilter struct {
	Search string
	Status string
	Tag    string
	SortBy string // name | date | status (default date)
	Order  string // asc | desc (default desc)
}

type CandidateUsecase interface {
	List(filter CandidateFilter) []Candidate
	Get(id string) (*Candidate, error)
	Create(input CandidateInput) (*Candidate, error)
	Update(id string, patch CandidatePatch) (*Candidate, error)
	Delete(id string) error
	ScheduleInterview(id string, input InterviewInput) (*Interview, error)
	AddEvaluation(id string, input EvaluationInput) (*Evaluation, error)
}
