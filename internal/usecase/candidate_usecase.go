package usecase

import (
	"sort"
	"strings"

	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.DataRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.DataRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) List(filter domain.CandidateFilter) []domain.Candidate {
	return filterCandidates(u.repo.Candidates(), filter)
}

func (u *candidateUsecase) Get(id string) (*domain.Candidate, error) {
	c, ok := u.repo.GetCandidate(id)
	if !ok {
		return nil, apperror.NotFound("Candidate not found")
	}
	return c, nil
}

func (u *candidateUsecase) Create(input domain.CandidateInput) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	c := u.repo.AddCandidate(input)
	return &c, nil
}

func (u *candidateUsecase) Update(id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	// The repository treats an unknown id as a silent no-op; the API
	// contract wants a 404, so existence is checked here first.
	if _, ok := u.repo.GetCandidate(id); !ok {
		return nil, apperror.NotFound("Candidate not found")
	}
	u.repo.UpdateCandidate(id, patch)
	c, _ := u.repo.GetCandidate(id)
	return c, nil
}

func (u *candidateUsecase) Delete(id string) error {
	if _, ok := u.repo.GetCandidate(id); !ok {
		return apperror.NotFound("Candidate not found")
	}
	u.repo.DeleteCandidate(id)
	return nil
}

func (u *candidateUsecase) ScheduleInterview(id string, input domain.InterviewInput) (*domain.Interview, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	iv := u.repo.ScheduleInterview(id, input)
	if iv == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return iv, nil
}

func (u *candidateUsecase) AddEvaluation(id string, input domain.EvaluationInput) (*domain.Evaluation, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	ev := u.repo.AddEvaluation(id, input)
	if ev == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return ev, nil
}

// filterCandidates applies the candidate toolbar semantics: free-text search
// over name/email/position, status and tag filters, then sorting. Shared
// with the spreadsheet export.
func filterCandidates(candidates []domain.Candidate, filter domain.CandidateFilter) []domain.Candidate {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(strings.ToLower(c.Position), search) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && c.Status != filter.Status {
			continue
		}
		if filter.Tag != "" && !hasTag(c, filter.Tag) {
			continue
		}
		filtered = append(filtered, c)
	}

	asc := filter.Order == "asc"
	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "name":
			less = strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		case "status":
			less = filtered[i].Status < filtered[j].Status
		default: // date
			less = filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	return filtered
}

func hasTag(c domain.Candidate, tag string) bool {
	if c.ExperienceTag == tag {
		return true
	}
	for _, t := range c.TechnicalTags {
		if t == tag {
			return true
		}
	}
	return false
}
