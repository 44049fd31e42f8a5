package usecase

import (
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/markdown"

	"github.com/go-playground/validator/v10"
)

type educationUsecase struct {
	repo     domain.DataRepository
	validate *validator.Validate
}

func NewEducationUsecase(repo domain.DataRepository, validate *validator.Validate) domain.EducationUsecase {
	return &educationUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *educationUsecase) List() []domain.EducationPost {
	return u.repo.EducationPosts()
}

func (u *educationUsecase) Get(id string) (*domain.EducationPost, error) {
	p, ok := u.repo.GetEducationPost(id)
	if !ok {
		return nil, apperror.NotFound("Education post not found")
	}
	return p, nil
}

func (u *educationUsecase) Create(input domain.EducationPostInput) (*domain.EducationPost, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	p := u.repo.AddEducationPost(input)
	return &p, nil
}

func (u *educationUsecase) Update(id string, patch domain.EducationPostPatch) (*domain.EducationPost, error) {
	if _, ok := u.repo.GetEducationPost(id); !ok {
		return nil, apperror.NotFound("Education post not found")
	}
	u.repo.UpdateEducationPost(id, patch)
	p, _ := u.repo.GetEducationPost(id)
	return p, nil
}

func (u *educationUsecase) Delete(id string) error {
	if _, ok := u.repo.GetEducationPost(id); !ok {
		return apperror.NotFound("Education post not found")
	}
	u.repo.DeleteEducationPost(id)
	return nil
}

func (u *educationUsecase) RenderHTML(id string) (string, error) {
	p, ok := u.repo.GetEducationPost(id)
	if !ok {
		return "", apperror.NotFound("Education post not found")
	}
	html, err := markdown.Render(p.Content)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return html, nil
}
