package domain

import "time"

// EducationPost is one interviewer-education article. Content is markdown.
type EducationPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EducationPostInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type EducationPostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type EducationUsecase interface {
	List() []EducationPost
	Get(id string) (*EducationPost, error)
	Create(input EducationPostInput) (*EducationPost, error)
	Update(id string, patch EducationPostPatch) (*EducationPost, error)
	Delete(id string) error
	RenderHTML(id string) (string, error)
}
