package v1

import (
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(r *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	education := r.Group("/education")
	{
		education.GET("", handler.List)
		education.POST("", handler.Create)
		education.GET("/:id", handler.Get)
		education.PUT("/:id", handler.Update)
		education.DELETE("/:id", handler.Delete)
		education.GET("/:id/html", handler.RenderHTML)
	}
}

// List godoc
// @Summary      List education posts
// @Tags         education
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.EducationPost}
// @Router       /education [get]
// @Security     BearerAuth
func (h *EducationHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Education posts", h.educationUC.List())
}

// Get godoc
// @Summary      Get one education post
// @Tags         education
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  response.Response{data=domain.EducationPost}
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [get]
// @Security     BearerAuth
func (h *EducationHandler) Get(c *gin.Context) {
	post, err := h.educationUC.Get(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education post", post)
}

// Create godoc
// @Summary      Write an education post
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        post  body      domain.EducationPostInput  true  "New post (markdown content)"
// @Success      201   {object}  response.Response{data=domain.EducationPost}
// @Failure      400   {object}  response.Response
// @Router       /education [post]
// @Security     BearerAuth
func (h *EducationHandler) Create(c *gin.Context) {
	var input domain.EducationPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.educationUC.Create(input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education post created", post)
}

// Update godoc
// @Summary      Update an education post
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        id     path      string                     true  "Post id"
// @Param        patch  body      domain.EducationPostPatch  true  "Fields to change"
// @Success      200    {object}  response.Response{data=domain.EducationPost}
// @Failure      404    {object}  response.Response
// @Router       /education/{id} [put]
// @Security     BearerAuth
func (h *EducationHandler) Update(c *gin.Context) {
	var patch domain.EducationPostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.educationUC.Update(c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education post updated", post)
}

// Delete godoc
// @Summary      Delete an education post
// @Tags         education
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /education/{id} [delete]
// @Security     BearerAuth
func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.educationUC.Delete(c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education post deleted", nil)
}

// RenderHTML godoc
// @Summary      Render a post as HTML
// @Description  Render the post's markdown content to HTML.
// @Tags         education
// @Produce      html
// @Param        id   path      string  true  "Post id"
// @Success      200  {string}  string
// @Failure      404  {object}  response.Response
// @Router       /education/{id}/html [get]
// @Security     BearerAuth
func (h *EducationHandler) RenderHTML(c *gin.Context) {
	html, err := h.educationUC.RenderHTML(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
