package v1

import (
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the login route on the public group.
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/auth/login", loginLimiter, handler.Login)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate against the account allow-list and receive a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginRequest  true  "Credentials"
// @Success      200          {object}  response.Response{data=domain.LoginResponse}
// @Failure      401          {object}  response.Response
// @Failure      429          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	requestID, _ := c.Get("RequestID")
	idStr, _ := requestID.(string)

	res, err := h.authUC.Login(req)
	if err != nil {
		security.LogAuthEvent(security.EventLoginFailed, req.Username, c.ClientIP(), idStr)
		c.Error(err)
		return
	}

	security.LogAuthEvent(security.EventLoginSuccess, req.Username, c.ClientIP(), idStr)
	response.Success(c, http.StatusOK, "Logged in", res)
}
