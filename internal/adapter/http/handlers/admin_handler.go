package handlers

import (
	"net/http"

	"smartmenu/internal/adapter/http/dto/request"
	"smartmenu/internal/adapter/http/dto/response"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	usecase usecase.IAdminAuthUseCase
}

func NewAdminHandler(uc usecase.IAdminAuthUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// Login godoc
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  request.AdminLoginRequest  true  "Credentials"
// @Success      200  {object}  response.AdminTokenResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAdminToken(token))
}
