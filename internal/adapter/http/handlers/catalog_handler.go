package handlers

import (
	"net/http"

	"smartmenu/internal/adapter/http/dto/response"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only menu.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListItems godoc
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Success      200  {array}  response.MenuItemResponse
// @Router       /menu [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.ListItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMenuItems(items))
}

// Categories godoc
// @Summary      List menu categories
// @Tags         menu
// @Produce      json
// @Success      200  {object}  response.CategoriesResponse
// @Router       /menu/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.usecase.Categories(c.Request.Context())
	if err != nil {
		writeError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, response.CategoriesResponse{Categories: categories})
}

// GetItem godoc
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        item_id  path  string  true  "Menu item id"
// @Success      200  {object}  response.MenuItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /menu/{item_id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		writeError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMenuItem(item))
}
