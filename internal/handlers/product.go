// internal/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/parisollie/tienda-backend/internal/i18n"
	"github.com/parisollie/tienda-backend/internal/models"
	"github.com/parisollie/tienda-backend/internal/services"
	"github.com/parisollie/tienda-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	sessionService *services.SessionService
	imageService   *services.ImageService
}

func NewProductHandler(catalogService *services.CatalogService, sessionService *services.SessionService, imageService *services.ImageService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		sessionService: sessionService,
		imageService:   imageService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	// An explicit search param wins; otherwise the grid follows the live
	// search text stored in the session's view state.
	query, hasQuery := c.GetQuery("search")
	if !hasQuery {
		query = sess.View().SearchQuery
	}

	products := h.catalogService.Search(query)

	start, end := utils.PageBounds(len(products), params)
	page := products[start:end]

	result := utils.CreatePaginationResult(page, int64(len(products)), params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.Get(id)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product":     product,
		"favorite":    sess.IsFavorite(id),
		"heart_pulse": sess.HeartPulse(id),
	})
}

// GET /products/:id/image
//
// First request kicks off the fetch; while it is pending, and after a
// failure, the fixed placeholder is served with the state in a header. The
// fetch result for one card never affects any other card.
func (h *ProductHandler) GetProductImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.Get(id)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	state, data, contentType := h.imageService.Request(product.ImageURL)
	c.Header("X-Image-State", string(state))

	if state == models.ImageStateLoaded {
		if contentType == "" {
			contentType = "image/jpeg"
		}
		c.Data(http.StatusOK, contentType, data)
		return
	}

	c.Data(http.StatusOK, "image/png", h.imageService.Placeholder())
}

// POST /products/:id/favorite
func (h *ProductHandler) ToggleFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if _, err := h.catalogService.Get(id); err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	favorite := sess.ToggleFavorite(id)

	messageKey := i18n.KeyFavoriteRemoved
	if favorite {
		messageKey = i18n.KeyFavoriteAdded
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, messageKey),
		"favorite":    favorite,
		"heart_pulse": sess.HeartPulse(id),
	})
}
