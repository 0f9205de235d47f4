// internal/handlers/cart.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/parisollie/tienda-backend/internal/i18n"
	"github.com/parisollie/tienda-backend/internal/models"
	"github.com/parisollie/tienda-backend/internal/services"
	"github.com/parisollie/tienda-backend/internal/utils"
)

type CartHandler struct {
	catalogService *services.CatalogService
	sessionService *services.SessionService
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

func NewCartHandler(catalogService *services.CatalogService, sessionService *services.SessionService) *CartHandler {
	return &CartHandler{
		catalogService: catalogService,
		sessionService: sessionService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	snapshot := sess.Cart()
	utils.SuccessResponse(c, gin.H{
		"cart": snapshot,
	})
}

// POST /cart/items
func (h *CartHandler) AddCartItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	// Only catalog products may enter the cart.
	product, err := h.catalogService.Get(productID)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	count := sess.AddToCart(product)

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
		"count":   count,
	})
}

// DELETE /cart/items/:index
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart index", nil)
		return
	}

	if err := sess.RemoveFromCart(index); err != nil {
		if errors.Is(err, models.ErrIndexOutOfRange) {
			utils.OutOfRangeResponse(c, i18n.T(lang, i18n.KeyCartIndexInvalid))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
		"count":   sess.Cart().Count,
	})
}
