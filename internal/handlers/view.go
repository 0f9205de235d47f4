// internal/handlers/view.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/parisollie/tienda-backend/internal/i18n"
	"github.com/parisollie/tienda-backend/internal/models"
	"github.com/parisollie/tienda-backend/internal/services"
	"github.com/parisollie/tienda-backend/internal/utils"
)

type ViewHandler struct {
	catalogService *services.CatalogService
	sessionService *services.SessionService
}

type SelectProductRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

type UpdateSearchRequest struct {
	Query string `json:"query"`
}

func NewViewHandler(catalogService *services.CatalogService, sessionService *services.SessionService) *ViewHandler {
	return &ViewHandler{
		catalogService: catalogService,
		sessionService: sessionService,
	}
}

// GET /view
func (h *ViewHandler) GetView(c *gin.Context) {
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	h.viewResponse(c, sess, sess.View(), "")
}

// POST /view/select
func (h *ViewHandler) SelectProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	var req SelectProductRequest
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

	if _, err := h.catalogService.Get(productID); err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	view := sess.Select(productID)
	h.viewResponse(c, sess, view, i18n.T(lang, i18n.KeyViewProductSelected))
}

// POST /view/dismiss
func (h *ViewHandler) DismissDetail(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	view := sess.DismissDetail()
	h.viewResponse(c, sess, view, i18n.T(lang, i18n.KeyViewDetailDismissed))
}

// POST /view/cart/open
func (h *ViewHandler) OpenCartPopup(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	view := sess.OpenCartPopup()
	h.viewResponse(c, sess, view, i18n.T(lang, i18n.KeyViewCartOpened))
}

// POST /view/cart/close
//
// Backdrop tap, the close control, and the header cart icon are all the
// same transition, so a single endpoint serves the three gestures.
func (h *ViewHandler) CloseCartPopup(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	view := sess.CloseCartPopup()
	h.viewResponse(c, sess, view, i18n.T(lang, i18n.KeyViewCartClosed))
}

// PUT /view/search
func (h *ViewHandler) UpdateSearch(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess, ok := currentSession(c, h.sessionService)
	if !ok {
		return
	}

	var req UpdateSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Stored verbatim; the filter recomputes on the next catalog read.
	view := sess.SetSearch(req.Query)
	h.viewResponse(c, sess, view, i18n.T(lang, i18n.KeyViewSearchUpdated))
}

func (h *ViewHandler) viewResponse(c *gin.Context, sess *services.Session, view models.ViewState, message string) {
	data := gin.H{
		"view":        view,
		"detail_open": view.DetailOpen(),
		"cart_count":  sess.Cart().Count,
	}
	if message != "" {
		data["message"] = message
	}
	utils.SuccessResponse(c, data)
}
