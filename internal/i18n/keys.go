// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Products
	KeyProductNotFound = "product.not_found"

	// Cart
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartIndexInvalid = "cart.index_invalid"

	// View state
	KeyViewProductSelected = "view.product_selected"
	KeyViewDetailDismissed = "view.detail_dismissed"
	KeyViewCartOpened      = "view.cart_opened"
	KeyViewCartClosed      = "view.cart_closed"
	KeyViewSearchUpdated   = "view.search_updated"

	// Favorites
	KeyFavoriteAdded   = "favorite.added"
	KeyFavoriteRemoved = "favorite.removed"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"
)
