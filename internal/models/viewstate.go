// internal/models/viewstate.go
package models

import "github.com/google/uuid"

// ViewState holds the transient flags of the storefront screen: which
// product is selected, whether the cart popup is up, and the live search
// text. It is a value; transitions return the successor state, which keeps
// the coordinator testable without a rendering environment.
//
// The detail sheet is modeled as "open iff a product is selected", so the
// selection can never go stale behind a closed sheet.
type ViewState struct {
	SelectedProduct  *uuid.UUID `json:"selected_product,omitempty"`
	CartPopupVisible bool       `json:"cart_popup_visible"`
	SearchQuery      string     `json:"search_query"`
}

// NewViewState returns the session default: nothing selected, popup closed,
// empty query.
func NewViewState() ViewState {
	return ViewState{}
}

// Select opens the detail sheet for the given product.
func (v ViewState) Select(productID uuid.UUID) ViewState {
	v.SelectedProduct = &productID
	return v
}

// DismissDetail closes the detail sheet and clears the selection.
func (v ViewState) DismissDetail() ViewState {
	v.SelectedProduct = nil
	return v
}

// OpenCart shows the cart popup overlay.
func (v ViewState) OpenCart() ViewState {
	v.CartPopupVisible = true
	return v
}

// CloseCart hides the cart popup. Backdrop tap, the close control, and the
// header cart icon all funnel into this one transition.
func (v ViewState) CloseCart() ViewState {
	v.CartPopupVisible = false
	return v
}

// WithSearch replaces the search text. The filter recomputes on the next
// catalog read; nothing is memoized.
func (v ViewState) WithSearch(query string) ViewState {
	v.SearchQuery = query
	return v
}

// DetailOpen reports whether the product detail sheet is showing.
func (v ViewState) DetailOpen() bool {
	return v.SelectedProduct != nil
}
