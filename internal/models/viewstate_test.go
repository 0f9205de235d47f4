// internal/models/viewstate_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewStateDefaults(t *testing.T) {
	v := NewViewState()

	assert.False(t, v.DetailOpen())
	assert.False(t, v.CartPopupVisible)
	assert.Empty(t, v.SearchQuery)
	assert.Nil(t, v.SelectedProduct)
}

func TestSelectOpensDetail(t *testing.T) {
	id := uuid.New()
	v := NewViewState().Select(id)

	assert.True(t, v.DetailOpen())
	require.NotNil(t, v.SelectedProduct)
	assert.Equal(t, id, *v.SelectedProduct)
}

func TestDismissClearsSelection(t *testing.T) {
	v := NewViewState().Select(uuid.New()).DismissDetail()

	// The detail sheet is open iff a product is selected; dismissing clears
	// both so nothing stale shows on reopen.
	assert.False(t, v.DetailOpen())
	assert.Nil(t, v.SelectedProduct)
}

func TestDetailOpenOnlyWithinOpenWindow(t *testing.T) {
	v := NewViewState()
	assert.False(t, v.DetailOpen())

	v = v.Select(uuid.New())
	assert.True(t, v.DetailOpen())

	v = v.DismissDetail()
	assert.False(t, v.DetailOpen())
}

func TestCartPopupToggle(t *testing.T) {
	v := NewViewState().OpenCart()
	assert.True(t, v.CartPopupVisible)

	v = v.CloseCart()
	assert.False(t, v.CartPopupVisible)
}

func TestWithSearchReplacesQuery(t *testing.T) {
	v := NewViewState().WithSearch("lea")
	assert.Equal(t, "lea", v.SearchQuery)

	v = v.WithSearch("leather")
	assert.Equal(t, "leather", v.SearchQuery)

	v = v.WithSearch("")
	assert.Empty(t, v.SearchQuery)
}

func TestTransitionsAreIndependent(t *testing.T) {
	id := uuid.New()
	v := NewViewState().Select(id).OpenCart().WithSearch("mug")

	// Closing the popup leaves selection and query alone.
	v = v.CloseCart()
	assert.True(t, v.DetailOpen())
	assert.Equal(t, "mug", v.SearchQuery)

	// Dismissing the detail leaves the query alone.
	v = v.DismissDetail()
	assert.Equal(t, "mug", v.SearchQuery)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	original := NewViewState()
	_ = original.Select(uuid.New()).OpenCart().WithSearch("watch")

	assert.False(t, original.DetailOpen())
	assert.False(t, original.CartPopupVisible)
	assert.Empty(t, original.SearchQuery)
}
