package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// AddToCart handler
// @Summary Add item to cart
// @Description Adds a product to the caller's cart. Guests are identified by guest_id, X-Guest-ID or the session cookie.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Add Cart Item Request"
// @Success 200 {object} model.CartMutationResponse
// @Failure 400 {object} errorResponse
// @Router /cart/add [post]
func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity := s.identify(w, r, req.GuestID)
	res, err := s.CartApp.AddItem(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCart handler
// @Summary Update cart item quantity
// @Description Replaces the quantity of a cart line. A quantity of 0 removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.UpdateCartItemRequest true "Update Cart Item Request"
// @Success 200 {object} model.CartMutationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /cart/update [post]
func (s *RestHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity := s.identify(w, r, req.GuestID)
	res, err := s.CartApp.UpdateItem(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCart handler
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param guest_id query string false "Guest ID"
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	identity := s.identify(w, r, "")
	res, err := s.CartApp.GetCart(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
