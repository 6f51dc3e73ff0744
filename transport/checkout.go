package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// InitiateCheckout handler
// @Summary Create an order from the cart
// @Description Guests must send customer_info. Authenticated callers default to their token claims.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 201 {object} model.CheckoutResponse
// @Failure 400 {object} errorResponse
// @Router /checkout/initiate [post]
func (s *RestHandler) InitiateCheckout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity := s.identify(w, r, req.GuestID)
	res, err := s.CheckoutApp.Initiate(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

// CompleteCheckout handler
// @Summary Confirm an order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CompleteCheckoutRequest true "Complete Checkout Request"
// @Success 200 {object} model.CompleteCheckoutResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /checkout/complete [post]
func (s *RestHandler) CompleteCheckout(w http.ResponseWriter, r *http.Request) {
	var req model.CompleteCheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity := s.identify(w, r, req.GuestID)
	res, err := s.CheckoutApp.Complete(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// MergeCart handler
// @Summary Merge a guest cart into the caller's cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MergeCartRequest true "Merge Cart Request"
// @Success 200 {object} model.MergeCartResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /checkout/cart-merge [post]
func (s *RestHandler) MergeCart(w http.ResponseWriter, r *http.Request) {
	var req model.MergeCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity, _ := utilsContext.GetIdentity(r.Context())
	res, err := s.CheckoutApp.MergeCart(r.Context(), identity, req.GuestID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GuestToAuth handler
// @Summary Attach a guest session to the signed-in account
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MergeCartRequest true "Guest ID"
// @Success 200 {object} model.GuestToAuthResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /checkout/guest-to-auth [post]
func (s *RestHandler) GuestToAuth(w http.ResponseWriter, r *http.Request) {
	var req model.MergeCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity, _ := utilsContext.GetIdentity(r.Context())
	res, err := s.CheckoutApp.GuestToAuth(r.Context(), identity, req.GuestID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
