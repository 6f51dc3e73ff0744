package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// ListProducts handler
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size (default 10, max 100)"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 404 {object} errorResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrProductNotFound))
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{"product": res})
}

// ReviewProduct handler
// @Summary Rate a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ReviewRequest true "Review Request"
// @Success 200 {object} model.ReviewResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id}/review [post]
func (s *RestHandler) ReviewProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrProductNotFound))
		return
	}

	var req model.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRating))
		return
	}

	res, err := s.ProductApp.Review(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProvinces handler
// @Summary List provinces
// @Tags Address
// @Produce json
// @Success 200 {object} model.ProvinceListResponse
// @Router /provinces [get]
func (s *RestHandler) ListProvinces(w http.ResponseWriter, r *http.Request) {
	res, err := s.AddressApp.ListProvinces(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateShippingAddress handler
// @Summary Create a shipping address
// @Tags Address
// @Accept json
// @Produce json
// @Param request body model.ShippingAddressRequest true "Shipping Address Request"
// @Success 201 {object} model.ShippingAddressResponse
// @Failure 400 {object} errorResponse
// @Router /shipping-address [post]
func (s *RestHandler) CreateShippingAddress(w http.ResponseWriter, r *http.Request) {
	var req model.ShippingAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AddressApp.CreateShippingAddress(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

// Contact handler
// @Summary Submit the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact Request"
// @Success 201 {object} model.ContactResponse
// @Failure 400 {object} errorResponse
// @Router /contact [post]
func (s *RestHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}
