package transport

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	addressapp "github.com/muhammadheryan/storefront/application/address"
	cartapp "github.com/muhammadheryan/storefront/application/cart"
	checkoutapp "github.com/muhammadheryan/storefront/application/checkout"
	contactapp "github.com/muhammadheryan/storefront/application/contact"
	identityapp "github.com/muhammadheryan/storefront/application/identity"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	paymentapp "github.com/muhammadheryan/storefront/application/payment"
	productapp "github.com/muhammadheryan/storefront/application/product"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type RestHandler struct {
	Config      *config.Config
	Health      HealthChecker
	IdentityApp identityapp.IdentityApp
	// UserApp is nil when tokens come from an external provider.
	UserApp     userapp.UserApp
	CartApp     cartapp.CartApp
	CheckoutApp checkoutapp.CheckoutApp
	PaymentApp  paymentapp.PaymentApp
	AddressApp  addressapp.AddressApp
	ProductApp  productapp.ProductApp
	ContactApp  contactapp.ContactApp
	OrderApp    orderapp.OrderApp
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()
	requireAuth := AuthMiddleware(rh.IdentityApp)
	authed := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/healthz", rh.Healthz).Methods(http.MethodGet)

	// catalog
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}/review", rh.ReviewProduct).Methods(http.MethodPost)
	mux.HandleFunc("/provinces", rh.ListProvinces).Methods(http.MethodGet)
	mux.HandleFunc("/shipping-address", rh.CreateShippingAddress).Methods(http.MethodPost)
	mux.HandleFunc("/contact", rh.Contact).Methods(http.MethodPost)

	// cart and checkout, guest or authenticated
	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/add", rh.AddToCart).Methods(http.MethodPost)
	mux.HandleFunc("/cart/update", rh.UpdateCart).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/initiate", rh.InitiateCheckout).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/complete", rh.CompleteCheckout).Methods(http.MethodPost)
	mux.Handle("/checkout/cart-merge", authed(rh.MergeCart)).Methods(http.MethodPost)
	mux.Handle("/checkout/guest-to-auth", authed(rh.GuestToAuth)).Methods(http.MethodPost)

	// payment
	mux.HandleFunc("/payfast/initiate", rh.InitiatePayment).Methods(http.MethodPost)
	mux.HandleFunc("/payfast/callback", rh.PaymentCallback).Methods(http.MethodPost)

	mux.Handle("/orders", authed(rh.ListOrders)).Methods(http.MethodGet)

	// local accounts
	if rh.UserApp != nil {
		mux.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
		mux.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
		mux.Handle("/auth/logout", authed(rh.Logout)).Methods(http.MethodPost)
	}

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(RecoveryMiddleware())
	mux.Use(RateLimitMiddleware(rh.Config.RateLimit, "/auth/", "/payfast/initiate"))

	return CORSMiddleware(rh.Config.CORS.Origins)(mux)
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Healthz handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /healthz [get]
func (s *RestHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.Health.PingContext(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error("[Healthz] ping database", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}
