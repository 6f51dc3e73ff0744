package transport

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHealth struct{ err error }

func (f fakeHealth) PingContext(context.Context) error { return f.err }

type fakeIdentity struct {
	guest      model.Identity
	newSession string
	claims     map[string]*model.Claims
}

func (f *fakeIdentity) Resolve(ctx context.Context, in model.IdentitySourceInput, sessionID string) (model.Identity, string) {
	if c, ok := f.claims[in.BearerToken]; ok {
		return model.Identity{Type: model.IdentityAuthenticated, ID: c.Subject, Claims: c, Source: model.SourceBearer}, ""
	}
	return f.guest, f.newSession
}

func (f *fakeIdentity) Verify(ctx context.Context, token string) (*model.Claims, error) {
	if c, ok := f.claims[token]; ok {
		return c, nil
	}
	return nil, stderrors.New("invalid token")
}

type fakeCart struct {
	got model.Identity
	err error
}

func (f *fakeCart) AddItem(ctx context.Context, identity model.Identity, req *model.AddCartItemRequest) (*model.CartMutationResponse, error) {
	f.got = identity
	if f.err != nil {
		return nil, f.err
	}
	return &model.CartMutationResponse{OwnerType: identity.Type, OwnerID: identity.ID, Message: "Item added to cart"}, nil
}

func (f *fakeCart) UpdateItem(ctx context.Context, identity model.Identity, req *model.UpdateCartItemRequest) (*model.CartMutationResponse, error) {
	f.got = identity
	return &model.CartMutationResponse{OwnerType: identity.Type, OwnerID: identity.ID}, f.err
}

func (f *fakeCart) GetCart(ctx context.Context, identity model.Identity) (*model.CartResponse, error) {
	f.got = identity
	return &model.CartResponse{OwnerType: identity.Type, Items: []model.CartItem{}}, f.err
}

type fakeCheckout struct {
	identity model.Identity
	guestID  string
}

func (f *fakeCheckout) Initiate(ctx context.Context, identity model.Identity, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	f.identity = identity
	return &model.CheckoutResponse{OrderID: 9, Total: 37.75, CustomerType: string(identity.Type), Message: "Order created successfully"}, nil
}

func (f *fakeCheckout) Complete(ctx context.Context, identity model.Identity, req *model.CompleteCheckoutRequest) (*model.CompleteCheckoutResponse, error) {
	return nil, errors.SetCustomError(constant.ErrOrderIDRequired)
}

func (f *fakeCheckout) MergeCart(ctx context.Context, identity model.Identity, guestID string) (*model.MergeCartResponse, error) {
	f.identity, f.guestID = identity, guestID
	return &model.MergeCartResponse{Merged: true, Message: "Cart merged successfully"}, nil
}

func (f *fakeCheckout) GuestToAuth(ctx context.Context, identity model.Identity, guestID string) (*model.GuestToAuthResponse, error) {
	return &model.GuestToAuthResponse{UserID: identity.ID}, nil
}

type fakePayment struct{ fields map[string]string }

func (f *fakePayment) Initiate(ctx context.Context, req *model.InitiatePaymentRequest) (*model.InitiatePaymentResponse, error) {
	return &model.InitiatePaymentResponse{PaymentURL: "https://sandbox.payfast.co.za/eng/process?x=1", MPaymentID: "1"}, nil
}

func (f *fakePayment) Callback(ctx context.Context, fields map[string]string) (*model.PaymentCallbackResponse, error) {
	f.fields = fields
	return &model.PaymentCallbackResponse{Message: "Callback received and signature validated"}, nil
}

type harness struct {
	handler  http.Handler
	identity *fakeIdentity
	cart     *fakeCart
	checkout *fakeCheckout
	payment  *fakePayment
}

func newHarness(t *testing.T, health error) *harness {
	t.Helper()
	cfg := &config.Config{
		Guest:     config.GuestConfig{CookieName: "guest_sid", SessionTTL: time.Hour},
		RateLimit: config.RateLimitConfig{RPS: 100, Burst: 100},
		CORS:      config.CORSConfig{Origins: []string{"https://shop.example.com"}},
	}
	h := &harness{
		identity: &fakeIdentity{
			guest:      model.Identity{Type: model.IdentityGuest, ID: "guest_0000aaaa", Source: model.SourceFabricated},
			newSession: "sid-1",
			claims: map[string]*model.Claims{
				"good":  {Subject: "user-1", Email: "a@example.com"},
				"guest": {Subject: "guest_0000cccc"},
			},
		},
		cart:     &fakeCart{},
		checkout: &fakeCheckout{},
		payment:  &fakePayment{},
	}
	h.handler = NewTransport(&RestHandler{
		Config:      cfg,
		Health:      fakeHealth{err: health},
		IdentityApp: h.identity,
		CartApp:     h.cart,
		CheckoutApp: h.checkout,
		PaymentApp:  h.payment,
	})
	return h
}

func (h *harness) do(req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	body := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestHealthz(t *testing.T) {
	h := newHarness(t, nil)
	rec, body := h.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(constant.RequestIDHeader))

	h = newHarness(t, stderrors.New("connection refused"))
	rec, body = h.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], body["code"])
}

func TestAddToCart_GuestSession(t *testing.T) {
	h := newHarness(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"product_id":7}`))
	req.Header.Set("Content-Type", "application/json")

	rec, body := h.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "guest_0000aaaa", body["owner_id"])
	assert.Equal(t, "guest_0000aaaa", rec.Header().Get(constant.GuestIDHeader))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "guest_sid", cookies[0].Name)
	assert.Equal(t, "sid-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestAddToCart_Authenticated(t *testing.T) {
	h := newHarness(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"product_id":7}`))
	req.Header.Set("Authorization", "Bearer good")

	rec, _ := h.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.IdentityAuthenticated, h.cart.got.Type)
	assert.Equal(t, "user-1", h.cart.got.ID)
	assert.Empty(t, rec.Header().Get(constant.GuestIDHeader))
	assert.Empty(t, rec.Result().Cookies())
}

func TestAddToCart_Errors(t *testing.T) {
	h := newHarness(t, nil)

	rec, body := h.do(httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"product_id":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], body["code"])

	h.cart.err = errors.SetCustomError(constant.ErrInvalidQuantity)
	rec, body = h.do(httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(`{"product_id":7,"quantity":0}`)))
	assert.Equal(t, constant.ErrorTypeHTTPCode[constant.ErrInvalidQuantity], rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constant.ErrorTypeMessage[constant.ErrInvalidQuantity], body["message"])
}

func TestInitiateCheckout_Created(t *testing.T) {
	h := newHarness(t, nil)
	rec, body := h.do(httptest.NewRequest(http.MethodPost, "/checkout/initiate", strings.NewReader(`{"guest_id":"g-body"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(9), body["order_id"])
	assert.Equal(t, "guest", body["customer_type"])
}

func TestCompleteCheckout_Error(t *testing.T) {
	h := newHarness(t, nil)
	rec, body := h.do(httptest.NewRequest(http.MethodPost, "/checkout/complete", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeMessage[constant.ErrOrderIDRequired], body["message"])
}

func TestMergeCart_RequiresAuth(t *testing.T) {
	h := newHarness(t, nil)

	rec, body := h.do(httptest.NewRequest(http.MethodPost, "/checkout/cart-merge", strings.NewReader(`{"guest_id":"guest_00000009"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])

	req := httptest.NewRequest(http.MethodPost, "/checkout/cart-merge", strings.NewReader(`{"guest_id":"guest_00000009"}`))
	req.Header.Set("Authorization", "Bearer bad")
	rec, _ = h.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/checkout/cart-merge", strings.NewReader(`{"guest_id":"guest_00000009"}`))
	req.Header.Set("Authorization", "Bearer guest")
	rec, _ = h.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, h.checkout.guestID)

	req = httptest.NewRequest(http.MethodPost, "/checkout/cart-merge", strings.NewReader(`{"guest_id":"guest_00000009"}`))
	req.Header.Set("Authorization", "bearer good")
	rec, body = h.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["merged"])
	assert.Equal(t, "user-1", h.checkout.identity.ID)
	assert.Equal(t, "guest_00000009", h.checkout.guestID)
}

func TestPaymentCallback_Form(t *testing.T) {
	h := newHarness(t, nil)
	form := url.Values{"m_payment_id": {"12"}, "payment_status": {"COMPLETE"}, "signature": {"abc"}}
	req := httptest.NewRequest(http.MethodPost, "/payfast/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, body := h.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Callback received and signature validated", body["message"])
	assert.Equal(t, map[string]string{"m_payment_id": "12", "payment_status": "COMPLETE", "signature": "abc"}, h.payment.fields)
}

func TestCORSPreflight(t *testing.T) {
	h := newHarness(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/cart/add", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec, _ := h.do(req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), constant.GuestIDHeader)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec, _ = h.do(req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	h := newHarness(t, nil)
	h.handler = NewTransport(&RestHandler{
		Config: &config.Config{
			Guest:     config.GuestConfig{CookieName: "guest_sid"},
			RateLimit: config.RateLimitConfig{RPS: 0.001, Burst: 1},
		},
		Health:     fakeHealth{},
		PaymentApp: h.payment,
	})

	newReq := func(path string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"amount":"10"}`))
		r.RemoteAddr = "203.0.113.7:5555"
		return r
	}

	rec, _ := h.do(newReq("/payfast/initiate"))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, body := h.do(newReq("/payfast/initiate"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrTooManyRequests], body["code"])

	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		r.RemoteAddr = "203.0.113.7:5555"
		rec, _ = h.do(r)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_PaymentCallbacksNotThrottled(t *testing.T) {
	h := newHarness(t, nil)
	h.handler = NewTransport(&RestHandler{
		Config: &config.Config{
			Guest:     config.GuestConfig{CookieName: "guest_sid"},
			RateLimit: config.RateLimitConfig{RPS: 2, Burst: 5},
		},
		Health:     fakeHealth{},
		PaymentApp: h.payment,
	})

	form := url.Values{"m_payment_id": {"12"}, "payment_status": {"COMPLETE"}, "signature": {"abc"}}
	for i := 0; i < 8; i++ {
		r := httptest.NewRequest(http.MethodPost, "/payfast/callback", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.RemoteAddr = "197.97.145.144:443"
		rec, _ := h.do(r)
		assert.Equal(t, http.StatusOK, rec.Code, "callback %d", i+1)
	}
}

func TestLocalAuthRoutesNotMounted(t *testing.T) {
	h := newHarness(t, nil)
	rec, _ := h.do(httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
