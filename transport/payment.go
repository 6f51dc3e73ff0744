package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// InitiatePayment handler
// @Summary Build a PayFast payment URL
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body model.InitiatePaymentRequest true "Initiate Payment Request"
// @Success 200 {object} model.InitiatePaymentResponse
// @Failure 400 {object} errorResponse
// @Router /payfast/initiate [post]
func (s *RestHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req model.InitiatePaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PaymentApp.Initiate(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PaymentCallback handler
// @Summary PayFast ITN callback
// @Description Form-encoded notification signed by the gateway.
// @Tags Payment
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} model.PaymentCallbackResponse
// @Failure 400 {object} errorResponse
// @Router /payfast/callback [post]
func (s *RestHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromContext(r.Context()).Warn("[PaymentCallback] parse form", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrEmptyCallback))
		return
	}

	fields := make(map[string]string, len(r.PostForm))
	for k, v := range r.PostForm {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}

	res, err := s.PaymentApp.Callback(r.Context(), fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
