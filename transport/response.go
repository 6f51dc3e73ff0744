package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func writeSuccess(w http.ResponseWriter, payload interface{}) {
	writeSuccessStatus(w, http.StatusOK, payload)
}

// writeSuccessStatus flattens the payload's fields into the envelope next to "success".
func writeSuccessStatus(w http.ResponseWriter, status int, payload interface{}) {
	body := map[string]json.RawMessage{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Error("[writeSuccess] marshal payload", zap.String("error", err.Error()))
			writeError(w, errors.SetCustomError(constant.ErrInternal))
			return
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			body = map[string]json.RawMessage{"data": raw}
		}
	}
	body["success"] = json.RawMessage("true")

	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Success: false,
		Message: ce.Error(),
		Code:    ce.ErrorCode(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}
