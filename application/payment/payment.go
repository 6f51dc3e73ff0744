package payment

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	paymentrepo "github.com/muhammadheryan/storefront/repository/payment"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/thirdparty/payfast"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentApp interface {
	Initiate(ctx context.Context, req *model.InitiatePaymentRequest) (*model.InitiatePaymentResponse, error)
	Callback(ctx context.Context, fields map[string]string) (*model.PaymentCallbackResponse, error)
}

type paymentAppImpl struct {
	gateway     *payfast.Client
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	paymentRepo paymentrepo.PaymentRepository
}

func NewPaymentApp(gateway *payfast.Client, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, paymentRepo paymentrepo.PaymentRepository) PaymentApp {
	return &paymentAppImpl{gateway: gateway, txRepo: txRepo, orderRepo: orderRepo, paymentRepo: paymentRepo}
}

// Initiate returns the signed gateway URL. When an order id is given the payment id is stored on it.
func (s *paymentAppImpl) Initiate(ctx context.Context, req *model.InitiatePaymentRequest) (*model.InitiatePaymentResponse, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount.String()))
	if err != nil || !amount.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}
	if !s.gateway.Configured() {
		logger.Error("[Initiate] payfast merchant credentials are not configured")
		return nil, errors.SetCustomError(constant.ErrPaymentNotConfigured)
	}

	mPaymentID := strings.TrimSpace(req.MPaymentID)
	if mPaymentID == "" {
		if req.OrderID != 0 {
			mPaymentID = strconv.FormatUint(req.OrderID, 10)
		} else {
			mPaymentID = uuid.NewString()
		}
	}

	if req.OrderID != 0 {
		order, err := s.orderRepo.GetOrderDetail(ctx, req.OrderID)
		if err != nil {
			logger.Error("[Initiate] get order detail", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if order == nil {
			return nil, errors.SetCustomError(constant.ErrOrderNotFound)
		}
		if err := s.orderRepo.AttachPaymentID(ctx, order.ID, mPaymentID); err != nil {
			logger.Error("[Initiate] attach payment id", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	paymentURL, err := s.gateway.BuildURL(payfast.PaymentRequest{
		Amount:     amount,
		ItemName:   strings.TrimSpace(req.ItemName),
		ReturnURL:  req.ReturnURL,
		CancelURL:  req.CancelURL,
		MPaymentID: mPaymentID,
	})
	if err != nil {
		logger.Error("[Initiate] build payment url", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPaymentInitFailed)
	}

	return &model.InitiatePaymentResponse{PaymentURL: paymentURL, MPaymentID: mPaymentID}, nil
}

// Callback verifies a gateway notification, records it, and marks the order paid
// when it resolves to a known order with a COMPLETE status.
func (s *paymentAppImpl) Callback(ctx context.Context, fields map[string]string) (*model.PaymentCallbackResponse, error) {
	if len(fields) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCallback)
	}
	if err := s.gateway.Verify(fields); err != nil {
		if stderrors.Is(err, payfast.ErrMissingSignature) {
			return nil, errors.SetCustomError(constant.ErrMissingSignature)
		}
		logger.Warn("[Callback] rejected notification",
			zap.String("m_payment_id", fields[payfast.PaymentIDField]),
			zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidSignature)
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		logger.Error("[Callback] marshal payload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	status := fields[payfast.StatusField]

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Callback] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.resolveOrder(ctx, tx, fields[payfast.PaymentIDField])
	if err != nil {
		logger.Error("[Callback] resolve order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	notification := &model.PaymentNotificationEntity{
		Provider: constant.PaymentProviderPayFast,
		Payload:  string(payload),
		Status:   status,
	}
	if order != nil {
		notification.OrderID = &order.ID
	}
	if _, err := s.paymentRepo.InsertNotificationTx(ctx, tx, notification); err != nil {
		logger.Error("[Callback] insert notification", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if order != nil && strings.EqualFold(status, constant.PayFastStatusComplete) {
		if err := s.orderRepo.MarkPaidTx(ctx, tx, &model.MarkOrderPaidTxItem{
			OrderID:  order.ID,
			Provider: constant.PaymentProviderPayFast,
			Payload:  string(payload),
		}); err != nil {
			logger.Error("[Callback] mark order paid", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Callback] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	resp := &model.PaymentCallbackResponse{Message: "Callback received and signature validated"}
	if order != nil {
		resp.OrderID = &order.ID
	} else {
		logger.Warn("[Callback] notification did not match any order", zap.String("m_payment_id", fields[payfast.PaymentIDField]))
	}
	return resp, nil
}

// resolveOrder looks the order up by numeric id first, then by stored payment id.
func (s *paymentAppImpl) resolveOrder(ctx context.Context, tx *sqlx.Tx, mPaymentID string) (*model.OrderDetail, error) {
	mPaymentID = strings.TrimSpace(mPaymentID)
	if mPaymentID == "" {
		return nil, nil
	}
	if id, err := strconv.ParseUint(mPaymentID, 10, 64); err == nil {
		order, err := s.orderRepo.GetOrderDetailTx(ctx, tx, id)
		if err != nil || order != nil {
			return order, err
		}
	}
	return s.orderRepo.GetOrderDetailByPaymentIDTx(ctx, tx, mPaymentID)
}
