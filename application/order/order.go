package order

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	ListOrders(ctx context.Context, identity model.Identity) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo}
}

// ListOrders returns the caller's orders, newest first, matched on the token email.
func (s *orderAppImpl) ListOrders(ctx context.Context, identity model.Identity) (*model.OrderListResponse, error) {
	if !identity.IsAuthenticated() || identity.Claims == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if identity.Claims.Email == "" {
		return &model.OrderListResponse{Orders: []model.OrderSummary{}}, nil
	}

	rows, err := s.orderRepo.ListByCustomerEmail(ctx, identity.Claims.Email)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ids := make([]uint64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	lines, err := s.orderRepo.ListLines(ctx, ids)
	if err != nil {
		logger.Error("[ListOrders] list lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	byOrder := make(map[uint64][]model.OrderLine, len(rows))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], model.OrderLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price.InexactFloat64(),
		})
	}

	orders := make([]model.OrderSummary, 0, len(rows))
	for _, r := range rows {
		items := byOrder[r.ID]
		if items == nil {
			items = []model.OrderLine{}
		}
		orders = append(orders, model.OrderSummary{
			ID:            r.ID,
			Status:        r.Status,
			CustomerType:  r.CustomerType,
			TotalPrice:    r.TotalPrice.InexactFloat64(),
			PaymentStatus: r.PaymentStatus,
			CreatedAt:     r.CreatedAt,
			Items:         items,
		})
	}
	return &model.OrderListResponse{Orders: orders}, nil
}
