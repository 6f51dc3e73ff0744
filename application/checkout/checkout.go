package checkout

import (
	"context"
	"strconv"
	"strings"

	"github.com/muhammadheryan/storefront/application/notification"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	addressrepo "github.com/muhammadheryan/storefront/repository/address"
	cartrepo "github.com/muhammadheryan/storefront/repository/cart"
	customerrepo "github.com/muhammadheryan/storefront/repository/customer"
	inventoryrepo "github.com/muhammadheryan/storefront/repository/inventory"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	Initiate(ctx context.Context, identity model.Identity, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
	Complete(ctx context.Context, identity model.Identity, req *model.CompleteCheckoutRequest) (*model.CompleteCheckoutResponse, error)
	MergeCart(ctx context.Context, identity model.Identity, guestID string) (*model.MergeCartResponse, error)
	GuestToAuth(ctx context.Context, identity model.Identity, guestID string) (*model.GuestToAuthResponse, error)
}

type checkoutAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	cartRepo      cartrepo.CartRepository
	customerRepo  customerrepo.CustomerRepository
	addressRepo   addressrepo.AddressRepository
	orderRepo     orderrepo.OrderRepository
	inventoryRepo inventoryrepo.InventoryRepository
	publisher     rabbitmq.NotificationPublisher
}

func NewCheckoutApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	cartRepo cartrepo.CartRepository,
	customerRepo customerrepo.CustomerRepository,
	addressRepo addressrepo.AddressRepository,
	orderRepo orderrepo.OrderRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	publisher rabbitmq.NotificationPublisher,
) CheckoutApp {
	return &checkoutAppImpl{
		config:        config,
		txRepo:        txRepo,
		cartRepo:      cartRepo,
		customerRepo:  customerRepo,
		addressRepo:   addressRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
	}
}

// Initiate turns the caller's cart into a pending order in one transaction.
func (s *checkoutAppImpl) Initiate(ctx context.Context, identity model.Identity, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	address, ok := shippingAddress(req.ShippingAddress)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrShippingAddressRequired)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Initiate] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	rows, err := s.cartRepo.ListItemsTx(ctx, tx, identity.ID)
	if err != nil {
		logger.Error("[Initiate] list cart items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(rows) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	// prices are snapshotted here and copied into order_items
	total := decimal.Zero
	items := make([]model.OrderItemEntity, 0, len(rows))
	for _, r := range rows {
		total = total.Add(r.Price.Mul(decimal.NewFromInt(int64(r.Quantity))))
		items = append(items, model.OrderItemEntity{ProductID: r.ProductID, Quantity: r.Quantity, Price: r.Price})
	}

	customer, err := customerFor(identity, req.CustomerInfo)
	if err != nil {
		return nil, err
	}
	customerID, err := s.customerRepo.UpsertTx(ctx, tx, customer)
	if err != nil {
		logger.Error("[Initiate] upsert customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	exists, err := s.addressRepo.ProvinceExistsTx(ctx, tx, address.ProvinceID)
	if err != nil {
		logger.Error("[Initiate] check province", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrInvalidProvince)
	}
	addressID, err := s.addressRepo.InsertTx(ctx, tx, address)
	if err != nil {
		logger.Error("[Initiate] insert shipping address", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	customerType := constant.CustomerTypeGuest
	if identity.IsAuthenticated() {
		customerType = constant.CustomerTypeAuthenticated
	}
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		CustomerID:        customerID,
		CustomerType:      customerType,
		Status:            constant.OrderStatusPending,
		TotalPrice:        total,
		ShippingAddressID: addressID,
	})
	if err != nil {
		logger.Error("[Initiate] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[Initiate] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.inventoryRepo.DecrementStockTx(ctx, tx, items); err != nil {
		logger.Error("[Initiate] decrement stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cartRepo.ClearItemsTx(ctx, tx, identity.ID); err != nil {
		logger.Error("[Initiate] clear cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Initiate] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	message := "Order created successfully"
	msgs := notification.OrderMessages(notification.Order{
		ID:            orderID,
		Total:         total,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerType:  string(customerType),
		Event:         notification.OrderPlaced,
	}, s.config.Mail.OperatorAddress)
	if err := notification.Send(ctx, s.publisher, msgs); err != nil {
		logger.Error("[Initiate] notify", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		message += notification.EmailFailedSuffix
	}

	return &model.CheckoutResponse{
		OrderID:      orderID,
		Total:        total.InexactFloat64(),
		CustomerType: string(identity.Type),
		Message:      message,
	}, nil
}

// Complete confirms an order and clears whatever is left in the caller's cart.
func (s *checkoutAppImpl) Complete(ctx context.Context, identity model.Identity, req *model.CompleteCheckoutRequest) (*model.CompleteCheckoutResponse, error) {
	if req.OrderID == 0 {
		return nil, errors.SetCustomError(constant.ErrOrderIDRequired)
	}
	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = constant.PaymentProviderPayFast
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Complete] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderDetailTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[Complete] get order detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}

	if err := s.cartRepo.ClearItemsTx(ctx, tx, identity.ID); err != nil {
		logger.Error("[Complete] clear cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.CompleteOrderTx(ctx, tx, &model.CompleteOrderTxItem{
		OrderID:         order.ID,
		PaymentProvider: paymentMethod,
		MPaymentID:      strconv.FormatUint(order.ID, 10),
	}); err != nil {
		logger.Error("[Complete] update order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Complete] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	message := "Checkout completed successfully"
	msgs := notification.OrderMessages(notification.Order{
		ID:            order.ID,
		Total:         order.TotalPrice,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerType:  string(identity.Type),
		Event:         notification.OrderConfirmed,
	}, s.config.Mail.OperatorAddress)
	if err := notification.Send(ctx, s.publisher, msgs); err != nil {
		logger.Error("[Complete] notify", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		message += notification.EmailFailedSuffix
	}

	return &model.CompleteCheckoutResponse{OrderID: order.ID, Message: message}, nil
}

// shippingAddress returns the entity to insert, or false when a required field is blank.
func shippingAddress(req *model.ShippingAddressRequest) (*model.ShippingAddressEntity, bool) {
	if req == nil {
		return nil, false
	}
	in := model.ShippingAddressRequest{
		ProvinceID: req.ProvinceID,
		City:       strings.TrimSpace(req.City),
		Street:     strings.TrimSpace(req.Street),
		PostalCode: strings.TrimSpace(req.PostalCode),
	}
	if err := validatorx.ValidateStruct(in); err != nil {
		return nil, false
	}
	entity := &model.ShippingAddressEntity{ProvinceID: in.ProvinceID, City: in.City, Street: in.Street}
	if in.PostalCode != "" {
		entity.PostalCode = &in.PostalCode
	}
	return entity, true
}

// customerFor builds the customer record for the order. Guests must supply every field;
// authenticated callers take them from the token and may override name and phone.
func customerFor(identity model.Identity, info *model.CustomerInfo) (*model.CustomerEntity, error) {
	var in model.CustomerInfo
	if info != nil {
		in = model.CustomerInfo{
			Name:  strings.TrimSpace(info.Name),
			Email: strings.TrimSpace(info.Email),
			Phone: strings.TrimSpace(info.Phone),
		}
	}

	if !identity.IsAuthenticated() || identity.Claims == nil {
		if err := validatorx.ValidateStruct(in); err != nil {
			if validatorx.Failed(err, "Email", "email") {
				return nil, errors.SetCustomError(constant.ErrInvalidEmail)
			}
			return nil, errors.SetCustomError(constant.ErrCustomerInfoRequired)
		}
		return &model.CustomerEntity{Name: in.Name, Email: in.Email, Phone: in.Phone}, nil
	}

	c := &model.CustomerEntity{Name: identity.Claims.Name, Email: identity.Claims.Email, Phone: identity.Claims.Phone}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if c.Email == "" {
		return nil, errors.SetCustomError(constant.ErrCustomerInfoRequired)
	}
	return c, nil
}
