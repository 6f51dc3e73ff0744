package cart

import (
	"context"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	cartrepo "github.com/muhammadheryan/storefront/repository/cart"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"go.uber.org/zap"
)

// mysql error number for a failed foreign key constraint on insert
const errForeignKeyViolation = 1452

type CartApp interface {
	AddItem(ctx context.Context, identity model.Identity, req *model.AddCartItemRequest) (*model.CartMutationResponse, error)
	UpdateItem(ctx context.Context, identity model.Identity, req *model.UpdateCartItemRequest) (*model.CartMutationResponse, error)
	GetCart(ctx context.Context, identity model.Identity) (*model.CartResponse, error)
}

type cartAppImpl struct {
	config   *config.Config
	txRepo   txrepo.TxRepository
	cartRepo cartrepo.CartRepository
}

func NewCartApp(config *config.Config, txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository) CartApp {
	return &cartAppImpl{config: config, txRepo: txRepo, cartRepo: cartRepo}
}

// AddItem creates the owner's cart on first use and adds quantity to the line.
func (s *cartAppImpl) AddItem(ctx context.Context, identity model.Identity, req *model.AddCartItemRequest) (*model.CartMutationResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cartRequestError(err)
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddItem] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	cartID, err := s.cartRepo.EnsureCartTx(ctx, tx, identity.ID)
	if err != nil {
		logger.Error("[AddItem] ensure cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cartRepo.AddItemTx(ctx, tx, cartID, req.ProductID, quantity); err != nil {
		if isForeignKeyViolation(err) {
			return nil, errors.SetCustomError(constant.ErrProductNotFound)
		}
		logger.Error("[AddItem] add item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddItem] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CartMutationResponse{
		OwnerType: identity.Type,
		OwnerID:   identity.ID,
		Message:   "Item added to cart",
	}, nil
}

// UpdateItem sets the absolute quantity of a line; zero removes it.
func (s *cartAppImpl) UpdateItem(ctx context.Context, identity model.Identity, req *model.UpdateCartItemRequest) (*model.CartMutationResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cartRequestError(err)
	}
	if req.Quantity == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	quantity := *req.Quantity
	if step := s.config.Cart.QuantityStep; step > 1 && quantity%step != 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateItem] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	cartID, found, err := s.cartRepo.GetCartIDTx(ctx, tx, identity.ID)
	if err != nil {
		logger.Error("[UpdateItem] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrCartNotFound)
	}

	message := "Cart updated"
	if quantity == 0 {
		err = s.cartRepo.DeleteItemTx(ctx, tx, cartID, req.ProductID)
		message = "Item removed from cart"
	} else {
		err = s.cartRepo.SetItemQuantityTx(ctx, tx, cartID, req.ProductID, quantity)
	}
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errors.SetCustomError(constant.ErrProductNotFound)
		}
		logger.Error("[UpdateItem] write item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateItem] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CartMutationResponse{
		OwnerType: identity.Type,
		OwnerID:   identity.ID,
		Message:   message,
	}, nil
}

func (s *cartAppImpl) GetCart(ctx context.Context, identity model.Identity) (*model.CartResponse, error) {
	rows, err := s.cartRepo.ListItems(ctx, identity.ID)
	if err != nil {
		logger.Error("[GetCart] list items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.CartItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, model.CartItem{
			CartItemID:  r.CartItemID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			ProductCode: r.ProductCode,
			Quantity:    r.Quantity,
			Price:       r.Price.InexactFloat64(),
		})
	}

	resp := &model.CartResponse{OwnerType: identity.Type, Items: items}
	if !identity.IsAuthenticated() {
		resp.GuestID = identity.ID
	}
	return resp, nil
}

// cartRequestError maps a validation failure to the product or quantity error.
func cartRequestError(err error) error {
	if validatorx.Failed(err, "ProductID", "") {
		return errors.SetCustomError(constant.ErrProductIDRequired)
	}
	return errors.SetCustomError(constant.ErrInvalidQuantity)
}

func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return stderrors.As(err, &mysqlErr) && mysqlErr.Number == errForeignKeyViolation
}
