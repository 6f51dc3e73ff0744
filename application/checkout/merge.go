package checkout

import (
	"context"
	"strings"

	appidentity "github.com/muhammadheryan/storefront/application/identity"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// MergeCart moves a guest cart into the caller's cart, summing quantities of shared
// products, then deletes the guest cart. All or nothing.
func (s *checkoutAppImpl) MergeCart(ctx context.Context, identity model.Identity, guestID string) (*model.MergeCartResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	guestID = strings.TrimSpace(guestID)
	if guestID == "" {
		return nil, errors.SetCustomError(constant.ErrGuestIDRequired)
	}
	if !appidentity.IsGuestID(guestID) {
		return nil, errors.SetCustomError(constant.ErrInvalidGuestID)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[MergeCart] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	guestCartID, found, err := s.cartRepo.GetCartIDTx(ctx, tx, guestID)
	if err != nil {
		logger.Error("[MergeCart] get guest cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return &model.MergeCartResponse{Merged: false, Message: "No guest cart to merge"}, nil
	}

	userCartID, err := s.cartRepo.EnsureCartTx(ctx, tx, identity.ID)
	if err != nil {
		logger.Error("[MergeCart] ensure user cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := s.cartRepo.ListItemsTx(ctx, tx, guestID)
	if err != nil {
		logger.Error("[MergeCart] list guest items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, it := range items {
		if err := s.cartRepo.AddItemTx(ctx, tx, userCartID, it.ProductID, it.Quantity); err != nil {
			logger.Error("[MergeCart] add item", zap.Uint64("product_id", it.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.cartRepo.DeleteCartTx(ctx, tx, guestCartID); err != nil {
		logger.Error("[MergeCart] delete guest cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[MergeCart] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[MergeCart] merged guest cart", zap.String("user_id", identity.ID), zap.Int("lines", len(items)))
	return &model.MergeCartResponse{Merged: true, Message: "Cart merged successfully"}, nil
}

// GuestToAuth merges the guest cart but never fails the conversion because of it.
func (s *checkoutAppImpl) GuestToAuth(ctx context.Context, identity model.Identity, guestID string) (*model.GuestToAuthResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	guestID = strings.TrimSpace(guestID)
	if guestID == "" {
		return nil, errors.SetCustomError(constant.ErrGuestIDRequired)
	}
	if !appidentity.IsGuestID(guestID) {
		return nil, errors.SetCustomError(constant.ErrInvalidGuestID)
	}

	if _, err := s.MergeCart(ctx, identity, guestID); err != nil {
		logger.Warn("[GuestToAuth] merge guest cart", zap.String("user_id", identity.ID), zap.String("error", err.Error()))
	}

	return &model.GuestToAuthResponse{
		UserID:  identity.ID,
		Message: "Successfully converted to authenticated checkout",
	}, nil
}
