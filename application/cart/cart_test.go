package cart_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	appcart "github.com/muhammadheryan/storefront/application/cart"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	cartmocks "github.com/muhammadheryan/storefront/mocks/repository/cart"
	txmocks "github.com/muhammadheryan/storefront/mocks/repository/tx"
	"github.com/muhammadheryan/storefront/model"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var guest = model.Identity{Type: model.IdentityGuest, ID: "guest_0000aaaa", Source: model.SourceSession}

func intPtr(v int) *int { return &v }

func checkErr(t *testing.T, err error, wantErr bool, errCode constant.ErrorType) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("error = %v, wantErr %v", err, wantErr)
	}
	if !wantErr {
		return
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestCartApp_AddItem(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		cartRepo *cartmocks.CartRepository
	}
	tests := []struct {
		name     string
		req      *model.AddCartItemRequest
		mockCall func(f fields)
		want     *model.CartMutationResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: default quantity is one",
			req:  &model.AddCartItemRequest{ProductID: 7},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("EnsureCartTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(3), nil).Once()
				f.cartRepo.On("AddItemTx", mock.Anything, tx, uint64(3), uint64(7), 1).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.CartMutationResponse{OwnerType: model.IdentityGuest, OwnerID: "guest_0000aaaa", Message: "Item added to cart"},
		},
		{
			name: "success: explicit quantity",
			req:  &model.AddCartItemRequest{ProductID: 7, Quantity: intPtr(3)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("EnsureCartTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(3), nil).Once()
				f.cartRepo.On("AddItemTx", mock.Anything, tx, uint64(3), uint64(7), 3).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.CartMutationResponse{OwnerType: model.IdentityGuest, OwnerID: "guest_0000aaaa", Message: "Item added to cart"},
		},
		{
			name:    "error: missing product id",
			req:     &model.AddCartItemRequest{Quantity: intPtr(1)},
			wantErr: true,
			errCode: constant.ErrProductIDRequired,
		},
		{
			name:    "error: zero quantity",
			req:     &model.AddCartItemRequest{ProductID: 7, Quantity: intPtr(0)},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: missing product id reported before quantity",
			req:     &model.AddCartItemRequest{Quantity: intPtr(-2)},
			wantErr: true,
			errCode: constant.ErrProductIDRequired,
		},
		{
			name: "error: unknown product",
			req:  &model.AddCartItemRequest{ProductID: 999},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("EnsureCartTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(3), nil).Once()
				f.cartRepo.On("AddItemTx", mock.Anything, tx, uint64(3), uint64(999), 1).
					Return(&mysql.MySQLError{Number: 1452, Message: "foreign key"}).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name: "error: ensure cart fails",
			req:  &model.AddCartItemRequest{ProductID: 7},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("EnsureCartTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(0), errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: begin tx fails",
			req:  &model.AddCartItemRequest{ProductID: 7},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("pool exhausted")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{txRepo: txmocks.NewTxRepository(t), cartRepo: cartmocks.NewCartRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appcart.NewCartApp(&config.Config{}, f.txRepo, f.cartRepo)

			got, err := app.AddItem(context.Background(), guest, tt.req)
			checkErr(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AddItem() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCartApp_UpdateItem(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		cartRepo *cartmocks.CartRepository
	}
	tests := []struct {
		name     string
		step     int
		req      *model.UpdateCartItemRequest
		mockCall func(f fields)
		want     *model.CartMutationResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: positive quantity replaces",
			req:  &model.UpdateCartItemRequest{ProductID: 7, Quantity: intPtr(5)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("GetCartIDTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(3), true, nil).Once()
				f.cartRepo.On("SetItemQuantityTx", mock.Anything, tx, uint64(3), uint64(7), 5).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.CartMutationResponse{OwnerType: model.IdentityGuest, OwnerID: "guest_0000aaaa", Message: "Cart updated"},
		},
		{
			name: "success: zero deletes the line",
			req:  &model.UpdateCartItemRequest{ProductID: 7, Quantity: intPtr(0)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("GetCartIDTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(3), true, nil).Once()
				f.cartRepo.On("DeleteItemTx", mock.Anything, tx, uint64(3), uint64(7)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.CartMutationResponse{OwnerType: model.IdentityGuest, OwnerID: "guest_0000aaaa", Message: "Item removed from cart"},
		},
		{
			name: "success: multiple of configured step",
			step: 10,
			req:  &model.UpdateCartItemRequest{ProductID: 7, Quantity: intPtr(20)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("GetCartIDTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(3), true, nil).Once()
				f.cartRepo.On("SetItemQuantityTx", mock.Anything, tx, uint64(3), uint64(7), 20).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.CartMutationResponse{OwnerType: model.IdentityGuest, OwnerID: "guest_0000aaaa", Message: "Cart updated"},
		},
		{
			name:    "error: not a multiple of configured step",
			step:    10,
			req:     &model.UpdateCartItemRequest{ProductID: 7, Quantity: intPtr(15)},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: negative quantity",
			req:     &model.UpdateCartItemRequest{ProductID: 7, Quantity: intPtr(-1)},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: quantity missing",
			req:     &model.UpdateCartItemRequest{ProductID: 7},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: cart does not exist",
			req:  &model.UpdateCartItemRequest{ProductID: 7, Quantity: intPtr(1)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("GetCartIDTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(0), false, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCartNotFound,
		},
		{
			name: "error: commit fails",
			req:  &model.UpdateCartItemRequest{ProductID: 7, Quantity: intPtr(1)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.cartRepo.On("GetCartIDTx", mock.Anything, tx, "guest_0000aaaa").Return(uint64(3), true, nil).Once()
				f.cartRepo.On("SetItemQuantityTx", mock.Anything, tx, uint64(3), uint64(7), 1).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{txRepo: txmocks.NewTxRepository(t), cartRepo: cartmocks.NewCartRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			cfg := &config.Config{Cart: config.CartConfig{QuantityStep: tt.step}}
			app := appcart.NewCartApp(cfg, f.txRepo, f.cartRepo)

			got, err := app.UpdateItem(context.Background(), guest, tt.req)
			checkErr(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("UpdateItem() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCartApp_GetCart(t *testing.T) {
	user := model.Identity{Type: model.IdentityAuthenticated, ID: "sub-1", Source: model.SourceBearer}

	tests := []struct {
		name     string
		identity model.Identity
		mockCall func(cartRepo *cartmocks.CartRepository)
		want     *model.CartResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: guest cart echoes guest id",
			identity: guest,
			mockCall: func(cartRepo *cartmocks.CartRepository) {
				cartRepo.On("ListItems", mock.Anything, "guest_0000aaaa").Return([]model.CartItemRow{
					{CartItemID: 1, ProductID: 7, ProductName: "Mug", ProductCode: "MUG", Quantity: 3, Price: decimal.RequireFromString("12.50")},
				}, nil).Once()
			},
			want: &model.CartResponse{
				OwnerType: model.IdentityGuest,
				GuestID:   "guest_0000aaaa",
				Items: []model.CartItem{
					{CartItemID: 1, ProductID: 7, ProductName: "Mug", ProductCode: "MUG", Quantity: 3, Price: 12.5},
				},
			},
		},
		{
			name:     "success: empty cart is an empty list",
			identity: user,
			mockCall: func(cartRepo *cartmocks.CartRepository) {
				cartRepo.On("ListItems", mock.Anything, "sub-1").Return([]model.CartItemRow{}, nil).Once()
			},
			want: &model.CartResponse{OwnerType: model.IdentityAuthenticated, Items: []model.CartItem{}},
		},
		{
			name:     "error: repository failure",
			identity: guest,
			mockCall: func(cartRepo *cartmocks.CartRepository) {
				cartRepo.On("ListItems", mock.Anything, "guest_0000aaaa").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := cartmocks.NewCartRepository(t)
			tt.mockCall(cartRepo)
			app := appcart.NewCartApp(&config.Config{}, txmocks.NewTxRepository(t), cartRepo)

			got, err := app.GetCart(context.Background(), tt.identity)
			checkErr(t, err, tt.wantErr, tt.errCode)
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetCart() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
