package address

import (
	"context"
	"strings"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	addressrepo "github.com/muhammadheryan/storefront/repository/address"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"go.uber.org/zap"
)

type AddressApp interface {
	ListProvinces(ctx context.Context) (*model.ProvinceListResponse, error)
	CreateShippingAddress(ctx context.Context, req *model.ShippingAddressRequest) (*model.ShippingAddressResponse, error)
}

type addressAppImpl struct {
	addressRepo addressrepo.AddressRepository
}

func NewAddressApp(addressRepo addressrepo.AddressRepository) AddressApp {
	return &addressAppImpl{addressRepo: addressRepo}
}

func (s *addressAppImpl) ListProvinces(ctx context.Context) (*model.ProvinceListResponse, error) {
	provinces, err := s.addressRepo.ListProvinces(ctx)
	if err != nil {
		logger.Error("[ListProvinces] error addressRepo.ListProvinces", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if provinces == nil {
		provinces = []model.Province{}
	}
	return &model.ProvinceListResponse{Provinces: provinces}, nil
}

func (s *addressAppImpl) CreateShippingAddress(ctx context.Context, req *model.ShippingAddressRequest) (*model.ShippingAddressResponse, error) {
	in := model.ShippingAddressRequest{
		ProvinceID: req.ProvinceID,
		City:       strings.TrimSpace(req.City),
		Street:     strings.TrimSpace(req.Street),
		PostalCode: strings.TrimSpace(req.PostalCode),
	}
	if err := validatorx.ValidateStruct(in); err != nil {
		return nil, errors.SetCustomError(constant.ErrMissingRequiredFields)
	}

	exists, err := s.addressRepo.ProvinceExists(ctx, req.ProvinceID)
	if err != nil {
		logger.Error("[CreateShippingAddress] error addressRepo.ProvinceExists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrInvalidProvince)
	}

	entity := &model.ShippingAddressEntity{ProvinceID: in.ProvinceID, City: in.City, Street: in.Street}
	if in.PostalCode != "" {
		entity.PostalCode = &in.PostalCode
	}
	id, err := s.addressRepo.Insert(ctx, entity)
	if err != nil {
		logger.Error("[CreateShippingAddress] error addressRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ShippingAddressResponse{AddressID: id, Message: "Shipping address created successfully"}, nil
}
