package product

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	productRepo "github.com/muhammadheryan/storefront/repository/product"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

const maxPerPage = 100

type ProductApp interface {
	ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error)
	Review(ctx context.Context, id uint64, req *model.ReviewRequest) (*model.ReviewResponse, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for i := range items {
		if items[i].Price.Valid {
			price := items[i].Price.Decimal.InexactFloat64()
			items[i].PriceValue = &price
		}
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	images, err := s.productRepo.ListImages(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.ListImages", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	result.Images = images
	if result.Price.Valid {
		price := result.Price.Decimal.InexactFloat64()
		result.PriceValue = &price
	}

	return result, nil
}

// Review stores a 0 to 5 rating on the product.
func (s *productAppImpl) Review(ctx context.Context, id uint64, req *model.ReviewRequest) (*model.ReviewResponse, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(req.Rating.String()), 64)
	if err != nil || math.IsNaN(rating) || rating < 0 || rating > 5 {
		return nil, errors.SetCustomError(constant.ErrInvalidRating)
	}

	found, err := s.productRepo.UpdateRating(ctx, id, rating)
	if err != nil {
		logger.Error("[Review] error productRepo.UpdateRating", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	return &model.ReviewResponse{Rating: rating, Message: "Review added successfully"}, nil
}
