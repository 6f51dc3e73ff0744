package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ProductListItem struct {
	ID           uint64              `db:"id" json:"id"`
	Code         string              `db:"product_code" json:"code"`
	Name         string              `db:"name" json:"name"`
	Type         string              `db:"type" json:"type"`
	Description  string              `db:"description" json:"description,omitempty"`
	Price        decimal.NullDecimal `db:"price" json:"-"`
	PriceValue   *float64            `db:"-" json:"price"`
	PrimaryImage string              `db:"primary_image" json:"image,omitempty"`
}

type ProductDetail struct {
	ID          uint64              `db:"id" json:"id"`
	Code        string              `db:"product_code" json:"code"`
	Name        string              `db:"name" json:"name"`
	Type        string              `db:"type" json:"type"`
	Description string              `db:"description" json:"description,omitempty"`
	Price       decimal.NullDecimal `db:"price" json:"-"`
	PriceValue  *float64            `db:"-" json:"price"`
	Rating      *float64            `db:"rating" json:"rating,omitempty"`
	Stock       int64               `db:"stock" json:"stock"`
	Images      []string            `db:"-" json:"images"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

type ReviewRequest struct {
	Rating json.Number `json:"rating"`
}

type ReviewResponse struct {
	Rating  float64 `json:"rating"`
	Message string  `json:"message"`
}
