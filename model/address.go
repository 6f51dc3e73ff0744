package model

type Province struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type ProvinceListResponse struct {
	Provinces []Province `json:"provinces"`
}

type ShippingAddressEntity struct {
	ID         uint64  `db:"id"`
	ProvinceID uint64  `db:"province_id"`
	City       string  `db:"city"`
	Street     string  `db:"street_address"`
	PostalCode *string `db:"postal_code"`
}

type ShippingAddressResponse struct {
	AddressID uint64 `json:"address_id"`
	Message   string `json:"message"`
}
