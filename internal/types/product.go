package types

import "github.com/shopspring/decimal"

type Product struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	PackageSize string          `json:"package_size"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}
