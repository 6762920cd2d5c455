package postgres

import (
	"gorm.io/gorm"

	"urbanmart/internal/adapters/out/postgres/addressrepo"
	"urbanmart/internal/adapters/out/postgres/cartrepo"
	"urbanmart/internal/adapters/out/postgres/customerrepo"
	"urbanmart/internal/adapters/out/postgres/deliveryrepo"
	"urbanmart/internal/adapters/out/postgres/hiringrepo"
	"urbanmart/internal/adapters/out/postgres/orderrepo"
	"urbanmart/internal/adapters/out/postgres/productrepo"
	"urbanmart/internal/adapters/out/postgres/userrepo"
)

// Migrate creates or updates every table the adapters persist to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&addressrepo.AddressDTO{},
		&productrepo.ProductDTO{},
		&cartrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&customerrepo.RelationDTO{},
		&deliveryrepo.OrganizationDTO{},
		&deliveryrepo.AssignmentDTO{},
		&hiringrepo.RequestDTO{},
	)
}
