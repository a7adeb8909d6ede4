package repositories

import (
	"gorm.io/gorm"
)

// RepositorySet bundles the repositories a multi-entity operation needs,
// all bound to the same transaction.
type RepositorySet struct {
	Users    UserRepository
	Products ProductRepository
	Carts    CartRepository
	Orders   OrderRepository
}

// UnitOfWork executes a function against a RepositorySet as a single atomic
// unit. If fn returns an error, none of its writes are visible afterwards.
// Checkout and order status transitions run through this so that partial
// application (order created but cart not cleared, status flipped but stock
// not adjusted) is never observable.
type UnitOfWork interface {
	Execute(fn func(r RepositorySet) error) error
}

// GormUnitOfWork implements UnitOfWork on top of a GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork.
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn inside db.Transaction with every repository bound to the
// transaction handle.
func (u *GormUnitOfWork) Execute(fn func(r RepositorySet) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(RepositorySet{
			Users:    NewGORMUserRepository(tx),
			Products: NewGORMProductRepository(tx),
			Carts:    NewGORMCartRepository(tx),
			Orders:   NewGORMOrderRepository(tx),
		})
	})
}
