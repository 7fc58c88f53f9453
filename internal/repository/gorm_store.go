package repository

import (
	"errors"

	"gorm.io/gorm"
)

// GormStore is the gorm-backed Store implementation. Its methods are
// spread across the *_store.go files in this package, one file per
// entity.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// notFound translates gorm's sentinel into the package sentinel so
// callers never depend on the ORM.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
