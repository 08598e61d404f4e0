// Package store persists the storefront schema through GORM. A Store is an
// explicit handle around one *gorm.DB session; handles created inside
// Transaction share that transaction.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying session for callers that need raw queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates every table of the schema. Parents are listed
// together with their children so GORM can order them and emit the foreign keys.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Variant{},
		&models.Order{},
		&models.OrderItem{},
		&models.Cart{},
		&models.CartItem{},
	)
}

// Transaction runs fn inside a database transaction. Any error returned by fn
// rolls back every write made through the handle passed to it.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// translate maps driver errors onto the model error taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrConstraintViolation),
		errors.Is(err, models.ErrValidation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", models.ErrConstraintViolation, err)
	}

	// SQLite does not go through gorm's translator for every code.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "violates foreign key constraint") {
		return fmt.Errorf("%w: %v", models.ErrConstraintViolation, err)
	}
	return err
}

// update writes every column of value except the primary key and creation
// time. Unlike Save it never falls back to an insert.
func (s *Store) update(ctx context.Context, value interface{}) error {
	res := s.conn(ctx).Model(value).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(value)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// mustExist fails with ErrConstraintViolation when no row of model has id.
func (s *Store) mustExist(ctx context.Context, model interface{}, id uint, what string) error {
	var n int64
	if err := s.conn(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return translate(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d does not exist", models.ErrConstraintViolation, what, id)
	}
	return nil
}

func (s *Store) first(ctx context.Context, dest interface{}, preloads []string, query interface{}, args ...interface{}) error {
	q := s.conn(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	return translate(q.Where(query, args...).First(dest).Error)
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
