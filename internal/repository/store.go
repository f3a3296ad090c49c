package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/mefdet1/Assignment-5/internal/metrics"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store implements create/read/update/delete for one entity table.
// Every call derives its own session from ctx, so a Store is safe to share
// across requests.
type Store[T any] struct {
	db       *gorm.DB
	entity   string
	preloads []string
}

// NewStore creates a store for T. entity labels metrics; preloads name
// associations loaded on every read.
func NewStore[T any](db *gorm.DB, entity string, preloads ...string) *Store[T] {
	return &Store[T]{
		db:       db,
		entity:   entity,
		preloads: preloads,
	}
}

func (s *Store[T]) session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store[T]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, assoc := range s.preloads {
		tx = tx.Preload(assoc)
	}
	return tx
}

func (s *Store[T]) observe(op string) *prometheus.Timer {
	return prometheus.NewTimer(metrics.DBQueryDuration.WithLabelValues(s.entity, op))
}

// Create inserts m and fills in its store-assigned fields.
func (s *Store[T]) Create(ctx context.Context, m *T) error {
	defer s.observe("create").ObserveDuration()

	if err := s.session(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create %s: %w", s.entity, err)
	}
	return nil
}

// List returns every row in ascending id order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	defer s.observe("list").ObserveDuration()

	out := make([]T, 0)
	if err := s.withPreloads(s.session(ctx)).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return out, nil
}

// Get returns the row with the given id or ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id int64) (*T, error) {
	defer s.observe("get").ObserveDuration()

	return s.get(s.session(ctx), id)
}

func (s *Store[T]) get(tx *gorm.DB, id int64) (*T, error) {
	var m T
	err := s.withPreloads(tx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", s.entity, id, err)
	}
	return &m, nil
}

// Update applies fields (column name to value) to the row with the given id
// and returns the row as stored afterwards. Columns not in fields are left
// untouched. The lookup and the write share one transaction.
func (s *Store[T]) Update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	defer s.observe("update").ObserveDuration()

	var updated *T
	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.get(tx, id)
		if err != nil {
			return err
		}

		if len(fields) == 0 {
			updated = current
			return nil
		}

		if err := tx.Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
			return fmt.Errorf("update %s %d: %w", s.entity, id, err)
		}

		updated, err = s.get(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the row with the given id or returns ErrNotFound.
// Rows referencing it are left in place.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	defer s.observe("delete").ObserveDuration()

	res := s.session(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", s.entity, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of rows.
func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	defer s.observe("count").ObserveDuration()

	var n int64
	if err := s.session(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", s.entity, err)
	}
	return n, nil
}
