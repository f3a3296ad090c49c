package service

import (
	"context"
)

// Store is the persistence contract shared by every entity service.
type Store[T any] interface {
	Create(ctx context.Context, m *T) error
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// crud holds the operations common to all entities; services add the
// payload mapping on top.
type crud[T any] struct {
	store  Store[T]
	entity string
}

func (c crud[T]) create(ctx context.Context, m T) (*T, error) {
	if err := c.store.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c crud[T]) list(ctx context.Context) ([]T, error) {
	return c.store.List(ctx)
}

func (c crud[T]) get(ctx context.Context, id int64) (*T, error) {
	m, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, translate(c.entity, err)
	}
	return m, nil
}

func (c crud[T]) update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	m, err := c.store.Update(ctx, id, fields)
	if err != nil {
		return nil, translate(c.entity, err)
	}
	return m, nil
}

func (c crud[T]) delete(ctx context.Context, id int64) error {
	return translate(c.entity, c.store.Delete(ctx, id))
}

func (c crud[T]) empty(ctx context.Context) (bool, error) {
	n, err := c.store.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
