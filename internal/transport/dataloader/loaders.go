package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/contracts-backend/internal/domain"
)

// newUsersBatchFn resolves user summaries. Unknown ids yield nil, not an
// error: a deleted owner must not fail the whole listing.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.UserSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.UserSummary] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.UserSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.UserSummary, len(users))
		for _, u := range users {
			s := u.Summary()
			byID[u.ID] = &s
		}

		return mapResults(keys, byID, func() *domain.UserSummary { return nil })
	}
}

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}
