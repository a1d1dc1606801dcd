package postgres

import (
	"context"
	"testing"
	"time"

	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_DefaultsAndIncrement(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferenceRepository(db)
	ctx := context.Background()

	_, err := repo.Find(ctx, 7)
	require.ErrorIs(t, err, repository.ErrPreferenceNotFound)

	require.NoError(t, repo.CreateDefault(ctx, 7))
	require.NoError(t, repo.UpdateWeights(ctx, 7, 0.6, 0.4))
	// A second default must not reset the weights.
	require.NoError(t, repo.CreateDefault(ctx, 7))

	pref, err := repo.Find(ctx, 7)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, pref.WeightPrice, 1e-9)
	assert.InDelta(t, 0.4, pref.WeightDistance, 1e-9)
	assert.Equal(t, 0, pref.SelectionCount)

	for want := 1; want <= 3; want++ {
		got, err := repo.IncrementSelectionCount(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = repo.IncrementSelectionCount(ctx, 8)
	assert.ErrorIs(t, err, repository.ErrPreferenceNotFound)
	assert.ErrorIs(t, repo.UpdateWeights(ctx, 8, 0.5, 0.5), repository.ErrPreferenceNotFound)
}

func TestSelectionLogRepository_RecentPreferenceTypes(t *testing.T) {
	db := newTestDB(t)
	repo := NewSelectionLogRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	types := []entity.PreferenceType{
		entity.PreferencePrice, entity.PreferenceDistance, entity.PreferencePrice, entity.PreferencePrice,
	}
	for i, pt := range types {
		require.NoError(t, repo.Insert(ctx, &entity.UserSelectionLog{
			UserID: 1, StoreID: "S1", GoodID: "G1", PreferenceType: pt, Price: 1000,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Insert(ctx, &entity.UserSelectionLog{
		UserID: 2, StoreID: "S1", GoodID: "G1", PreferenceType: entity.PreferenceDistance, Price: 1000,
	}))

	recent, err := repo.RecentPreferenceTypes(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []entity.PreferenceType{
		entity.PreferencePrice, entity.PreferencePrice, entity.PreferenceDistance,
	}, recent)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewPreferenceRepository(db).CreateDefault(ctx, 1))

	boom := errors.New("boom")
	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.NewSelectionLogRepository().Insert(ctx, &entity.UserSelectionLog{
			UserID: 1, StoreID: "S1", GoodID: "G1", PreferenceType: entity.PreferencePrice, Price: 10,
		}))
		if _, err := f.NewPreferenceRepository().IncrementSelectionCount(ctx, 1); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	pref, err := NewPreferenceRepository(db).Find(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, pref.SelectionCount)

	recent, err := NewSelectionLogRepository(db).RecentPreferenceTypes(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
