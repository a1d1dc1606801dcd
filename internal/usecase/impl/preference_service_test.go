package impl

import (
	"context"
	"testing"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	mockRepo "storeradar/internal/mocks/repository"
	"storeradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type preferenceServiceFixtures struct {
	service        usecase.PreferenceUsecase
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	preferenceRepo *mockRepo.MockPreferenceRepository
	txPrefRepo     *mockRepo.MockPreferenceRepository
	txLogRepo      *mockRepo.MockSelectionLogRepository
}

func createTestPreferenceService(t *testing.T) preferenceServiceFixtures {
	f := preferenceServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		preferenceRepo: mockRepo.NewMockPreferenceRepository(t),
		txPrefRepo:     mockRepo.NewMockPreferenceRepository(t),
		txLogRepo:      mockRepo.NewMockSelectionLogRepository(t),
	}
	f.service = NewPreferenceService(PreferenceServiceParams{
		TxManager:      f.txManager,
		PreferenceRepo: f.preferenceRepo,
		Logger:         newDiscardLogger(),
	})

	return f
}

// runInTx makes the transaction manager invoke the callback with the tx-bound mocks.
func (f preferenceServiceFixtures) runInTx() {
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewPreferenceRepository().Return(f.txPrefRepo)
	f.factory.EXPECT().NewSelectionLogRepository().Return(f.txLogRepo)
}

func typesWithPriceCount(priceCount int) []entity.PreferenceType {
	out := make([]entity.PreferenceType, 0, constants.PreferenceRecomputeEvery)
	for i := 0; i < constants.PreferenceRecomputeEvery; i++ {
		if i < priceCount {
			out = append(out, entity.PreferencePrice)
		} else {
			out = append(out, entity.PreferenceDistance)
		}
	}

	return out
}

func TestSmoothWeights(t *testing.T) {
	tests := []struct {
		name         string
		old          float64
		priceCount   int
		wantPrice    float64
		wantDistance float64
	}{
		{name: "seven of ten price picks", old: 0.5, priceCount: 7, wantPrice: 0.524, wantDistance: 0.476},
		{name: "all price picks", old: 0.5, priceCount: 10, wantPrice: 0.56, wantDistance: 0.44},
		{name: "no price picks", old: 0.5, priceCount: 0, wantPrice: 0.44, wantDistance: 0.56},
		{name: "converged", old: 0.8, priceCount: 10, wantPrice: 0.8, wantDistance: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp, wd := SmoothWeights(tt.old, typesWithPriceCount(tt.priceCount))
			assert.InDelta(t, tt.wantPrice, wp, 1e-9)
			assert.InDelta(t, tt.wantDistance, wd, 1e-9)
			assert.InDelta(t, 1.0, wp+wd, 1e-9)
		})
	}
}

func TestSmoothWeights_ShortWindowUsesFixedDenominator(t *testing.T) {
	// 3 price picks out of a window of 10: target 0.38, blended 0.476.
	wp, wd := SmoothWeights(0.5, []entity.PreferenceType{entity.PreferencePrice, entity.PreferencePrice, entity.PreferencePrice})
	assert.InDelta(t, 0.476, wp, 1e-9)
	assert.InDelta(t, 0.524, wd, 1e-9)
}

func TestPreferenceService_RecordSelection_RecomputesOnlyOnMultiplesOfTen(t *testing.T) {
	input := &usecase.SelectionInput{
		StoreID:        "S1",
		GoodID:         "G1",
		PreferenceType: entity.PreferencePrice,
		Price:          1500,
	}

	for _, count := range []int{9, 11} {
		t.Run("no recompute", func(t *testing.T) {
			fx := createTestPreferenceService(t)
			fx.runInTx()
			ctx := context.Background()

			fx.txLogRepo.EXPECT().Insert(ctx, mock.MatchedBy(func(l *entity.UserSelectionLog) bool {
				return l.UserID == 42 && l.StoreID == "S1" && l.PreferenceType == entity.PreferencePrice && l.Price == 1500
			})).Return(nil).Once()
			fx.txPrefRepo.EXPECT().IncrementSelectionCount(ctx, int64(42)).Return(count, nil).Once()
			want := &entity.UserPreference{UserID: 42, WeightPrice: 0.5, WeightDistance: 0.5, SelectionCount: count}
			fx.txPrefRepo.EXPECT().Find(ctx, int64(42)).Return(want, nil).Once()

			got, err := fx.service.RecordSelection(ctx, "42", input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			fx.txLogRepo.AssertNotCalled(t, "RecentPreferenceTypes", mock.Anything, mock.Anything, mock.Anything)
			fx.txPrefRepo.AssertNotCalled(t, "UpdateWeights", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("recompute at ten", func(t *testing.T) {
		fx := createTestPreferenceService(t)
		fx.runInTx()
		ctx := context.Background()

		fx.txLogRepo.EXPECT().Insert(ctx, mock.Anything).Return(nil).Once()
		fx.txPrefRepo.EXPECT().IncrementSelectionCount(ctx, int64(42)).Return(10, nil).Once()
		fx.txPrefRepo.EXPECT().Find(ctx, int64(42)).
			Return(&entity.UserPreference{UserID: 42, WeightPrice: 0.5, WeightDistance: 0.5, SelectionCount: 10}, nil).Once()
		fx.txLogRepo.EXPECT().RecentPreferenceTypes(ctx, int64(42), constants.PreferenceRecomputeEvery).
			Return(typesWithPriceCount(7), nil).Once()
		fx.txPrefRepo.EXPECT().UpdateWeights(ctx, int64(42), 0.524, 0.476).Return(nil).Once()
		updated := &entity.UserPreference{UserID: 42, WeightPrice: 0.524, WeightDistance: 0.476, SelectionCount: 10}
		fx.txPrefRepo.EXPECT().Find(ctx, int64(42)).Return(updated, nil).Once()

		got, err := fx.service.RecordSelection(ctx, "42", input)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})
}

func TestPreferenceService_RecordSelection_UnknownUser(t *testing.T) {
	fx := createTestPreferenceService(t)
	fx.runInTx()
	ctx := context.Background()

	fx.txLogRepo.EXPECT().Insert(ctx, mock.Anything).Return(nil)
	fx.txPrefRepo.EXPECT().IncrementSelectionCount(ctx, int64(7)).Return(0, repository.ErrPreferenceNotFound)

	_, err := fx.service.RecordSelection(ctx, "7", &usecase.SelectionInput{
		StoreID: "S1", GoodID: "G1", PreferenceType: entity.PreferenceDistance,
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestPreferenceService_RecordSelection_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		input    *usecase.SelectionInput
		wantCode string
	}{
		{
			name:     "non numeric user id",
			userID:   "google-sub-123",
			input:    &usecase.SelectionInput{StoreID: "S1", GoodID: "G1", PreferenceType: entity.PreferencePrice},
			wantCode: "INVALID_USER_ID",
		},
		{
			name:     "unknown preference type",
			userID:   "1",
			input:    &usecase.SelectionInput{StoreID: "S1", GoodID: "G1", PreferenceType: "rating"},
			wantCode: "INVALID_PREFERENCE_TYPE",
		},
		{
			name:     "missing body",
			userID:   "1",
			wantCode: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPreferenceService(t)

			_, err := fx.service.RecordSelection(context.Background(), tt.userID, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestPreferenceService_RecordSelection_RollsBackOnLogFailure(t *testing.T) {
	fx := createTestPreferenceService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewPreferenceRepository().Return(fx.txPrefRepo)
	fx.factory.EXPECT().NewSelectionLogRepository().Return(fx.txLogRepo)

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "insert selection")
	fx.txLogRepo.EXPECT().Insert(ctx, mock.Anything).Return(dbErr)

	_, err := fx.service.RecordSelection(ctx, "1", &usecase.SelectionInput{
		StoreID: "S1", GoodID: "G1", PreferenceType: entity.PreferencePrice,
	})
	assert.ErrorIs(t, err, dbErr)
	fx.txPrefRepo.AssertNotCalled(t, "IncrementSelectionCount", mock.Anything, mock.Anything)
}

func TestPreferenceService_GetPreference(t *testing.T) {
	fx := createTestPreferenceService(t)
	ctx := context.Background()

	want := &entity.UserPreference{UserID: 3, WeightPrice: 0.6, WeightDistance: 0.4, SelectionCount: 20}
	fx.preferenceRepo.EXPECT().Find(ctx, int64(3)).Return(want, nil)
	fx.preferenceRepo.EXPECT().Find(ctx, int64(4)).Return(nil, repository.ErrPreferenceNotFound)

	got, err := fx.service.GetPreference(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = fx.service.GetPreference(ctx, "4")
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestPreferenceService_InitPreference(t *testing.T) {
	fx := createTestPreferenceService(t)
	ctx := context.Background()

	fx.preferenceRepo.EXPECT().CreateDefault(ctx, int64(9)).Return(nil).Once()

	require.NoError(t, fx.service.InitPreference(ctx, "9"))
	assert.Error(t, fx.service.InitPreference(ctx, "abc"))
}
