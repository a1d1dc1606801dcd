package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	txManager      repository.TransactionManager
	preferenceRepo repository.PreferenceRepository
	logger         *slog.Logger
}

// PreferenceServiceParams holds dependencies for PreferenceService, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	PreferenceRepo repository.PreferenceRepository
	Logger         *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		txManager:      params.TxManager,
		preferenceRepo: params.PreferenceRepo,
		logger:         params.Logger,
	}
}

// RecordSelection runs log, increment and optional recompute in one transaction,
// so a failed recompute never leaves a counted but unlogged selection.
func (s *preferenceService) RecordSelection(ctx context.Context, userID string, input *usecase.SelectionInput) (*entity.UserPreference, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("selection is required")
	}
	if !input.PreferenceType.Valid() {
		return nil, domainerrors.ErrInvalidPreferenceType.WithDetails(string(input.PreferenceType))
	}

	var pref *entity.UserPreference
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		prefRepo := factory.NewPreferenceRepository()
		logRepo := factory.NewSelectionLogRepository()

		if err := logRepo.Insert(ctx, &entity.UserSelectionLog{
			UserID:         id,
			StoreID:        input.StoreID,
			GoodID:         input.GoodID,
			PreferenceType: input.PreferenceType,
			Price:          input.Price,
			CreatedAt:      time.Now(),
		}); err != nil {
			return err
		}

		count, err := prefRepo.IncrementSelectionCount(ctx, id)
		if err != nil {
			return err
		}

		if count%constants.PreferenceRecomputeEvery == 0 {
			if err := s.recomputeWeights(ctx, prefRepo, logRepo, id); err != nil {
				return err
			}
		}

		pref, err = prefRepo.Find(ctx, id)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, domainerrors.ErrPreferenceNotFound.WithDetails("user " + userID)
		}

		return nil, err
	}

	return pref, nil
}

func (s *preferenceService) recomputeWeights(
	ctx context.Context,
	prefRepo repository.PreferenceRepository,
	logRepo repository.SelectionLogRepository,
	userID int64,
) error {
	current, err := prefRepo.Find(ctx, userID)
	if err != nil {
		return err
	}

	recent, err := logRepo.RecentPreferenceTypes(ctx, userID, constants.PreferenceRecomputeEvery)
	if err != nil {
		return err
	}

	weightPrice, weightDistance := SmoothWeights(current.WeightPrice, recent)
	if err := prefRepo.UpdateWeights(ctx, userID, weightPrice, weightDistance); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Preference weights recomputed",
		slog.Int64("user_id", userID),
		slog.Float64("w_price_old", current.WeightPrice),
		slog.Float64("w_price", weightPrice),
		slog.Float64("w_distance", weightDistance),
	)

	return nil
}

// SmoothWeights blends the stored price weight toward the target implied by the
// recent window. The target is 0.2 + 0.6 * (price picks / window size), the
// blend uses alpha 0.2, and the result is rounded to 3 decimals before the
// distance weight is derived as its complement.
func SmoothWeights(oldWeightPrice float64, recent []entity.PreferenceType) (weightPrice, weightDistance float64) {
	priceCount := 0
	for _, t := range recent {
		if t == entity.PreferencePrice {
			priceCount++
		}
	}

	alpha := decimal.NewFromFloat(constants.PreferenceSmoothingAlpha)
	ratio := decimal.NewFromInt(int64(priceCount)).Div(decimal.NewFromInt(constants.PreferenceRecomputeEvery))
	target := decimal.NewFromFloat(constants.PreferenceTargetFloor).
		Add(ratio.Mul(decimal.NewFromFloat(constants.PreferenceTargetSpan)))

	blended := decimal.NewFromFloat(oldWeightPrice).Mul(decimal.NewFromInt(1).Sub(alpha)).
		Add(target.Mul(alpha)).
		Round(3)

	weightPrice = blended.InexactFloat64()
	weightDistance = decimal.NewFromInt(1).Sub(blended).InexactFloat64()

	return weightPrice, weightDistance
}

func (s *preferenceService) GetPreference(ctx context.Context, userID string) (*entity.UserPreference, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	pref, err := s.preferenceRepo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, domainerrors.ErrPreferenceNotFound.WithDetails("user " + userID)
		}

		return nil, err
	}

	return pref, nil
}

func (s *preferenceService) InitPreference(ctx context.Context, userID string) error {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}

	return s.preferenceRepo.CreateDefault(ctx, id)
}

// parseUserID accepts the decimal integer form of a user primary key.
func parseUserID(userID string) (int64, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidUserID.WithDetails("subject " + strconv.Quote(userID) + " is not an integer")
	}

	return id, nil
}
