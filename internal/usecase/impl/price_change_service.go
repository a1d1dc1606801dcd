package impl

import (
	"context"
	"log/slog"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	"storeradar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// priceChangeService implements the PriceChangeUsecase interface.
type priceChangeService struct {
	priceRepo       repository.PriceRepository
	priceChangeRepo repository.PriceChangeRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// PriceChangeServiceParams holds dependencies for PriceChangeService, injected by Fx.
type PriceChangeServiceParams struct {
	fx.In

	PriceRepo       repository.PriceRepository
	PriceChangeRepo repository.PriceChangeRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewPriceChangeService is the constructor for priceChangeService.
func NewPriceChangeService(params PriceChangeServiceParams) usecase.PriceChangeUsecase {
	return &priceChangeService{
		priceRepo:       params.PriceRepo,
		priceChangeRepo: params.PriceChangeRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

// SyncPriceChanges is not idempotent: each run appends a fresh set of rows.
func (s *priceChangeService) SyncPriceChanges(ctx context.Context, latest entity.InspectDay) (int64, error) {
	prev, err := s.priceRepo.FindPrevDay(ctx, latest)
	if err != nil {
		if errors.Is(err, repository.ErrNoPreviousInspectDay) {
			return 0, domainerrors.ErrNoPreviousInspectDay.WithDetails("no prices before " + latest.String())
		}

		return 0, err
	}

	inserted, err := s.priceChangeRepo.InsertDiff(ctx, latest, prev)
	if err != nil {
		return 0, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.InfoContext(ctx, "Price changes computed",
		slog.String("inspect_day", latest.String()),
		slog.String("previous_day", prev.String()),
		slog.Int64("inserted", inserted),
	)

	if inserted > 0 {
		event := &service.PriceChangeEvent{
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			InspectDay:  latest.String(),
			PreviousDay: prev.String(),
			Inserted:    inserted,
		}
		if err := s.publisher.PublishPriceChangeEvent(ctx, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish price change event",
				slog.String("inspect_day", latest.String()),
				slog.Any("error", err),
			)
		}
	}

	return inserted, nil
}

func (s *priceChangeService) GetPriceTrend(ctx context.Context, direction string) ([]*entity.PriceTrend, error) {
	trends, err := s.priceChangeRepo.FindTrend(ctx, entity.ParseTrendDirection(direction), constants.PriceTrendLimit)
	if err != nil {
		return nil, err
	}

	return trends, nil
}
