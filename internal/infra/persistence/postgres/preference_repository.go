package postgres

import (
	"context"
	"time"

	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"
	"storeradar/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferenceRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
		q:  query.Use(db),
	}
}

func (repo *preferenceRepository) CreateDefault(ctx context.Context, userID int64) error {
	prefM := &model.UserPreferenceModel{
		ID:        userID,
		WPrice:    0.5,
		WDistance: 0.5,
		UpdatedAt: time.Now(),
	}

	err := repo.q.UserPreferenceModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(prefM)
	if err != nil {
		return translateError(err, "preferenceRepository.CreateDefault", "failed to create default preference")
	}

	return nil
}

func (repo *preferenceRepository) Find(ctx context.Context, userID int64) (*entity.UserPreference, error) {
	prefM, err := repo.q.UserPreferenceModel.WithContext(ctx).
		Where(repo.q.UserPreferenceModel.ID.Eq(userID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find preference")
	}

	return prefM.ToDomain(), nil
}

// IncrementSelectionCount bumps the counter in one statement so concurrent
// selections never lose an increment. Raw SQL because the generated API has no
// UPDATE ... RETURNING.
func (repo *preferenceRepository) IncrementSelectionCount(ctx context.Context, userID int64) (int, error) {
	var counts []int
	err := repo.db.WithContext(ctx).
		Raw(`UPDATE user_preferences
SET selection_count = selection_count + 1, updated_at = ?
WHERE id = ?
RETURNING selection_count`, time.Now(), userID).
		Scan(&counts).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment selection count")
	}
	if len(counts) == 0 {
		return 0, repository.ErrPreferenceNotFound
	}

	return counts[0], nil
}

func (repo *preferenceRepository) UpdateWeights(ctx context.Context, userID int64, weightPrice, weightDistance float64) error {
	u := repo.q.UserPreferenceModel
	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(userID)).
		UpdateSimple(
			u.WPrice.Value(weightPrice),
			u.WDistance.Value(weightDistance),
			u.UpdatedAt.Value(time.Now()),
		)
	if err != nil {
		return translateError(err, "preferenceRepository.UpdateWeights", "failed to update preference weights")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPreferenceNotFound
	}

	return nil
}

type selectionLogRepository struct {
	q *query.Query
}

// NewSelectionLogRepository is the constructor for selectionLogRepository.
func NewSelectionLogRepository(db *gorm.DB) repository.SelectionLogRepository {
	return &selectionLogRepository{
		q: query.Use(db),
	}
}

func (repo *selectionLogRepository) Insert(ctx context.Context, log *entity.UserSelectionLog) error {
	logM := model.FromSelectionLogDomain(log)
	if logM.CreatedAt.IsZero() {
		logM.CreatedAt = time.Now()
	}

	if err := repo.q.UserSelectionLogModel.WithContext(ctx).Create(logM); err != nil {
		return translateError(err, "selectionLogRepository.Insert", "failed to insert selection log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// RecentPreferenceTypes orders by created_at then id so same-instant rows keep insertion order.
func (repo *selectionLogRepository) RecentPreferenceTypes(ctx context.Context, userID int64, limit int) ([]entity.PreferenceType, error) {
	l := repo.q.UserSelectionLogModel
	var types []string
	err := l.WithContext(ctx).
		Where(l.UserID.Eq(userID)).
		Order(l.CreatedAt.Desc(), l.ID.Desc()).
		Limit(limit).
		Pluck(l.PreferenceType, &types)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read recent selections")
	}

	result := make([]entity.PreferenceType, 0, len(types))
	for _, t := range types {
		result = append(result, entity.PreferenceType(t))
	}

	return result, nil
}
