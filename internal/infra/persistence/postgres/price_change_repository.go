package postgres

import (
	"context"
	"fmt"
	"time"

	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const insertDiffSQL = `
INSERT INTO price_change (good_id, store_id, previous_price, current_price, diff, inspect_day, created_at)
SELECT cur.good_id, cur.store_id, prev.price, cur.price, cur.price - prev.price, cur.inspect_day, ?
FROM prices cur
JOIN prices prev ON prev.good_id = cur.good_id AND prev.store_id = cur.store_id
WHERE cur.inspect_day = ? AND prev.inspect_day = ?`

// The diff filter and ordering are spliced in per direction; both are constants.
// Ranking uses the rounded average that is reported, so goods whose averages
// round to the same integer fall back to good_id order.
const trendSQL = `
SELECT pc.good_id, g.good_name,
       AVG(pc.diff) AS avg_diff, MIN(pc.diff) AS min_diff, MAX(pc.diff) AS max_diff,
       COUNT(*) AS change_count, pc.inspect_day
FROM price_change pc
JOIN goods g ON g.good_id = pc.good_id
WHERE pc.inspect_day = (SELECT MAX(inspect_day) FROM price_change)
  AND %s
GROUP BY pc.good_id, g.good_name, pc.inspect_day
ORDER BY ROUND(AVG(pc.diff)) %s, pc.good_id ASC
LIMIT ?`

type priceChangeRepository struct {
	db *gorm.DB
}

// NewPriceChangeRepository is the constructor for priceChangeRepository.
func NewPriceChangeRepository(db *gorm.DB) repository.PriceChangeRepository {
	return &priceChangeRepository{db: db}
}

// InsertDiff appends one row per (good, store) present on both days. Rerunning
// the same pair appends again.
func (repo *priceChangeRepository) InsertDiff(ctx context.Context, latest, prev entity.InspectDay) (int64, error) {
	result := repo.db.WithContext(ctx).
		Exec(insertDiffSQL, time.Now(), latest.String(), prev.String())
	if result.Error != nil {
		return 0, translateError(result.Error, "priceChangeRepository.InsertDiff",
			"failed to insert price changes "+prev.String()+"->"+latest.String())
	}

	return result.RowsAffected, nil
}

// FindTrend aggregates the latest differenced day. Down ranks the steepest
// average drop first, up the steepest rise.
func (repo *priceChangeRepository) FindTrend(ctx context.Context, direction entity.TrendDirection, limit int) ([]*entity.PriceTrend, error) {
	filter, order := "pc.diff < 0", "ASC"
	if direction == entity.TrendUp {
		filter, order = "pc.diff > 0", "DESC"
	}

	var rows []model.PriceTrendRow
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(fmt.Sprintf(trendSQL, filter, order), limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query price trend")
	}

	trends := make([]*entity.PriceTrend, 0, len(rows))
	for i := range rows {
		trends = append(trends, rows[i].ToDomain())
	}

	return trends, nil
}
