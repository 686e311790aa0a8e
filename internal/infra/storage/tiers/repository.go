package tiers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	"github.com/yydtours/YYD-BookingService/pkg/dbmetrics"
	"github.com/yydtours/YYD-BookingService/pkg/psqlbuilder"
)

var tierColumns = []string{
	"id",
	"tour_id",
	"season",
	"label",
	"min_people",
	"max_people",
	"price_cents",
	"price_per_person",
	"created_at",
	"updated_at",
}

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий сезонных ценовых tier-ов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория tier-ов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByTour получает все tier-ы тура (все сезоны)
func (r *Repository) ListByTour(ctx context.Context, tourID int64) ([]*domain.SeasonPriceTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tierColumns...).
		From("season_price_tiers").
		Where(squirrel.Eq{"tour_id": tourID}).
		OrderBy("season ASC, min_people ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTour - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTour - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTiers(rows, "ListByTour")
}

// ReplaceForSeason заменяет таблицу tier-ов тура для одного сезона.
// Вызывается внутри транзакции после валидации таблицы сервисом каталога:
// старые строки сезона удаляются, новые вставляются одним батчем.
func (r *Repository) ReplaceForSeason(ctx context.Context, tourID int64, season domain.Season, tiers []*domain.SeasonPriceTier) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("season_price_tiers").
		Where(squirrel.Eq{"tour_id": tourID, "season": season}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForSeason - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForSeason - execute delete: %v", ErrExecQuery, err)
	}

	if len(tiers) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("season_price_tiers").
		Columns("tour_id", "season", "label", "min_people", "max_people", "price_cents", "price_per_person")

	for _, tier := range tiers {
		insertBuilder = insertBuilder.Values(
			tourID,
			season,
			tier.Label,
			tier.MinPeople,
			tier.MaxPeople,
			tier.Price,
			tier.PricePerPerson,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForSeason - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForSeason - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanTiers(rows *sql.Rows, op string) ([]*domain.SeasonPriceTier, error) {
	tiers := make([]*domain.SeasonPriceTier, 0)

	for rows.Next() {
		var tier domain.SeasonPriceTier
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&tier.ID,
			&tier.TourID,
			&tier.Season,
			&tier.Label,
			&tier.MinPeople,
			&tier.MaxPeople,
			&tier.Price,
			&tier.PricePerPerson,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		tier.CreatedAt = createdAt.Time
		tier.UpdatedAt = updatedAt.Time
		tiers = append(tiers, &tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return tiers, nil
}
