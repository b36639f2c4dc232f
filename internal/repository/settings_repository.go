package repository

import (
	"context"

	"ccc-smartassist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// settingsRowID pins the singleton row.
const settingsRowID = 1

type SettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (*models.SystemSettings, error) {
	query := squirrel.Select("id", "system_name", "theme_color", "api_key", "updated_at").
		From("settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var settings models.SystemSettings
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&settings.ID, &settings.SystemName, &settings.ThemeColor, &settings.APIKey, &settings.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *SettingsRepository) Update(ctx context.Context, systemName, themeColor, apiKey string) error {
	query := squirrel.Update("settings").
		Set("system_name", systemName).
		Set("theme_color", themeColor).
		Set("api_key", apiKey).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": settingsRowID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
