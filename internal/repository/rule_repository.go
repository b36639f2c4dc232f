package repository

import (
	"context"

	"ccc-smartassist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RuleRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRuleRepository(db *pgxpool.Pool, logger *zap.Logger) *RuleRepository {
	return &RuleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RuleRepository) Create(ctx context.Context, rule *models.ManualRule) error {
	query := squirrel.Insert("manual_rules").
		Columns("id", "trigger", "response", "active").
		Values(rule.ID, rule.Trigger, rule.Response, rule.Active).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *RuleRepository) List(ctx context.Context) ([]models.ManualRule, error) {
	return r.list(ctx, nil)
}

// ListActive returns the rules eligible for matching, in insertion order.
// That order is the implicit rule priority: first match wins.
func (r *RuleRepository) ListActive(ctx context.Context) ([]models.ManualRule, error) {
	return r.list(ctx, squirrel.Eq{"active": true})
}

func (r *RuleRepository) list(ctx context.Context, where squirrel.Eq) ([]models.ManualRule, error) {
	query := squirrel.Select("id", "trigger", "response", "active").
		From("manual_rules").
		OrderBy("seq ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []models.ManualRule
	for rows.Next() {
		var rule models.ManualRule
		if err := rows.Scan(&rule.ID, &rule.Trigger, &rule.Response, &rule.Active); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *RuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("manual_rules").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *RuleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM manual_rules").Scan(&count)
	return count, err
}
