package repository

import (
	"context"
	"errors"

	"ccc-smartassist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrFAQNotFound = errors.New("faq not found")

type FAQRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFAQRepository(db *pgxpool.Pool, logger *zap.Logger) *FAQRepository {
	return &FAQRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FAQRepository) Create(ctx context.Context, faq *models.FAQ) error {
	query := squirrel.Insert("faq_questions").
		Columns("id", "question", "category", "date_added").
		Values(faq.ID, faq.Question, faq.Category, faq.DateAdded).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *FAQRepository) List(ctx context.Context) ([]models.FAQ, error) {
	query := squirrel.Select("id", "question", "category", "date_added").
		From("faq_questions").
		OrderBy("date_added DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []models.FAQ
	for rows.Next() {
		var faq models.FAQ
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Category, &faq.DateAdded); err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}

	return faqs, rows.Err()
}

func (r *FAQRepository) Update(ctx context.Context, id uuid.UUID, question string) error {
	query := squirrel.Update("faq_questions").
		Set("question", question).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFAQNotFound
	}
	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("faq_questions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFAQNotFound
	}
	return nil
}
