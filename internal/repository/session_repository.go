package repository

import (
	"context"

	"ccc-smartassist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SessionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSessionRepository(db *pgxpool.Pool, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateIfAbsent inserts the session when it does not exist yet. The title is
// set only here, on first insert, and never recomputed afterwards.
func (r *SessionRepository) CreateIfAbsent(ctx context.Context, session *models.ChatSession) error {
	query := squirrel.Insert("chat_sessions").
		Columns("id", "user_id", "title", "last_updated").
		Values(session.ID, session.UserID, session.Title, session.LastUpdated).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SessionRepository) InsertMessage(ctx context.Context, msg *models.Message) error {
	query := squirrel.Insert("messages").
		Columns("id", "session_id", "role", "content", "timestamp", "is_error", "feedback").
		Values(msg.ID, msg.SessionID, msg.Role, msg.Content, msg.Timestamp, msg.IsError, msg.Feedback).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SessionRepository) Touch(ctx context.Context, id uuid.UUID, lastUpdated int64) error {
	query := squirrel.Update("chat_sessions").
		Set("last_updated", lastUpdated).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.ChatSession, error) {
	return r.listSessions(ctx, squirrel.Eq{"user_id": userID}, 0)
}

// ListAll returns the most recent sessions across all users, admin view only.
func (r *SessionRepository) ListAll(ctx context.Context, limit uint64) ([]*models.ChatSession, error) {
	return r.listSessions(ctx, nil, limit)
}

func (r *SessionRepository) listSessions(ctx context.Context, where squirrel.Eq, limit uint64) ([]*models.ChatSession, error) {
	query := squirrel.Select("id", "user_id", "title", "last_updated").
		From("chat_sessions").
		OrderBy("last_updated DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		query = query.Where(where)
	}
	if limit > 0 {
		query = query.Limit(limit)
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

	var sessions []*models.ChatSession
	for rows.Next() {
		var s models.ChatSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.LastUpdated); err != nil {
			return nil, err
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range sessions {
		messages, err := r.listMessages(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Messages = messages
	}

	return sessions, nil
}

// listMessages orders the transcript by timestamp, not by submission order:
// concurrent turns in the same session may interleave their writes.
func (r *SessionRepository) listMessages(ctx context.Context, sessionID uuid.UUID) ([]models.Message, error) {
	query := squirrel.Select("id", "session_id", "role", "content", "timestamp", "is_error", "feedback").
		From("messages").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("timestamp ASC").
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

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Timestamp, &m.IsError, &m.Feedback); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// Rename updates the title and last_updated of an existing session.
func (r *SessionRepository) Rename(ctx context.Context, id uuid.UUID, title string, lastUpdated int64) error {
	query := squirrel.Update("chat_sessions").
		Set("title", title).
		Set("last_updated", lastUpdated).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Delete removes a session owned by the given user. Admins may delete any
// session. Messages go with it via ON DELETE CASCADE.
func (r *SessionRepository) Delete(ctx context.Context, id, userID uuid.UUID, isAdmin bool) error {
	query := squirrel.Delete("chat_sessions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if !isAdmin {
		query = query.Where(squirrel.Eq{"user_id": userID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// UpdateFeedback is the only post-creation mutation a message supports.
func (r *SessionRepository) UpdateFeedback(ctx context.Context, messageID uuid.UUID, feedback int) error {
	query := squirrel.Update("messages").
		Set("feedback", feedback).
		Where(squirrel.Eq{"id": messageID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SessionRepository) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM chat_sessions").Scan(&count)
	return count, err
}

func (r *SessionRepository) CountMessages(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM messages").Scan(&count)
	return count, err
}
