package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"sheet-ai/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateThread(ctx context.Context, thread *model.Thread) error {
	query := `
		INSERT INTO threads (id, ui_thread_id, user_id, title, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	var userID sql.NullString
	if thread.UserID != nil {
		userID = sql.NullString{String: *thread.UserID, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query,
		thread.ID, thread.UIThreadID, userID, thread.Title, thread.Archived,
		thread.CreatedAt, thread.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert thread: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetThreadByUIID(ctx context.Context, uiThreadID string) (*model.Thread, error) {
	query := `
		SELECT id, ui_thread_id, user_id, title, archived, created_at, updated_at
		FROM threads WHERE ui_thread_id = ?
	`
	return scanThread(r.db.QueryRowContext(ctx, query, uiThreadID))
}

func (r *sqliteRepository) ListThreads(ctx context.Context) ([]*model.Thread, error) {
	query := `
		SELECT id, ui_thread_id, user_id, title, archived, created_at, updated_at
		FROM threads ORDER BY updated_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []*model.Thread
	for rows.Next() {
		thread, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	return threads, rows.Err()
}

func (r *sqliteRepository) UpdateThread(ctx context.Context, thread *model.Thread) error {
	query := "UPDATE threads SET title = ?, archived = ?, updated_at = ? WHERE ui_thread_id = ?"
	res, err := r.db.ExecContext(ctx, query, thread.Title, thread.Archived, time.Now().UTC(), thread.UIThreadID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) DeleteThread(ctx context.Context, uiThreadID string) error {
	// Messages referencing the thread go with it in one transaction.
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE ui_thread_id = ?", uiThreadID); err != nil {
		return fmt.Errorf("could not delete thread messages: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM threads WHERE ui_thread_id = ?", uiThreadID)
	if err != nil {
		return fmt.Errorf("could not delete thread: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (r *sqliteRepository) CreateMessage(ctx context.Context, message *model.StoredMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO messages (id, ui_message_id, ui_thread_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		message.ID, message.UIMessageID, message.UIThreadID, message.Role,
		string(message.Content), message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}

	updateQuery := "UPDATE threads SET updated_at = ? WHERE ui_thread_id = ?"
	if _, err := tx.ExecContext(ctx, updateQuery, time.Now().UTC(), message.UIThreadID); err != nil {
		return fmt.Errorf("could not update thread timestamp: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) ListMessagesByThread(ctx context.Context, uiThreadID string) ([]model.StoredMessage, error) {
	query := `
		SELECT id, ui_message_id, ui_thread_id, role, content, created_at
		FROM messages WHERE ui_thread_id = ? ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, uiThreadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.StoredMessage
	for rows.Next() {
		var msg model.StoredMessage
		var content string
		if err := rows.Scan(&msg.ID, &msg.UIMessageID, &msg.UIThreadID, &msg.Role, &content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msg.Content = json.RawMessage(content)
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanThread(row rowScanner) (*model.Thread, error) {
	var thread model.Thread
	var userID sql.NullString
	err := row.Scan(&thread.ID, &thread.UIThreadID, &userID, &thread.Title,
		&thread.Archived, &thread.CreatedAt, &thread.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if userID.Valid {
		thread.UserID = &userID.String
	}
	return &thread, nil
}
