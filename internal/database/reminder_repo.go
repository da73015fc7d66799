package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/voice-reminder-bot/internal/domain"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/voice-reminder-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (owner_id, payload_ref, due_at)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		reminder.OwnerID,
		reminder.PayloadRef,
		reminder.DueAt.UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	return nil
}

func (r *reminderRepo) GetByID(ownerID, reminderID int64) (*entity.Reminder, error) {
	query := `
		SELECT id, owner_id, payload_ref, due_at, created_at
		FROM reminders
		WHERE id = ? AND owner_id = ?
	`

	reminder, err := scanReminder(r.db.QueryRow(query, reminderID, ownerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepo) ListByOwner(ownerID int64) ([]*entity.Reminder, error) {
	// creation order, not due-time order: the listing mirrors the order
	// the owner created their reminders in
	query := `
		SELECT id, owner_id, payload_ref, due_at, created_at
		FROM reminders
		WHERE owner_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

func (r *reminderRepo) ListAll() ([]*entity.Reminder, error) {
	query := `
		SELECT id, owner_id, payload_ref, due_at, created_at
		FROM reminders
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all reminders: %w", err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

func (r *reminderRepo) Delete(ownerID, reminderID int64) error {
	query := `DELETE FROM reminders WHERE id = ? AND owner_id = ?`

	result, err := r.db.Exec(query, reminderID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	// deleting by generated id makes a concurrent double-remove resolve to
	// one success and one NotFound, never a double delete
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	var dueUnix int64

	err := row.Scan(
		&reminder.ID,
		&reminder.OwnerID,
		&reminder.PayloadRef,
		&dueUnix,
		&reminder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	reminder.DueAt = time.Unix(dueUnix, 0).UTC()
	return reminder, nil
}

func collectReminders(rows *sql.Rows) ([]*entity.Reminder, error) {
	reminders := []*entity.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reminders: %w", err)
	}

	return reminders, nil
}
