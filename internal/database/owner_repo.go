package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/voice-reminder-bot/internal/domain/contract"
)

type ownerRepo struct {
	db dbConn
}

func newOwnerRepo(db dbConn) contract.OwnerRepo {
	return &ownerRepo{db: db}
}

func (r *ownerRepo) GetTimezone(ownerID int64) (string, error) {
	query := `SELECT timezone FROM owner_profiles WHERE owner_id = ?`

	var timezone string
	err := r.db.QueryRow(query, ownerID).Scan(&timezone)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get owner timezone: %w", err)
	}

	return timezone, nil
}

func (r *ownerRepo) SetTimezone(ownerID int64, timezone string) error {
	query := `
		INSERT INTO owner_profiles (owner_id, timezone)
		VALUES (?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			timezone = excluded.timezone,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, ownerID, timezone); err != nil {
		return fmt.Errorf("failed to set owner timezone: %w", err)
	}

	return nil
}
