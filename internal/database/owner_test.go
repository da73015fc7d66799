package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerRepository_GetTimezone_Unset(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newOwnerRepo(db.conn)

	tz, err := repo.GetTimezone(100)
	require.NoError(t, err)
	assert.Empty(t, tz, "Expected empty timezone for unknown owner, not an error")
}

func TestOwnerRepository_SetTimezone(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newOwnerRepo(db.conn)

	err := repo.SetTimezone(100, "America/New_York")
	require.NoError(t, err)

	tz, err := repo.GetTimezone(100)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", tz)
}

func TestOwnerRepository_SetTimezone_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newOwnerRepo(db.conn)

	require.NoError(t, repo.SetTimezone(100, "America/New_York"))
	require.NoError(t, repo.SetTimezone(100, "Europe/Berlin"))

	tz, err := repo.GetTimezone(100)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", tz)
}

func TestOwnerRepository_TimezonesAreIndependent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newOwnerRepo(db.conn)

	require.NoError(t, repo.SetTimezone(100, "America/New_York"))
	require.NoError(t, repo.SetTimezone(200, "Asia/Tokyo"))

	tz, err := repo.GetTimezone(100)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", tz)

	tz, err = repo.GetTimezone(200)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", tz)
}
