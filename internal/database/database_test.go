package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devagent-backend/internal/model"
)

func TestMain(m *testing.M) {
	teardown, err := StartTestDB()
	if err != nil {
		log.Fatal().Err(err).Msg("could not start postgres container")
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("could not teardown postgres container")
		}
	}
}

func TestGetMainDB(t *testing.T) {
	db, err := GetMainDB()
	require.NoError(t, err, "Database failed to initialize")

	again, err := GetMainDB()
	require.NoError(t, err)
	assert.Same(t, db, again, "connection should be reused")
}

func TestMigrateCreatesTables(t *testing.T) {
	db, err := GetMainDB()
	require.NoError(t, err)

	for _, table := range []interface{}{&model.Offer{}, &model.RecruitmentStep{}, &model.Company{}, &model.Skill{}, &model.StepType{}, &model.User{}} {
		assert.True(t, db.Migrator().HasTable(table), "%T table missing", table)
	}
	assert.True(t, db.Migrator().HasTable("offer_skills_required"))
	assert.True(t, db.Migrator().HasTable("offer_skills_optional"))
}

func TestHealth(t *testing.T) {
	db, err := GetMainDB()
	require.NoError(t, err)

	stats := db.Health()

	assert.Equal(t, "up", stats["status"])
	_, hasErr := stats["error"]
	assert.False(t, hasErr, "expected error not to be present")
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestDsnIncomplete(t *testing.T) {
	_, err := NewDBInstance(&DBConfig{Host: "localhost"})
	assert.Error(t, err)

	_, err = NewDBInstance(&DBConfig{useConstr: true})
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	db, err := NewDBInstance(dbConfigFromEnv(t))
	require.NoError(t, err)

	assert.NoError(t, db.Close())
}

func dbConfigFromEnv(t *testing.T) *DBConfig {
	t.Helper()
	return &DBConfig{
		Host:     host,
		Port:     port,
		User:     username,
		Password: password,
		DBName:   database,
	}
}
