package database

import (
	"context"
	"fmt"

	m "devagent-backend/internal/model"
	"devagent-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown TeardownFunc

// Exported seeded records shared by package tests
var (
	TestUser1    m.User
	TestUser2    m.User
	TestCompany1 m.Company
	TestSkillGo  m.Skill

	// TestSeedPassword is plain password of every seeded user
	TestSeedPassword = "SeedPass123!"
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (TeardownFunc, *DBinstanceStruct, error) {
	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	ctx := context.Background()
	dbContainer, dbHost, dbPort, err := runTestContainer(ctx)
	if err != nil {
		if dbContainer != nil {
			return dbContainer.Terminate, nil, err
		}
		return nil, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		DBName:    testDBName,
		Constr: fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, testDBUser, testDBPwd, testDBName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(ctx)
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two developers, a company and a skill.
func seedTestData(db *DBinstanceStruct) error {
	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	users := []m.User{
		{EditableUserInfo: m.EditableUserInfo{Username: "developer_1", Email: "dev1@example.com"}, Password: hashedPwd},
		{EditableUserInfo: m.EditableUserInfo{Username: "developer_2", Email: "dev2@example.com"}, Password: hashedPwd},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	TestUser1 = users[0]
	TestUser2 = users[1]

	location := "Warsaw"
	TestCompany1 = m.Company{
		EditableCompanyInfo: m.EditableCompanyInfo{Name: "Gopher Works", Location: &location},
		AddedByID:           TestUser1.ID,
	}
	if err := db.Create(&TestCompany1).Error; err != nil {
		return err
	}

	TestSkillGo = m.Skill{Name: "Go"}
	return db.Create(&TestSkillGo).Error
}
