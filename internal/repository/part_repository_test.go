package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// queryCapture records the SQL and bind vars of the last query built by
// a dry-run gorm session.
type queryCapture struct {
	SQL  string
	Vars []interface{}
}

func newDryRunDB(t *testing.T) (*gorm.DB, *queryCapture) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	assert.NoError(t, err)

	captured := &queryCapture{}
	err = db.Callback().Query().After("gorm:query").Register("capture_query", func(tx *gorm.DB) {
		captured.SQL = tx.Statement.SQL.String()
		captured.Vars = tx.Statement.Vars
	})
	assert.NoError(t, err)

	return db, captured
}

func TestPartRepositoryFindByIDForUpdateTakesRowLock(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewPartRepository(db)

	_, _ = repo.FindByIDForUpdate(context.Background(), uuid.New())

	assert.Contains(t, captured.SQL, "FOR UPDATE")
}

func TestPartRepositoryListEscapesKeywordWildcards(t *testing.T) {
	testCases := []struct {
		name        string
		keyword     string
		expectedVar string
	}{
		{name: "percent matches literally", keyword: "%", expectedVar: `%\%%`},
		{name: "underscore matches literally", keyword: "gt_350", expectedVar: `%gt\_350%`},
		{name: "backslash matches literally", keyword: `a\b`, expectedVar: `%a\\b%`},
		{name: "plain keyword is untouched", keyword: "alternator", expectedVar: "%alternator%"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, captured := newDryRunDB(t)
			repo := NewPartRepository(db)

			_, err := repo.List(context.Background(), PartFilter{Keyword: tc.keyword})

			assert.NoError(t, err)
			assert.Contains(t, captured.Vars, tc.expectedVar)
		})
	}
}
