package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-virex/stepik-chapter-4/internal/models"
)

func goalColumns() []string {
	return []string{"id", "goal", "goal_tag"}
}

func TestGoalRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	rows := sqlmock.NewRows(goalColumns()).
		AddRow(1, "Для путешествий", "travel").
		AddRow(2, "Для учебы", "study")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, goal, goal_tag FROM goals ORDER BY id")).
		WillReturnRows(rows)

	goals, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "travel", goals[0].Tag)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, goal, goal_tag FROM goals WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(goalColumns()).AddRow(2, "Для учебы", "study"))

	goal, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Для учебы", goal.Goal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepositoryFindByTagNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, goal, goal_tag FROM goals WHERE goal_tag = $1")).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByTag(context.Background(), "unknown")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepositoryListByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	rows := sqlmock.NewRows(goalColumns()).
		AddRow(1, "Для путешествий", "travel")
	mock.ExpectQuery("JOIN teacher_goals tg ON tg.goal_id = g.id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	goals, err := repo.ListByTeacher(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	mock.ExpectQuery("INSERT INTO goals").
		WithArgs("Conversational practice", "conv").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	goal := &models.Goal{Goal: "Conversational practice", Tag: "conv"}
	require.NoError(t, repo.Create(context.Background(), goal))
	assert.Equal(t, int64(4), goal.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
