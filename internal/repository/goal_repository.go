package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/p-virex/stepik-chapter-4/internal/models"
)

// GoalRepository manages persistence for learning goals.
type GoalRepository struct {
	db *sqlx.DB
}

// NewGoalRepository constructs a GoalRepository.
func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// ListAll returns every goal.
func (r *GoalRepository) ListAll(ctx context.Context) ([]models.Goal, error) {
	const query = `SELECT id, goal, goal_tag FROM goals ORDER BY id`
	var goals []models.Goal
	if err := r.db.SelectContext(ctx, &goals, query); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// FindByID fetches a goal by ID.
func (r *GoalRepository) FindByID(ctx context.Context, id int64) (*models.Goal, error) {
	const query = `SELECT id, goal, goal_tag FROM goals WHERE id = $1`
	var goal models.Goal
	if err := r.db.GetContext(ctx, &goal, query, id); err != nil {
		return nil, err
	}
	return &goal, nil
}

// FindByTag fetches a goal by its short tag key.
func (r *GoalRepository) FindByTag(ctx context.Context, tag string) (*models.Goal, error) {
	const query = `SELECT id, goal, goal_tag FROM goals WHERE goal_tag = $1`
	var goal models.Goal
	if err := r.db.GetContext(ctx, &goal, query, tag); err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListByTeacher returns the goals linked to a teacher, in junction order.
func (r *GoalRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Goal, error) {
	const query = `SELECT g.id, g.goal, g.goal_tag
		FROM goals g
		JOIN teacher_goals tg ON tg.goal_id = g.id
		WHERE tg.teacher_id = $1`
	var goals []models.Goal
	if err := r.db.SelectContext(ctx, &goals, query, teacherID); err != nil {
		return nil, fmt.Errorf("list goals for teacher %d: %w", teacherID, err)
	}
	return goals, nil
}

// Create inserts a new goal record and fills in the generated ID.
func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	const query = `INSERT INTO goals (goal, goal_tag) VALUES ($1, $2) RETURNING id`
	if err := r.db.GetContext(ctx, &goal.ID, query, goal.Goal, goal.Tag); err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}
