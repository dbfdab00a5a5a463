package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/p-virex/stepik-chapter-4/internal/models"
)

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// ListAll returns every teacher. Row order is whatever the engine produces.
func (r *TeacherRepository) ListAll(ctx context.Context) ([]models.Teacher, error) {
	const query = `SELECT id, name, about, rating, photo, price, schedule FROM teachers`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	const query = `SELECT id, name, about, rating, photo, price, schedule FROM teachers WHERE id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListByGoal returns teachers linked to the goal through the junction table.
func (r *TeacherRepository) ListByGoal(ctx context.Context, goalID int64) ([]models.Teacher, error) {
	const query = `SELECT t.id, t.name, t.about, t.rating, t.photo, t.price, t.schedule
		FROM teachers t
		JOIN teacher_goals tg ON tg.teacher_id = t.id
		WHERE tg.goal_id = $1`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, goalID); err != nil {
		return nil, fmt.Errorf("list teachers for goal %d: %w", goalID, err)
	}
	return teachers, nil
}

// Create inserts a new teacher record and fills in the generated ID.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO teachers (name, about, rating, photo, price, schedule)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.GetContext(ctx, &teacher.ID, query,
		teacher.Name, teacher.About, teacher.Rating, teacher.Photo, teacher.Price, teacher.Schedule); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// LinkGoal appends a goal to the teacher's goal set.
func (r *TeacherRepository) LinkGoal(ctx context.Context, teacherID, goalID int64) error {
	const query = `INSERT INTO teacher_goals (teacher_id, goal_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, teacherID, goalID); err != nil {
		return fmt.Errorf("link teacher %d to goal %d: %w", teacherID, goalID, err)
	}
	return nil
}
