package models

// Goal is a learning objective tutors can be tagged with. Immutable after
// import; linked to teachers through the teacher_goals junction table.
type Goal struct {
	ID   int64  `db:"id" json:"id"`
	Goal string `db:"goal" json:"goal"`
	Tag  string `db:"goal_tag" json:"goal_tag"`
}
