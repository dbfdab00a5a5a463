package dto

import (
	"github.com/p-virex/stepik-chapter-4/internal/models"
)

// TeacherCard is the flat structure listing pages render for one tutor.
// Schedule and goal links are deliberately dropped.
type TeacherCard struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Rating int    `json:"rating"`
	Photo  string `json:"photo"`
	Price  int    `json:"price"`
}

// TeacherProfile is the full detail bundle for profile and booking pages,
// including the raw schedule under "free".
type TeacherProfile struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	About  string          `json:"about"`
	Rating int             `json:"rating"`
	Photo  string          `json:"photo"`
	Price  int             `json:"price"`
	Free   models.Schedule `json:"free"`
}

// SummaryCard shapes a teacher record into a listing card.
func SummaryCard(t models.Teacher) TeacherCard {
	return TeacherCard{
		ID:     t.ID,
		Name:   t.Name,
		About:  t.About,
		Rating: t.Rating,
		Photo:  t.Photo,
		Price:  t.Price,
	}
}

// SummaryCards shapes a teacher sequence, preserving order.
func SummaryCards(teachers []models.Teacher) []TeacherCard {
	cards := make([]TeacherCard, 0, len(teachers))
	for _, t := range teachers {
		cards = append(cards, SummaryCard(t))
	}
	return cards
}

// ProfileBundle shapes a teacher record into the full profile view.
func ProfileBundle(t models.Teacher) TeacherProfile {
	return TeacherProfile{
		ID:     t.ID,
		Name:   t.Name,
		About:  t.About,
		Rating: t.Rating,
		Photo:  t.Photo,
		Price:  t.Price,
		Free:   t.Schedule,
	}
}

// GoalTagLine concatenates goal display texts for a profile's tag line.
// Each text is followed by a single space, input order preserved.
func GoalTagLine(goals []models.Goal) string {
	line := ""
	for _, g := range goals {
		line += g.Goal + " "
	}
	return line
}
