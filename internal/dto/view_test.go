package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/p-virex/stepik-chapter-4/internal/models"
)

func TestSummaryCardDropsSchedule(t *testing.T) {
	teacher := models.Teacher{
		ID:     7,
		Name:   "Ann",
		About:  "conversational practice",
		Rating: 5,
		Photo:  "p.jpg",
		Price:  10,
		Schedule: models.Schedule{
			"mon": {"8:00": true},
		},
	}

	card := SummaryCard(teacher)
	assert.Equal(t, int64(7), card.ID)
	assert.Equal(t, "Ann", card.Name)
	assert.Equal(t, "conversational practice", card.About)
	assert.Equal(t, 5, card.Rating)
	assert.Equal(t, "p.jpg", card.Photo)
	assert.Equal(t, 10, card.Price)
}

func TestSummaryCardsPreserveOrder(t *testing.T) {
	teachers := []models.Teacher{{ID: 3}, {ID: 1}, {ID: 2}}
	cards := SummaryCards(teachers)
	assert.Len(t, cards, 3)
	assert.Equal(t, int64(3), cards[0].ID)
	assert.Equal(t, int64(1), cards[1].ID)
	assert.Equal(t, int64(2), cards[2].ID)
}

func TestProfileBundleKeepsSchedule(t *testing.T) {
	schedule := models.Schedule{"tue": {"10:00": false}}
	bundle := ProfileBundle(models.Teacher{ID: 2, Name: "Mark", Schedule: schedule})
	assert.Equal(t, "Mark", bundle.Name)
	assert.Equal(t, schedule, bundle.Free)
}

func TestGoalTagLine(t *testing.T) {
	goals := []models.Goal{{Goal: "Travel"}, {Goal: "Exam prep"}}
	assert.Equal(t, "Travel Exam prep ", GoalTagLine(goals))
}

func TestGoalTagLineEmpty(t *testing.T) {
	assert.Equal(t, "", GoalTagLine(nil))
}
