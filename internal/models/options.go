package models

// Enumerated option sets offered on the submission forms. Form input is only
// accepted when it names one of these choices.

// WeekdayOrder fixes the display order of schedule columns.
var WeekdayOrder = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// WeekdayNames maps weekday keys to their display names.
var WeekdayNames = map[string]string{
	"mon": "Понедельник",
	"tue": "Вторник",
	"wed": "Среда",
	"thu": "Четверг",
	"fri": "Пятница",
	"sat": "Суббота",
	"sun": "Воскресенье",
}

// TimeSlots lists the bookable lesson start times.
var TimeSlots = []string{"8:00", "10:00", "12:00", "14:00", "16:00", "18:00", "20:00", "22:00"}

// FreeTimeChoice is a weekly-hours option on the request form.
type FreeTimeChoice struct {
	Key   string
	Label string
}

// FreeTimeChoices lists how much time per week a client can spend.
var FreeTimeChoices = []FreeTimeChoice{
	{Key: "1-2", Label: "1-2 часа в неделю"},
	{Key: "3-5", Label: "3-5 часов в неделю"},
	{Key: "5-7", Label: "5-7 часов в неделю"},
	{Key: "7-10", Label: "7-10 часов в неделю"},
}

// ValidWeekday reports whether key names a known weekday.
func ValidWeekday(key string) bool {
	_, ok := WeekdayNames[key]
	return ok
}

// ValidTimeSlot reports whether slot is a bookable start time.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ValidFreeTime reports whether key is an offered weekly-hours option.
func ValidFreeTime(key string) bool {
	for _, c := range FreeTimeChoices {
		if c.Key == key {
			return true
		}
	}
	return false
}
