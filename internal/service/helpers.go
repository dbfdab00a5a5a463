package service

// Field-level validation messages, shown next to the offending form input.
const (
	msgFieldRequired = "Заполните поле"
	msgChooseOption  = "Выберите вариант из списка"
)

// formFieldNames maps request struct fields to their HTML form names so
// validation errors land next to the right input.
var formFieldNames = map[string]string{
	"TeacherName": "client_teacher",
	"Weekday":     "client_weekday",
	"TimeSlot":    "client_time",
	"GoalTag":     "goal",
	"FreeTime":    "free_time",
	"ClientName":  "name",
	"ClientPhone": "phone",
}

func formField(structField string) string {
	if name, ok := formFieldNames[structField]; ok {
		return name
	}
	return structField
}
