// Package defaultplan 新用户首次获取训练计划时使用的默认周计划模板。
package defaultplan

// Days 一周七天，按日历顺序
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Entry 模板中的单个训练动作
type Entry struct {
	Exercise string
	Reps     string
	Sets     string
	Rest     string
	Notes    string
}

var template = map[string][]Entry{
	"Monday": {
		{Exercise: "Warmup (stretches)", Reps: "15", Sets: "1", Rest: "30", Notes: "Neck/shoulder rotations"},
		{Exercise: "Bench Press", Reps: "12", Sets: "3", Rest: "60", Notes: "Keep elbows at 45 degrees"},
		{Exercise: "Incline Dumbbell Press", Reps: "12", Sets: "3", Rest: "60"},
		{Exercise: "Cable Fly", Reps: "15", Sets: "3", Rest: "45"},
		{Exercise: "Tricep Pushdown", Reps: "12", Sets: "3", Rest: "45"},
	},
	"Tuesday": {
		{Exercise: "Warmup (stretches)", Reps: "15", Sets: "1", Rest: "30", Notes: "Hip openers"},
		{Exercise: "Squats", Reps: "10", Sets: "4", Rest: "90", Notes: "Depth to parallel"},
		{Exercise: "Romanian Deadlift", Reps: "10", Sets: "3", Rest: "90"},
		{Exercise: "Walking Lunges", Reps: "12", Sets: "3", Rest: "60", Notes: "Reps per leg"},
		{Exercise: "Calf Raises", Reps: "20", Sets: "3", Rest: "30"},
	},
	"Wednesday": {
		{Exercise: "Warmup (stretches)", Reps: "15", Sets: "1", Rest: "30", Notes: "Band pull-aparts"},
		{Exercise: "Pull-ups", Reps: "8", Sets: "3", Rest: "90", Notes: "Assisted if needed"},
		{Exercise: "Barbell Row", Reps: "10", Sets: "3", Rest: "60"},
		{Exercise: "Lat Pulldown", Reps: "12", Sets: "3", Rest: "60"},
		{Exercise: "Bicep Curl", Reps: "12", Sets: "3", Rest: "45"},
	},
	"Thursday": {
		{Exercise: "Warmup (stretches)", Reps: "15", Sets: "1", Rest: "30", Notes: "Arm circles"},
		{Exercise: "Overhead Press", Reps: "10", Sets: "3", Rest: "90"},
		{Exercise: "Lateral Raises", Reps: "15", Sets: "3", Rest: "45"},
		{Exercise: "Face Pulls", Reps: "15", Sets: "3", Rest: "45"},
		{Exercise: "Plank", Reps: "60", Sets: "3", Rest: "30", Notes: "Seconds per set"},
	},
	"Friday": {
		{Exercise: "Warmup (stretches)", Reps: "15", Sets: "1", Rest: "30", Notes: "Full body"},
		{Exercise: "Deadlift", Reps: "5", Sets: "5", Rest: "120", Notes: "Neutral spine"},
		{Exercise: "Leg Press", Reps: "12", Sets: "3", Rest: "90"},
		{Exercise: "Hamstring Curl", Reps: "12", Sets: "3", Rest: "60"},
	},
	"Saturday": {
		{Exercise: "Warmup (stretches)", Reps: "15", Sets: "1", Rest: "30"},
		{Exercise: "Push-ups", Reps: "15", Sets: "3", Rest: "45"},
		{Exercise: "Kettlebell Swings", Reps: "20", Sets: "3", Rest: "60"},
		{Exercise: "Farmer's Carry", Reps: "40", Sets: "3", Rest: "60", Notes: "Meters per set"},
	},
	"Sunday": {
		{Exercise: "Mobility Flow", Reps: "1", Sets: "1", Rest: "0", Notes: "Rest day: 20 minutes light stretching"},
	},
}

// ForDay 返回某天的模板副本，未知的日期返回空列表
func ForDay(day string) []Entry {
	entries := template[day]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// CalendarIndex 返回日期在一周中的位置，未知日期返回 -1
func CalendarIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}
