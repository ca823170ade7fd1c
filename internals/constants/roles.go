package constants

// Role names
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

var AllRoles = []string{
	RoleAdmin,
	RoleTeacher,
	RoleStudent,
	RoleParent,
}

// Permission resources: dipetakan (role → resource) oleh guard middleware
// sebelum handler jalan, bukan dicek ad-hoc per handler.
const (
	PermAcademicYears      = "academic_years"
	PermClasses            = "classes"
	PermSubjects           = "subjects"
	PermSchedules          = "schedules"
	PermCalendarEvents     = "calendar_events"
	PermStudentAttendances = "student_attendances"
	PermTeacherAttendances = "teacher_attendances"
	PermViolations         = "violations"
	PermPayments           = "payments"
	PermAnnouncements      = "announcements"
	PermUsers              = "users"
)
