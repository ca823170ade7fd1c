package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	middleware "sekolahku_backend/internals/middlewares/auth"
	guard "sekolahku_backend/internals/middlewares/features"

	academicYearRoute "sekolahku_backend/internals/features/academics/academic_years/route"
	classRoute "sekolahku_backend/internals/features/academics/classes/route"
	scheduleRoute "sekolahku_backend/internals/features/academics/schedules/route"
	subjectRoute "sekolahku_backend/internals/features/academics/subjects/route"
	announcementRoute "sekolahku_backend/internals/features/announcements/route"
	studentAttendanceRoute "sekolahku_backend/internals/features/attendance/students/route"
	teacherAttendanceRoute "sekolahku_backend/internals/features/attendance/teachers/route"
	calendarEventRoute "sekolahku_backend/internals/features/calendar/events/route"
	calendarFeatureRoute "sekolahku_backend/internals/features/calendar/feature/route"
	violationRoute "sekolahku_backend/internals/features/conduct/violations/route"
	paymentRoute "sekolahku_backend/internals/features/payments/route"
	userRoute "sekolahku_backend/internals/features/users/route"
)

// SetupRoutes memasang tiga permukaan:
//
//	/api/public — tanpa auth (webhook gateway)
//	/api/u      — user login (JWT); baca jadwal, kalender, pengumuman
//	/api/a/:school_id — admin/petugas; scope path harus cocok dengan token,
//	                    tiap resource di belakang guard RequirePermission
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---------- PUBLIC ----------
	public := api.Group("/public")
	paymentRoute.PaymentPublicRoutes(public, db)

	authJWT := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ---------- USER ----------
	user := api.Group("/u", authJWT)
	calendarFeatureRoute.CalendarFeatureUserRoutes(user, db)
	announcementRoute.AnnouncementUserRoutes(user, db)

	// ---------- ADMIN ----------
	admin := api.Group("/a/:school_id", authJWT, guard.RequirePathScopeMatch())

	withPerm := func(resource string) fiber.Router {
		return admin.Group("", guard.RequirePermission(resource))
	}

	academicYearRoute.AcademicYearAdminRoutes(withPerm(constants.PermAcademicYears), db)
	classRoute.ClassAdminRoutes(withPerm(constants.PermClasses), db)
	subjectRoute.SubjectAdminRoutes(withPerm(constants.PermSubjects), db)
	scheduleRoute.ScheduleSlotAdminRoutes(withPerm(constants.PermSchedules), db)
	calendarEventRoute.CalendarEventAdminRoutes(withPerm(constants.PermCalendarEvents), db)
	studentAttendanceRoute.StudentAttendanceAdminRoutes(withPerm(constants.PermStudentAttendances), db)
	teacherAttendanceRoute.TeacherAttendanceAdminRoutes(withPerm(constants.PermTeacherAttendances), db)
	violationRoute.ViolationAdminRoutes(withPerm(constants.PermViolations), db)
	paymentRoute.PaymentAdminRoutes(withPerm(constants.PermPayments), db)
	announcementRoute.AnnouncementAdminRoutes(withPerm(constants.PermAnnouncements), db)
	userRoute.UserAdminRoutes(withPerm(constants.PermUsers), db)
}
