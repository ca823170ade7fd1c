package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/attendance/recorder"
	"sekolahku_backend/internals/features/attendance/students/dto"
	model "sekolahku_backend/internals/features/attendance/students/model"
	"sekolahku_backend/internals/features/attendance/students/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentAttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentAttendanceController(db *gorm.DB) *StudentAttendanceController {
	return &StudentAttendanceController{DB: db, Validate: validator.New()}
}

/* ===================== BULK ===================== */
// POST /api/a/:school_id/student-attendances/bulk
//
// 201 bila minimal satu baris tersisip; 409 bila semua siswa sudah tercatat
// untuk (tanggal, slot) itu. Record yang sudah ada tidak pernah ditimpa.
func (ctrl *StudentAttendanceController) Bulk(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkStudentAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !req.ValidStatus() {
		return apierror.NewValidation("status", "status harus salah satu dari: present, late, excused, sick, absent")
	}

	date, err := req.ParseDate()
	if err != nil {
		return err
	}

	store := service.NewStore(ctrl.DB.WithContext(c.UserContext()), schoolID, req.ScheduleSlotID)
	res, err := recorder.RecordBulk(c.UserContext(), store, recorder.BulkInput{
		SubjectIDs: req.StudentIDs,
		Date:       date,
		Status:     req.Status,
		Notes:      req.Notes,
		CreatedBy:  userID,
	})
	if err != nil {
		return err
	}
	if res.AllConflict() {
		ids := make([]string, 0, len(res.AlreadyExistingSubjectIDs))
		for _, id := range res.AlreadyExistingSubjectIDs {
			ids = append(ids, id.String())
		}
		return apierror.NewConflict("Semua siswa sudah tercatat kehadirannya di tanggal tersebut", ids...)
	}
	return helper.JsonCreated(c, "Kehadiran siswa berhasil dicatat", res)
}

/* ===================== CREATE (single) ===================== */
// POST /api/a/:school_id/student-attendances
func (ctrl *StudentAttendanceController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !model.StudentAttendanceStatus(req.StudentAttendanceStatus).Valid() {
		return apierror.NewValidation("student_attendance_status", "status harus salah satu dari: present, late, excused, sick, absent")
	}

	date, err := time.ParseInLocation("2006-01-02", req.StudentAttendanceDate, time.Local)
	if err != nil {
		return apierror.NewValidation("student_attendance_date", "format tanggal harus YYYY-MM-DD")
	}

	store := service.NewStore(ctrl.DB.WithContext(c.UserContext()), schoolID, req.StudentAttendanceScheduleSlotID)
	res, err := recorder.RecordBulk(c.UserContext(), store, recorder.BulkInput{
		SubjectIDs: []uuid.UUID{req.StudentAttendanceStudentID},
		Date:       date,
		Status:     req.StudentAttendanceStatus,
		Notes:      req.StudentAttendanceNotes,
		CreatedBy:  userID,
	})
	if err != nil {
		return err
	}
	if res.AllConflict() {
		return apierror.NewConflict("Siswa sudah tercatat kehadirannya di tanggal tersebut",
			req.StudentAttendanceStudentID.String())
	}
	return helper.JsonCreated(c, "Kehadiran siswa berhasil dicatat", res)
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/student-attendances
func (ctrl *StudentAttendanceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListStudentAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.StudentAttendanceModel{}).
		Where("student_attendance_school_id = ?", schoolID)
	if q.StudentID != nil {
		tx = tx.Where("student_attendance_student_id = ?", *q.StudentID)
	}
	if q.ScheduleSlotID != nil {
		tx = tx.Where("student_attendance_schedule_slot_id = ?", *q.ScheduleSlotID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("student_attendance_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("student_attendance_date <= ?", *q.DateTo)
	}
	if q.Status != nil {
		tx = tx.Where("student_attendance_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("student_attendances.count", err)
	}
	var rows []model.StudentAttendanceModel
	if err := tx.Order("student_attendance_date DESC, student_attendance_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("student_attendances.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar kehadiran siswa", rows, &pg)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/:school_id/student-attendances/:id
func (ctrl *StudentAttendanceController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.StudentAttendanceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_attendance_id = ? AND student_attendance_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Record kehadiran tidak ditemukan")
		}
		return apierror.NewStorage("student_attendances.get", err)
	}

	if req.StudentAttendanceStatus != nil {
		if !model.StudentAttendanceStatus(*req.StudentAttendanceStatus).Valid() {
			return apierror.NewValidation("student_attendance_status", "status harus salah satu dari: present, late, excused, sick, absent")
		}
		m.StudentAttendanceStatus = model.StudentAttendanceStatus(*req.StudentAttendanceStatus)
	}
	if req.StudentAttendanceNotes != nil {
		m.StudentAttendanceNotes = req.StudentAttendanceNotes
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.NewStorage("student_attendances.update", err)
	}
	return helper.JsonUpdated(c, "Kehadiran siswa berhasil diubah", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/a/:school_id/student-attendances/:id
func (ctrl *StudentAttendanceController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("student_attendance_id = ? AND student_attendance_school_id = ?", id, schoolID).
		Delete(&model.StudentAttendanceModel{})
	if res.Error != nil {
		return apierror.NewStorage("student_attendances.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Record kehadiran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kehadiran siswa berhasil dihapus", fiber.Map{"student_attendance_id": id})
}
