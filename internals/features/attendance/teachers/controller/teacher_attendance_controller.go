package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/attendance/recorder"
	"sekolahku_backend/internals/features/attendance/teachers/dto"
	model "sekolahku_backend/internals/features/attendance/teachers/model"
	"sekolahku_backend/internals/features/attendance/teachers/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/helpers/dbtime"
)

type TeacherAttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherAttendanceController(db *gorm.DB) *TeacherAttendanceController {
	return &TeacherAttendanceController{DB: db, Validate: validator.New()}
}

/* ===================== BULK ===================== */
// POST /api/a/:school_id/teacher-attendances/bulk
//
// 201 bila minimal satu baris tersisip; 409 bila semua guru sudah tercatat
// di tanggal itu. Guru yang sudah ada dilewati, bukan ditimpa.
func (ctrl *TeacherAttendanceController) Bulk(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkTeacherAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !req.ValidStatus() {
		return apierror.NewValidation("status", "status harus salah satu dari: hadir, sakit, izin, alfa")
	}

	date, err := req.ParseDate()
	if err != nil {
		return err
	}
	checkin, err := req.ParseCheckin()
	if err != nil {
		return err
	}

	store := service.NewStore(ctrl.DB.WithContext(c.UserContext()), schoolID)
	res, err := recorder.RecordBulk(c.UserContext(), store, recorder.BulkInput{
		SubjectIDs:  req.TeacherIDs,
		Date:        date,
		Status:      req.Status,
		Notes:       req.Notes,
		CreatedBy:   userID,
		CheckinTime: checkin,
	})
	if err != nil {
		return err
	}
	if res.AllConflict() {
		ids := make([]string, 0, len(res.AlreadyExistingSubjectIDs))
		for _, id := range res.AlreadyExistingSubjectIDs {
			ids = append(ids, id.String())
		}
		return apierror.NewConflict("Semua guru sudah tercatat kehadirannya di tanggal tersebut", ids...)
	}
	return helper.JsonCreated(c, "Kehadiran guru berhasil dicatat", res)
}

/* ===================== CREATE (single) ===================== */
// POST /api/a/:school_id/teacher-attendances
func (ctrl *TeacherAttendanceController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeacherAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !model.TeacherAttendanceStatus(req.TeacherAttendanceStatus).Valid() {
		return apierror.NewValidation("teacher_attendance_status", "status harus salah satu dari: hadir, sakit, izin, alfa")
	}

	date, err := time.ParseInLocation("2006-01-02", req.TeacherAttendanceDate, time.Local)
	if err != nil {
		return apierror.NewValidation("teacher_attendance_date", "format tanggal harus YYYY-MM-DD")
	}

	store := service.NewStore(ctrl.DB.WithContext(c.UserContext()), schoolID)
	res, err := recorder.RecordBulk(c.UserContext(), store, recorder.BulkInput{
		SubjectIDs: []uuid.UUID{req.TeacherAttendanceTeacherID},
		Date:       date,
		Status:     req.TeacherAttendanceStatus,
		Notes:      req.TeacherAttendanceNotes,
		CreatedBy:  userID,
	})
	if err != nil {
		return err
	}
	if res.AllConflict() {
		return apierror.NewConflict("Guru sudah tercatat kehadirannya di tanggal tersebut",
			req.TeacherAttendanceTeacherID.String())
	}
	return helper.JsonCreated(c, "Kehadiran guru berhasil dicatat", res)
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/teacher-attendances
func (ctrl *TeacherAttendanceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListTeacherAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherAttendanceModel{}).
		Where("teacher_attendance_school_id = ?", schoolID)
	if q.TeacherID != nil {
		tx = tx.Where("teacher_attendance_teacher_id = ?", *q.TeacherID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("teacher_attendance_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("teacher_attendance_date <= ?", *q.DateTo)
	}
	if q.Status != nil {
		tx = tx.Where("teacher_attendance_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("teacher_attendances.count", err)
	}
	var rows []model.TeacherAttendanceModel
	if err := tx.Order("teacher_attendance_date DESC, teacher_attendance_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("teacher_attendances.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar kehadiran guru", rows, &pg)
}

/* ===================== UPDATE (partial, termasuk check-out) ===================== */
// PATCH /api/a/:school_id/teacher-attendances/:id
func (ctrl *TeacherAttendanceController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTeacherAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.TeacherAttendanceModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("teacher_attendance_id = ? AND teacher_attendance_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Record kehadiran tidak ditemukan")
		}
		return apierror.NewStorage("teacher_attendances.get", err)
	}

	if req.TeacherAttendanceStatus != nil {
		if !model.TeacherAttendanceStatus(*req.TeacherAttendanceStatus).Valid() {
			return apierror.NewValidation("teacher_attendance_status", "status harus salah satu dari: hadir, sakit, izin, alfa")
		}
		m.TeacherAttendanceStatus = model.TeacherAttendanceStatus(*req.TeacherAttendanceStatus)
	}
	if req.TeacherAttendanceNotes != nil {
		m.TeacherAttendanceNotes = req.TeacherAttendanceNotes
	}
	if req.TeacherAttendanceCheckoutTime != nil {
		t, err := dbtime.Parse(*req.TeacherAttendanceCheckoutTime)
		if err != nil {
			return apierror.NewValidation("teacher_attendance_checkout_time", "format jam harus HH:MM")
		}
		m.TeacherAttendanceCheckoutTime = &t
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.NewStorage("teacher_attendances.update", err)
	}
	return helper.JsonUpdated(c, "Kehadiran guru berhasil diubah", m)
}

/* ===================== DELETE ===================== */
// DELETE /api/a/:school_id/teacher-attendances/:id
func (ctrl *TeacherAttendanceController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("teacher_attendance_id = ? AND teacher_attendance_school_id = ?", id, schoolID).
		Delete(&model.TeacherAttendanceModel{})
	if res.Error != nil {
		return apierror.NewStorage("teacher_attendances.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Record kehadiran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kehadiran guru berhasil dihapus", fiber.Map{"teacher_attendance_id": id})
}
