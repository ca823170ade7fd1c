package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/attendance/recorder"
	model "sekolahku_backend/internals/features/attendance/students/model"
)

// Store: implementasi recorder.Store di atas tabel student_attendances.
// SlotID nil berarti absensi harian; non-nil berarti absensi per jam pelajaran.
type Store struct {
	DB       *gorm.DB
	SchoolID uuid.UUID
	SlotID   *uuid.UUID
}

func NewStore(db *gorm.DB, schoolID uuid.UUID, slotID *uuid.UUID) *Store {
	return &Store{DB: db, SchoolID: schoolID, SlotID: slotID}
}

func (s *Store) ExistingSubjectIDs(ctx context.Context, subjectIDs []uuid.UUID, date time.Time) (map[uuid.UUID]bool, error) {
	tx := s.DB.WithContext(ctx).
		Model(&model.StudentAttendanceModel{}).
		Where("student_attendance_school_id = ?", s.SchoolID).
		Where("student_attendance_student_id IN ?", subjectIDs).
		Where("student_attendance_date = ?", datatypes.Date(date))
	if s.SlotID == nil {
		tx = tx.Where("student_attendance_schedule_slot_id IS NULL")
	} else {
		tx = tx.Where("student_attendance_schedule_slot_id = ?", *s.SlotID)
	}

	var ids []uuid.UUID
	if err := tx.Pluck("student_attendance_student_id", &ids).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (s *Store) InsertBatch(ctx context.Context, records []recorder.Record) (int64, error) {
	rows := make([]model.StudentAttendanceModel, 0, len(records))
	for _, r := range records {
		rows = append(rows, model.StudentAttendanceModel{
			StudentAttendanceSchoolID:       s.SchoolID,
			StudentAttendanceStudentID:      r.SubjectID,
			StudentAttendanceScheduleSlotID: s.SlotID,
			StudentAttendanceDate:           datatypes.Date(r.Date),
			StudentAttendanceStatus:         model.StudentAttendanceStatus(r.Status),
			StudentAttendanceNotes:          r.Notes,
			StudentAttendanceCreatedBy:      r.CreatedBy,
		})
	}

	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
