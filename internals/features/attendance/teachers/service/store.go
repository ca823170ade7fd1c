package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "sekolahku_backend/internals/features/attendance/teachers/model"
	"sekolahku_backend/internals/features/attendance/recorder"
	"sekolahku_backend/internals/helpers/dbtime"
)

// Store: implementasi recorder.Store di atas tabel teacher_attendances.
type Store struct {
	DB       *gorm.DB
	SchoolID uuid.UUID
}

func NewStore(db *gorm.DB, schoolID uuid.UUID) *Store {
	return &Store{DB: db, SchoolID: schoolID}
}

func (s *Store) ExistingSubjectIDs(ctx context.Context, subjectIDs []uuid.UUID, date time.Time) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&model.TeacherAttendanceModel{}).
		Where("teacher_attendance_school_id = ?", s.SchoolID).
		Where("teacher_attendance_teacher_id IN ?", subjectIDs).
		Where("teacher_attendance_date = ?", datatypes.Date(date)).
		Pluck("teacher_attendance_teacher_id", &ids).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (s *Store) InsertBatch(ctx context.Context, records []recorder.Record) (int64, error) {
	rows := make([]model.TeacherAttendanceModel, 0, len(records))
	for _, r := range records {
		m := model.TeacherAttendanceModel{
			TeacherAttendanceSchoolID:  s.SchoolID,
			TeacherAttendanceTeacherID: r.SubjectID,
			TeacherAttendanceDate:      datatypes.Date(r.Date),
			TeacherAttendanceStatus:    model.TeacherAttendanceStatus(r.Status),
			TeacherAttendanceNotes:     r.Notes,
			TeacherAttendanceCreatedBy: r.CreatedBy,
		}
		// default jam check-in "sekarang" bila tidak dikirim
		if r.CheckinTime != nil {
			t := dbtime.From(*r.CheckinTime)
			m.TeacherAttendanceCheckinTime = &t
		} else {
			t := dbtime.From(time.Now())
			m.TeacherAttendanceCheckinTime = &t
		}
		rows = append(rows, m)
	}

	// ON CONFLICT DO NOTHING: jaring pengaman terhadap panggilan konkuren
	// yang menyisipkan (guru, tanggal) yang sama di antara read dan insert
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
