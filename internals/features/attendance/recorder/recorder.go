// Package recorder mencatat kehadiran banyak subjek (siswa atau guru) untuk
// satu tanggal dalam satu operasi logis: subjek yang sudah punya record di
// tanggal itu dilewati, hasil per-subjek dilaporkan. Invariant satu record per
// (subjek, tanggal) dijaga dua lapis: pengecekan baca di sini + unique
// constraint DB dengan insert ON CONFLICT DO NOTHING di Store.
package recorder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/helpers/apierror"
)

// Record: satu baris kehadiran yang akan dibuat.
type Record struct {
	SubjectID   uuid.UUID
	Date        time.Time // sudah dinormalisasi ke tengah malam lokal
	Status      string
	Notes       *string
	CreatedBy   uuid.UUID
	CheckinTime *time.Time // varian guru; Store mengisi default "now" bila nil
}

// Store: lapisan persistence per varian (siswa/guru).
type Store interface {
	// ExistingSubjectIDs mengembalikan subjek yang SUDAH punya record di tanggal itu.
	ExistingSubjectIDs(ctx context.Context, subjectIDs []uuid.UUID, date time.Time) (map[uuid.UUID]bool, error)
	// InsertBatch menyisipkan batch dengan duplicate-skipping (ON CONFLICT DO NOTHING)
	// dan mengembalikan jumlah baris yang benar-benar tersisip.
	InsertBatch(ctx context.Context, records []Record) (int64, error)
}

type BulkInput struct {
	SubjectIDs  []uuid.UUID
	Date        time.Time
	Status      string
	Notes       *string
	CreatedBy   uuid.UUID
	CheckinTime *time.Time
}

type BulkResult struct {
	CreatedCount              int         `json:"created"`
	AlreadyExistingCount      int         `json:"already_exists"`
	CreatedSubjectIDs         []uuid.UUID `json:"created_subject_ids"`
	AlreadyExistingSubjectIDs []uuid.UUID `json:"already_existing_subject_ids"`
}

// AllConflict: true bila tidak ada satu pun baris baru — pemanggil memetakan ke 409.
func (r *BulkResult) AllConflict() bool {
	return r.CreatedCount == 0 && r.AlreadyExistingCount > 0
}

// NormalizeDate memotong timestamp ke tengah malam lokal. Dua panggilan yang
// hanya berbeda jam di hari kalender yang sama harus bertabrakan, bukan
// membuat dua record.
func NormalizeDate(t time.Time) time.Time {
	lt := t.In(time.Local)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.Local)
}

// RecordBulk menjalankan operasi bulk terhadap store.
//
// Urutan: validasi → dedup (urutan kemunculan pertama dipertahankan) →
// baca subjek yang sudah ada → sisip sisanya dalam satu batch. Gagal baca/
// tulis dibungkus StorageError tanpa retry; pemanggil harus menganggap nol
// atau sebagian baris sudah ter-commit.
func RecordBulk(ctx context.Context, store Store, in BulkInput) (*BulkResult, error) {
	if len(in.SubjectIDs) == 0 {
		return nil, apierror.NewValidation("subject_ids", "tidak ada subjek yang dikirim")
	}
	if in.Date.IsZero() {
		return nil, apierror.NewValidation("date", "tanggal wajib diisi")
	}
	if in.CreatedBy == uuid.Nil {
		return nil, apierror.NewValidation("created_by", "created_by wajib diisi")
	}

	date := NormalizeDate(in.Date)

	// dedup, urutan first-seen
	seen := make(map[uuid.UUID]bool, len(in.SubjectIDs))
	subjects := make([]uuid.UUID, 0, len(in.SubjectIDs))
	for _, id := range in.SubjectIDs {
		if !seen[id] {
			seen[id] = true
			subjects = append(subjects, id)
		}
	}

	existing, err := store.ExistingSubjectIDs(ctx, subjects, date)
	if err != nil {
		return nil, apierror.NewStorage("attendance.read_existing", err)
	}

	res := &BulkResult{
		CreatedSubjectIDs:         make([]uuid.UUID, 0, len(subjects)),
		AlreadyExistingSubjectIDs: make([]uuid.UUID, 0),
	}
	toCreate := make([]Record, 0, len(subjects))
	for _, id := range subjects {
		if existing[id] {
			res.AlreadyExistingSubjectIDs = append(res.AlreadyExistingSubjectIDs, id)
			continue
		}
		res.CreatedSubjectIDs = append(res.CreatedSubjectIDs, id)
		toCreate = append(toCreate, Record{
			SubjectID:   id,
			Date:        date,
			Status:      in.Status,
			Notes:       in.Notes,
			CreatedBy:   in.CreatedBy,
			CheckinTime: in.CheckinTime,
		})
	}
	res.AlreadyExistingCount = len(res.AlreadyExistingSubjectIDs)

	if len(toCreate) == 0 {
		// semua sudah ada; tidak ada insert — sinyal konflik diputuskan pemanggil
		return res, nil
	}

	inserted, err := store.InsertBatch(ctx, toCreate)
	if err != nil {
		return nil, apierror.NewStorage("attendance.insert_batch", err)
	}
	// kalau ada panggilan konkuren yang menang duluan, ON CONFLICT DO NOTHING
	// membuat inserted < len(toCreate); laporkan angka yang benar-benar tersisip
	res.CreatedCount = int(inserted)
	if int(inserted) < len(toCreate) {
		res.AlreadyExistingCount += len(toCreate) - int(inserted)
	}
	return res, nil
}
