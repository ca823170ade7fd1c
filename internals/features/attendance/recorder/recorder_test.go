package recorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/helpers/apierror"
)

// fakeStore meniru tabel kehadiran dengan unique constraint (subjek, tanggal).
type fakeStore struct {
	rows      map[string]Record // key: subjectID|date
	readErr   error
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]Record{}}
}

func key(id uuid.UUID, date time.Time) string {
	return id.String() + "|" + date.Format("2006-01-02")
}

func (s *fakeStore) ExistingSubjectIDs(_ context.Context, subjectIDs []uuid.UUID, date time.Time) (map[uuid.UUID]bool, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := map[uuid.UUID]bool{}
	for _, id := range subjectIDs {
		if _, ok := s.rows[key(id, date)]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (s *fakeStore) InsertBatch(_ context.Context, records []Record) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	var n int64
	for _, r := range records {
		k := key(r.SubjectID, r.Date)
		if _, ok := s.rows[k]; ok {
			continue // ON CONFLICT DO NOTHING
		}
		s.rows[k] = r
		n++
	}
	return n, nil
}

var (
	t1    = uuid.New()
	t2    = uuid.New()
	admin = uuid.New()
)

func bulkInput(ids ...uuid.UUID) BulkInput {
	return BulkInput{
		SubjectIDs: ids,
		Date:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		Status:     "hadir",
		CreatedBy:  admin,
	}
}

func TestRecordBulkIdempotent(t *testing.T) {
	store := newFakeStore()

	first, err := RecordBulk(context.Background(), store, bulkInput(t1, t2))
	require.NoError(t, err)
	assert.Equal(t, 2, first.CreatedCount)
	assert.Equal(t, 0, first.AlreadyExistingCount)
	assert.False(t, first.AllConflict())

	second, err := RecordBulk(context.Background(), store, bulkInput(t1, t2))
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedCount)
	assert.Equal(t, 2, second.AlreadyExistingCount)
	assert.True(t, second.AllConflict())

	assert.Len(t, store.rows, 2) // total baris tetap 2
}

func TestRecordBulkDeduplicatesInput(t *testing.T) {
	store := newFakeStore()

	res, err := RecordBulk(context.Background(), store, bulkInput(t1, t1, t2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.CreatedCount)
	assert.Equal(t, []uuid.UUID{t1, t2}, res.CreatedSubjectIDs)
	assert.Len(t, store.rows, 2)
}

func TestRecordBulkDateNormalization(t *testing.T) {
	store := newFakeStore()

	late := bulkInput(t1)
	late.Date = time.Date(2025, 3, 1, 23, 59, 0, 0, time.Local)
	_, err := RecordBulk(context.Background(), store, late)
	require.NoError(t, err)

	early := bulkInput(t1)
	early.Date = time.Date(2025, 3, 1, 0, 0, 1, 0, time.Local)
	res, err := RecordBulk(context.Background(), store, early)
	require.NoError(t, err)

	// hari kalender sama → bentrok, bukan record baru
	assert.Equal(t, 0, res.CreatedCount)
	assert.Equal(t, []uuid.UUID{t1}, res.AlreadyExistingSubjectIDs)
	assert.Len(t, store.rows, 1)
}

func TestRecordBulkPartialExisting(t *testing.T) {
	store := newFakeStore()

	_, err := RecordBulk(context.Background(), store, bulkInput(t1))
	require.NoError(t, err)

	res, err := RecordBulk(context.Background(), store, bulkInput(t1, t2))
	require.NoError(t, err)
	assert.Equal(t, 1, res.CreatedCount)
	assert.Equal(t, 1, res.AlreadyExistingCount)
	assert.Equal(t, []uuid.UUID{t2}, res.CreatedSubjectIDs)
	assert.Equal(t, []uuid.UUID{t1}, res.AlreadyExistingSubjectIDs)
	assert.False(t, res.AllConflict())
}

func TestRecordBulkValidation(t *testing.T) {
	store := newFakeStore()

	cases := []struct {
		name  string
		in    BulkInput
		field string
	}{
		{"tanpa subjek", BulkInput{Date: time.Now(), CreatedBy: admin}, "subject_ids"},
		{"tanpa tanggal", BulkInput{SubjectIDs: []uuid.UUID{t1}, CreatedBy: admin}, "date"},
		{"tanpa created_by", BulkInput{SubjectIDs: []uuid.UUID{t1}, Date: time.Now()}, "created_by"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordBulk(context.Background(), store, tc.in)
			var ve *apierror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
	assert.Empty(t, store.rows)
}

func TestRecordBulkStorageErrorSurfaced(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("connection reset")

	_, err := RecordBulk(context.Background(), store, bulkInput(t1))
	var se *apierror.StorageError
	require.ErrorAs(t, err, &se)

	store.insertErr = nil
	store.readErr = errors.New("timeout")
	_, err = RecordBulk(context.Background(), store, bulkInput(t1))
	require.ErrorAs(t, err, &se)
}

func TestRecordBulkRaceLostRowsCounted(t *testing.T) {
	// simulasi: panggilan konkuren menyisipkan t1 di antara read dan insert
	store := newFakeStore()
	raced := &racingStore{fakeStore: store, winner: t1}

	res, err := RecordBulk(context.Background(), raced, bulkInput(t1, t2))
	require.NoError(t, err)
	assert.Equal(t, 1, res.CreatedCount)
	assert.Equal(t, 1, res.AlreadyExistingCount)
	assert.Len(t, store.rows, 2)
}

// racingStore menyisipkan baris "pemenang" setelah fase read pertama.
type racingStore struct {
	*fakeStore
	winner uuid.UUID
	done   bool
}

func (s *racingStore) ExistingSubjectIDs(ctx context.Context, ids []uuid.UUID, date time.Time) (map[uuid.UUID]bool, error) {
	out, err := s.fakeStore.ExistingSubjectIDs(ctx, ids, date)
	if err == nil && !s.done {
		s.done = true
		s.rows[key(s.winner, date)] = Record{SubjectID: s.winner, Date: date}
	}
	return out, err
}
