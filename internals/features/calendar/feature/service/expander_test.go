package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/helpers/apierror"
)

func refDate(year int) time.Time {
	return time.Date(year, time.June, 15, 10, 0, 0, 0, time.Local)
}

func TestExpandDeterministic(t *testing.T) {
	slots := []SlotInput{
		{ID: "s1", Name: "Matematika", DayOfWeek: 1, StartTime: "07:00", EndTime: "08:30"},
		{ID: "s2", Name: "Fisika", DayOfWeek: 3, StartTime: "09:00", EndTime: "10:30"},
	}
	events := []EventInput{
		{ID: "e1", Title: "Ujian Tengah Semester", Date: time.Date(2025, 4, 14, 0, 0, 0, 0, time.Local), Type: "EXAM", IsPublished: true},
	}

	a, err := Expand(slots, events, refDate(2025))
	require.NoError(t, err)
	b, err := Expand(slots, events, refDate(2025))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExpandWeeklyCoverage(t *testing.T) {
	// 2025 punya 52 hari Senin
	slots := []SlotInput{{ID: "s1", Name: "Matematika", DayOfWeek: 1, StartTime: "07:00", EndTime: "08:30"}}

	feats, err := Expand(slots, nil, refDate(2025))
	require.NoError(t, err)
	require.Len(t, feats, 52)

	for i, f := range feats {
		assert.Equal(t, time.Monday, f.StartAt.Weekday())
		assert.Equal(t, 7, f.StartAt.Hour())
		assert.Equal(t, 0, f.StartAt.Minute())
		assert.Equal(t, CategoryRegularClass, f.Category)
		assert.Equal(t, SourceSchedule, f.SourceType)
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, f.StartAt.Sub(feats[i-1].StartAt))
		}
	}
	// semua kemunculan di dalam tahun target
	assert.Equal(t, 2025, feats[0].StartAt.Year())
	assert.Equal(t, 2025, feats[len(feats)-1].StartAt.Year())
}

func TestExpandSundayConventions(t *testing.T) {
	// 0 dan 7 sama-sama berarti Minggu
	zero := []SlotInput{{ID: "s1", Name: "Pengajian", DayOfWeek: 0, StartTime: "08:00", EndTime: "09:00"}}
	seven := []SlotInput{{ID: "s1", Name: "Pengajian", DayOfWeek: 7, StartTime: "08:00", EndTime: "09:00"}}

	a, err := Expand(zero, nil, refDate(2025))
	require.NoError(t, err)
	b, err := Expand(seven, nil, refDate(2025))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, time.Sunday, a[0].StartAt.Weekday())
}

func TestExpandEventFullDaySpan(t *testing.T) {
	events := []EventInput{
		{ID: "e1", Title: "Natal", Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.Local), Type: "HOLIDAY", IsPublished: true},
	}

	feats, err := Expand(nil, events, refDate(2025))
	require.NoError(t, err)
	require.Len(t, feats, 1)

	f := feats[0]
	assert.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, time.Local), f.StartAt)
	assert.Equal(t, time.Date(2025, 12, 25, 23, 59, 59, 999_000_000, time.Local), f.EndAt)
	assert.Equal(t, CategoryHoliday, f.Category)
	assert.Equal(t, SourceSpecial, f.SourceType)
}

func TestExpandUnpublishedEventSkipped(t *testing.T) {
	events := []EventInput{
		{ID: "e1", Title: "Natal", Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.Local), Type: "HOLIDAY", IsPublished: false},
	}
	feats, err := Expand(nil, events, refDate(2025))
	require.NoError(t, err)
	assert.Empty(t, feats)
}

func TestExpandEventTypeMapping(t *testing.T) {
	mk := func(typ string) EventInput {
		return EventInput{ID: "e-" + typ, Title: typ, Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local), Type: typ, IsPublished: true}
	}
	feats, err := Expand(nil, []EventInput{mk("HOLIDAY"), mk("EXAM"), mk("PENSI")}, refDate(2025))
	require.NoError(t, err)
	require.Len(t, feats, 3)
	assert.Equal(t, CategoryHoliday, feats[0].Category)
	assert.Equal(t, CategoryExam, feats[1].Category)
	assert.Equal(t, CategoryEvent, feats[2].Category) // tipe tak dikenal → event
}

func TestExpandOvernightSlotEmittedAsIs(t *testing.T) {
	// end < start: tidak di-roll ke hari berikutnya
	slots := []SlotInput{{ID: "s1", Name: "Kelas Malam", DayOfWeek: 5, StartTime: "22:00", EndTime: "01:00"}}

	feats, err := Expand(slots, nil, refDate(2025))
	require.NoError(t, err)
	require.NotEmpty(t, feats)
	f := feats[0]
	assert.Equal(t, f.StartAt.Day(), f.EndAt.Day())
	assert.True(t, f.EndAt.Before(f.StartAt))
}

func TestExpandMalformedTimeFailsAtomically(t *testing.T) {
	slots := []SlotInput{
		{ID: "ok", Name: "Matematika", DayOfWeek: 1, StartTime: "07:00", EndTime: "08:30"},
		{ID: "rusak", Name: "Fisika", DayOfWeek: 2, StartTime: "7 pagi", EndTime: "08:30"},
	}

	feats, err := Expand(slots, nil, refDate(2025))
	require.Error(t, err)
	assert.Nil(t, feats) // gagal atomik, tanpa emisi parsial

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "rusak", ve.Field) // error menyebut slot yang bermasalah
}

func TestExpandSyntheticIDsUniquePerOccurrence(t *testing.T) {
	slots := []SlotInput{{ID: "s1", Name: "Matematika", DayOfWeek: 1, StartTime: "07:00", EndTime: "08:30"}}

	feats, err := Expand(slots, nil, refDate(2025))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, f := range feats {
		assert.False(t, seen[f.ID], "id %s duplikat", f.ID)
		seen[f.ID] = true
	}
}

func TestExpandStableSortOnTies(t *testing.T) {
	// slot Kamis 00:00 dan event di Kamis yang sama → StartAt identik;
	// urutan input (slot dulu, baru event) harus bertahan
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local) // Kamis pertama 2025
	slots := []SlotInput{{ID: "s1", Name: "Upacara", DayOfWeek: 4, StartTime: "00:00", EndTime: "01:00"}}
	events := []EventInput{{ID: "e1", Title: "Agenda", Date: day, Type: "EVENT", IsPublished: true}}

	feats, err := Expand(slots, events, refDate(2025))
	require.NoError(t, err)
	require.True(t, len(feats) >= 2)

	assert.Equal(t, feats[0].StartAt, feats[1].StartAt)
	assert.Equal(t, SourceSchedule, feats[0].SourceType)
	assert.Equal(t, SourceSpecial, feats[1].SourceType)
}

func TestExpandEmptyInputs(t *testing.T) {
	feats, err := Expand(nil, nil, refDate(2025))
	require.NoError(t, err)
	assert.Empty(t, feats)
}

func TestExpandDoesNotMutateInputs(t *testing.T) {
	slots := []SlotInput{{ID: "s1", Name: "Matematika", DayOfWeek: 7, StartTime: "07:00", EndTime: "08:30"}}
	_, err := Expand(slots, nil, refDate(2025))
	require.NoError(t, err)
	assert.Equal(t, 7, slots[0].DayOfWeek) // normalisasi tidak menulis balik
}
