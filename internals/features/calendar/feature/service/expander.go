// Package service menghasilkan entri kalender konkret (CalendarFeature) dari
// jadwal mingguan berulang + agenda sekali jalan, untuk satu tahun kalender.
// Murni: tanpa I/O, deterministik untuk input yang sama.
package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"sekolahku_backend/internals/helpers/apierror"
)

type Category string

const (
	CategoryRegularClass Category = "regular-class"
	CategoryHoliday      Category = "holiday"
	CategoryExam         Category = "exam"
	CategoryEvent        Category = "event"
)

type SourceType string

const (
	SourceSchedule SourceType = "schedule"
	SourceSpecial  SourceType = "special"
)

// SlotInput: satu jadwal mingguan, sudah difilter ke scope user oleh pemanggil.
// DayOfWeek konvensi 0=Minggu; nilai 7 dinormalisasi ke 0 di sini juga,
// jaga-jaga data lama yang masih memakai konvensi 1–7.
type SlotInput struct {
	ID          string
	Name        string
	Description string
	DayOfWeek   int
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
}

// EventInput: satu agenda kalender; hanya yang IsPublished ikut diekspansi.
type EventInput struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Type        string // HOLIDAY | EXAM | lainnya → event
	IsPublished bool
}

// CalendarFeature: hasil ekspansi, tidak pernah dipersist.
type CalendarFeature struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Category    Category   `json:"category"`
	SourceType  SourceType `json:"source_type"`
	Description string     `json:"description,omitempty"`
}

// Expand mengubah jadwal mingguan + agenda menjadi daftar CalendarFeature
// untuk rentang 1 Januari s/d 31 Desember tahun referensi, urut naik StartAt.
//
// Aturan:
//   - satu feature per kemunculan-mingguan slot di dalam tahun; id sintetis
//     "{slotID}-{epochMillis kemunculan}"
//   - endTime < startTime TIDAK di-roll ke hari berikutnya (data-entry
//     condition, dipertahankan apa adanya)
//   - satu feature per agenda terpublikasi, membentang 00:00:00.000 s/d
//     23:59:59.999 waktu lokal
//   - jam tidak valid menggagalkan seluruh panggilan (tanpa emisi parsial)
func Expand(slots []SlotInput, events []EventInput, referenceDate time.Time) ([]CalendarFeature, error) {
	loc := referenceDate.Location()
	year := referenceDate.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)

	out := make([]CalendarFeature, 0, len(slots)*52+len(events))

	for _, s := range slots {
		dow := s.DayOfWeek
		if dow == 7 {
			dow = 0
		}
		if dow < 0 || dow > 6 {
			return nil, apierror.NewValidation(s.ID, fmt.Sprintf("day_of_week %d di luar rentang 0–6", s.DayOfWeek))
		}

		sh, sm, err := parseClock(s.StartTime)
		if err != nil {
			return nil, apierror.NewValidation(s.ID, "start_time tidak valid: "+s.StartTime)
		}
		eh, em, err := parseClock(s.EndTime)
		if err != nil {
			return nil, apierror.NewValidation(s.ID, "end_time tidak valid: "+s.EndTime)
		}

		// kemunculan pertama pada/atau setelah 1 Januari
		offset := (dow - int(jan1.Weekday()) + 7) % 7
		for d := jan1.AddDate(0, 0, offset); !d.After(dec31); d = d.AddDate(0, 0, 7) {
			start := time.Date(d.Year(), d.Month(), d.Day(), sh, sm, 0, 0, loc)
			end := time.Date(d.Year(), d.Month(), d.Day(), eh, em, 0, 0, loc)
			out = append(out, CalendarFeature{
				ID:          fmt.Sprintf("%s-%d", s.ID, start.UnixMilli()),
				Name:        s.Name,
				StartAt:     start,
				EndAt:       end,
				Category:    CategoryRegularClass,
				SourceType:  SourceSchedule,
				Description: s.Description,
			})
		}
	}

	for _, ev := range events {
		if !ev.IsPublished {
			continue
		}
		d := ev.Date.In(loc)
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
		end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, loc)
		out = append(out, CalendarFeature{
			ID:          ev.ID,
			Name:        ev.Title,
			StartAt:     start,
			EndAt:       end,
			Category:    categoryForEventType(ev.Type),
			SourceType:  SourceSpecial,
			Description: ev.Description,
		})
	}

	// stabil: seri StartAt mempertahankan urutan input
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
	})
	return out, nil
}

func categoryForEventType(t string) Category {
	switch strings.ToUpper(strings.TrimSpace(t)) {
	case "HOLIDAY":
		return CategoryHoliday
	case "EXAM":
		return CategoryExam
	default:
		return CategoryEvent
	}
}

// parseClock menerima "HH:MM" (atau "HH:MM:SS", detik diabaikan).
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("format jam %q bukan HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("jam %q di luar rentang", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("menit %q di luar rentang", s)
	}
	return hour, minute, nil
}
