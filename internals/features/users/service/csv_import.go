package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"sekolahku_backend/internals/helpers/apierror"
)

// Impor massal user dari CSV. Kolom dipetakan lewat NAMA header, bukan posisi;
// header yang tidak dikenal membuat seluruh file ditolak supaya salah ketik
// kolom tidak diam-diam terbuang.

const (
	RowTypeTeacher = "teacher"
	RowTypeStudent = "student"
)

var allowedHeaders = map[string]bool{
	"type": true, "name": true, "email": true, "password": true,
	"nip": true, "phone": true,
	"nis": true, "class_id": true, "guardian": true,
}

var requiredHeaders = []string{"type", "name", "email", "password"}

// Struct request tertutup per jenis subjek; tidak ada field bebas.
type TeacherRow struct {
	Name     string
	Email    string
	Password string
	NIP      *string
	Phone    *string
}

type StudentRow struct {
	Name     string
	Email    string
	Password string
	NIS      string
	ClassID  *uuid.UUID
	Guardian *string
}

type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportFile struct {
	Teachers []TeacherRow
	Students []StudentRow
	Errors   []RowError // baris yang dilewati beserta alasannya
}

type ImportReport struct {
	Created int        `json:"created"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors"`
}

// ParseImportCSV membaca dan memvalidasi file; baris rusak dicatat sebagai
// error dan dilewati, baris sehat dikembalikan siap disimpan.
func ParseImportCSV(r io.Reader) (*ImportFile, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, apierror.NewValidation("file", "CSV kosong atau tidak terbaca")
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if !allowedHeaders[name] {
			return nil, apierror.NewValidation("file", fmt.Sprintf("header tidak dikenal: %q", h))
		}
		if _, dup := idx[name]; dup {
			return nil, apierror.NewValidation("file", fmt.Sprintf("header ganda: %q", h))
		}
		idx[name] = i
	}
	for _, req := range requiredHeaders {
		if _, ok := idx[req]; !ok {
			return nil, apierror.NewValidation("file", fmt.Sprintf("header wajib tidak ada: %q", req))
		}
	}

	out := &ImportFile{}
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			out.Errors = append(out.Errors, RowError{Line: line, Message: "baris tidak terbaca"})
			continue
		}

		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		getOpt := func(col string) *string {
			if v := get(col); v != "" {
				return &v
			}
			return nil
		}

		name, email, password := get("name"), get("email"), get("password")
		if name == "" || email == "" || password == "" {
			out.Errors = append(out.Errors, RowError{Line: line, Message: "name, email, dan password wajib diisi"})
			continue
		}
		if !strings.Contains(email, "@") {
			out.Errors = append(out.Errors, RowError{Line: line, Message: "email tidak valid"})
			continue
		}

		switch strings.ToLower(get("type")) {
		case RowTypeTeacher:
			out.Teachers = append(out.Teachers, TeacherRow{
				Name:     name,
				Email:    email,
				Password: password,
				NIP:      getOpt("nip"),
				Phone:    getOpt("phone"),
			})
		case RowTypeStudent:
			nis := get("nis")
			if nis == "" {
				out.Errors = append(out.Errors, RowError{Line: line, Message: "nis wajib diisi untuk siswa"})
				continue
			}
			row := StudentRow{
				Name:     name,
				Email:    email,
				Password: password,
				NIS:      nis,
				Guardian: getOpt("guardian"),
			}
			if v := get("class_id"); v != "" {
				id, err := uuid.Parse(v)
				if err != nil {
					out.Errors = append(out.Errors, RowError{Line: line, Message: "class_id bukan UUID"})
					continue
				}
				row.ClassID = &id
			}
			out.Students = append(out.Students, row)
		default:
			out.Errors = append(out.Errors, RowError{Line: line, Message: "type harus teacher atau student"})
		}
	}
	return out, nil
}
