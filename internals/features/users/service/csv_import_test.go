package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/helpers/apierror"
)

func TestParseImportCSVHeaderMapping(t *testing.T) {
	// urutan kolom bebas; pemetaan lewat nama header
	in := strings.Join([]string{
		"email,type,password,name,nis",
		"budi@sekolah.id,student,rahasia1,Budi Santoso,2024001",
		"siti@sekolah.id,teacher,rahasia2,Siti Aminah,",
	}, "\n")

	f, err := ParseImportCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, f.Students, 1)
	require.Len(t, f.Teachers, 1)
	assert.Empty(t, f.Errors)

	assert.Equal(t, "Budi Santoso", f.Students[0].Name)
	assert.Equal(t, "2024001", f.Students[0].NIS)
	assert.Equal(t, "Siti Aminah", f.Teachers[0].Name)
}

func TestParseImportCSVRejectsUnknownHeader(t *testing.T) {
	in := "type,name,email,password,jabatan\nteacher,Siti,siti@sekolah.id,x,guru"

	_, err := ParseImportCSV(strings.NewReader(in))
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "jabatan")
}

func TestParseImportCSVRejectsMissingRequiredHeader(t *testing.T) {
	in := "type,name,email\nteacher,Siti,siti@sekolah.id"

	_, err := ParseImportCSV(strings.NewReader(in))
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "password")
}

func TestParseImportCSVRejectsDuplicateHeader(t *testing.T) {
	in := "type,name,name,email,password\nteacher,Siti,Siti,siti@sekolah.id,x"

	_, err := ParseImportCSV(strings.NewReader(in))
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestParseImportCSVSkipsBadRows(t *testing.T) {
	classID := uuid.New()
	in := strings.Join([]string{
		"type,name,email,password,nis,class_id",
		"student,Budi,budi@sekolah.id,x,2024001," + classID.String(),
		"student,,kosong@sekolah.id,x,2024002,",     // tanpa nama
		"student,Ani,ani@sekolah.id,x,,",            // tanpa nis
		"student,Cici,cici@sekolah.id,x,2024003,bukan-uuid",
		"satpam,Dodi,dodi@sekolah.id,x,,",           // type tak dikenal
		"student,Eka,eka-tanpa-at,x,2024004,",       // email rusak
	}, "\n")

	f, err := ParseImportCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, f.Students, 1)
	assert.Equal(t, "Budi", f.Students[0].Name)
	require.NotNil(t, f.Students[0].ClassID)
	assert.Equal(t, classID, *f.Students[0].ClassID)

	require.Len(t, f.Errors, 5)
	lines := make([]int, 0, len(f.Errors))
	for _, e := range f.Errors {
		lines = append(lines, e.Line)
	}
	assert.Equal(t, []int{3, 4, 5, 6, 7}, lines) // nomor baris file, bukan indeks data
}

func TestParseImportCSVEmptyFile(t *testing.T) {
	_, err := ParseImportCSV(strings.NewReader(""))
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
}
