package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	model "sekolahku_backend/internals/features/users/model"
	"sekolahku_backend/internals/features/users/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* ===================== IMPORT ===================== */
// POST /api/a/:school_id/users/import (multipart, field "file")
//
// Tiap baris sehat jadi satu transaksi user+profil; baris yang gagal
// (email/NIS duplikat, dsb) dicatat di report tanpa membatalkan sisanya.
func (ctrl *UserController) Import(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File CSV wajib diunggah di field 'file'")
	}
	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File tidak terbaca")
	}
	defer f.Close()

	parsed, err := service.ParseImportCSV(f)
	if err != nil {
		return err
	}

	var roles []model.RoleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("role_name IN ?", []string{constants.RoleTeacher, constants.RoleStudent}).
		Find(&roles).Error; err != nil {
		return apierror.NewStorage("users.import_roles", err)
	}
	roleIDs := make(map[string]uuid.UUID, len(roles))
	for _, r := range roles {
		roleIDs[r.RoleName] = r.RoleID
	}
	for _, need := range []string{constants.RoleTeacher, constants.RoleStudent} {
		if _, ok := roleIDs[need]; !ok {
			return apierror.NewStorage("users.import_roles", fmt.Errorf("role %q belum ada", need))
		}
	}

	report := service.ImportReport{Errors: parsed.Errors}

	newUser := func(roleName, name, email, password string) (*model.UserModel, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		return &model.UserModel{
			UserSchoolID: schoolID,
			UserRoleID:   roleIDs[roleName],
			UserName:     name,
			UserEmail:    strings.ToLower(email),
			UserPassword: string(hash),
			UserIsActive: true,
		}, nil
	}

	for _, row := range parsed.Teachers {
		u, err := newUser(constants.RoleTeacher, row.Name, row.Email, row.Password)
		if err != nil {
			return apierror.NewStorage("users.import_hash", err)
		}
		err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
			return tx.Create(&model.TeacherModel{
				TeacherSchoolID: schoolID,
				TeacherUserID:   &u.UserID,
				TeacherNIP:      row.NIP,
				TeacherName:     row.Name,
				TeacherPhone:    row.Phone,
			}).Error
		})
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, service.RowError{Message: importRowMessage(row.Email, err)})
			continue
		}
		report.Created++
	}

	for _, row := range parsed.Students {
		u, err := newUser(constants.RoleStudent, row.Name, row.Email, row.Password)
		if err != nil {
			return apierror.NewStorage("users.import_hash", err)
		}
		err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
			return tx.Create(&model.StudentModel{
				StudentSchoolID: schoolID,
				StudentUserID:   &u.UserID,
				StudentClassID:  row.ClassID,
				StudentNIS:      row.NIS,
				StudentName:     row.Name,
				StudentGuardian: row.Guardian,
			}).Error
		})
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, service.RowError{Message: importRowMessage(row.Email, err)})
			continue
		}
		report.Created++
	}

	report.Skipped += len(parsed.Errors)
	return helper.JsonCreated(c, "Impor selesai", report)
}

func importRowMessage(email string, err error) string {
	if apierror.IsUniqueViolation(err) {
		return fmt.Sprintf("%s: email atau NIS sudah terdaftar", email)
	}
	return fmt.Sprintf("%s: gagal disimpan", email)
}
