package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/dto"
	model "sekolahku_backend/internals/features/users/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_school_id = ?", schoolID)
	if q.RoleID != nil {
		tx = tx.Where("user_role_id = ?", *q.RoleID)
	}
	if q.Search != nil && *q.Search != "" {
		s := "%" + *q.Search + "%"
		tx = tx.Where("user_name ILIKE ? OR user_email ILIKE ?", s, s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("users.count", err)
	}
	var rows []model.UserModel
	if err := tx.Preload("Role").
		Order("user_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("users.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar user", rows, &pg)
}

/* ===================== CREATE ===================== */
// POST /api/a/:school_id/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return apierror.NewStorage("users.hash_password", err)
	}

	m := &model.UserModel{
		UserSchoolID: schoolID,
		UserRoleID:   req.UserRoleID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hash),
		UserIsActive: true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("users.create", "Email sudah terdaftar", err)
	}
	return helper.JsonCreated(c, "User berhasil dibuat", m)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/:school_id/users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return apierror.NewStorage("users.get", err)
	}

	if req.UserRoleID != nil {
		m.UserRoleID = *req.UserRoleID
	}
	if req.UserName != nil {
		m.UserName = *req.UserName
	}
	if req.UserPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return apierror.NewStorage("users.hash_password", err)
		}
		m.UserPassword = string(hash)
	}
	if req.UserIsActive != nil {
		m.UserIsActive = *req.UserIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.NewStorage("users.update", err)
	}
	return helper.JsonUpdated(c, "User berhasil diubah", m)
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/:school_id/users/:id
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ? AND user_school_id = ?", id, schoolID).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return apierror.NewStorage("users.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": id})
}
