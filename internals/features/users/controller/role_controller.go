package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/dto"
	model "sekolahku_backend/internals/features/users/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
)

// Role bersifat global (bukan per sekolah); hanya admin yang mengelola.
type RoleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db, Validate: validator.New()}
}

// GET /api/a/:school_id/roles
func (ctrl *RoleController) List(c *fiber.Ctx) error {
	var rows []model.RoleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("role_name ASC").
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("roles.list", err)
	}
	return helper.JsonOK(c, "Daftar role", rows)
}

// POST /api/a/:school_id/roles
func (ctrl *RoleController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := &model.RoleModel{
		RoleName:        req.RoleName,
		RolePermissions: pq.StringArray(req.RolePermissions),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("roles.create", "Nama role sudah dipakai", err)
	}
	return helper.JsonCreated(c, "Role berhasil dibuat", m)
}

// PATCH /api/a/:school_id/roles/:id
func (ctrl *RoleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.RolePermissions == nil {
		return apierror.NewValidation("role_permissions", "tidak ada perubahan yang dikirim")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.RoleModel{}).
		Where("role_id = ?", id).
		Update("role_permissions", pq.StringArray(*req.RolePermissions))
	if res.Error != nil {
		return apierror.NewStorage("roles.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Role tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Role berhasil diubah", fiber.Map{
		"role_id":          id,
		"role_permissions": *req.RolePermissions,
	})
}
