package controller

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	dto "learnhub_backend/internals/features/users/user/dto"
	model "learnhub_backend/internals/features/users/user/model"
	service "learnhub_backend/internals/features/users/user/service"
	helper "learnhub_backend/internals/helpers"
	"learnhub_backend/internals/services/storage"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sugar     *zap.SugaredLogger
}

func NewUserController(db *gorm.DB, sugar *zap.SugaredLogger) *UserController {
	return &UserController{DB: db, Validator: validator.New(), Sugar: sugar}
}

// GET /api/admin/dashboard
// Superadmins see every account; admins see only students and teachers.
func (ctl *UserController) Dashboard(c *fiber.Ctx) error {
	role := helper.Role(c)

	q := ctl.DB.Model(&model.UserModel{})
	if role == model.RoleAdmin {
		q = q.Where("role IN ?", []string{model.RoleStudent, model.RoleTeacher})
	}

	var users []model.UserModel
	if err := q.Order("id").Find(&users).Error; err != nil {
		ctl.Sugar.Errorw("dashboard: list failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Users fetched successfully", users)
}

// POST /api/admin/approveUser
// Superadmin may approve into any role; admin only into student or teacher.
func (ctl *UserController) ApproveUser(c *fiber.Ctx) error {
	var req dto.ApproveUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actorRole := helper.Role(c)
	if actorRole == model.RoleAdmin && req.Role != model.RoleStudent && req.Role != model.RoleTeacher {
		return helper.Error(c, fiber.StatusForbidden, "Admins can only approve student or teacher roles")
	}
	switch req.Role {
	case model.RoleAdmin, model.RoleStudent, model.RoleTeacher:
	default:
		return helper.Error(c, fiber.StatusBadRequest, "Invalid role provided")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		ctl.Sugar.Errorw("approve: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user.Approved = true
	user.Role = req.Role
	if err := ctl.DB.Save(&user).Error; err != nil {
		ctl.Sugar.Errorw("approve: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, fmt.Sprintf("User %d approved as %s", user.ID, user.Role), user)
}

// POST /api/admin/createUser
func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctl.Sugar.Errorw("create user: hash failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user := model.UserModel{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		Role:        req.Role,
		Approved:    req.Approved,
		PhoneNumber: req.PhoneNumber,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "User with this email already exists")
		}
		ctl.Sugar.Errorw("create user: insert failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", user)
}

// PUT /api/admin/updateUser/:userId
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		ctl.Sugar.Errorw("update user: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Approved != nil {
		user.Approved = *req.Approved
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			ctl.Sugar.Errorw("update user: hash failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
		user.Password = string(hashed)
	}

	if err := ctl.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "User with this email already exists")
		}
		ctl.Sugar.Errorw("update user: save failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "User updated successfully", user)
}

// DELETE /api/admin/deleteUser/:userId
func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	userID, err := helper.ParamUint(c, "userId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		ctl.Sugar.Errorw("delete user: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.DB.Delete(&user).Error; err != nil {
		ctl.Sugar.Errorw("delete user: delete failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "User deleted successfully", nil)
}

// POST /api/admin/bulkRegisterUsers
// Multipart Excel upload; every row is processed independently.
func (ctl *UserController) BulkRegisterUsers(c *fiber.Ctx) error {
	path, err := storage.SaveUploadedFile(c, "file", configs.UploadDir, storage.PDFAndExcel)
	if err != nil {
		if errors.Is(err, storage.ErrNoFile) {
			return helper.Error(c, fiber.StatusBadRequest, "No file uploaded")
		}
		if errors.Is(err, storage.ErrInvalidFileType) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid file type. Only PDF and Excel files are allowed.")
		}
		ctl.Sugar.Errorw("bulk import: upload failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	// The sheet is transient input, not content to keep.
	defer func() { _ = os.Remove(path) }()

	f, err := os.Open(path)
	if err != nil {
		ctl.Sugar.Errorw("bulk import: open failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	defer func() { _ = f.Close() }()

	rows, err := service.ParseUsersSheet(f)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Could not parse Excel file")
	}

	results := service.ImportUsers(ctl.DB, rows)
	return helper.Success(c, "Bulk user registration completed", results)
}
