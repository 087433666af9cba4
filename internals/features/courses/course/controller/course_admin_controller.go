package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"geocourse_backend/internals/features/courses/course/dto"
	"geocourse_backend/internals/features/courses/course/model"
	helpers "geocourse_backend/internals/helpers"
)

var validate = validator.New()

// CourseAdminController manages courses and their modules.
type CourseAdminController struct {
	DB *gorm.DB
}

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db}
}

/* =============================
   📘 Courses
============================= */

func (ctrl *CourseAdminController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.CourseCurrency))
	if currency == "" {
		currency = "IDR"
	}

	course := model.CourseModel{
		CourseTitle:       req.CourseTitle,
		CourseSlug:        strings.ToLower(strings.TrimSpace(req.CourseSlug)),
		CourseDescription: req.CourseDescription,
		CoursePrice:       req.CoursePrice,
		CourseCurrency:    currency,
		CourseIsPublished: req.CourseIsPublished,
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return helpers.JsonError(c, fiber.StatusConflict, "Course slug already in use")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helpers.JsonCreated(c, "Course created", dto.ToCourseDTO(course))
}

func (ctrl *CourseAdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	updates := map[string]interface{}{}
	if req.CourseTitle != nil {
		updates["course_title"] = *req.CourseTitle
	}
	if req.CourseDescription != nil {
		updates["course_description"] = *req.CourseDescription
	}
	if req.CoursePrice != nil {
		updates["course_price"] = *req.CoursePrice
	}
	if req.CourseIsPublished != nil {
		updates["course_is_published"] = *req.CourseIsPublished
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	return helpers.JsonUpdated(c, "Course updated", dto.ToCourseDTO(course))
}

func (ctrl *CourseAdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", courseID)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	return helpers.JsonDeleted(c, "Course deleted", nil)
}

/* =============================
   📗 Course modules
============================= */

func (ctrl *CourseAdminController) CreateCourseModule(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var req dto.CreateCourseModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	role := req.CourseModuleRole
	if role == "" {
		role = model.ModuleRoleContent
	}

	mod := model.CourseModuleModel{
		CourseModuleCourseID:    course.CourseID,
		CourseModuleTitle:       req.CourseModuleTitle,
		CourseModuleDescription: req.CourseModuleDescription,
		CourseModuleContent:     req.CourseModuleContent,
		CourseModuleOrder:       req.CourseModuleOrder,
		CourseModuleRole:        role,
	}

	if err := ctrl.DB.Create(&mod).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return helpers.JsonError(c, fiber.StatusConflict, "A module with that order already exists in this course")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create module")
	}

	return helpers.JsonCreated(c, "Module created", dto.ToCourseModuleDetailDTO(mod))
}

func (ctrl *CourseAdminController) UpdateCourseModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid module ID")
	}

	var req dto.UpdateCourseModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var mod model.CourseModuleModel
	if err := ctrl.DB.First(&mod, "course_module_id = ?", moduleID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	updates := map[string]interface{}{}
	if req.CourseModuleTitle != nil {
		updates["course_module_title"] = *req.CourseModuleTitle
	}
	if req.CourseModuleDescription != nil {
		updates["course_module_description"] = *req.CourseModuleDescription
	}
	if req.CourseModuleContent != nil {
		updates["course_module_content"] = *req.CourseModuleContent
	}
	if req.CourseModuleOrder != nil {
		updates["course_module_order"] = *req.CourseModuleOrder
	}
	if req.CourseModuleRole != nil {
		updates["course_module_role"] = *req.CourseModuleRole
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&mod).Updates(updates).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return helpers.JsonError(c, fiber.StatusConflict, "A module with that order already exists in this course")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update module")
	}

	return helpers.JsonUpdated(c, "Module updated", dto.ToCourseModuleDetailDTO(mod))
}

func (ctrl *CourseAdminController) DeleteCourseModule(c *fiber.Ctx) error {
	moduleID, err := uuid.Parse(c.Params("moduleId"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid module ID")
	}

	res := ctrl.DB.Delete(&model.CourseModuleModel{}, "course_module_id = ?", moduleID)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete module")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	return helpers.JsonDeleted(c, "Module deleted", nil)
}
