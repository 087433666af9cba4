package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"geocourse_backend/internals/features/courses/course/dto"
	"geocourse_backend/internals/features/courses/course/model"
	helpers "geocourse_backend/internals/helpers"
)

// CourseController serves the public (read-only) course catalogue.
type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GetAllCourses lists published courses, paginated.
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_is_published = ?", true).
		Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []model.CourseModel
	if err := ctrl.DB.
		Where("course_is_published = ?", true).
		Order("course_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&courses).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	out := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		out = append(out, dto.ToCourseDTO(course))
	}

	return helpers.JsonList(c, "Courses fetched", out, helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetCourseBySlug returns one published course with its module outline.
// Module bodies are not included here; they are served per-module once
// the caller has unlocked them.
func (ctrl *CourseController) GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course model.CourseModel
	if err := ctrl.DB.Where("course_slug = ? AND course_is_published = ?", slug, true).
		First(&course).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var modules []model.CourseModuleModel
	if err := ctrl.DB.
		Where("course_module_course_id = ?", course.CourseID).
		Order("course_module_order ASC").
		Find(&modules).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course modules")
	}

	moduleDTOs := make([]dto.CourseModuleDTO, 0, len(modules))
	for _, m := range modules {
		moduleDTOs = append(moduleDTOs, dto.ToCourseModuleDTO(m))
	}

	return helpers.JsonOK(c, "OK", fiber.Map{
		"course":  dto.ToCourseDTO(course),
		"modules": moduleDTOs,
	})
}

// GetCourseByID is the UUID counterpart of GetCourseBySlug.
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ? AND course_is_published = ?", courseID, true).
		First(&course).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	var modules []model.CourseModuleModel
	if err := ctrl.DB.
		Where("course_module_course_id = ?", course.CourseID).
		Order("course_module_order ASC").
		Find(&modules).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course modules")
	}

	moduleDTOs := make([]dto.CourseModuleDTO, 0, len(modules))
	for _, m := range modules {
		moduleDTOs = append(moduleDTOs, dto.ToCourseModuleDTO(m))
	}

	return helpers.JsonOK(c, "OK", fiber.Map{
		"course":  dto.ToCourseDTO(course),
		"modules": moduleDTOs,
	})
}
