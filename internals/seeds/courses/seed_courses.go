package courses

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"geocourse_backend/internals/features/courses/course/model"
)

type moduleSeed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Order       int    `json:"order"`
	Role        string `json:"role"`
}

type courseSeed struct {
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
	Currency    string       `json:"currency"`
	Published   bool         `json:"published"`
	Modules     []moduleSeed `json:"modules"`
}

// SeedCoursesFromJSON loads courses and their modules. Courses are
// matched by slug and skipped when already present.
func SeedCoursesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading course seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []courseSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.CourseModel
		if err := db.Where("course_slug = ?", data.Slug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Course '%s' already exists, skipped.", data.Slug)
			continue
		}

		currency := data.Currency
		if currency == "" {
			currency = "IDR"
		}

		course := model.CourseModel{
			CourseTitle:       data.Title,
			CourseSlug:        data.Slug,
			CourseDescription: data.Description,
			CoursePrice:       data.Price,
			CourseCurrency:    currency,
			CourseIsPublished: data.Published,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Printf("❌ Failed to create course '%s': %v", data.Slug, err)
			continue
		}

		for _, m := range data.Modules {
			role := m.Role
			if role == "" {
				role = model.ModuleRoleContent
			}
			mod := model.CourseModuleModel{
				CourseModuleCourseID:    course.CourseID,
				CourseModuleTitle:       m.Title,
				CourseModuleDescription: m.Description,
				CourseModuleContent:     m.Content,
				CourseModuleOrder:       m.Order,
				CourseModuleRole:        role,
			}
			if err := db.Create(&mod).Error; err != nil {
				log.Printf("❌ Failed to create module '%s' in '%s': %v", m.Title, data.Slug, err)
			}
		}

		log.Printf("✅ Course '%s' seeded with %d modules.", data.Slug, len(data.Modules))
	}
}
