package quizzes

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "geocourse_backend/internals/features/courses/course/model"
	"geocourse_backend/internals/features/quizzes/model"
)

type questionSeed struct {
	CourseSlug string   `json:"course_slug"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Correct    string   `json:"correct"`
	Order      int      `json:"order"`
}

// SeedQuestionsFromJSON loads quiz questions, resolving each course's
// quiz module by slug. Questions are matched by text and skipped when
// already present.
func SeedQuestionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading quiz seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []questionSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	quizModules := map[string]*courseModel.CourseModuleModel{}

	for _, data := range inputs {
		quizModule, ok := quizModules[data.CourseSlug]
		if !ok {
			var course courseModel.CourseModel
			if err := db.Where("course_slug = ?", data.CourseSlug).First(&course).Error; err != nil {
				log.Printf("❌ Course '%s' not found, skipping its questions.", data.CourseSlug)
				quizModules[data.CourseSlug] = nil
				continue
			}
			var mod courseModel.CourseModuleModel
			if err := db.Where(
				"course_module_course_id = ? AND course_module_role = ?",
				course.CourseID, courseModel.ModuleRoleQuiz,
			).First(&mod).Error; err != nil {
				log.Printf("❌ Course '%s' has no quiz module, skipping its questions.", data.CourseSlug)
				quizModules[data.CourseSlug] = nil
				continue
			}
			quizModule = &mod
			quizModules[data.CourseSlug] = quizModule
		}
		if quizModule == nil {
			continue
		}

		var existing model.QuizQuestionModel
		if err := db.Where(
			"quiz_question_module_id = ? AND quiz_question_text = ?",
			quizModule.CourseModuleID, data.Text,
		).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Question already seeded, skipped: %.40s...", data.Text)
			continue
		}

		question := model.QuizQuestionModel{
			QuizQuestionModuleID: quizModule.CourseModuleID,
			QuizQuestionText:     data.Text,
			QuizQuestionOptions:  pq.StringArray(data.Options),
			QuizQuestionCorrect:  data.Correct,
			QuizQuestionOrder:    data.Order,
		}
		if err := db.Create(&question).Error; err != nil {
			log.Printf("❌ Failed to create question: %v", err)
		}
	}

	log.Println("✅ Quiz questions seeded.")
}
