package seeds

import (
	"gorm.io/gorm"

	courses "geocourse_backend/internals/seeds/courses"
	quizzes "geocourse_backend/internals/seeds/quizzes"
	users "geocourse_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {

	//* Users
	users.SeedAdminFromEnv(db)

	//* Courses & modules
	courses.SeedCoursesFromJSON(db, "internals/seeds/courses/data_courses.json")

	//* Quizzes
	quizzes.SeedQuestionsFromJSON(db, "internals/seeds/quizzes/data_questions.json")
}
