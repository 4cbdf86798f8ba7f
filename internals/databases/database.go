package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	assignmentModel "learnhub_backend/internals/features/lms/assignment/model"
	batchModel "learnhub_backend/internals/features/lms/batch/model"
	courseModel "learnhub_backend/internals/features/lms/course/model"
	lessonModel "learnhub_backend/internals/features/lms/lesson/model"
	moduleModel "learnhub_backend/internals/features/lms/module/model"
	quizModel "learnhub_backend/internals/features/lms/quiz/model"
	userModel "learnhub_backend/internals/features/users/user/model"
)

func ConnectDB() *gorm.DB {
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=learnhub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe behind PgBouncer transaction pooling
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the model structs. The unique
// constraints on student_batches, teacher_batches, lesson_completions and
// quiz_results are the authoritative guards behind the controllers' friendly
// pre-checks.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&moduleModel.ModuleModel{},
		&lessonModel.LessonModel{},
		&lessonModel.LessonCompletionModel{},
		&lessonModel.FeedbackModel{},
		&batchModel.BatchModel{},
		&batchModel.StudentBatchModel{},
		&batchModel.TeacherBatchModel{},
		&batchModel.NotificationModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.AssignmentSubmissionModel{},
		&quizModel.QuizModel{},
		&quizModel.QuestionModel{},
		&quizModel.AnswerModel{},
		&quizModel.QuizResultModel{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
