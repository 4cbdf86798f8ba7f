package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	batchModel "learnhub_backend/internals/features/lms/batch/model"
	lessonModel "learnhub_backend/internals/features/lms/lesson/model"
	dto "learnhub_backend/internals/features/lms/quiz/dto"
	model "learnhub_backend/internals/features/lms/quiz/model"
	userModel "learnhub_backend/internals/features/users/user/model"
	helper "learnhub_backend/internals/helpers"
)

type QuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sugar     *zap.SugaredLogger
}

func NewQuizController(db *gorm.DB, sugar *zap.SugaredLogger) *QuizController {
	return &QuizController{DB: db, Validator: validator.New(), Sugar: sugar}
}

// Gate failures surface as sentinel errors; the helpers never write the
// response themselves because helper.Error returns nil once the body is
// written, which would let the caller fall through to the mutation.
var (
	errNotAssignedToBatch = errors.New("teacher is not assigned to this batch")
	errLessonNotCompleted = errors.New("lesson has not been completed")
)

// requireBatchAccess lets admins through and requires teachers to hold an
// assignment to the batch.
func (ctl *QuizController) requireBatchAccess(c *fiber.Ctx, batchID uint) error {
	role := helper.Role(c)
	if role == userModel.RoleAdmin || role == userModel.RoleSuperadmin {
		return nil
	}
	teacherID, err := helper.UserID(c)
	if err != nil {
		return err
	}
	var count int64
	if err := ctl.DB.Model(&batchModel.TeacherBatchModel{}).
		Where("teacher_id = ? AND batch_id = ?", teacherID, batchID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errNotAssignedToBatch
	}
	return nil
}

// accessError maps gate sentinels onto their HTTP responses.
func (ctl *QuizController) accessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrNoUserID):
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	case errors.Is(err, errNotAssignedToBatch):
		return helper.Error(c, fiber.StatusForbidden, "You are not assigned to this batch")
	case errors.Is(err, errLessonNotCompleted):
		return helper.Error(c, fiber.StatusForbidden, "Complete the lesson before taking this quiz")
	}
	ctl.Sugar.Errorw("quiz: access check failed", "err", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// POST /api/{admin|teacher}/createQuiz/:courseId/:batchId/:moduleId/:lessonId
func (ctl *QuizController) Create(c *fiber.Ctx) error {
	courseID, err := helper.ParamUint(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	batchID, err := helper.ParamUint(c, "batchId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	moduleID, err := helper.ParamUint(c, "moduleId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	lessonID, err := helper.ParamUint(c, "lessonId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var lesson lessonModel.LessonModel
	if err := ctl.DB.Where("id = ? AND module_id = ? AND course_id = ?", lessonID, moduleID, courseID).
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found in the specified module and course")
		}
		ctl.Sugar.Errorw("create quiz: lesson lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var batch batchModel.BatchModel
	if err := ctl.DB.Where("id = ? AND course_id = ?", batchID, courseID).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Batch not found in the specified course")
		}
		ctl.Sugar.Errorw("create quiz: batch lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := ctl.requireBatchAccess(c, batchID); err != nil {
		return ctl.accessError(c, err)
	}

	quiz := model.QuizModel{
		Name:        req.Name,
		Description: req.Description,
		CourseID:    courseID,
		ModuleID:    moduleID,
		LessonID:    lessonID,
		BatchID:     batchID,
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			question := model.QuestionModel{QuizID: quiz.ID, Text: q.Text}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for _, a := range q.Answers {
				answer := model.AnswerModel{QuestionID: question.ID, Text: a.Text, IsCorrect: a.IsCorrect}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		ctl.Sugar.Errorw("create quiz failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quiz created successfully", quiz)
}

func (ctl *QuizController) findQuiz(quizID uint) (*model.QuizModel, error) {
	var quiz model.QuizModel
	if err := ctl.DB.First(&quiz, quizID).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// replaceAnswers deletes every answer of the question and recreates the
// given set inside tx.
func replaceAnswers(tx *gorm.DB, questionID uint, answers []dto.AnswerInput) error {
	if err := tx.Where("question_id = ?", questionID).Delete(&model.AnswerModel{}).Error; err != nil {
		return err
	}
	for _, a := range answers {
		answer := model.AnswerModel{QuestionID: questionID, Text: a.Text, IsCorrect: a.IsCorrect}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
	}
	return nil
}

// PUT /api/{admin|teacher}/updateQuiz/:quizId
// Questions carrying an id are updated in place (answers full-replaced when
// supplied); questions without an id are created nested.
func (ctl *QuizController) Update(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("update quiz: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.requireBatchAccess(c, quiz.BatchID); err != nil {
		return ctl.accessError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if req.Name != "" {
			quiz.Name = req.Name
		}
		if req.Description != "" {
			quiz.Description = req.Description
		}
		if err := tx.Save(quiz).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			if q.ID == 0 {
				question := model.QuestionModel{QuizID: quiz.ID, Text: q.Text}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
				for _, a := range q.Answers {
					answer := model.AnswerModel{QuestionID: question.ID, Text: a.Text, IsCorrect: a.IsCorrect}
					if err := tx.Create(&answer).Error; err != nil {
						return err
					}
				}
				continue
			}

			var question model.QuestionModel
			if err := tx.Where("id = ? AND quiz_id = ?", q.ID, quiz.ID).First(&question).Error; err != nil {
				return err
			}
			question.Text = q.Text
			if err := tx.Save(&question).Error; err != nil {
				return err
			}
			if len(q.Answers) > 0 {
				if err := replaceAnswers(tx, question.ID, q.Answers); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found in this quiz")
		}
		ctl.Sugar.Errorw("update quiz failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Quiz updated successfully", quiz)
}

// DELETE /api/{admin|teacher}/deleteQuiz/:quizId
// Answers, questions and the quiz fall in one transaction so a failure leaves
// no orphans.
func (ctl *QuizController) Delete(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("delete quiz: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.requireBatchAccess(c, quiz.BatchID); err != nil {
		return ctl.accessError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.QuestionModel{}).Where("quiz_id = ?", quiz.ID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.AnswerModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.QuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(quiz).Error
	})
	if err != nil {
		ctl.Sugar.Errorw("delete quiz failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Quiz deleted successfully", nil)
}

// POST /api/{admin|teacher}/createQuestion/:quizId
func (ctl *QuizController) CreateQuestion(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("create question: quiz lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.requireBatchAccess(c, quiz.BatchID); err != nil {
		return ctl.accessError(c, err)
	}

	question := model.QuestionModel{QuizID: quiz.ID, Text: req.Text}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for _, a := range req.Answers {
			answer := model.AnswerModel{QuestionID: question.ID, Text: a.Text, IsCorrect: a.IsCorrect}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		ctl.Sugar.Errorw("create question failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created successfully", question)
}

// PUT /api/{admin|teacher}/updateQuestion/:quizId/:questionId
func (ctl *QuizController) UpdateQuestion(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	questionID, err := helper.ParamUint(c, "questionId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("update question: quiz lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.requireBatchAccess(c, quiz.BatchID); err != nil {
		return ctl.accessError(c, err)
	}

	var question model.QuestionModel
	if err := ctl.DB.Where("id = ? AND quiz_id = ?", questionID, quiz.ID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found in this quiz")
		}
		ctl.Sugar.Errorw("update question: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if req.Text != "" {
			question.Text = req.Text
			if err := tx.Save(&question).Error; err != nil {
				return err
			}
		}
		if len(req.Answers) > 0 {
			return replaceAnswers(tx, question.ID, req.Answers)
		}
		return nil
	})
	if err != nil {
		ctl.Sugar.Errorw("update question failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Question updated successfully", question)
}

// DELETE /api/{admin|teacher}/deleteQuestion/:quizId/:questionId
func (ctl *QuizController) DeleteQuestion(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	questionID, err := helper.ParamUint(c, "questionId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("delete question: quiz lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.requireBatchAccess(c, quiz.BatchID); err != nil {
		return ctl.accessError(c, err)
	}

	var question model.QuestionModel
	if err := ctl.DB.Where("id = ? AND quiz_id = ?", questionID, quiz.ID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found in this quiz")
		}
		ctl.Sugar.Errorw("delete question: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", question.ID).Delete(&model.AnswerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		ctl.Sugar.Errorw("delete question failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Question deleted successfully", nil)
}

func (ctl *QuizController) loadQuestions(quizID uint) ([]model.QuestionModel, map[uint][]model.AnswerModel, error) {
	var questions []model.QuestionModel
	if err := ctl.DB.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error; err != nil {
		return nil, nil, err
	}
	answersByQuestion := make(map[uint][]model.AnswerModel, len(questions))
	for _, q := range questions {
		var answers []model.AnswerModel
		if err := ctl.DB.Where("question_id = ?", q.ID).Order("id").Find(&answers).Error; err != nil {
			return nil, nil, err
		}
		answersByQuestion[q.ID] = answers
	}
	return questions, answersByQuestion, nil
}

// GET /api/{admin|teacher}/viewQuiz/:quizId — full view including answer keys.
func (ctl *QuizController) StaffView(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("view quiz: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.requireBatchAccess(c, quiz.BatchID); err != nil {
		return ctl.accessError(c, err)
	}

	questions, answersByQuestion, err := ctl.loadQuestions(quiz.ID)
	if err != nil {
		ctl.Sugar.Errorw("view quiz: load failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	type questionView struct {
		model.QuestionModel
		Answers []model.AnswerModel `json:"answers"`
	}
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, questionView{QuestionModel: q, Answers: answersByQuestion[q.ID]})
	}
	return helper.Success(c, "Quiz fetched successfully", fiber.Map{
		"quiz":      quiz,
		"questions": views,
	})
}

// GET /api/student/viewQuiz/:quizId — completion-gated, answer keys stripped.
func (ctl *QuizController) StudentView(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("student view quiz: lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := ctl.requireLessonCompleted(quiz, studentID); err != nil {
		return ctl.accessError(c, err)
	}

	questions, answersByQuestion, err := ctl.loadQuestions(quiz.ID)
	if err != nil {
		ctl.Sugar.Errorw("student view quiz: load failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	view := dto.StudentQuizView{
		ID:          quiz.ID,
		Name:        quiz.Name,
		Description: quiz.Description,
		Questions:   make([]dto.StudentQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		sq := dto.StudentQuestion{ID: q.ID, Text: q.Text}
		for _, a := range answersByQuestion[q.ID] {
			sq.Answers = append(sq.Answers, dto.StudentAnswer{ID: a.ID, Text: a.Text})
		}
		view.Questions = append(view.Questions, sq)
	}
	return helper.Success(c, "Quiz fetched successfully", view)
}

func (ctl *QuizController) requireLessonCompleted(quiz *model.QuizModel, studentID uint) error {
	var completed int64
	if err := ctl.DB.Model(&lessonModel.LessonCompletionModel{}).
		Where("lesson_id = ? AND student_id = ? AND completed = ?", quiz.LessonID, studentID, true).
		Count(&completed).Error; err != nil {
		return err
	}
	if completed == 0 {
		return errLessonNotCompleted
	}
	return nil
}

// POST /api/student/submitAnswer/:quizId/:questionId
// A correct answer adds one to the running score; there is no per-question
// dedup, resubmission keeps adding.
func (ctl *QuizController) SubmitAnswer(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quizId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	questionID, err := helper.ParamUint(c, "questionId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	studentID, err := helper.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
	}

	quiz, err := ctl.findQuiz(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz not found")
		}
		ctl.Sugar.Errorw("submit answer: quiz lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := ctl.requireLessonCompleted(quiz, studentID); err != nil {
		return ctl.accessError(c, err)
	}

	var question model.QuestionModel
	if err := ctl.DB.Where("id = ? AND quiz_id = ?", questionID, quiz.ID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found in this quiz")
		}
		ctl.Sugar.Errorw("submit answer: question lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var answer model.AnswerModel
	if err := ctl.DB.Where("id = ? AND question_id = ?", req.SelectedAnswerID, question.ID).First(&answer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "Selected answer does not belong to this question")
		}
		ctl.Sugar.Errorw("submit answer: answer lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var result model.QuizResultModel
	err = ctl.DB.Where("student_id = ? AND quiz_id = ?", studentID, quiz.ID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		result = model.QuizResultModel{StudentID: studentID, QuizID: quiz.ID, Score: 0}
		if err := ctl.DB.Create(&result).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			ctl.Sugar.Errorw("submit answer: result create failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
	} else if err != nil {
		ctl.Sugar.Errorw("submit answer: result lookup failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if answer.IsCorrect {
		if err := ctl.DB.Model(&model.QuizResultModel{}).
			Where("student_id = ? AND quiz_id = ?", studentID, quiz.ID).
			UpdateColumn("score", gorm.Expr("score + ?", 1)).Error; err != nil {
			ctl.Sugar.Errorw("submit answer: score update failed", "err", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	if err := ctl.DB.Where("student_id = ? AND quiz_id = ?", studentID, quiz.ID).First(&result).Error; err != nil {
		ctl.Sugar.Errorw("submit answer: result reload failed", "err", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Answer submitted successfully", fiber.Map{
		"correct": answer.IsCorrect,
		"score":   result.Score,
	})
}
