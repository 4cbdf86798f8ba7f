package dto

type AnswerInput struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionInput struct {
	ID      uint          `json:"id"`
	Text    string        `json:"text" validate:"required"`
	Answers []AnswerInput `json:"answers" validate:"omitempty,min=2,dive"`
}

type CreateQuizRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=120"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions" validate:"omitempty,dive"`
}

type UpdateQuizRequest struct {
	Name        string          `json:"name" validate:"omitempty,min=3,max=120"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions" validate:"omitempty,dive"`
}

type CreateQuestionRequest struct {
	Text    string        `json:"text" validate:"required"`
	Answers []AnswerInput `json:"answers" validate:"omitempty,min=2,dive"`
}

type UpdateQuestionRequest struct {
	Text    string        `json:"text" validate:"omitempty"`
	Answers []AnswerInput `json:"answers" validate:"omitempty,min=2,dive"`
}

type SubmitAnswerRequest struct {
	SelectedAnswerID uint `json:"selectedAnswerId" validate:"required"`
}

// Student-facing quiz view. Answers carry no correctness marker.
type StudentAnswer struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type StudentQuestion struct {
	ID      uint            `json:"id"`
	Text    string          `json:"text"`
	Answers []StudentAnswer `json:"answers"`
}

type StudentQuizView struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Questions   []StudentQuestion `json:"questions"`
}
