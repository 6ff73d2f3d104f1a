package handler

type SignupParams struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	AboutMe       string `json:"about_me"`
	Dob           string `json:"dob"`
	ContactNumber string `json:"contact_number"`
	Country       string `json:"country"`
}

type UserParams struct {
	UserID string `param:"user_id"`
}

type QuestionParams struct {
	QuestionID string `param:"question_id"`
	Content    string `json:"content"`
}

type AnswerParams struct {
	AnswerID   string `param:"answer_id"`
	QuestionID string `param:"question_id"`
	Content    string `json:"content"`
}
