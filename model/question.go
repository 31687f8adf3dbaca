package model

type QuestionResponse struct {
	Questions    []string     `json:"questions"`
	Notification Notification `json:"notification"`
}
