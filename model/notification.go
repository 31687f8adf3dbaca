package model

import "github.com/muhammadheryan/femnest/constant"

// Notification is a short-lived message shown to the user after an action.
type Notification struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Variant     constant.Variant `json:"variant"`
}
