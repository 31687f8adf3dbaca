package model

// PersonalInfoRequest is the roommate profile record. The struct tags describe the
// control-level constraints (required inputs, select options, formats); the
// name and contact rules are applied separately when saving.
type PersonalInfoRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Dob        string `json:"dob" validate:"required,datetime=2006-01-02"`
	Contact    string `json:"contact" validate:"required"`
	Email      string `json:"email" validate:"required,htmlemail"`
	City       string `json:"city" validate:"required"`
	Occupation string `json:"occupation" validate:"required"`
	Org        string `json:"org"`
	AboutMe    string `json:"aboutMe" validate:"max=220"`
	Smoke      string `json:"smoke" validate:"required,oneof=No Sometimes Yes"`
	Drink      string `json:"drink" validate:"required,oneof=No Sometimes Yes"`
	Food       string `json:"food" validate:"required,oneof=Veg Non-Veg Vegan Eggetarian"`
	Pets       string `json:"pets" validate:"required,oneof=Yes No 'Ok with small pets'"`
	WakeUp     string `json:"wakeUp" validate:"required,datetime=15:04"`
	Sleep      string `json:"sleep" validate:"required,datetime=15:04"`
	Guests     string `json:"guests" validate:"required,oneof=Yes No Sometimes"`
	Hobbies    string `json:"hobbies"`
}

type PersonalInfoResponse struct {
	Redirect     string       `json:"redirect"`
	Notification Notification `json:"notification"`
}
