package validatorx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/muhammadheryan/femnest/model"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
)

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name  string
		value string
		tag   string
		valid bool
	}{
		{name: "looseemail accepts simple address", value: "a@b.co", tag: "looseemail", valid: true},
		{name: "looseemail accepts plus tags", value: "jane+home@mail.example.com", tag: "looseemail", valid: true},
		{name: "looseemail rejects missing tld", value: "a@b", tag: "looseemail"},
		{name: "looseemail rejects whitespace", value: "a b@c.de", tag: "looseemail"},
		{name: "htmlemail accepts dotless domain", value: "a@b", tag: "htmlemail", valid: true},
		{name: "htmlemail accepts subdomains", value: "jane@mail.example.com", tag: "htmlemail", valid: true},
		{name: "htmlemail rejects missing local part", value: "@mail.com", tag: "htmlemail"},
		{name: "htmlemail rejects whitespace", value: "jane doe@mail.com", tag: "htmlemail"},
		{name: "htmlemail rejects leading hyphen label", value: "jane@-mail.com", tag: "htmlemail"},
		{name: "personname accepts spaces", value: "Jane Doe", tag: "personname", valid: true},
		{name: "personname accepts two letters", value: "Jo", tag: "personname", valid: true},
		{name: "personname keeps surrounding whitespace", value: " A", tag: "personname", valid: true},
		{name: "personname rejects digits", value: "A1", tag: "personname"},
		{name: "personname rejects one letter", value: "J", tag: "personname"},
		{name: "personname rejects accents", value: "Zoë", tag: "personname"},
		{name: "contact accepts ten digits", value: "9876543210", tag: "contact", valid: true},
		{name: "contact accepts fourteen digits", value: "12345678901234", tag: "contact", valid: true},
		{name: "contact rejects nine digits", value: "987654321", tag: "contact"},
		{name: "contact rejects leading space", value: " 9876543210", tag: "contact"},
		{name: "contact rejects separators", value: "98765-43210", tag: "contact"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateVar(tt.value, tt.tag)
			if (err == nil) != tt.valid {
				t.Fatalf("ValidateVar(%q, %q) error = %v, valid %v", tt.value, tt.tag, err, tt.valid)
			}
		})
	}
}

func TestValidateStruct_PersonalInfoControls(t *testing.T) {
	req := model.PersonalInfoRequest{
		FullName:   "Jane Doe",
		Dob:        "1998-13-40",
		Contact:    "9876543210",
		Email:      "jane@mail.com",
		City:       "",
		Occupation: "Student",
		Smoke:      "Often",
		Drink:      "No",
		Food:       "Non-Veg",
		Pets:       "Ok with small pets",
		WakeUp:     "07:00",
		Sleep:      "23:15",
		Guests:     "Yes",
	}

	err := validatorx.ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() error = nil, want failures")
	}

	want := map[string]string{
		"dob":   "Please enter a valid date (YYYY-MM-DD).",
		"city":  "Please fill out this field.",
		"smoke": "Please select an item in the list.",
	}
	if diff := cmp.Diff(want, validatorx.FieldMessages(err)); diff != "" {
		t.Fatalf("FieldMessages() mismatch (-want +got):\n%s", diff)
	}
	if got := validatorx.FirstField(err); got != "dob" {
		t.Fatalf("FirstField() = %q, want dob", got)
	}
}

func TestValidateStruct_AboutMeLimit(t *testing.T) {
	req := model.PersonalInfoRequest{
		FullName: "Jane Doe", Dob: "1998-01-01", Contact: "9876543210", Email: "jane@mail.com",
		City: "Pune", Occupation: "Student", Smoke: "No", Drink: "No", Food: "Vegan",
		Pets: "No", WakeUp: "07:00", Sleep: "23:00", Guests: "No",
	}
	for i := 0; i < 220; i++ {
		req.AboutMe += "a"
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		t.Fatalf("ValidateStruct() with 220 chars error = %v", err)
	}

	req.AboutMe += "a"
	err := validatorx.ValidateStruct(&req)
	if got := validatorx.FieldMessages(err)["aboutMe"]; got != "Please shorten this text to 220 characters or less." {
		t.Fatalf("FieldMessages()[aboutMe] = %q", got)
	}
}

func TestValidateStruct_BrowserEmailRule(t *testing.T) {
	req := model.PersonalInfoRequest{
		FullName: "Jane Doe", Dob: "1998-01-01", Contact: "9876543210", Email: "a@b",
		City: "Pune", Occupation: "Student", Smoke: "No", Drink: "No", Food: "Vegan",
		Pets: "No", WakeUp: "07:00", Sleep: "23:00", Guests: "No",
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		t.Fatalf("ValidateStruct() with a@b error = %v", err)
	}

	req.Email = "jane.mail.com"
	err := validatorx.ValidateStruct(&req)
	if got := validatorx.FieldMessages(err)["email"]; got != "Please enter a valid email address." {
		t.Fatalf("FieldMessages()[email] = %q", got)
	}
}

func TestFieldMessages_NonValidationError(t *testing.T) {
	if got := validatorx.FieldMessages(nil); got != nil {
		t.Fatalf("FieldMessages(nil) = %v, want nil", got)
	}
	if got := validatorx.FirstField(nil); got != "" {
		t.Fatalf("FirstField(nil) = %q, want empty", got)
	}
}
