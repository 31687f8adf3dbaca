package constant

const AboutMeMaxLength = 220

// Select options offered by the personal-info form, in display order.
var (
	HabitOptions = []string{"No", "Sometimes", "Yes"}
	FoodOptions  = []string{"Veg", "Non-Veg", "Vegan", "Eggetarian"}
	PetOptions   = []string{"Yes", "No", "Ok with small pets"}
	GuestOptions = []string{"Yes", "No", "Sometimes"}
)

// FoodOptionLabel maps a stored food value to the label shown to the user.
var FoodOptionLabel = map[string]string{
	"Veg":        "Vegetarian",
	"Non-Veg":    "Non-Vegetarian",
	"Vegan":      "Vegan",
	"Eggetarian": "Eggetarian",
}
