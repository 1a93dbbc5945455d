package validation

// fieldNames maps Go struct field names to their JSON form names, which is
// what the frontend keys its inline error display on.
var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Company": "company",
	"Phone":   "phone",
	"Service": "service",
	"Budget":  "budget",
	"Message": "message",
}

// requiredMessages are the per-field reasons for a missing required value.
var requiredMessages = map[string]string{
	"name":    "Please enter your name.",
	"email":   "Please enter your email address.",
	"service": "Please select a service.",
	"budget":  "Please select a budget range.",
	"message": "Please tell us about your project.",
}

func fieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return structField
}

// messageFor converts a failed rule into a user-facing reason.
func messageFor(field, tag string) string {
	switch tag {
	case "required":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return "This field is required."
	case "contact_email":
		return "Please enter a valid email address."
	case "loose_phone":
		return "Please enter a valid phone number."
	case "min":
		return "Your message should be at least 20 characters."
	default:
		return "This value is invalid."
	}
}
