package domain

// AdministratorInput is the untrusted field set submitted when creating an
// administrator. Role arrives as a plain string and is only converted to the
// enumerated type after validation succeeds.
type AdministratorInput struct {
	Email    string
	Password string
	Role     string
}

// Validate checks the administrator fields and returns the list of violation
// messages. The check order (email, password, role) is fixed so the message
// list is deterministic. An empty list means the input is valid.
func (in AdministratorInput) Validate() []string {
	var messages []string

	if in.Email == "" {
		messages = append(messages, "Email cannot be empty")
	}
	if in.Password == "" {
		messages = append(messages, "Password cannot be empty")
	}
	if in.Role == "" {
		messages = append(messages, "Role cannot be empty")
	} else if _, err := ParseRole(in.Role); err != nil {
		messages = append(messages, "Role must be Admin or Editor")
	}

	return messages
}

// VehicleInput is the untrusted field set submitted when creating or
// updating a vehicle.
type VehicleInput struct {
	Name  string
	Brand string
	Year  int
}

// Validate checks the vehicle fields and returns the list of violation
// messages. The check order (name, brand, year) is fixed. An empty list
// means the input is valid. The same rules apply to creation and update.
func (in VehicleInput) Validate() []string {
	var messages []string

	if in.Name == "" {
		messages = append(messages, "Name cannot be empty")
	}
	if in.Brand == "" {
		messages = append(messages, "Brand cannot be blank")
	}
	if in.Year < MinVehicleYear {
		messages = append(messages, "Vehicle too old, only years above 1950 accepted")
	}

	return messages
}
