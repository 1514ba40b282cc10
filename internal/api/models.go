package api

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// AdministratorRequest defines the payload for creating an administrator.
// Field-level constraints are checked by the domain validation rules so the
// response can carry the full ordered message list.
type AdministratorRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AdministratorResponse is the public projection of an administrator.
// It never includes the password hash.
type AdministratorResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// VehicleRequest defines the payload for creating or updating a vehicle.
type VehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
