package app

// VehicleInput is one vehicle on a customer create/update request. Wiper
// sizes are resolved server-side from make and model.
type VehicleInput struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  string `json:"year"`
}

// CreateCustomerRequest is the input for creating or replacing a customer.
type CreateCustomerRequest struct {
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	Email    string         `json:"email"`
	Address  string         `json:"address"`
	Vehicles []VehicleInput `json:"vehicles"`
}

// AddExpenseRequest is the input for recording an expense. Amount is a
// decimal string; an empty date means today.
type AddExpenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

// SurveyVehicle is one vehicle sighted during a block survey.
type SurveyVehicle struct {
	Make  string `json:"make"`
	Model string `json:"model"`
}
