package contract

// TaskCreate is the validated input for creating a task (spec §6 validation bounds).
type TaskCreate struct {
	Name             string
	Description      string
	EnergyCost       int
	ExpectedInterval int
	Importance       int
	Category         string
	Color            string
	Icon             string
}

// TaskUpdate is the validated input for updating a task. All fields are
// applied (this is not a partial-patch DTO); callers load-modify-save.
type TaskUpdate struct {
	ID               string
	Name             string
	Description      string
	EnergyCost       int
	ExpectedInterval int
	Importance       int
	Category         string
	Color            string
	Icon             string
	IsActive         bool
}

// TaskResponse is the CRUD response shape for a task.
type TaskResponse struct {
	ID               string
	Name             string
	Description      string
	EnergyCost       int
	ExpectedInterval int
	Importance       int
	Category         string
	Color            string
	Icon             string
	IsActive         bool
}
