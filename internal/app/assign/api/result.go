package api

//Assignment is one developer - task pair
type Assignment struct {
	DeveloperID string  `json:"developerID"`
	Developer   string  `json:"developer"`
	TaskID      string  `json:"taskID"`
	Task        string  `json:"task"`
	Provider    string  `json:"provider,omitempty"`
	Cost        float64 `json:"cost"`
}

//Result is a response of the assignments request
type Result struct {
	Assignments []Assignment `json:"assignments"`
	Unassigned  []string     `json:"unassigned"`
}

//NewResult creates empty result
func NewResult() *Result {
	return &Result{Assignments: []Assignment{}, Unassigned: []string{}}
}
