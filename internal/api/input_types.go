package api

type credentialsInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type changePasswordInput struct {
	Email           string `json:"email" form:"email"`
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type cycleInput struct {
	StartDate  string   `json:"start_date" form:"start_date"`
	EndDate    string   `json:"end_date" form:"end_date"`
	MoodSwings string   `json:"mood_swings" form:"mood_swings"`
	Weight     *float64 `json:"weight" form:"weight"`
	Height     *float64 `json:"height" form:"height"`
}

type medicineInput struct {
	Name    string `json:"name" form:"name"`
	Dosage  string `json:"dosage" form:"dosage"`
	TakenOn string `json:"taken_on" form:"taken_on"`
	Notes   string `json:"notes" form:"notes"`
}
