package packets

type SelectDhikrRequest struct {
	Label string `json:"label" binding:"required"`
	Goal  int    `json:"goal" binding:"required,gt=0"`
}

type CustomGoalRequest struct {
	Goal int `json:"goal" binding:"required"`
}
