package packets

type UpdateProfileRequest struct {
	BirthDate string `json:"birthDate" binding:"required"`
}

type TogglePrayerRequest struct {
	Prayer string `json:"prayer" binding:"required"`
}

type AdjustQadaRequest struct {
	Prayer string `json:"prayer" binding:"required"`
	Delta  int    `json:"delta" binding:"required"`
}

type BulkQadaRequest struct {
	Days int `json:"days" binding:"required,gt=0"`
}
