package packets

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"created_at"`
}
