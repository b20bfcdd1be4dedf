package types

type UserResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type MovieResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Director  string `json:"director"`
	Year      *int   `json:"year"`
	PosterURL string `json:"poster_url"`
	UserID    uint   `json:"user_id"`
}
