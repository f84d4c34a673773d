package dto

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	Fingerprint  string `json:"-"`
	IPAddress    string `json:"-"`
	UserAgent    string `json:"-"`
}

type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
