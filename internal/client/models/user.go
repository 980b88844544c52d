package models

// Profile is the signed-in user's account as returned by GET /users/me.
type Profile struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Nickname      string `json:"nickname"`
	Major         string `json:"major,omitempty"`
	Bio           string `json:"bio,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty"`
}

// UpdateProfileRequest is the body of PATCH /users/me; nil fields are left
// unchanged on the server.
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,min=2,max=20"`
	Major    *string `json:"major,omitempty" validate:"omitempty,max=50"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=300"`
}

// ImageResponse is returned by the profile image upload.
type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
