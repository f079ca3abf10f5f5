package response

import (
	"dealdesk/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	LastLogin *int64 `json:"last_login,omitempty"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *UserResponse {
	res := &UserResponse{
		ID:    v.ID.String(),
		Email: v.Email,
		Role:  v.Role,
	}
	if v.LastLogin != nil {
		ts := v.LastLogin.Unix()
		res.LastLogin = &ts
	}
	return res
}
