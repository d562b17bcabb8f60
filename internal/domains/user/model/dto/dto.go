package dto

import (
	"safar/internal/domains/user/model"
	"safar/shared/constant"
	"safar/shared/timezone"
)

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name,omitempty"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.Role = mod.Role
	r.Active = mod.Active

	if mod.FullName != nil {
		r.FullName = *mod.FullName
	}

	if mod.LastLogin != nil {
		r.LastLogin = timezone.Format(*mod.LastLogin, constant.DateFormat)
	}
}
