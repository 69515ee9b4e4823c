package response

import "bonus-crm/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                 `json:"access_token"`
	User        *queries.AdminUserView `json:"user"`
}
