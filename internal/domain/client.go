package domain

// ClientProfile is the locally cached identity of the registered client.
// The ID is the ledger-issued identity object reference; it can go stale
// when the on-chain package is redeployed and is re-resolved on booking.
type ClientProfile struct {
	ID          string `json:"id"`
	Wallet      string `json:"wallet"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	CreatedAt   int64  `json:"created_at"`
}

type RegisterRequest struct {
	Wallet      string `json:"wallet"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
	AccessCode  string `json:"access_code,omitempty"`
}

type RegisterResponse struct {
	Profile ClientProfile `json:"profile"`
	Token   string        `json:"token"`
}
