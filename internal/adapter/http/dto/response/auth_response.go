package response

type LoginResponse struct {
	Token string `json:"token"`
}

type InstallHintResponse struct {
	Shown bool `json:"shown"`
}
