package request

type LogTraceRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Source   string `json:"source" binding:"required,oneof=meeting email call"`
}
