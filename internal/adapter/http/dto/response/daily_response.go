package response

import (
	"delta33_backoffice/internal/domain/entities"
)

type DailyInfoResponse struct {
	Evangelio  string   `json:"evangelio"`
	Efemerides []string `json:"efemerides"`
	Santoral   string   `json:"santoral"`
}

func FromDailyInfo(d entities.DailyInfo) DailyInfoResponse {
	return DailyInfoResponse{
		Evangelio:  d.Evangelio,
		Efemerides: d.Efemerides,
		Santoral:   d.Santoral,
	}
}
