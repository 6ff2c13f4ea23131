package entities

// DailyInfo is the daily informational payload fetched from the AI
// collaborator: gospel of the day, historical notes and saint-of-the-day.
// Field names follow the collaborator wire contract.
type DailyInfo struct {
	Evangelio  string   `json:"evangelio"`
	Efemerides []string `json:"efemerides"`
	Santoral   string   `json:"santoral"`
}
