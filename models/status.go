package models

// Status is a todo status code. The enumeration is closed: only the two
// values below are valid, and they are never persisted as their own entity.
type Status int64

const (
	// StatusActive marks a task that is not finished yet.
	StatusActive Status = 1

	// StatusDone marks a finished task.
	StatusDone Status = 2
)

// StatusItem is a single entry of the static status reference list
// exposed to clients.
type StatusItem struct {
	Label    string `json:"label"`
	StatusID Status `json:"statusId"`
}

// StatusList returns the static reference list of assignable statuses.
func StatusList() []StatusItem {
	return []StatusItem{
		{Label: "未完了", StatusID: StatusActive},
		{Label: "完了", StatusID: StatusDone},
	}
}
