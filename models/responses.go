package models

// Message is a uniform error/notice payload returned to API clients when an
// operation produces a human-readable message instead of an entity.
type Message struct {
	Message string `json:"message"`
}

// Well-known client-facing messages, copied verbatim from the service's
// public API contract.
const (
	// MsgUserAuthError is returned when the apikey header is missing or does
	// not resolve to a user.
	MsgUserAuthError = "User authentication error"

	// MsgTodoAuthError is returned when a todo does not exist or belongs to a
	// different user than the caller.
	MsgTodoAuthError = "ToDo authentication error"

	// MsgTodoValidation is returned when a required todo field is empty.
	MsgTodoValidation = "入力項目を確認してください。"

	// MsgSigninFailed is returned when the name/password pair does not match
	// an existing user.
	MsgSigninFailed = "ユーザー名またはパスワードが違います。"
)

// DuplicateUserMessage formats the sign-up rejection message for a user name
// that is already taken.
func DuplicateUserMessage(userName string) Message {
	return Message{Message: "ユーザー名「" + userName + "」は使われています。"}
}
