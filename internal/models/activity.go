package models

type LogFilter struct {
	Fields    map[string]string `json:"fields"`
	Timestamp string            `json:"timestamp"`
}

type Activity struct {
	Message string
	Object  any
	Filter  LogFilter
}

type ActivitySearchParams struct {
	Action   string `json:"action"   validate:"omitempty,oneof=ADMIN_LOGIN_SUCCEEDED ADMIN_LOGIN_FAILED ADMIN_LOGIN_LOCKED"`
	Username string `json:"username" validate:"omitempty,max=64"`
}

type ActivityDailyParams struct {
	Days   int    `json:"days"   validate:"omitempty,oneof=7 30 90"`
	Action string `json:"action" validate:"omitempty,oneof=ADMIN_LOGIN_SUCCEEDED ADMIN_LOGIN_FAILED ADMIN_LOGIN_LOCKED"`
}
