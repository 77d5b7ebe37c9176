package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldChatID    = "chat_id"
	FieldCommand   = "command"
	FieldSheet     = "sheet"
	FieldRowSet    = "row_set"
	FieldRowIndex  = "row_index"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldWeekStart = "week_start"
	FieldWeekEnd   = "week_end"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentBot       = "bot"
	ComponentSheets    = "sheets"
	ComponentSummary   = "summary"
	ComponentScheduler = "scheduler"
)
