package logging

// Field names shared by all log entries so the output can be filtered consistently.
const (
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldType          = "transaction_type"
	FieldAmount        = "amount"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldCount         = "count"
	FieldStore         = "store"
	FieldPath          = "path"
	FieldKey           = "key"
	FieldTimeframe     = "timeframe"
	FieldPage          = "page"
	FieldLevel         = "level"
)

// Operation names used with FieldOperation.
const (
	OpLoad   = "load"
	OpSave   = "save"
	OpAdd    = "add"
	OpEdit   = "edit"
	OpDelete = "delete"
	OpQuery  = "query"
)
