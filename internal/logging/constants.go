package logging

// Field names shared by all log entries so output stays filterable.
const (
	FieldModel      = "model"
	FieldAccount    = "account"
	FieldLine       = "line"
	FieldField      = "field"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldBalance    = "balance"
	FieldEncoding   = "encoding"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldConfigFile = "config_file"
	FieldComponent  = "component"
	FieldError      = "error"
)
