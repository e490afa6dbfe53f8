package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter by bank, pattern or file.
const (
	FieldFile        = "file_path"
	FieldBank        = "bank"
	FieldPattern     = "pattern"
	FieldStrategy    = "strategy"
	FieldCategory    = "category"
	FieldMerchant    = "merchant"
	FieldCount       = "count"
	FieldConfidence  = "confidence"
	FieldPage        = "page"
	FieldLine        = "line"
	FieldReason      = "reason"
	FieldOutputFile  = "output_file"
	FieldDescription = "description"
)
