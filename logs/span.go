package logs

// Span identifies one block evaluation in log records.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
