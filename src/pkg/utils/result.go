package utils

// Result is what every usecase returns; exactly one of Data or Error is meaningful.
type Result struct {
	Data  interface{}
	Error error
}
