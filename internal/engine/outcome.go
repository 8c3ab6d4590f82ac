package engine

import "encoding/json"

// Status tags an Outcome. Exactly one status is ever set.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailure Status = "Failure"
	StatusError   Status = "Error"
	StatusInfo    Status = "Info"
)

// Outcome is the result of validating a Record. The message is human-readable
// and names the acquirer plus the echoed values where applicable.
type Outcome struct {
	Status  Status
	Message string
}

func Success(msg string) Outcome { return Outcome{Status: StatusSuccess, Message: msg} }
func Failure(msg string) Outcome { return Outcome{Status: StatusFailure, Message: msg} }
func Error(msg string) Outcome   { return Outcome{Status: StatusError, Message: msg} }
func Info(msg string) Outcome    { return Outcome{Status: StatusInfo, Message: msg} }

// MarshalJSON renders the outcome under its tag name, e.g.
// {"Success": "vero processed with logic number 041135700123300"}.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{string(o.Status): o.Message})
}
