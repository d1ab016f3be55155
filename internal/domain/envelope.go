package domain

import "encoding/json"

// Envelope is the wrapper every backend response is shaped as. Two envelope
// generations are in circulation: `{code, data, message}` and
// `{success, data, message}`; some endpoints spell the message field `msg`.
type Envelope struct {
	Code    *int            `json:"code,omitempty"`
	Success bool            `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Msg     string          `json:"msg,omitempty"`
}

// OK reports whether the envelope signals success. The canonical mapping:
// code 0, 1 and 200 are all success synonyms, and an explicit success flag
// counts regardless of code. An envelope with neither is a failure.
func (e Envelope) OK() bool {
	if e.Code != nil {
		switch *e.Code {
		case 0, 1, 200:
			return true
		}
	}
	return e.Success
}

// ErrMessage returns the user-facing failure text, whichever field carries it.
func (e Envelope) ErrMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "Error"
}
