package protocol

import "github.com/vango-dev/keepfocus/internal/errors"

// ErrorMessage reports a failed request over a session.
type ErrorMessage struct {
	Code    string // Registry code, e.g. "E041"
	Message string
	Fatal   bool // The session closes after this message
}

// ErrorMessageFrom builds a message from err, using its registry code
// when it has one. Message is the one-line summary of err.
func ErrorMessageFrom(err error, fatal bool) *ErrorMessage {
	return &ErrorMessage{Code: errors.Code(err), Message: errors.Summary(err), Fatal: fatal}
}

// EncodeErrorMessage encodes an ErrorMessage.
func EncodeErrorMessage(em *ErrorMessage) []byte {
	e := NewEncoder()
	e.WriteString(em.Code)
	e.WriteString(em.Message)
	e.WriteBool(em.Fatal)
	return e.Bytes()
}

// DecodeErrorMessage decodes an ErrorMessage.
func DecodeErrorMessage(data []byte) (*ErrorMessage, error) {
	d := NewDecoder(data)
	var em ErrorMessage
	var err error
	if em.Code, err = d.ReadString(); err != nil {
		return nil, classify(err)
	}
	if em.Message, err = d.ReadString(); err != nil {
		return nil, classify(err)
	}
	if em.Fatal, err = d.ReadBool(); err != nil {
		return nil, classify(err)
	}
	return &em, nil
}

// ErrorFrame wraps a message in a FrameError frame.
func ErrorFrame(em *ErrorMessage) *Frame {
	return NewFrame(FrameError, EncodeErrorMessage(em))
}
