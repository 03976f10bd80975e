package protocol

import (
	stderrors "errors"
	"io"

	"github.com/vango-dev/keepfocus/internal/errors"
)

const (
	// FrameHeaderSize is the size of the frame header in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the largest payload a frame header can describe.
	MaxPayloadSize = 65535
)

// FrameType identifies the payload of a frame.
type FrameType uint8

const (
	FramePatches FrameType = 0x02 // Server → client patch batch
	FrameError   FrameType = 0x05 // Server → client error report
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FramePatches:
		return "Patches"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// FrameFlags are optional per-frame flags.
type FrameFlags uint8

const (
	FlagFinal FrameFlags = 0x04 // Last frame of a patch batch
)

// Has reports whether ff contains flag.
func (ff FrameFlags) Has(flag FrameFlags) bool {
	return ff&flag != 0
}

// ErrFrameTooLarge is returned for payloads over MaxPayloadSize.
var ErrFrameTooLarge = stderrors.New("protocol: frame payload too large")

// Frame is a header plus payload.
type Frame struct {
	Type    FrameType
	Flags   FrameFlags
	Payload []byte
}

// NewFrame creates a frame with no flags.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}

// Encode returns the header followed by the payload.
func (f *Frame) Encode() ([]byte, error) {
	length := len(f.Payload)
	if length > MaxPayloadSize {
		return nil, errors.New("E023").Wrap(ErrFrameTooLarge)
	}
	buf := make([]byte, FrameHeaderSize+length)
	buf[0] = byte(f.Type)
	buf[1] = byte(f.Flags)
	buf[2] = byte(length >> 8)
	buf[3] = byte(length)
	copy(buf[FrameHeaderSize:], f.Payload)
	return buf, nil
}

// DecodeFrame decodes a complete frame. Truncated input yields E020.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, errors.New("E020").Wrap(io.ErrUnexpectedEOF)
	}
	length := int(data[2])<<8 | int(data[3])
	if len(data) < FrameHeaderSize+length {
		return nil, errors.New("E020").Wrap(io.ErrUnexpectedEOF)
	}

	payload := make([]byte, length)
	copy(payload, data[FrameHeaderSize:FrameHeaderSize+length])
	return &Frame{
		Type:    FrameType(data[0]),
		Flags:   FrameFlags(data[1]),
		Payload: payload,
	}, nil
}

// classify maps low-level decode failures onto coded errors.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Code(err) != "":
		return err
	case stderrors.Is(err, ErrAllocationTooLarge),
		stderrors.Is(err, ErrCollectionTooLarge),
		stderrors.Is(err, ErrMaxDepthExceeded),
		stderrors.Is(err, ErrFrameTooLarge):
		return errors.New("E023").Wrap(err)
	default:
		return errors.New("E022").Wrap(err)
	}
}
