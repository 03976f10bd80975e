package protocol

import (
	"github.com/vango-dev/keepfocus/internal/errors"
)

// PatchFrames encodes a batch as one or more FramePatches frames. A batch
// whose encoding exceeds MaxPayloadSize is split across frames in order;
// only the last frame carries FlagFinal.
func PatchFrames(pf *PatchesFrame) []*Frame {
	payload := EncodePatches(pf)

	frames := make([]*Frame, 0, len(payload)/MaxPayloadSize+1)
	for len(payload) > MaxPayloadSize {
		frames = append(frames, &Frame{Type: FramePatches, Payload: payload[:MaxPayloadSize]})
		payload = payload[MaxPayloadSize:]
	}
	return append(frames, &Frame{Type: FramePatches, Flags: FlagFinal, Payload: payload})
}

// Assembler joins the frames of split patch batches back together.
// It is not safe for concurrent use.
type Assembler struct {
	limits Limits
	buf    []byte
}

// NewAssembler returns an Assembler that decodes batches with limits.
// The joined payload may not exceed limits.MaxAllocation.
func NewAssembler(limits Limits) *Assembler {
	return &Assembler{limits: limits.normalize()}
}

// Pending reports whether a batch has been started but not finished.
func (a *Assembler) Pending() bool {
	return len(a.buf) > 0
}

// Add consumes one frame. It returns the decoded batch once the frame
// carrying FlagFinal arrives, and nil before that. Non-patch frames yield
// E021 and an oversized batch E023; either error drops the partial batch.
func (a *Assembler) Add(f *Frame) (*PatchesFrame, error) {
	if f.Type != FramePatches {
		a.buf = nil
		return nil, errors.New("E021").WithDetail("got " + f.Type.String() + " frame")
	}
	if len(a.buf)+len(f.Payload) > a.limits.MaxAllocation {
		a.buf = nil
		return nil, errors.New("E023").Wrap(ErrAllocationTooLarge)
	}
	a.buf = append(a.buf, f.Payload...)
	if !f.Flags.Has(FlagFinal) {
		return nil, nil
	}

	data := a.buf
	a.buf = nil
	return DecodePatchesFrom(NewDecoderWithLimits(data, a.limits))
}
