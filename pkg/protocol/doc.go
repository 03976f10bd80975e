// Package protocol is the binary wire format for reconciliation output.
//
// A patch batch is the host mutation journal of one Patch call, rewritten
// as node-ID addressed operations that a remote mirror of the host tree
// can replay in order:
//
//	seq     uvarint
//	count   uvarint
//	patches count × Patch
//
// Every Patch starts with its op byte and the uvarint ID of its target
// node. Inserted and replacement subtrees travel as NodeWire snapshots so
// the receiver learns the IDs of the new nodes.
//
// Batches are carried in frames with a 4 byte header:
//
//	┌─────────────┬──────────────┬───────────────────────────────┐
//	│ Frame Type  │ Flags        │ Payload Length                │
//	│ (1 byte)    │ (1 byte)     │ (2 bytes, big-endian)         │
//	└─────────────┴──────────────┴───────────────────────────────┘
//
// A batch longer than MaxPayloadSize is split over consecutive
// FramePatches frames; FlagFinal marks the last one. Assembler joins them
// on the receiving side.
//
// Decoding never trusts a length prefix: strings, collections and
// snapshot nesting are bounded by Limits, and violations surface as
// E023 errors.
package protocol
