// Package transport supplies the collaborator spec.md calls
// out-of-scope for the decoder itself: a source of already
// ISO-TP-reassembled response payloads. Nothing here performs
// decoding; it hands raw bytes to a j1979.Decoder.
package transport
