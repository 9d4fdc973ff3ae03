// Package cbor implements the three wire primitives the key format is built
// from: definite-length arrays, definite-length byte strings and unsigned
// 16-bit integers, encoded per the CBOR data model (major types 4, 2 and 0).
//
// It deliberately exposes item-level reads and writes instead of
// whole-value marshalling: composite key structures must read an array
// header before the version tag that determines how many elements the
// header is allowed to declare.
package cbor
