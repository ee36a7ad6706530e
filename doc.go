// Package huffman compresses text with classic Huffman coding and exchanges
// the result as a self-describing binary frame.
//
// # Overview
//
// Encoding counts how often every rune occurs, builds a minimum-weight prefix
// tree with the greedy merge, assigns each rune the path to its leaf as a
// code ('0' left, '1' right) and packs the codes of the input most
// significant bit first. The code table is derived from the input, so it
// travels with the payload inside a frame; a receiver needs nothing else.
//
// # Basic Usage
//
//	blob, err := huffman.Compress("abracadabra")
//	if err != nil {
//	    return err
//	}
//	text, err := huffman.Decompress(blob)
//
//	// Or work with the parts directly
//	res, _ := huffman.Encode("abracadabra")
//	text, _ = huffman.Decode(res.Payload, res.Codes, int(res.Padding))
//
// # Frame Format
//
// All integers are little-endian.
//
//	magic "HUF1" (4) | codesLength int32 (4) | padding (1) | codes blob (codesLength) | payload
//	codes blob: count int32 (4) | count × { symbol int32 (4) | digits uint16 (2) | '0'/'1' × digits }
//
// A zero-length frame is the empty message.
//
// # Determinism
//
// Ties between equal weights are broken by creation order (leaves in
// ascending rune order, then merged nodes), and code tables are serialized in
// ascending rune order, so the same text always compresses to the same bytes.
//
// # Errors
//
// Failures wrap ErrInvalidInput (bad arguments: empty table, malformed codes,
// padding out of range, invalid UTF-8) or ErrCorruptData (bad format tag,
// inconsistent lengths, bits that match no code). Nothing is returned
// alongside an error.
//
// # Performance Characteristics
//
// Encoding is O(n + k log k) for n runes with k distinct values; decoding is
// O(bits). Every call builds its own tables and shares nothing, so calls may
// run concurrently without synchronization.
package huffman
