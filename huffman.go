package huffman

// Result is the outcome of Encode: the packed payload, the code table needed
// to read it back and the number of zero bits padding the last byte.
type Result struct {
	Payload []byte
	Codes   CodeTable
	Padding uint8
}

// Bits returns the number of meaningful bits in the payload.
func (r Result) Bits() int { return len(r.Payload)*8 - int(r.Padding) }

// Frame serializes r with BuildFrame.
func (r Result) Frame() ([]byte, error) {
	return BuildFrame(r.Payload, r.Codes, r.Padding)
}

// Encode compresses text. The frequency table and tree are built for this
// call only; the code table is returned with the payload because a receiver
// cannot decode without it.
//
// Empty text yields an empty payload, an empty table and zero padding.
func Encode(text string) (Result, error) {
	if text == "" {
		return Result{Payload: []byte{}, Codes: CodeTable{}}, nil
	}
	freqs, err := CountSymbols(text)
	if err != nil {
		return Result{}, err
	}
	tree, err := BuildTree(freqs)
	if err != nil {
		return Result{}, err
	}
	codes := tree.Codes()
	payload, padding, err := Pack(text, codes)
	if err != nil {
		return Result{}, err
	}
	return Result{Payload: payload, Codes: codes, Padding: padding}, nil
}

// Compress encodes text and frames the result into one self-describing blob.
func Compress(text string) ([]byte, error) {
	res, err := Encode(text)
	if err != nil {
		return nil, err
	}
	return res.Frame()
}

// Decompress parses a blob produced by Compress and decodes its payload.
func Decompress(data []byte) (string, error) {
	f, err := ExtractFrame(data)
	if err != nil {
		return "", err
	}
	return f.Text()
}
