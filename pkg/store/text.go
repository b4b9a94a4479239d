package store

import "unicode/utf8"

// Text is a ready-made Convertible for UTF-8 text, stored as the raw
// bytes of the string.
type Text string

// ToBytes returns the UTF-8 encoding of the text. It always succeeds.
func (t Text) ToBytes() ([]byte, bool) {
	return []byte(t), true
}

// FromBytes reconstructs Text from raw bytes. Bytes that are not valid
// UTF-8 do not represent a Text value.
func (Text) FromBytes(data []byte) (Text, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return Text(data), true
}
