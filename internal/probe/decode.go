package probe

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// decodeConsoleOutput converts raw command output to a regular string.
// wsl.exe writes UTF-16LE to its stdout while winget and dism write the
// console codepage, so the encoding is sniffed per invocation: embedded
// NUL bytes mean UTF-16.
func decodeConsoleOutput(raw []byte) string {
	if !bytes.ContainsRune(raw, 0) {
		return string(raw)
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err != nil {
		// Fall through with the raw bytes; callers only substring-match.
		return string(raw)
	}
	return string(decoded)
}
