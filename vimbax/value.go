package vimbax

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

func parseInt(text string) (interface{}, error) {
	return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
}

func parseFloat(text string) (interface{}, error) {
	return strconv.ParseFloat(strings.TrimSpace(text), 64)
}

func parseBool(text string) (interface{}, error) {
	return strconv.ParseBool(strings.TrimSpace(text))
}

func parseString(text string) (interface{}, error) {
	return text, nil
}

// Raw buffers are written as hex on the command line, with an optional 0x.
func parseRaw(text string) (interface{}, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "0x")
	return hex.DecodeString(text)
}

// FormatValue renders a feature value for printing. Raw buffers are shown
// as hex.
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return hex.EncodeToString(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
