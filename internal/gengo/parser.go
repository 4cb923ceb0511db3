package gengo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	commentChar = "#"
	constChar   = "="
	ioDelim     = "---"
)

var (
	legalName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	legalType = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(/[A-Za-z][A-Za-z0-9_]*)?(\[\])?$`)
)

// SyntaxError points at the definition line that could not be parsed.
type SyntaxError struct {
	FullName string
	Line     int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[%s@%d] %s", e.FullName, e.Line, e.Message)
}

// splitName splits "pkg/Name" into its parts.
func splitName(fullName string) (string, string, error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("invalid resource name %q", fullName)
	}
	return parts[0], parts[1], nil
}

func stripComment(line string) string {
	return strings.TrimSpace(strings.SplitN(line, commentChar, 2)[0])
}

func parseConstantValue(fieldType, text string) (interface{}, error) {
	switch fieldType {
	case "string":
		return text, nil
	case "bool":
		switch text {
		case "True", "true", "1":
			return true, nil
		case "False", "false", "0":
			return false, nil
		}
		return nil, errors.Errorf("invalid bool constant %q", text)
	case "float32", "float64":
		bits := 64
		if fieldType == "float32" {
			bits = 32
		}
		return strconv.ParseFloat(text, bits)
	case "int8", "int16", "int32", "int64", "byte":
		bits := 64
		switch fieldType {
		case "int8", "byte":
			bits = 8
		case "int16":
			bits = 16
		case "int32":
			bits = 32
		}
		return strconv.ParseInt(text, 0, bits)
	}
	bits := 64
	switch fieldType {
	case "uint8", "char":
		bits = 8
	case "uint16":
		bits = 16
	case "uint32":
		bits = 32
	}
	return strconv.ParseUint(text, 0, bits)
}

func parseConstantLine(line string) (Constant, error) {
	clean := stripComment(line)
	sep := strings.IndexFunc(clean, unicode.IsSpace)
	if sep < 0 {
		return Constant{}, errors.New("missing constant name")
	}
	fieldType := clean[:sep]
	if !isConstantType(fieldType) {
		return Constant{}, errors.Errorf("%s is not a legal constant type", fieldType)
	}

	// String constants take everything after '=', comment characters
	// included.
	rest := clean[sep:]
	if fieldType == "string" {
		rest = strings.TrimSpace(line)[sep:]
	}
	kv := strings.SplitN(rest, constChar, 2)
	if len(kv) != 2 {
		return Constant{}, errors.New("a constant requires a value")
	}
	name := strings.TrimSpace(kv[0])
	if !legalName.MatchString(name) {
		return Constant{}, errors.Errorf("%s is not a legal constant name", name)
	}
	valueText := strings.TrimSpace(kv[1])

	value, err := parseConstantValue(fieldType, valueText)
	if err != nil {
		return Constant{}, errors.Wrapf(err, "constant %s", name)
	}
	return Constant{Type: fieldType, Name: name, ValueText: valueText, Value: value}, nil
}

func parseFieldLine(line, pkg string) (Field, error) {
	parts := strings.Fields(stripComment(line))
	if len(parts) != 2 {
		return Field{}, errors.Errorf("invalid declaration %q", line)
	}
	declared, name := parts[0], parts[1]
	if !legalName.MatchString(name) {
		return Field{}, errors.Errorf("%s is not a legal field name", name)
	}
	if !legalType.MatchString(declared) {
		if strings.Contains(declared, "[") {
			return Field{}, errors.Errorf("%s: fixed length arrays are not supported", declared)
		}
		return Field{}, errors.Errorf("%s is not a legal field type", declared)
	}

	f := Field{Name: name, Declared: declared, owner: pkg}
	base := strings.TrimSuffix(declared, "[]")
	f.IsArray = base != declared
	switch {
	case isBuiltinType(base):
		f.BaseType = base
	case base == "duration":
		return Field{}, errors.New("duration fields are not supported")
	case base == headerType:
		f.Package, f.BaseType = splitHeader()
	case strings.Contains(base, "/"):
		f.Package, f.BaseType, _ = splitName(base)
	default:
		f.Package, f.BaseType = pkg, base
	}
	return f, nil
}

func splitHeader() (string, string) {
	pkg, name, _ := splitName(headerFullName)
	return pkg, name
}

// ParseMsg parses the text of a message definition. The MD5 sum is left
// empty; Context fills it in.
func ParseMsg(fullName, text string) (*MsgSpec, error) {
	pkg, short, err := splitName(fullName)
	if err != nil {
		return nil, err
	}
	spec := &MsgSpec{Package: pkg, ShortName: short, Text: text}
	for i, line := range strings.Split(text, "\n") {
		clean := stripComment(line)
		if clean == "" {
			continue
		}
		if strings.Contains(clean, constChar) {
			c, err := parseConstantLine(line)
			if err != nil {
				return nil, &SyntaxError{fullName, i + 1, err.Error()}
			}
			spec.Constants = append(spec.Constants, c)
			continue
		}
		f, err := parseFieldLine(line, pkg)
		if err != nil {
			return nil, &SyntaxError{fullName, i + 1, err.Error()}
		}
		spec.Fields = append(spec.Fields, f)
	}
	return spec, nil
}

// splitService separates a service definition into its request and
// response parts.
func splitService(fullName, text string) (string, string, error) {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == ioDelim {
			return strings.Join(lines[:i], ""), strings.Join(lines[i+1:], ""), nil
		}
	}
	return "", "", &SyntaxError{fullName, len(lines), "missing '" + ioDelim + "'"}
}
