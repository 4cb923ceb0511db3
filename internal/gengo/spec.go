// Package gengo turns ROS message and service definitions into the Go
// types under msgs/.
package gengo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	headerType     = "Header"
	headerFullName = "std_msgs/Header"
)

type builtin struct {
	goType string
	zero   string
}

// Duration and fixed length arrays are not supported.
var builtinTypes = map[string]builtin{
	"bool":    {"bool", "false"},
	"int8":    {"int8", "0"},
	"uint8":   {"uint8", "0"},
	"int16":   {"int16", "0"},
	"uint16":  {"uint16", "0"},
	"int32":   {"int32", "0"},
	"uint32":  {"uint32", "0"},
	"int64":   {"int64", "0"},
	"uint64":  {"uint64", "0"},
	"float32": {"float32", "0"},
	"float64": {"float64", "0"},
	"string":  {"string", `""`},
	"time":    {"ros.Time", "ros.Time{}"},
	// deprecated aliases
	"byte": {"int8", "0"},
	"char": {"uint8", "0"},
}

func isBuiltinType(t string) bool {
	_, ok := builtinTypes[t]
	return ok
}

func isConstantType(t string) bool {
	return isBuiltinType(t) && t != "time"
}

// goName converts a snake_case field name to an exported Go identifier.
func goName(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

// Constant is a "type NAME=value" line.
type Constant struct {
	Type      string
	Name      string
	ValueText string
	Value     interface{}
}

// GoType is the Go type of the constant.
func (c Constant) GoType() string {
	return builtinTypes[c.Type].goType
}

// GoValue is the constant as a Go literal.
func (c Constant) GoValue() string {
	if s, ok := c.Value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(c.Value)
}

// Field is one field declaration of a message.
type Field struct {
	Name string
	// Declared is the type as written, e.g. "EventDataEntry[]".
	Declared string
	// Package is empty for builtin types.
	Package  string
	BaseType string
	IsArray  bool

	owner string
}

func (f Field) IsBuiltin() bool {
	return f.Package == ""
}

// IsBytes reports whether the field is serialized as a byte blob.
func (f Field) IsBytes() bool {
	return f.IsArray && (f.BaseType == "uint8" || f.BaseType == "char")
}

func (f Field) FullType() string {
	if f.IsBuiltin() {
		return f.BaseType
	}
	return f.Package + "/" + f.BaseType
}

func (f Field) GoName() string {
	return goName(f.Name)
}

// GoType is the element type of the field, qualified when the message
// lives in another package.
func (f Field) GoType() string {
	if f.IsBuiltin() {
		return builtinTypes[f.BaseType].goType
	}
	if f.Package == f.owner {
		return f.BaseType
	}
	return f.Package + "." + f.BaseType
}

func (f Field) ZeroValue() string {
	switch {
	case f.IsArray:
		return "[]" + f.GoType() + "{}"
	case f.IsBuiltin():
		return builtinTypes[f.BaseType].zero
	default:
		return f.GoType() + "{}"
	}
}

func (f Field) String() string {
	return f.Declared + " " + f.Name
}

// MsgSpec is a parsed message definition.
type MsgSpec struct {
	Package   string
	ShortName string
	Text      string
	Constants []Constant
	Fields    []Field
	MD5Sum    string
}

func (s *MsgSpec) FullName() string {
	return s.Package + "/" + s.ShortName
}

// NeedsBinary reports whether the generated code reads or writes any
// value with encoding/binary. Nested messages serialize themselves; arrays
// always carry a length prefix.
func (s *MsgSpec) NeedsBinary() bool {
	for _, f := range s.Fields {
		if f.IsArray || f.IsBuiltin() {
			return true
		}
	}
	return false
}

// dependencies returns the full names of the message types s refers to.
func (s *MsgSpec) dependencies() []string {
	seen := make(map[string]bool)
	var deps []string
	for _, f := range s.Fields {
		if f.IsBuiltin() || seen[f.FullType()] {
			continue
		}
		seen[f.FullType()] = true
		deps = append(deps, f.FullType())
	}
	return deps
}

// imports lists the Go packages the generated code needs besides the
// standard library, rosImport included.
func (s *MsgSpec) imports(prefix, rosImport string) []string {
	set := map[string]bool{rosImport: true}
	for _, f := range s.Fields {
		if !f.IsBuiltin() && f.Package != s.Package {
			set[prefix+"/"+f.Package] = true
		}
	}
	var imports []string
	for imp := range set {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}

// SrvSpec is a parsed service definition.
type SrvSpec struct {
	Package   string
	ShortName string
	Text      string
	MD5Sum    string
	Request   *MsgSpec
	Response  *MsgSpec
}

func (s *SrvSpec) FullName() string {
	return s.Package + "/" + s.ShortName
}
