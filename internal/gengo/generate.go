package gengo

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/pkg/errors"
)

var msgTemplate = template.Must(template.New("msg").Parse(`// Automatically generated from the message definition "{{ .Spec.FullName }}.msg"
package {{ .Spec.Package }}

import (
	"bytes"
{{- if .Spec.NeedsBinary }}
	"encoding/binary"
{{- end }}
{{ range .Imports }}
	"{{ . }}"
{{- end }}
)
{{- with .Spec }}
{{- if .Constants }}

const (
{{- range .Constants }}
	{{ $.Spec.ShortName }}_{{ .Name }} {{ .GoType }} = {{ .GoValue }}
{{- end }}
)
{{- end }}

type _Msg{{ .ShortName }} struct {
	text   string
	name   string
	md5sum string
}

func (t *_Msg{{ .ShortName }}) Text() string {
	return t.text
}

func (t *_Msg{{ .ShortName }}) Name() string {
	return t.name
}

func (t *_Msg{{ .ShortName }}) MD5Sum() string {
	return t.md5sum
}

func (t *_Msg{{ .ShortName }}) NewMessage() ros.Message {
	m := new({{ .ShortName }})
{{- range .Fields }}
	m.{{ .GoName }} = {{ .ZeroValue }}
{{- end }}
	return m
}

var (
	Msg{{ .ShortName }} = &_Msg{{ .ShortName }}{
		` + "`{{ .Text }}`" + `,
		"{{ .FullName }}",
		"{{ .MD5Sum }}",
	}
)
{{ if .Fields }}
type {{ .ShortName }} struct {
{{- range .Fields }}
	{{ .GoName }} {{ if .IsArray }}[]{{ end }}{{ .GoType }} ` + "`" + `rosmsg:"{{ .Name }}:{{ .Declared }}"` + "`" + `
{{- end }}
}
{{- else }}
type {{ .ShortName }} struct{}
{{- end }}

func (m *{{ .ShortName }}) Type() ros.MessageType {
	return Msg{{ .ShortName }}
}

func (m *{{ .ShortName }}) Serialize(buf *bytes.Buffer) error {
	var err error = nil
{{- range .Fields }}
{{- if .IsArray }}
	binary.Write(buf, binary.LittleEndian, uint32(len(m.{{ .GoName }})))
{{- if .IsBytes }}
	buf.Write(m.{{ .GoName }})
{{- else }}
	for _, e := range m.{{ .GoName }} {
{{- if eq .BaseType "string" }}
		binary.Write(buf, binary.LittleEndian, uint32(len([]byte(e))))
		buf.Write([]byte(e))
{{- else if .IsBuiltin }}
		binary.Write(buf, binary.LittleEndian, e)
{{- else }}
		if err = e.Serialize(buf); err != nil {
			return err
		}
{{- end }}
	}
{{- end }}
{{- else if eq .BaseType "string" }}
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.{{ .GoName }}))))
	buf.Write([]byte(m.{{ .GoName }}))
{{- else if eq .BaseType "time" }}
	binary.Write(buf, binary.LittleEndian, m.{{ .GoName }}.Sec)
	binary.Write(buf, binary.LittleEndian, m.{{ .GoName }}.NSec)
{{- else if .IsBuiltin }}
	binary.Write(buf, binary.LittleEndian, m.{{ .GoName }})
{{- else }}
	if err = m.{{ .GoName }}.Serialize(buf); err != nil {
		return err
	}
{{- end }}
{{- end }}
	return err
}

func (m *{{ .ShortName }}) Deserialize(buf *bytes.Reader) error {
	var err error = nil
{{- range .Fields }}
{{- if .IsArray }}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.{{ .GoName }} = make([]{{ .GoType }}, int(size))
{{- if .IsBytes }}
		if err = binary.Read(buf, binary.LittleEndian, m.{{ .GoName }}); err != nil {
			return err
		}
{{- else }}
		for i := 0; i < int(size); i++ {
{{- if eq .BaseType "string" }}
			{
				var size uint32
				if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
					return err
				}
				data := make([]byte, int(size))
				if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
					return err
				}
				m.{{ .GoName }}[i] = string(data)
			}
{{- else if .IsBuiltin }}
			if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}[i]); err != nil {
				return err
			}
{{- else }}
			if err = m.{{ .GoName }}[i].Deserialize(buf); err != nil {
				return err
			}
{{- end }}
		}
{{- end }}
	}
{{- else if eq .BaseType "string" }}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.{{ .GoName }} = string(data)
	}
{{- else if eq .BaseType "time" }}
	{
		if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}.Sec); err != nil {
			return err
		}
		if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}.NSec); err != nil {
			return err
		}
	}
{{- else if .IsBuiltin }}
	if err = binary.Read(buf, binary.LittleEndian, &m.{{ .GoName }}); err != nil {
		return err
	}
{{- else }}
	if err = m.{{ .GoName }}.Deserialize(buf); err != nil {
		return err
	}
{{- end }}
{{- end }}
	return err
}
{{- end }}
`))

var srvTemplate = template.Must(template.New("srv").Parse(`// Automatically generated from the message definition "{{ .Spec.FullName }}.srv"
package {{ .Spec.Package }}

import (
	"{{ .RosImport }}"
)
{{ with .Spec }}
// Service type metadata
type _Srv{{ .ShortName }} struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_Srv{{ .ShortName }}) Name() string { return t.name }
func (t *_Srv{{ .ShortName }}) MD5Sum() string { return t.md5sum }
func (t *_Srv{{ .ShortName }}) Text() string { return t.text }
func (t *_Srv{{ .ShortName }}) RequestType() ros.MessageType { return t.reqType }
func (t *_Srv{{ .ShortName }}) ResponseType() ros.MessageType { return t.resType }
func (t *_Srv{{ .ShortName }}) NewService() ros.Service {
	return new({{ .ShortName }})
}

var (
	Srv{{ .ShortName }} = &_Srv{{ .ShortName }}{
		"{{ .FullName }}",
		"{{ .MD5Sum }}",
		` + "`{{ .Text }}`" + `,
		Msg{{ .ShortName }}Request,
		Msg{{ .ShortName }}Response,
	}
)

type {{ .ShortName }} struct {
	Request  {{ .ShortName }}Request
	Response {{ .ShortName }}Response
}

func (s *{{ .ShortName }}) ReqMessage() ros.Message { return &s.Request }
func (s *{{ .ShortName }}) ResMessage() ros.Message { return &s.Response }
{{- end }}
`))

// Generator renders specs as Go source.
type Generator struct {
	// ImportPrefix is the import path holding one Go package per ROS
	// package, e.g. "github.com/edwinhayes/rosgo-vimbax/msgs".
	ImportPrefix string
	// RosImport is the import path of the ros package.
	RosImport string
}

func render(t *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "render %s", t.Name())
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format generated %s", t.Name())
	}
	return src, nil
}

// GenerateMessage returns the formatted Go source of spec.
func (g *Generator) GenerateMessage(spec *MsgSpec) ([]byte, error) {
	return render(msgTemplate, struct {
		Spec    *MsgSpec
		Imports []string
	}{spec, spec.imports(g.ImportPrefix, g.RosImport)})
}

// GenerateService returns the service type together with its request and
// response messages.
func (g *Generator) GenerateService(spec *SrvSpec) (srv, req, res []byte, err error) {
	if srv, err = render(srvTemplate, struct {
		Spec      *SrvSpec
		RosImport string
	}{spec, g.RosImport}); err != nil {
		return nil, nil, nil, err
	}
	if req, err = g.GenerateMessage(spec.Request); err != nil {
		return nil, nil, nil, err
	}
	if res, err = g.GenerateMessage(spec.Response); err != nil {
		return nil, nil, nil, err
	}
	return srv, req, res, nil
}
