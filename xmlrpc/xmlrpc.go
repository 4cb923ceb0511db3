// Package xmlrpc implements the subset of XML-RPC spoken by the ROS master
// and slave APIs.
package xmlrpc

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func xmlEscape(s string) string {
	var buffer bytes.Buffer
	xml.Escape(&buffer, []byte(s))
	return buffer.String()
}

func emitTagged(buf *bytes.Buffer, tag string, text string) {
	buf.WriteString("<" + tag + ">")
	buf.WriteString(text)
	buf.WriteString("</" + tag + ">")
}

func emitValue(buf *bytes.Buffer, value interface{}) error {
	if bs, ok := value.([]byte); ok {
		emitTagged(buf, "base64", base64.StdEncoding.EncodeToString(bs))
		return nil
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return nil
	}

	switch k := val.Kind(); k {
	case reflect.Bool:
		if val.Bool() {
			emitTagged(buf, "boolean", "1")
		} else {
			emitTagged(buf, "boolean", "0")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		emitTagged(buf, "int", strconv.FormatInt(val.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		emitTagged(buf, "int", strconv.FormatInt(int64(val.Uint()), 10))
	case reflect.Float32, reflect.Float64:
		emitTagged(buf, "double", strconv.FormatFloat(val.Float(), 'g', -1, 64))
	case reflect.String:
		emitTagged(buf, "string", xmlEscape(val.String()))
	case reflect.Array, reflect.Slice:
		buf.WriteString("<array><data>")
		for i := 0; i < val.Len(); i++ {
			buf.WriteString("<value>")
			if err := emitValue(buf, val.Index(i).Interface()); err != nil {
				return err
			}
			buf.WriteString("</value>")
		}
		buf.WriteString("</data></array>")
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return errors.New("map key must be string")
		}
		buf.WriteString("<struct>")
		for _, key := range val.MapKeys() {
			buf.WriteString("<member><name>")
			buf.WriteString(xmlEscape(key.String()))
			buf.WriteString("</name><value>")
			if err := emitValue(buf, val.MapIndex(key).Interface()); err != nil {
				return err
			}
			buf.WriteString("</value></member>")
		}
		buf.WriteString("</struct>")
	default:
		return errors.Errorf("unsupported kind %v (%v)", k, val.Type())
	}
	return nil
}

func emitRequest(buf *bytes.Buffer, method string, args ...interface{}) error {
	buf.WriteString(xml.Header)
	buf.WriteString("<methodCall><methodName>")
	buf.WriteString(xmlEscape(method))
	buf.WriteString("</methodName><params>")
	for _, arg := range args {
		buf.WriteString("<param><value>")
		if err := emitValue(buf, arg); err != nil {
			return err
		}
		buf.WriteString("</value></param>")
	}
	buf.WriteString("</params></methodCall>")
	return nil
}

func emitResponse(buf *bytes.Buffer, value interface{}) error {
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><params><param><value>")
	if err := emitValue(buf, value); err != nil {
		return err
	}
	buf.WriteString("</value></param></params></methodResponse>")
	return nil
}

func emitFault(buf *bytes.Buffer, code int, message string) error {
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><fault><value>")
	fault := map[string]interface{}{
		"faultCode":   code,
		"faultString": message,
	}
	if err := emitValue(buf, fault); err != nil {
		return err
	}
	buf.WriteString("</value></fault></methodResponse>")
	return nil
}

func nextTag(d *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := d.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if elem, ok := token.(xml.StartElement); ok {
			return elem, nil
		}
	}
}

func expectNextTag(d *xml.Decoder, name string) (xml.StartElement, error) {
	tag, err := nextTag(d)
	if err != nil {
		return xml.StartElement{}, err
	}
	if tag.Name.Local != name {
		return xml.StartElement{}, errors.Errorf("expected <%s> but got <%s>", name, tag.Name.Local)
	}
	return tag, nil
}

// scalarText reads the character data of a scalar element whose start tag
// has already been consumed. The closing scalar tag and the enclosing
// </value> are consumed as well.
func scalarText(d *xml.Decoder, tag string) (string, error) {
	token, err := d.Token()
	if err != nil {
		return "", err
	}
	switch t := token.(type) {
	case xml.CharData:
		text := string(t.Copy())
		if err := d.Skip(); err != nil {
			return "", err
		}
		return text, d.Skip()
	case xml.EndElement:
		if t.Name.Local == tag {
			return "", d.Skip()
		}
	}
	return "", errors.Errorf("%s: unexpected token", tag)
}

func parseScalar(d *xml.Decoder, tag string) (interface{}, error) {
	text, err := scalarText(d, tag)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "boolean":
		switch strings.TrimSpace(text) {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		return nil, errors.Errorf("boolean: invalid value %q", text)
	case "i4", "int":
		i, err := strconv.ParseInt(strings.TrimSpace(text), 0, 32)
		if err != nil {
			return nil, errors.Wrap(err, tag)
		}
		return int32(i), nil
	case "double":
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, errors.Wrap(err, tag)
		}
		return f, nil
	case "base64":
		bs, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return nil, errors.Wrap(err, tag)
		}
		return bs, nil
	}
	return text, nil
}

func parseArray(d *xml.Decoder) ([]interface{}, error) {
	if _, err := expectNextTag(d, "data"); err != nil {
		return nil, err
	}
	var a []interface{}
	for {
		token, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "value" {
				val, err := parseValue(d)
				if err != nil {
					return nil, err
				}
				a = append(a, val)
			}
		case xml.EndElement:
			if t.Name.Local == "array" {
				return a, d.Skip() // </value>
			}
		}
	}
}

func parseStruct(d *xml.Decoder) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	var name string
	var value interface{}
	for {
		token, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				token, err = d.Token()
				if err != nil {
					return nil, err
				}
				data, ok := token.(xml.CharData)
				if !ok {
					return nil, errors.New("struct: member name is not character data")
				}
				name = string(data.Copy())
			case "value":
				if value, err = parseValue(d); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "member":
				m[name] = value
			case "struct":
				return m, d.Skip() // </value>
			}
		}
	}
}

// Parse a value after the <value> tag has been read. On (non-error)
// return, the </value> closing tag will have been read.
func parseValue(d *xml.Decoder) (interface{}, error) {
	token, err := d.Token()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case xml.StartElement:
		switch t.Name.Local {
		case "boolean", "i4", "int", "double", "string", "base64":
			return parseScalar(d, t.Name.Local)
		case "array":
			return parseArray(d)
		case "struct":
			return parseStruct(d)
		default:
			return nil, errors.Errorf("unsupported value type <%s>", t.Name.Local)
		}
	case xml.CharData:
		// An untyped value is a string. Whitespace between tags also shows
		// up as character data and is skipped.
		text := string(t.Copy())
		if strings.TrimSpace(text) == "" {
			return parseValue(d)
		}
		return text, d.Skip()
	case xml.EndElement:
		return "", nil
	}
	return nil, errors.New("invalid value")
}

func parseRequest(d *xml.Decoder) (name string, args []interface{}, err error) {
	if _, err = expectNextTag(d, "methodCall"); err != nil {
		return
	}
	if _, err = expectNextTag(d, "methodName"); err != nil {
		return
	}
	var token xml.Token
	if token, err = d.Token(); err != nil {
		return
	}
	data, ok := token.(xml.CharData)
	if !ok {
		err = errors.New("invalid methodName")
		return
	}
	name = strings.TrimSpace(string(data))
	if _, err = expectNextTag(d, "params"); err != nil {
		return
	}
	for {
		if token, err = d.Token(); err != nil {
			return
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "value" {
				var x interface{}
				if x, err = parseValue(d); err != nil {
					return
				}
				args = append(args, x)
			}
		case xml.EndElement:
			if t.Name.Local == "params" {
				err = d.Skip()
				return
			}
		}
	}
}

func parseResponse(d *xml.Decoder) (ok bool, result interface{}, err error) {
	if _, err = expectNextTag(d, "methodResponse"); err != nil {
		return
	}
	var se xml.StartElement
	if se, err = nextTag(d); err != nil {
		return
	}
	switch se.Name.Local {
	case "params":
		if _, err = expectNextTag(d, "param"); err != nil {
			return
		}
		if _, err = expectNextTag(d, "value"); err != nil {
			return
		}
		if result, err = parseValue(d); err != nil {
			return
		}
		ok = true
		return
	case "fault":
		if _, err = expectNextTag(d, "value"); err != nil {
			return
		}
		result, err = parseValue(d)
		return
	}
	err = errors.Errorf("unexpected element <%s> in methodResponse", se.Name.Local)
	return
}
