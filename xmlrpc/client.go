package xmlrpc

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Fault is returned when the remote end answers with an XML-RPC fault.
type Fault struct {
	Code   int32
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("XMLRPC fault: code=%d string=%s", f.Code, f.String)
}

// Call invokes method on the XML-RPC server at url.
func Call(url string, method string, args ...interface{}) (interface{}, error) {
	return CallContext(context.Background(), url, method, args...)
}

// CallContext is Call bounded by ctx.
func CallContext(ctx context.Context, url string, method string, args ...interface{}) (interface{}, error) {
	var body bytes.Buffer
	if err := emitRequest(&body, method, args...); err != nil {
		return nil, errors.Wrapf(err, "building %s request", method)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s request", method)
	}
	req.Header.Set("Content-Type", "text/xml")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "sending %s request", method)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("%s: HTTP failed with %v", method, res.Status)
	}

	ok, result, err := parseResponse(xml.NewDecoder(res.Body))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s response", method)
	}
	if ok {
		return result, nil
	}
	return nil, faultFrom(result)
}

func faultFrom(result interface{}) error {
	m, ok := result.(map[string]interface{})
	if !ok {
		return errors.New("malformed XMLRPC fault response")
	}
	code, ok := m["faultCode"].(int32)
	if !ok {
		return errors.New("malformed XMLRPC fault response")
	}
	s, ok := m["faultString"].(string)
	if !ok {
		return errors.New("malformed XMLRPC fault response")
	}
	return &Fault{Code: code, String: s}
}
