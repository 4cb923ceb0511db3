package xmlrpc

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"reflect"
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

// Method is a function taking the decoded call arguments and returning
// (result, error).
type Method interface{}

// Handler dispatches XML-RPC requests to registered methods.
type Handler struct {
	mapping map[string]Method
	wait    sync.WaitGroup
}

func NewHandler(mapping map[string]Method) *Handler {
	return &Handler{mapping: mapping}
}

// WaitForShutdown blocks until in-flight requests have been answered.
func (h *Handler) WaitForShutdown() {
	h.wait.Wait()
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.wait.Add(1)
	defer h.wait.Done()

	var buffer bytes.Buffer
	if err := h.dispatch(&buffer, req); err != nil {
		buffer.Reset()
		_ = emitFault(&buffer, 1, err.Error())
	}
	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	_, _ = buffer.WriteTo(w)
}

func (h *Handler) dispatch(buffer *bytes.Buffer, req *http.Request) error {
	name, args, err := parseRequest(xml.NewDecoder(req.Body))
	if err != nil {
		return errors.New("invalid request")
	}

	method, ok := h.mapping[name]
	if !ok {
		return errors.Errorf("no method named '%v'", name)
	}

	fun := reflect.ValueOf(method)
	if fun.Type().NumIn() != len(args) {
		return errors.Errorf("method '%v' takes %d arguments, got %d", name, fun.Type().NumIn(), len(args))
	}
	argValues := make([]reflect.Value, len(args))
	for i, v := range args {
		want := fun.Type().In(i)
		if v == nil {
			argValues[i] = reflect.Zero(want)
			continue
		}
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(want) {
			return errors.Errorf("method '%v' argument %d has type %v, want %v", name, i, val.Type(), want)
		}
		argValues[i] = val
	}

	results := fun.Call(argValues)
	if len(results) != 2 {
		return errors.Errorf("method '%v' returned invalid results", name)
	}
	if !results[1].IsNil() {
		return errors.Errorf("method '%v' call failed: %v", name, results[1].Interface())
	}
	if err := emitResponse(buffer, results[0].Interface()); err != nil {
		return errors.Errorf("method '%v' returned an invalid result type", name)
	}
	return nil
}
