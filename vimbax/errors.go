package vimbax

import (
	"fmt"

	msgs "github.com/edwinhayes/rosgo-vimbax/msgs/vimbax_camera_msgs"
	"github.com/pkg/errors"
)

// ErrUnsupportedOperation is returned when a feature type lacks the
// service an operation needs. It is detected before any remote call.
var ErrUnsupportedOperation = errors.New("operation not supported by feature type")

// ErrorCode is a VmbError code reported by the camera node.
type ErrorCode int32

// Codes a camera node commonly answers with.
const (
	ErrorSuccess       ErrorCode = 0
	ErrorNotFound      ErrorCode = -3
	ErrorInvalidAccess ErrorCode = -6
	ErrorBadParameter  ErrorCode = -7
	ErrorWrongType     ErrorCode = -10
	ErrorInvalidValue  ErrorCode = -11
	ErrorResources     ErrorCode = -14
	ErrorNotSupported  ErrorCode = -18
	ErrorNotAvailable  ErrorCode = -30
)

// VmbError codes as defined by the Vimba X C API.
var errorNames = map[ErrorCode]string{
	0:   "VmbErrorSuccess",
	-1:  "VmbErrorInternalFault",
	-2:  "VmbErrorApiNotStarted",
	-3:  "VmbErrorNotFound",
	-4:  "VmbErrorBadHandle",
	-5:  "VmbErrorDeviceNotOpen",
	-6:  "VmbErrorInvalidAccess",
	-7:  "VmbErrorBadParameter",
	-8:  "VmbErrorStructSize",
	-9:  "VmbErrorMoreData",
	-10: "VmbErrorWrongType",
	-11: "VmbErrorInvalidValue",
	-12: "VmbErrorTimeout",
	-13: "VmbErrorOther",
	-14: "VmbErrorResources",
	-15: "VmbErrorInvalidCall",
	-16: "VmbErrorNoTL",
	-17: "VmbErrorNotImplemented",
	-18: "VmbErrorNotSupported",
	-19: "VmbErrorIncomplete",
	-20: "VmbErrorIO",
	-21: "VmbErrorValidValueSetNotPresent",
	-22: "VmbErrorGenTLUnspecified",
	-23: "VmbErrorUnspecified",
	-24: "VmbErrorBusy",
	-25: "VmbErrorNoData",
	-26: "VmbErrorParsingChunkData",
	-27: "VmbErrorInUse",
	-28: "VmbErrorUnknown",
	-29: "VmbErrorXml",
	-30: "VmbErrorNotAvailable",
	-31: "VmbErrorNotInitialized",
	-32: "VmbErrorInvalidAddress",
	-33: "VmbErrorAlready",
	-34: "VmbErrorNoChunkData",
	-35: "VmbErrorUserCallbackException",
	-36: "VmbErrorFeaturesUnavailable",
	-37: "VmbErrorTLNotFound",
	-39: "VmbErrorAmbiguous",
	-40: "VmbErrorRetriesExceeded",
	-41: "VmbErrorInsufficientBufferCount",
	-50: "VmbErrorCustom",
}

// Name returns the symbolic VmbError name, or "" for unknown codes.
func (c ErrorCode) Name() string {
	return errorNames[c]
}

// OK reports whether the code means success.
func (c ErrorCode) OK() bool {
	return c == 0
}

func (c ErrorCode) String() string {
	if name := c.Name(); name != "" {
		return fmt.Sprintf("%d (%s)", int32(c), name)
	}
	return fmt.Sprintf("%d", int32(c))
}

// Status is the structured error embedded in get and info responses.
type Status struct {
	Code ErrorCode
	Text string
}

func statusOf(e msgs.Error) Status {
	return Status{Code: ErrorCode(e.Code), Text: e.Text}
}

// Msg converts the status into its wire form.
func (s Status) Msg() msgs.Error {
	return msgs.Error{Code: int32(s.Code), Text: s.Text}
}

// OK reports whether the remote call succeeded.
func (s Status) OK() bool {
	return s.Code.OK()
}

func (s Status) String() string {
	if s.Text == "" {
		return s.Code.String()
	}
	return s.Code.String() + ": " + s.Text
}
