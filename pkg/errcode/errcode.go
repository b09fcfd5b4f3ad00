// Package errcode maps USP error codes to their canonical text.
//
// Codes 7000-7099 are Message errors, 7100-7199 are Record errors and
// 7800-7999 are reserved for vendors.
package errcode

import "math"

// Well-known USP error codes.
const (
	MessageFailed             uint32 = 7000
	MessageNotSupported       uint32 = 7001
	RequestDenied             uint32 = 7002
	InternalError             uint32 = 7003
	InvalidArguments          uint32 = 7004
	ResourcesExceeded         uint32 = 7005
	PermissionDenied          uint32 = 7006
	InvalidConfiguration      uint32 = 7007
	InvalidPathSyntax         uint32 = 7008
	ParameterActionFailed     uint32 = 7009
	UnsupportedParameter      uint32 = 7010
	InvalidType               uint32 = 7011
	InvalidValue              uint32 = 7012
	ParamReadOnly             uint32 = 7013
	ValueConflict             uint32 = 7014
	OperationError            uint32 = 7015
	ObjectDoesNotExist        uint32 = 7016
	ObjectNotCreated          uint32 = 7017
	ObjectNotTable            uint32 = 7018
	CreationFailure           uint32 = 7019
	ObjectNotUpdated          uint32 = 7020
	RequiredParameterFailed   uint32 = 7021
	CommandFailure            uint32 = 7022
	CommandCanceled           uint32 = 7023
	DeleteFailure             uint32 = 7024
	DuplicateUniqueKey        uint32 = 7025
	InvalidPath               uint32 = 7026
	InvalidCommandArguments   uint32 = 7027
	RegisterFailure           uint32 = 7028
	AlreadyInUse              uint32 = 7029
	DeregisterFailure         uint32 = 7030
	PathAlreadyRegistered     uint32 = 7031
	RecordNotParsed           uint32 = 7100
	SecureSessionRequired     uint32 = 7101
	SecureSessionNotSupported uint32 = 7102
	SegmentationNotSupported  uint32 = 7103
	InvalidRecordValue        uint32 = 7104

	VendorMin uint32 = 7800
	VendorMax uint32 = 7999
)

var texts = map[uint32]string{
	MessageFailed:             "Message failed",
	MessageNotSupported:       "Message not supported",
	RequestDenied:             "Request denied (no reason specified)",
	InternalError:             "Internal error",
	InvalidArguments:          "Invalid arguments",
	ResourcesExceeded:         "Resources exceeded",
	PermissionDenied:          "Permission denied",
	InvalidConfiguration:      "Invalid configuration",
	InvalidPathSyntax:         "Invalid path syntax",
	ParameterActionFailed:     "Parameter action failed",
	UnsupportedParameter:      "Unsupported parameter",
	InvalidType:               "Invalid type",
	InvalidValue:              "Invalid value",
	ParamReadOnly:             "Attempt to update non-writeable parameter",
	ValueConflict:             "Value conflict",
	OperationError:            "Operation error",
	ObjectDoesNotExist:        "Object does not exist",
	ObjectNotCreated:          "Object could not be created",
	ObjectNotTable:            "Object is not a table",
	CreationFailure:           "Attempt to create non-creatable object",
	ObjectNotUpdated:          "Object could not be updated",
	RequiredParameterFailed:   "Required parameter failed",
	CommandFailure:            "Command failure",
	CommandCanceled:           "Command canceled",
	DeleteFailure:             "Delete failure",
	DuplicateUniqueKey:        "Object exists with duplicate key",
	InvalidPath:               "Invalid path",
	InvalidCommandArguments:   "Invalid command arguments",
	RegisterFailure:           "Register failure",
	AlreadyInUse:              "Already in use",
	DeregisterFailure:         "Deregister failure",
	PathAlreadyRegistered:     "Path already registered",
	RecordNotParsed:           "Record could not be parsed",
	SecureSessionRequired:     "Secure session required",
	SecureSessionNotSupported: "Secure session not supported",
	SegmentationNotSupported:  "Segmentation and reassembly not supported",
	InvalidRecordValue:        "Invalid Record value",
}

// vendorText is returned for every code in the vendor range.
const vendorText = "Vendor specific"

// Text returns the canonical text for code, or "" if the code is not
// defined by the protocol.
func Text(code uint32) string {
	if IsVendor(code) {
		return vendorText
	}
	return texts[code]
}

// IsVendor reports whether code lies in the vendor-specific range.
func IsVendor(code uint32) bool {
	return code >= VendorMin && code <= VendorMax
}

// Message returns msg, or the canonical text for code when msg is empty.
func Message(code uint32, msg string) string {
	if msg != "" {
		return msg
	}
	return Text(code)
}

// Normalize converts a loosely typed code to the uint32 wire domain.
// Values that do not fit are mapped to InternalError.
func Normalize(code int64) uint32 {
	if code < 0 || code > math.MaxUint32 {
		return InternalError
	}
	return uint32(code)
}
