package usp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// EnumError reports a name that is not a member of a closed enumeration.
type EnumError struct {
	Enum  string
	Value string
	Legal []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected one of %s", e.Enum, e.Value, strings.Join(e.Legal, ", "))
}

// enumNames maps enum numbers (the slice index) to protobuf value names.
type enumNames []string

func (n enumNames) name(v int32) string {
	if v >= 0 && int(v) < len(n) {
		return n[v]
	}
	return strconv.Itoa(int(v))
}

func (n enumNames) parse(enum, s string) (int32, error) {
	if i := slices.Index(n, s); i >= 0 {
		return int32(i), nil
	}
	return 0, &EnumError{Enum: enum, Value: s, Legal: slices.Clone(n)}
}

// PayloadSecurity describes how a Record payload is protected.
type PayloadSecurity int32

const (
	PayloadSecurityPlaintext PayloadSecurity = 0
	PayloadSecurityTLS12     PayloadSecurity = 1
)

var payloadSecurityNames = enumNames{"PLAINTEXT", "TLS12"}

func (v PayloadSecurity) String() string { return payloadSecurityNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v PayloadSecurity) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParsePayloadSecurity parses "PLAINTEXT" or "TLS12".
func ParsePayloadSecurity(s string) (PayloadSecurity, error) {
	v, err := payloadSecurityNames.parse("payload_security", s)
	return PayloadSecurity(v), err
}

// MQTTVersion is the MQTT protocol version announced by an MQTTConnect record.
type MQTTVersion int32

const (
	MQTTVersion311 MQTTVersion = 0
	MQTTVersion5   MQTTVersion = 1
)

var mqttVersionNames = enumNames{"V3_1_1", "V5"}

func (v MQTTVersion) String() string { return mqttVersionNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v MQTTVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseMQTTVersion parses "V3_1_1" or "V5".
func ParseMQTTVersion(s string) (MQTTVersion, error) {
	v, err := mqttVersionNames.parse("version", s)
	return MQTTVersion(v), err
}

// STOMPVersion is the STOMP protocol version announced by a STOMPConnect record.
type STOMPVersion int32

const STOMPVersion12 STOMPVersion = 0

var stompVersionNames = enumNames{"V1_2"}

func (v STOMPVersion) String() string { return stompVersionNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v STOMPVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseSTOMPVersion parses "V1_2".
func ParseSTOMPVersion(s string) (STOMPVersion, error) {
	v, err := stompVersionNames.parse("version", s)
	return STOMPVersion(v), err
}

// PayloadSARState is the segmentation state of a SessionContext payload.
type PayloadSARState int32

const (
	SARStateNone      PayloadSARState = 0
	SARStateBegin     PayloadSARState = 1
	SARStateInProcess PayloadSARState = 2
	SARStateComplete  PayloadSARState = 3
)

var sarStateNames = enumNames{"NONE", "BEGIN", "INPROCESS", "COMPLETE"}

func (v PayloadSARState) String() string { return sarStateNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v PayloadSARState) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParsePayloadSARState parses a SAR state name.
func ParsePayloadSARState(s string) (PayloadSARState, error) {
	v, err := sarStateNames.parse("payload_sar_state", s)
	return PayloadSARState(v), err
}

// MsgType identifies the Body carried by a Msg.
type MsgType int32

const (
	MsgTypeError                 MsgType = 0
	MsgTypeGet                   MsgType = 1
	MsgTypeGetResp               MsgType = 2
	MsgTypeNotify                MsgType = 3
	MsgTypeSet                   MsgType = 4
	MsgTypeSetResp               MsgType = 5
	MsgTypeOperate               MsgType = 6
	MsgTypeOperateResp           MsgType = 7
	MsgTypeAdd                   MsgType = 8
	MsgTypeAddResp               MsgType = 9
	MsgTypeDelete                MsgType = 10
	MsgTypeDeleteResp            MsgType = 11
	MsgTypeGetSupportedDM        MsgType = 12
	MsgTypeGetSupportedDMResp    MsgType = 13
	MsgTypeGetInstances          MsgType = 14
	MsgTypeGetInstancesResp      MsgType = 15
	MsgTypeNotifyResp            MsgType = 16
	MsgTypeGetSupportedProto     MsgType = 17
	MsgTypeGetSupportedProtoResp MsgType = 18
	MsgTypeRegister              MsgType = 19
	MsgTypeRegisterResp          MsgType = 20
	MsgTypeDeregister            MsgType = 21
	MsgTypeDeregisterResp        MsgType = 22
)

var msgTypeNames = enumNames{
	"ERROR", "GET", "GET_RESP", "NOTIFY", "SET", "SET_RESP", "OPERATE", "OPERATE_RESP",
	"ADD", "ADD_RESP", "DELETE", "DELETE_RESP", "GET_SUPPORTED_DM", "GET_SUPPORTED_DM_RESP",
	"GET_INSTANCES", "GET_INSTANCES_RESP", "NOTIFY_RESP", "GET_SUPPORTED_PROTO",
	"GET_SUPPORTED_PROTO_RESP", "REGISTER", "REGISTER_RESP", "DEREGISTER", "DEREGISTER_RESP",
}

func (v MsgType) String() string { return msgTypeNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v MsgType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseMsgType parses a message type name such as "GET_RESP".
func ParseMsgType(s string) (MsgType, error) {
	v, err := msgTypeNames.parse("msg_type", s)
	return MsgType(v), err
}

// ObjAccessType is the access supported on a data model object.
type ObjAccessType int32

const (
	ObjReadOnly   ObjAccessType = 0
	ObjAddDelete  ObjAccessType = 1
	ObjAddOnly    ObjAccessType = 2
	ObjDeleteOnly ObjAccessType = 3
)

var objAccessNames = enumNames{"OBJ_READ_ONLY", "OBJ_ADD_DELETE", "OBJ_ADD_ONLY", "OBJ_DELETE_ONLY"}

func (v ObjAccessType) String() string { return objAccessNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v ObjAccessType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseObjAccessType parses an object access name such as "OBJ_ADD_DELETE".
func ParseObjAccessType(s string) (ObjAccessType, error) {
	v, err := objAccessNames.parse("access", s)
	return ObjAccessType(v), err
}

// ParamAccessType is the access supported on a data model parameter.
type ParamAccessType int32

const (
	ParamReadOnly  ParamAccessType = 0
	ParamReadWrite ParamAccessType = 1
	ParamWriteOnly ParamAccessType = 2
)

var paramAccessNames = enumNames{"PARAM_READ_ONLY", "PARAM_READ_WRITE", "PARAM_WRITE_ONLY"}

func (v ParamAccessType) String() string { return paramAccessNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v ParamAccessType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseParamAccessType parses a parameter access name such as "PARAM_READ_WRITE".
func ParseParamAccessType(s string) (ParamAccessType, error) {
	v, err := paramAccessNames.parse("access", s)
	return ParamAccessType(v), err
}

// ParamValueType is the data type of a data model parameter.
type ParamValueType int32

const (
	ParamUnknown      ParamValueType = 0
	ParamBase64       ParamValueType = 1
	ParamBoolean      ParamValueType = 2
	ParamDateTime     ParamValueType = 3
	ParamDecimal      ParamValueType = 4
	ParamHexBinary    ParamValueType = 5
	ParamInt          ParamValueType = 6
	ParamLong         ParamValueType = 7
	ParamString       ParamValueType = 8
	ParamUnsignedInt  ParamValueType = 9
	ParamUnsignedLong ParamValueType = 10
)

var paramValueTypeNames = enumNames{
	"PARAM_UNKNOWN", "PARAM_BASE_64", "PARAM_BOOLEAN", "PARAM_DATE_TIME", "PARAM_DECIMAL",
	"PARAM_HEX_BINARY", "PARAM_INT", "PARAM_LONG", "PARAM_STRING", "PARAM_UNSIGNED_INT",
	"PARAM_UNSIGNED_LONG",
}

func (v ParamValueType) String() string { return paramValueTypeNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v ParamValueType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseParamValueType parses a value type name such as "PARAM_UNSIGNED_INT".
func ParseParamValueType(s string) (ParamValueType, error) {
	v, err := paramValueTypeNames.parse("value_type", s)
	return ParamValueType(v), err
}

// ValueChangeType says whether a parameter can be subscribed to for changes.
type ValueChangeType int32

const (
	ValueChangeUnknown    ValueChangeType = 0
	ValueChangeAllowed    ValueChangeType = 1
	ValueChangeWillIgnore ValueChangeType = 2
)

var valueChangeNames = enumNames{"VALUE_CHANGE_UNKNOWN", "VALUE_CHANGE_ALLOWED", "VALUE_CHANGE_WILL_IGNORE"}

func (v ValueChangeType) String() string { return valueChangeNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v ValueChangeType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseValueChangeType parses a value change name such as "VALUE_CHANGE_ALLOWED".
func ParseValueChangeType(s string) (ValueChangeType, error) {
	v, err := valueChangeNames.parse("value_change", s)
	return ValueChangeType(v), err
}

// CmdType says whether a command runs synchronously.
type CmdType int32

const (
	CmdUnknown CmdType = 0
	CmdSync    CmdType = 1
	CmdAsync   CmdType = 2
)

var cmdTypeNames = enumNames{"CMD_UNKNOWN", "CMD_SYNC", "CMD_ASYNC"}

func (v CmdType) String() string { return cmdTypeNames.name(int32(v)) }

// MarshalText renders the enum by name.
func (v CmdType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// ParseCmdType parses "CMD_UNKNOWN", "CMD_SYNC" or "CMD_ASYNC".
func ParseCmdType(s string) (CmdType, error) {
	v, err := cmdTypeNames.parse("command_type", s)
	return CmdType(v), err
}
