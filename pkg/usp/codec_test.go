package usp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestRecordRoundTrip(t *testing.T) {
	msg := EncodeMsg(Msg{
		Header: Header{MsgID: "1", MsgType: MsgTypeGet},
		Body:   Get{ParamPaths: []string{"Device."}, MaxDepth: 1},
	})

	tests := []struct {
		name   string
		record Record
	}{
		{
			name: "no session context",
			record: Record{
				Version:    "1.3",
				ToID:       "proto::agent",
				FromID:     "proto::controller",
				RecordType: NoSessionContext{Payload: msg},
			},
		},
		{
			name: "session context",
			record: Record{
				Version:         "1.3",
				ToID:            "proto::agent",
				FromID:          "proto::controller",
				PayloadSecurity: PayloadSecurityTLS12,
				MACSignature:    []byte{0xde, 0xad},
				SenderCert:      []byte("cert"),
				RecordType: SessionContext{
					SessionID:       7,
					SequenceID:      2,
					ExpectedID:      3,
					PayloadSARState: SARStateBegin,
					Payload:         [][]byte{msg, {0x01}},
				},
			},
		},
		{
			name:   "websocket connect",
			record: Record{Version: "1.3", ToID: "a", FromID: "b", RecordType: WebSocketConnect{}},
		},
		{
			name: "mqtt connect",
			record: Record{Version: "1.3", ToID: "a", FromID: "b", RecordType: MQTTConnect{
				Version:         MQTTVersion5,
				SubscribedTopic: "usp/controller",
			}},
		},
		{
			name: "mqtt connect with zero version",
			record: Record{Version: "1.3", ToID: "a", FromID: "b", RecordType: MQTTConnect{
				Version: MQTTVersion311,
			}},
		},
		{
			name: "stomp connect",
			record: Record{Version: "1.3", ToID: "a", FromID: "b", RecordType: STOMPConnect{
				Version:               STOMPVersion12,
				SubscribedDestination: "/queue/agent",
			}},
		},
		{
			name:   "disconnect",
			record: Record{Version: "1.3", ToID: "proto::to", FromID: "proto::from", RecordType: Disconnect{Reason: "Bye"}},
		},
		{
			name:   "uds connect",
			record: Record{ToID: "a", FromID: "b", RecordType: UDSConnect{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := EncodeRecord(tt.record)

			decoded, err := DecodeRecord(data)
			require.NoError(t, err)
			assert.Equal(t, tt.record, decoded)
			assert.Equal(t, data, EncodeRecord(decoded))
		})
	}
}

func TestDisconnectRecordEncoding(t *testing.T) {
	r := Record{
		Version:    "1.3",
		ToID:       "proto::to",
		FromID:     "proto::from",
		RecordType: Disconnect{Reason: "Bye"},
	}

	var want []byte
	want = protowire.AppendTag(want, 1, protowire.BytesType)
	want = protowire.AppendString(want, "1.3")
	want = protowire.AppendTag(want, 2, protowire.BytesType)
	want = protowire.AppendString(want, "proto::to")
	want = protowire.AppendTag(want, 3, protowire.BytesType)
	want = protowire.AppendString(want, "proto::from")
	want = protowire.AppendTag(want, 12, protowire.BytesType)
	want = protowire.AppendBytes(want, []byte{0x0a, 0x03, 'B', 'y', 'e'})

	assert.Equal(t, want, EncodeRecord(r))
}

func TestEmptyOneofMemberIsEmitted(t *testing.T) {
	data := EncodeRecord(Record{RecordType: WebSocketConnect{}})
	assert.Equal(t, []byte{0x4a, 0x00}, data)

	decoded, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, WebSocketConnect{}, decoded.RecordType)
}

func TestMsgRoundTrip(t *testing.T) {
	bodies := []Body{
		Get{ParamPaths: []string{"Device.", "Device.LocalAgent."}, MaxDepth: 1},
		GetResp{ReqPathResults: []GetReqPathResult{
			{
				RequestedPath: "Device.DeviceInfo.",
				ResolvedPathResults: []ResolvedPathResult{{
					ResolvedPath: "Device.DeviceInfo.",
					ResultParams: map[string]string{"SerialNumber": "123", "ModelName": "X"},
				}},
			},
			{RequestedPath: "Device.Nope.", ErrCode: 7026, ErrMsg: "Invalid path"},
		}},
		GetInstances{ObjPaths: []string{"Device.LocalAgent.Controller."}, FirstLevelOnly: true},
		GetInstancesResp{ReqPathResults: []GetInstancesReqPathResult{{
			RequestedPath: "Device.LocalAgent.Controller.",
			CurrInsts: []CurrInstance{{
				InstantiatedObjPath: "Device.LocalAgent.Controller.1.",
				UniqueKeys:          map[string]string{"EndpointID": "proto::c"},
			}},
		}}},
		GetSupportedDM{ObjPaths: []string{"Device."}, ReturnCommands: true, ReturnEvents: true, ReturnParams: true},
		GetSupportedDMResp{ReqObjResults: []RequestedObjectResult{{
			ReqObjPath:       "Device.",
			DataModelInstURI: "urn:broadband-forum-org:tr-181-2-15-0",
			SupportedObjs: []SupportedObjectResult{{
				SupportedObjPath: "Device.LocalAgent.Controller.{i}.",
				Access:           ObjAddDelete,
				IsMultiInstance:  true,
				SupportedCommands: []SupportedCommandResult{{
					CommandName:    "SendOnBoardRequest()",
					OutputArgNames: []string{"Status"},
					CommandType:    CmdAsync,
				}},
				SupportedEvents: []SupportedEventResult{{EventName: "Boot!", ArgNames: []string{"Cause"}}},
				SupportedParams: []SupportedParamResult{{
					ParamName:   "Enable",
					Access:      ParamReadWrite,
					ValueType:   ParamBoolean,
					ValueChange: ValueChangeAllowed,
				}},
				DivergentPaths: []string{"Device.X."},
				UniqueKeySets:  []SupportedUniqueKeySet{{KeyNames: []string{"EndpointID"}}},
			}},
		}}},
		GetSupportedProtocol{ControllerSupportedProtocolVersions: "1.0,1.3"},
		GetSupportedProtocolResp{AgentSupportedProtocolVersions: "1.3"},
		Set{AllowPartial: true, UpdateObjs: []UpdateObject{{
			ObjPath:       "Device.LocalAgent.",
			ParamSettings: []ParamSetting{{Param: "Enable", Value: "true", Required: true}},
		}}},
		SetResp{UpdatedObjResults: []UpdatedObjectResult{
			{
				RequestedPath: "Device.LocalAgent.",
				OperStatus: SetOperationSuccess{UpdatedInstResults: []UpdatedInstanceResult{{
					AffectedPath:  "Device.LocalAgent.",
					UpdatedParams: map[string]string{"Enable": "true"},
				}}},
			},
			{
				RequestedPath: "Device.Nope.",
				OperStatus: SetOperationFailure{
					ErrCode: 7021,
					UpdatedInstFailures: []UpdatedInstanceFailure{{
						AffectedPath: "Device.Nope.",
						ParamErrs:    []ParameterError{{Param: "X", ErrCode: 7010}},
					}},
				},
			},
		}},
		Add{CreateObjs: []CreateObject{{ObjPath: "Device.LocalAgent.Controller."}}},
		AddResp{CreatedObjResults: []CreatedObjectResult{
			{
				RequestedPath: "Device.LocalAgent.Controller.",
				OperStatus: AddOperationSuccess{
					InstantiatedPath: "Device.LocalAgent.Controller.2.",
					UniqueKeys:       map[string]string{"Alias": "cpe-2"},
				},
			},
			{RequestedPath: "Device.X.", OperStatus: OperationFailure{ErrCode: 7018}},
		}},
		Delete{ObjPaths: []string{"Device.LocalAgent.Controller.2."}},
		DeleteResp{DeletedObjResults: []DeletedObjectResult{{
			RequestedPath: "Device.LocalAgent.Controller.2.",
			OperStatus: DeleteOperationSuccess{
				AffectedPaths:      []string{"Device.LocalAgent.Controller.2."},
				UnaffectedPathErrs: []UnaffectedPathError{{UnaffectedPath: "Device.X.1.", ErrCode: 7018}},
			},
		}}},
		Operate{Command: "Device.Reboot()", CommandKey: "k", SendResp: true, InputArgs: map[string]string{"Cause": "x"}},
		OperateResp{OperationResults: []OperationResult{
			{ExecutedCommand: "Device.Reboot()", OperationResp: ReqObjPath("Device.LocalAgent.Request.1")},
			{ExecutedCommand: "Device.A()", OperationResp: OutputArgs{OutputArgs: map[string]string{"a": "b"}}},
			{ExecutedCommand: "Device.B()", OperationResp: CommandFailure{ErrCode: 7022, ErrMsg: "boom"}},
			{ExecutedCommand: "Device.C()", OperationResp: ReqObjPath("")},
		}},
		Notify{SubscriptionID: "sub", SendResp: true, Notification: Event{ObjPath: "Device.", EventName: "Boot!", Params: map[string]string{"Cause": "LocalReboot"}}},
		Notify{SubscriptionID: "sub", Notification: ValueChange{ParamPath: "Device.X", ParamValue: "1"}},
		Notify{SubscriptionID: "sub", Notification: ObjectCreation{ObjPath: "Device.X.1."}},
		Notify{SubscriptionID: "sub", Notification: ObjectDeletion{ObjPath: "Device.X.1."}},
		Notify{SubscriptionID: "sub", Notification: OperationComplete{
			ObjPath: "Device.", CommandName: "Reboot()", CommandKey: "k",
			OperationResp: CommandFailure{ErrCode: 7022},
		}},
		Notify{SubscriptionID: "sub", Notification: OnBoardRequest{OUI: "00D09E", ProductClass: "gw", SerialNumber: "1", AgentSupportedProtocolVersions: "1.3"}},
		NotifyResp{SubscriptionID: "sub"},
		Register{AllowPartial: true, RegPaths: []RegistrationPath{{Path: "Device.Service."}}},
		RegisterResp{RegisteredPathResults: []RegisteredPathResult{{
			RequestedPath: "Device.Service.",
			OperStatus:    RegisterOperationSuccess{RegisteredPath: "Device.Service."},
		}}},
		Deregister{Paths: []string{"Device.Service."}},
		DeregisterResp{DeregisteredPathResults: []DeregisteredPathResult{{
			RequestedPath: "Device.Service.",
			OperStatus:    DeregisterOperationSuccess{DeregisteredPath: []string{"Device.Service."}},
		}}},
		Error{ErrCode: 7004, ParamErrs: []ErrorParamError{{ParamPath: "Device.X", ErrCode: 7012}}},
	}

	for _, body := range bodies {
		t.Run(body.memberName(), func(t *testing.T) {
			m := Msg{Header: Header{MsgID: "id-1", MsgType: body.MsgType()}, Body: body}
			data := EncodeMsg(m)

			decoded, err := DecodeMsg(data)
			require.NoError(t, err)
			assert.Equal(t, m, decoded)

			b, err := DecodeBody(EncodeBody(body))
			require.NoError(t, err)
			assert.Equal(t, body, b)
		})
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	op := Operate{
		Command:   "Device.X()",
		InputArgs: map[string]string{"c": "3", "a": "1", "b": "2"},
	}
	first := EncodeBody(op)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, EncodeBody(op))
	}
}

func TestDecodeRejectsUnsetOneofs(t *testing.T) {
	t.Run("record type", func(t *testing.T) {
		_, err := DecodeRecord(EncodeRecord(Record{ToID: "a", FromID: "b"}))
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, DecodeUnset, de.Kind)
		assert.Equal(t, "record_type", de.Field)
		assert.ErrorIs(t, err, ErrUnset)
	})

	t.Run("msg body", func(t *testing.T) {
		_, err := DecodeMsg(EncodeMsg(Msg{Header: Header{MsgID: "1"}}))
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, DecodeUnset, de.Kind)
		assert.Equal(t, "body", de.Field)
	})

	t.Run("request member", func(t *testing.T) {
		data := appendMessage(nil, 1, appendString(nil, 1, "1"))
		data = appendMessage(data, 2, appendMessage(nil, 1, nil))
		_, err := DecodeMsg(data)
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, DecodeUnset, de.Kind)
		assert.Equal(t, "Request", de.Type)
		assert.Equal(t, "req_type", de.Field)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := DecodeBody(nil)
		assert.ErrorIs(t, err, ErrUnset)
	})
}

func TestDecodeMalformed(t *testing.T) {
	valid := EncodeRecord(Record{
		Version:    "1.3",
		ToID:       "proto::to",
		FromID:     "proto::from",
		RecordType: Disconnect{Reason: "Bye"},
	})

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated", valid[:len(valid)-2]},
		{"bad tag", []byte{0x00}},
		{"truncated varint", []byte{0x20, 0xff}},
		{"wrong wire type", []byte{0x0d, 0x01, 0x02, 0x03, 0x04}},
		{"invalid utf8", []byte{0x12, 0x02, 0xff, 0xfe}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecord(tt.data)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, DecodeMalformed, de.Kind)
			assert.Equal(t, "Record", de.Type)
			assert.True(t, errors.Is(err, ErrMalformed))
		})
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	data := EncodeRecord(Record{ToID: "a", FromID: "b", RecordType: UDSConnect{}})
	data = protowire.AppendTag(data, 99, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)

	r, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, "a", r.ToID)
	assert.Equal(t, UDSConnect{}, r.RecordType)
}

func TestRecordMsg(t *testing.T) {
	m := Msg{Header: Header{MsgID: "x", MsgType: MsgTypeNotifyResp}, Body: NotifyResp{SubscriptionID: "s"}}
	payload := EncodeMsg(m)

	got, err := Record{RecordType: NoSessionContext{Payload: payload}}.Msg()
	require.NoError(t, err)
	assert.Equal(t, m, got)

	got, err = Record{RecordType: SessionContext{Payload: [][]byte{payload}}}.Msg()
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = Record{RecordType: SessionContext{PayloadSARState: SARStateBegin, Payload: [][]byte{payload}}}.Msg()
	assert.Error(t, err)

	_, err = Record{RecordType: Disconnect{}}.Msg()
	assert.Error(t, err)
}

func TestMsgTypeKind(t *testing.T) {
	assert.Equal(t, BodyError, MsgTypeError.Kind())
	assert.Equal(t, BodyRequest, MsgTypeGet.Kind())
	assert.Equal(t, BodyResponse, MsgTypeGetResp.Kind())
	assert.Equal(t, BodyRequest, MsgTypeNotify.Kind())
	assert.Equal(t, BodyResponse, MsgTypeNotifyResp.Kind())
	assert.Equal(t, "response", BodyResponse.String())
}
