package usp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordJSON(t *testing.T) {
	r := Record{
		Version:    "1.3",
		ToID:       "proto::to",
		FromID:     "proto::from",
		RecordType: Disconnect{Reason: "Bye"},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": "1.3",
		"to_id": "proto::to",
		"from_id": "proto::from",
		"payload_security": "PLAINTEXT",
		"record_type": {"disconnect": {"reason": "Bye", "reason_code": 0}}
	}`, string(data))
}

func TestRecordJSONUnset(t *testing.T) {
	data, err := json.Marshal(Record{RecordType: RecordTypeUnset{}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"record_type":null`)
}

func TestNoSessionContextJSONInlinesMsg(t *testing.T) {
	payload := EncodeMsg(Msg{
		Header: Header{MsgID: "42", MsgType: MsgTypeGet},
		Body:   Get{ParamPaths: []string{"Device."}, MaxDepth: 1},
	})

	data, err := json.Marshal(NoSessionContext{Payload: payload})
	require.NoError(t, err)
	assert.JSONEq(t, `{"payload": {
		"header": {"msg_id": "42", "msg_type": "GET"},
		"body": {"request": {"get": {"param_paths": ["Device."], "max_depth": 1}}}
	}}`, string(data))

	data, err = json.Marshal(NoSessionContext{Payload: []byte{0xff}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"payload": "/w=="}`, string(data))
}

func TestErrorJSONSubstitutesRegistryText(t *testing.T) {
	m := Msg{
		Header: Header{MsgID: "e", MsgType: MsgTypeError},
		Body:   Error{ErrCode: 7004, ParamErrs: []ErrorParamError{{ParamPath: "Device.X", ErrCode: 7012, ErrMsg: "custom"}}},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"header": {"msg_id": "e", "msg_type": "ERROR"},
		"body": {"error": {
			"err_code": 7004,
			"err_msg": "Invalid arguments",
			"param_errs": [{"param_path": "Device.X", "err_code": 7012, "err_msg": "custom"}]
		}}
	}`, string(data))
}

func TestResponseOneofJSON(t *testing.T) {
	body := OperateResp{OperationResults: []OperationResult{
		{ExecutedCommand: "Device.Reboot()", OperationResp: ReqObjPath("Device.LocalAgent.Request.1")},
		{ExecutedCommand: "Device.X()"},
	}}

	data, err := json.Marshal(Msg{Header: Header{MsgID: "o", MsgType: MsgTypeOperateResp}, Body: body})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"header": {"msg_id": "o", "msg_type": "OPERATE_RESP"},
		"body": {"response": {"operate_resp": {"operation_results": [
			{"executed_command": "Device.Reboot()", "operation_resp": {"req_obj_path": "Device.LocalAgent.Request.1"}},
			{"executed_command": "Device.X()", "operation_resp": null}
		]}}}
	}`, string(data))
}
