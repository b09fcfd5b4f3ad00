package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usp-protocol/usp-go/pkg/builder"
)

func TestMsgJSON(t *testing.T) {
	get, err := builder.NewGetBuilder().WithParamPaths([]string{"Device."}).WithMaxDepth(1).Build()
	require.NoError(t, err)
	msg, err := builder.NewMsgBuilder().WithMsgID("42").WithBody(get).Build()
	require.NoError(t, err)

	out, err := MsgJSON(msg)
	require.NoError(t, err)
	assert.Equal(t, `{
  "header": {
    "msg_id": "42",
    "msg_type": "GET"
  },
  "body": {
    "request": {
      "get": {
        "param_paths": [
          "Device."
        ],
        "max_depth": 1
      }
    }
  }
}`, out)
}

func TestRecordJSON(t *testing.T) {
	rec, err := builder.NewRecordBuilder().
		WithToID("proto::to").
		WithFromID("proto::from").
		AsDisconnectRecord("Bye", 0).
		Build()
	require.NoError(t, err)

	out, err := RecordJSON(rec)
	require.NoError(t, err)
	assert.Equal(t, `{
  "version": "1.3",
  "to_id": "proto::to",
  "from_id": "proto::from",
  "payload_security": "PLAINTEXT",
  "record_type": {
    "disconnect": {
      "reason": "Bye",
      "reason_code": 0
    }
  }
}`, out)
}

func TestBodyJSON(t *testing.T) {
	e, err := builder.NewErrorBuilder().SetErrCode(-1).Build()
	require.NoError(t, err)

	out, err := BodyJSON(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": {"err_code": 7003, "err_msg": "Internal error"}}`, out)

	n, err := builder.NewNotifyRespBuilder("sub").Build()
	require.NoError(t, err)
	out, err = BodyJSON(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"response": {"notify_resp": {"subscription_id": "sub"}}}`, out)

	out, err = BodyJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", out)
}

func TestRenderingIsDeterministic(t *testing.T) {
	op, err := builder.NewOperateBuilder("Device.X()").
		WithInputArgs(map[string]string{"z": "1", "a": "2", "m": "3"}).
		Build()
	require.NoError(t, err)
	msg, err := builder.NewMsgBuilder().WithMsgID("d").WithBody(op).Build()
	require.NoError(t, err)

	first, err := MsgJSON(msg)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		out, err := MsgJSON(msg)
		require.NoError(t, err)
		assert.Equal(t, first, out)
		assert.Equal(t, MsgCString(msg), MsgCString(msg))
	}
}

func TestSerializationError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&SerializationError{Type: "Msg", Cause: cause})
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to render Msg: boom", err.Error())
}
