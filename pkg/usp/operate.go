package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
	"google.golang.org/protobuf/encoding/protowire"
)

// Operate invokes a command.
//
// Wire encoding:
//
//	1: command      string
//	2: command_key  string
//	3: send_resp    bool
//	4: input_args   map<string, string>
type Operate struct {
	Command    string            `json:"command"`
	CommandKey string            `json:"command_key"`
	SendResp   bool              `json:"send_resp"`
	InputArgs  map[string]string `json:"input_args,omitempty"`
}

// OperateResp answers an Operate with one result per executed command.
type OperateResp struct {
	OperationResults []OperationResult `json:"operation_results,omitempty"`
}

// OperationResult is the outcome of one executed command.
//
// Wire encoding:
//
//	1: executed_command  string
//	2: req_obj_path      string          (operation_resp)
//	3: req_output_args   OutputArgs      (operation_resp)
//	4: cmd_failure       CommandFailure  (operation_resp)
type OperationResult struct {
	ExecutedCommand string         `json:"executed_command"`
	OperationResp   OperateOutcome `json:"-"`
}

// OperateOutcome is one of ReqObjPath, OutputArgs or CommandFailure.
type OperateOutcome interface {
	member
	isOperateOutcome()
}

// ReqObjPath is the path of the Request object created for an asynchronous
// command.
type ReqObjPath string

func (ReqObjPath) memberName() string { return "req_obj_path" }
func (ReqObjPath) isOperateOutcome()  {}

func (Operate) MsgType() MsgType     { return MsgTypeOperate }
func (OperateResp) MsgType() MsgType { return MsgTypeOperateResp }

func (Operate) memberName() string     { return "operate" }
func (OperateResp) memberName() string { return "operate_resp" }

func (o Operate) marshal() []byte {
	var b []byte
	b = appendString(b, 1, o.Command)
	b = appendString(b, 2, o.CommandKey)
	b = appendBool(b, 3, o.SendResp)
	b = appendStringMap(b, 4, o.InputArgs)
	return b
}

func (o OperateResp) marshal() []byte {
	var b []byte
	for _, r := range o.OperationResults {
		b = appendMessage(b, 1, r.marshal())
	}
	return b
}

func (r OperationResult) marshal() []byte {
	var b []byte
	b = appendString(b, 1, r.ExecutedCommand)
	switch out := r.OperationResp.(type) {
	case ReqObjPath:
		// oneof strings keep presence even when empty
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, string(out))
	case OutputArgs:
		b = appendMessage(b, 3, out.marshal())
	case CommandFailure:
		b = appendMessage(b, 4, out.marshal())
	}
	return b
}

func parseOperate(b []byte) (Operate, error) {
	var o Operate
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.Command, err = f.str()
		case 2:
			o.CommandKey, err = f.str()
		case 3:
			o.SendResp, err = f.boolean()
		case 4:
			err = f.mapEntry(&o.InputArgs)
		}
		return err
	})
	return o, err
}

func parseOperateResp(b []byte) (OperateResp, error) {
	var o OperateResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&o.OperationResults, f, parseOperationResult)
		}
		return nil
	})
	return o, err
}

func parseOperationResult(b []byte) (OperationResult, error) {
	var r OperationResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.ExecutedCommand, err = f.str()
		case 2:
			var s string
			s, err = f.str()
			r.OperationResp = ReqObjPath(s)
		case 3:
			r.OperationResp, err = sub(f, parseOutputArgs)
		case 4:
			r.OperationResp, err = sub(f, parseCommandFailure)
		}
		return err
	})
	return r, err
}

// MarshalJSON renders operation_resp as a tagged object.
func (r OperationResult) MarshalJSON() ([]byte, error) {
	type plain OperationResult
	return json.Marshal(struct {
		plain
		OperationResp any `json:"operation_resp"`
	}{plain(r), oneofJSON(r.OperationResp)})
}

// MarshalJSON fills in the registry text when no message was supplied.
func (c CommandFailure) MarshalJSON() ([]byte, error) {
	type plain CommandFailure
	p := plain(c)
	p.ErrMsg = errcode.Message(c.ErrCode, c.ErrMsg)
	return json.Marshal(p)
}
