package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
)

// Add creates object instances.
//
// Wire encoding:
//
//	1: allow_partial  bool
//	2: create_objs    repeated CreateObject
type Add struct {
	AllowPartial bool           `json:"allow_partial"`
	CreateObjs   []CreateObject `json:"create_objs,omitempty"`
}

// CreateObject names a multi-instance object and the initial parameter
// values of the new instance.
type CreateObject struct {
	ObjPath       string         `json:"obj_path"`
	ParamSettings []ParamSetting `json:"param_settings,omitempty"`
}

// AddResp answers an Add with one result per create_objs entry.
type AddResp struct {
	CreatedObjResults []CreatedObjectResult `json:"created_obj_results,omitempty"`
}

// CreatedObjectResult is the outcome for one requested object path.
type CreatedObjectResult struct {
	RequestedPath string        `json:"requested_path"`
	OperStatus    AddOperStatus `json:"-"`
}

// AddOperStatus is either OperationFailure or AddOperationSuccess.
type AddOperStatus interface {
	operStatus
	isAddOperStatus()
}

// AddOperationSuccess describes the created instance.
//
// Wire encoding:
//
//	1: instantiated_path  string
//	2: param_errs         repeated ParameterError
//	3: unique_keys        map<string, string>
type AddOperationSuccess struct {
	InstantiatedPath string            `json:"instantiated_path"`
	ParamErrs        []ParameterError  `json:"param_errs,omitempty"`
	UniqueKeys       map[string]string `json:"unique_keys,omitempty"`
}

func (Add) MsgType() MsgType     { return MsgTypeAdd }
func (AddResp) MsgType() MsgType { return MsgTypeAddResp }

func (Add) memberName() string                 { return "add" }
func (AddResp) memberName() string             { return "add_resp" }
func (AddOperationSuccess) memberName() string { return "oper_success" }

func (AddOperationSuccess) isAddOperStatus() {}

func (a Add) marshal() []byte {
	var b []byte
	b = appendBool(b, 1, a.AllowPartial)
	for _, o := range a.CreateObjs {
		var m []byte
		m = appendString(m, 1, o.ObjPath)
		m = appendParamSettings(m, 2, o.ParamSettings)
		b = appendMessage(b, 2, m)
	}
	return b
}

func (a AddResp) marshal() []byte {
	var b []byte
	for _, r := range a.CreatedObjResults {
		var m []byte
		m = appendString(m, 1, r.RequestedPath)
		m = appendOperStatus(m, 2, r.OperStatus)
		b = appendMessage(b, 1, m)
	}
	return b
}

func (o AddOperationSuccess) marshal() []byte {
	var b []byte
	b = appendString(b, 1, o.InstantiatedPath)
	b = appendParameterErrors(b, 2, o.ParamErrs)
	b = appendStringMap(b, 3, o.UniqueKeys)
	return b
}

func parseAdd(b []byte) (Add, error) {
	var a Add
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			a.AllowPartial, err = f.boolean()
		case 2:
			err = addSub(&a.CreateObjs, f, parseCreateObject)
		}
		return err
	})
	return a, err
}

func parseCreateObject(b []byte) (CreateObject, error) {
	var o CreateObject
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.ObjPath, err = f.str()
		case 2:
			err = addSub(&o.ParamSettings, f, parseParamSetting)
		}
		return err
	})
	return o, err
}

func parseAddResp(b []byte) (AddResp, error) {
	var a AddResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&a.CreatedObjResults, f, parseCreatedObjectResult)
		}
		return nil
	})
	return a, err
}

func parseCreatedObjectResult(b []byte) (CreatedObjectResult, error) {
	var r CreatedObjectResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.RequestedPath, err = f.str()
		case 2:
			r.OperStatus, err = sub(f, func(b []byte) (AddOperStatus, error) {
				return parseOperStatus[AddOperStatus](b, parseOperationFailure, parseAddOperationSuccess)
			})
		}
		return err
	})
	return r, err
}

func parseAddOperationSuccess(b []byte) (AddOperationSuccess, error) {
	var o AddOperationSuccess
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.InstantiatedPath, err = f.str()
		case 2:
			err = addSub(&o.ParamErrs, f, parseParameterError)
		case 3:
			err = f.mapEntry(&o.UniqueKeys)
		}
		return err
	})
	return o, err
}

// MarshalJSON renders oper_status as a tagged object.
func (r CreatedObjectResult) MarshalJSON() ([]byte, error) {
	type plain CreatedObjectResult
	return json.Marshal(struct {
		plain
		OperStatus any `json:"oper_status"`
	}{plain(r), oneofJSON(r.OperStatus)})
}

// MarshalJSON fills in the registry text when no message was supplied.
func (o OperationFailure) MarshalJSON() ([]byte, error) {
	type plain OperationFailure
	p := plain(o)
	p.ErrMsg = errcode.Message(o.ErrCode, o.ErrMsg)
	return json.Marshal(p)
}

// MarshalJSON fills in the registry text when no message was supplied.
func (p ParameterError) MarshalJSON() ([]byte, error) {
	type plain ParameterError
	q := plain(p)
	q.ErrMsg = errcode.Message(p.ErrCode, p.ErrMsg)
	return json.Marshal(q)
}
