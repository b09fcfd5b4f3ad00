package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
	"google.golang.org/protobuf/encoding/protowire"
)

// Set updates parameters of existing objects.
//
// Wire encoding:
//
//	1: allow_partial  bool
//	2: update_objs    repeated UpdateObject
type Set struct {
	AllowPartial bool           `json:"allow_partial"`
	UpdateObjs   []UpdateObject `json:"update_objs,omitempty"`
}

// UpdateObject names an object path and the parameters to write below it.
type UpdateObject struct {
	ObjPath       string         `json:"obj_path"`
	ParamSettings []ParamSetting `json:"param_settings,omitempty"`
}

// ParamSetting is one parameter assignment of a Set or Add. Required makes
// the whole object fail when the parameter cannot be written.
type ParamSetting struct {
	Param    string `json:"param"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
}

// SetResp answers a Set with one result per update_objs entry.
type SetResp struct {
	UpdatedObjResults []UpdatedObjectResult `json:"updated_obj_results,omitempty"`
}

// UpdatedObjectResult is the outcome for one requested object path.
//
// Wire encoding:
//
//	1: requested_path  string
//	2: oper_status     { 1: oper_failure | 2: oper_success }
type UpdatedObjectResult struct {
	RequestedPath string        `json:"requested_path"`
	OperStatus    SetOperStatus `json:"-"`
}

// SetOperStatus is either SetOperationFailure or SetOperationSuccess.
type SetOperStatus interface {
	operStatus
	isSetOperStatus()
}

// SetOperationFailure reports a failed object update.
type SetOperationFailure struct {
	ErrCode             uint32                   `json:"err_code"`
	ErrMsg              string                   `json:"err_msg"`
	UpdatedInstFailures []UpdatedInstanceFailure `json:"updated_inst_failures,omitempty"`
}

// SetOperationSuccess lists the instances that were updated.
type SetOperationSuccess struct {
	UpdatedInstResults []UpdatedInstanceResult `json:"updated_inst_results,omitempty"`
}

// UpdatedInstanceFailure names an instance and the parameters that failed.
type UpdatedInstanceFailure struct {
	AffectedPath string           `json:"affected_path"`
	ParamErrs    []ParameterError `json:"param_errs,omitempty"`
}

// UpdatedInstanceResult names an updated instance and its new values.
type UpdatedInstanceResult struct {
	AffectedPath  string            `json:"affected_path"`
	ParamErrs     []ParameterError  `json:"param_errs,omitempty"`
	UpdatedParams map[string]string `json:"updated_params,omitempty"`
}

func (Set) MsgType() MsgType     { return MsgTypeSet }
func (SetResp) MsgType() MsgType { return MsgTypeSetResp }

func (Set) memberName() string                 { return "set" }
func (SetResp) memberName() string             { return "set_resp" }
func (SetOperationFailure) memberName() string { return "oper_failure" }
func (SetOperationSuccess) memberName() string { return "oper_success" }

func (SetOperationFailure) isSetOperStatus() {}
func (SetOperationSuccess) isSetOperStatus() {}

func (s Set) marshal() []byte {
	var b []byte
	b = appendBool(b, 1, s.AllowPartial)
	for _, o := range s.UpdateObjs {
		var m []byte
		m = appendString(m, 1, o.ObjPath)
		m = appendParamSettings(m, 2, o.ParamSettings)
		b = appendMessage(b, 2, m)
	}
	return b
}

func (s SetResp) marshal() []byte {
	var b []byte
	for _, r := range s.UpdatedObjResults {
		var m []byte
		m = appendString(m, 1, r.RequestedPath)
		m = appendOperStatus(m, 2, r.OperStatus)
		b = appendMessage(b, 1, m)
	}
	return b
}

func (o SetOperationFailure) marshal() []byte {
	var b []byte
	b = appendFixed32(b, 1, o.ErrCode)
	b = appendString(b, 2, o.ErrMsg)
	for _, f := range o.UpdatedInstFailures {
		var m []byte
		m = appendString(m, 1, f.AffectedPath)
		m = appendParameterErrors(m, 2, f.ParamErrs)
		b = appendMessage(b, 3, m)
	}
	return b
}

func (o SetOperationSuccess) marshal() []byte {
	var b []byte
	for _, r := range o.UpdatedInstResults {
		var m []byte
		m = appendString(m, 1, r.AffectedPath)
		m = appendParameterErrors(m, 2, r.ParamErrs)
		m = appendStringMap(m, 3, r.UpdatedParams)
		b = appendMessage(b, 1, m)
	}
	return b
}

func appendParamSettings(b []byte, num protowire.Number, ps []ParamSetting) []byte {
	for _, p := range ps {
		var m []byte
		m = appendString(m, 1, p.Param)
		m = appendString(m, 2, p.Value)
		m = appendBool(m, 3, p.Required)
		b = appendMessage(b, num, m)
	}
	return b
}

func parseSet(b []byte) (Set, error) {
	var s Set
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			s.AllowPartial, err = f.boolean()
		case 2:
			err = addSub(&s.UpdateObjs, f, parseUpdateObject)
		}
		return err
	})
	return s, err
}

func parseUpdateObject(b []byte) (UpdateObject, error) {
	var o UpdateObject
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

func parseParamSetting(b []byte) (ParamSetting, error) {
	var p ParamSetting
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			p.Param, err = f.str()
		case 2:
			p.Value, err = f.str()
		case 3:
			p.Required, err = f.boolean()
		}
		return err
	})
	return p, err
}

func parseSetResp(b []byte) (SetResp, error) {
	var s SetResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&s.UpdatedObjResults, f, parseUpdatedObjectResult)
		}
		return nil
	})
	return s, err
}

func parseUpdatedObjectResult(b []byte) (UpdatedObjectResult, error) {
	var r UpdatedObjectResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.RequestedPath, err = f.str()
		case 2:
			r.OperStatus, err = sub(f, func(b []byte) (SetOperStatus, error) {
				return parseOperStatus[SetOperStatus](b, parseSetOperationFailure, parseSetOperationSuccess)
			})
		}
		return err
	})
	return r, err
}

func parseSetOperationFailure(b []byte) (SetOperationFailure, error) {
	var o SetOperationFailure
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.ErrCode, err = f.fixed32()
		case 2:
			o.ErrMsg, err = f.str()
		case 3:
			err = addSub(&o.UpdatedInstFailures, f, parseUpdatedInstanceFailure)
		}
		return err
	})
	return o, err
}

func parseSetOperationSuccess(b []byte) (SetOperationSuccess, error) {
	var o SetOperationSuccess
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&o.UpdatedInstResults, f, parseUpdatedInstanceResult)
		}
		return nil
	})
	return o, err
}

func parseUpdatedInstanceFailure(b []byte) (UpdatedInstanceFailure, error) {
	var u UpdatedInstanceFailure
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			u.AffectedPath, err = f.str()
		case 2:
			err = addSub(&u.ParamErrs, f, parseParameterError)
		}
		return err
	})
	return u, err
}

func parseUpdatedInstanceResult(b []byte) (UpdatedInstanceResult, error) {
	var u UpdatedInstanceResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			u.AffectedPath, err = f.str()
		case 2:
			err = addSub(&u.ParamErrs, f, parseParameterError)
		case 3:
			err = f.mapEntry(&u.UpdatedParams)
		}
		return err
	})
	return u, err
}

// MarshalJSON renders oper_status as a tagged object.
func (r UpdatedObjectResult) MarshalJSON() ([]byte, error) {
	type plain UpdatedObjectResult
	return json.Marshal(struct {
		plain
		OperStatus any `json:"oper_status"`
	}{plain(r), oneofJSON(r.OperStatus)})
}

// MarshalJSON fills in the registry text when no message was supplied.
func (o SetOperationFailure) MarshalJSON() ([]byte, error) {
	type plain SetOperationFailure
	p := plain(o)
	p.ErrMsg = errcode.Message(o.ErrCode, o.ErrMsg)
	return json.Marshal(p)
}
