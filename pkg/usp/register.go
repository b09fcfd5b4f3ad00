package usp

import "encoding/json"

// Register announces data model paths served by a USP service.
//
// Wire encoding:
//
//	1: allow_partial  bool
//	2: reg_paths      repeated RegistrationPath
type Register struct {
	AllowPartial bool               `json:"allow_partial"`
	RegPaths     []RegistrationPath `json:"reg_paths,omitempty"`
}

// RegistrationPath is one path to register.
type RegistrationPath struct {
	Path string `json:"path"`
}

// RegisterResp answers a Register with one result per path.
type RegisterResp struct {
	RegisteredPathResults []RegisteredPathResult `json:"registered_path_results,omitempty"`
}

// RegisteredPathResult is the outcome for one requested path.
type RegisteredPathResult struct {
	RequestedPath string             `json:"requested_path"`
	OperStatus    RegisterOperStatus `json:"-"`
}

// RegisterOperStatus is either OperationFailure or RegisterOperationSuccess.
type RegisterOperStatus interface {
	operStatus
	isRegisterOperStatus()
}

// RegisterOperationSuccess names the registered path.
type RegisterOperationSuccess struct {
	RegisteredPath string `json:"registered_path"`
}

func (Register) MsgType() MsgType     { return MsgTypeRegister }
func (RegisterResp) MsgType() MsgType { return MsgTypeRegisterResp }

func (Register) memberName() string                 { return "register" }
func (RegisterResp) memberName() string             { return "register_resp" }
func (RegisterOperationSuccess) memberName() string { return "oper_success" }

func (RegisterOperationSuccess) isRegisterOperStatus() {}

func (r Register) marshal() []byte {
	var b []byte
	b = appendBool(b, 1, r.AllowPartial)
	for _, p := range r.RegPaths {
		b = appendMessage(b, 2, appendString(nil, 1, p.Path))
	}
	return b
}

func (r RegisterResp) marshal() []byte {
	var b []byte
	for _, res := range r.RegisteredPathResults {
		var m []byte
		m = appendString(m, 1, res.RequestedPath)
		m = appendOperStatus(m, 2, res.OperStatus)
		b = appendMessage(b, 1, m)
	}
	return b
}

func (o RegisterOperationSuccess) marshal() []byte {
	return appendString(nil, 1, o.RegisteredPath)
}

func parseRegister(b []byte) (Register, error) {
	var r Register
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.AllowPartial, err = f.boolean()
		case 2:
			err = addSub(&r.RegPaths, f, parseRegistrationPath)
		}
		return err
	})
	return r, err
}

func parseRegistrationPath(b []byte) (RegistrationPath, error) {
	var p RegistrationPath
	err := walkFields(b, func(f field) error {
		var err error
		if f.num == 1 {
			p.Path, err = f.str()
		}
		return err
	})
	return p, err
}

func parseRegisterResp(b []byte) (RegisterResp, error) {
	var r RegisterResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&r.RegisteredPathResults, f, parseRegisteredPathResult)
		}
		return nil
	})
	return r, err
}

func parseRegisteredPathResult(b []byte) (RegisteredPathResult, error) {
	var r RegisteredPathResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.RequestedPath, err = f.str()
		case 2:
			r.OperStatus, err = sub(f, func(b []byte) (RegisterOperStatus, error) {
				return parseOperStatus[RegisterOperStatus](b, parseOperationFailure, parseRegisterOperationSuccess)
			})
		}
		return err
	})
	return r, err
}

func parseRegisterOperationSuccess(b []byte) (RegisterOperationSuccess, error) {
	var o RegisterOperationSuccess
	err := walkFields(b, func(f field) error {
		var err error
		if f.num == 1 {
			o.RegisteredPath, err = f.str()
		}
		return err
	})
	return o, err
}

// MarshalJSON renders oper_status as a tagged object.
func (r RegisteredPathResult) MarshalJSON() ([]byte, error) {
	type plain RegisteredPathResult
	return json.Marshal(struct {
		plain
		OperStatus any `json:"oper_status"`
	}{plain(r), oneofJSON(r.OperStatus)})
}
