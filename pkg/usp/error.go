package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
)

// Error is the body of a message that rejects a request as a whole.
//
// Wire encoding:
//
//	1: err_code    fixed32
//	2: err_msg     string
//	3: param_errs  repeated ErrorParamError
type Error struct {
	ErrCode   uint32            `json:"err_code"`
	ErrMsg    string            `json:"err_msg"`
	ParamErrs []ErrorParamError `json:"param_errs,omitempty"`
}

// ErrorParamError names a parameter that caused the error.
type ErrorParamError struct {
	ParamPath string `json:"param_path"`
	ErrCode   uint32 `json:"err_code"`
	ErrMsg    string `json:"err_msg"`
}

func (Error) MsgType() MsgType   { return MsgTypeError }
func (Error) memberName() string { return "error" }

func (e Error) marshal() []byte {
	var b []byte
	b = appendFixed32(b, 1, e.ErrCode)
	b = appendString(b, 2, e.ErrMsg)
	for _, p := range e.ParamErrs {
		var m []byte
		m = appendString(m, 1, p.ParamPath)
		m = appendFixed32(m, 2, p.ErrCode)
		m = appendString(m, 3, p.ErrMsg)
		b = appendMessage(b, 3, m)
	}
	return b
}

func parseError(b []byte) (Error, error) {
	var e Error
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			e.ErrCode, err = f.fixed32()
		case 2:
			e.ErrMsg, err = f.str()
		case 3:
			err = addSub(&e.ParamErrs, f, parseErrorParamError)
		}
		return err
	})
	return e, err
}

func parseErrorParamError(b []byte) (ErrorParamError, error) {
	var p ErrorParamError
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			p.ParamPath, err = f.str()
		case 2:
			p.ErrCode, err = f.fixed32()
		case 3:
			p.ErrMsg, err = f.str()
		}
		return err
	})
	return p, err
}

// MarshalJSON fills in the registry text when no message was supplied.
func (e Error) MarshalJSON() ([]byte, error) {
	type plain Error
	p := plain(e)
	p.ErrMsg = errcode.Message(e.ErrCode, e.ErrMsg)
	return json.Marshal(p)
}

// MarshalJSON fills in the registry text when no message was supplied.
func (p ErrorParamError) MarshalJSON() ([]byte, error) {
	type plain ErrorParamError
	q := plain(p)
	q.ErrMsg = errcode.Message(p.ErrCode, p.ErrMsg)
	return json.Marshal(q)
}
