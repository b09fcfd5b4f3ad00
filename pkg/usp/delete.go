package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
)

// Delete removes object instances.
//
// Wire encoding:
//
//	1: allow_partial  bool
//	2: obj_paths      repeated string
type Delete struct {
	AllowPartial bool     `json:"allow_partial"`
	ObjPaths     []string `json:"obj_paths,omitempty"`
}

// DeleteResp answers a Delete with one result per requested path.
type DeleteResp struct {
	DeletedObjResults []DeletedObjectResult `json:"deleted_obj_results,omitempty"`
}

// DeletedObjectResult is the outcome for one requested object path.
type DeletedObjectResult struct {
	RequestedPath string           `json:"requested_path"`
	OperStatus    DeleteOperStatus `json:"-"`
}

// DeleteOperStatus is either OperationFailure or DeleteOperationSuccess.
type DeleteOperStatus interface {
	operStatus
	isDeleteOperStatus()
}

// DeleteOperationSuccess lists the deleted instances and the ones that
// could not be deleted.
type DeleteOperationSuccess struct {
	AffectedPaths      []string              `json:"affected_paths,omitempty"`
	UnaffectedPathErrs []UnaffectedPathError `json:"unaffected_path_errs,omitempty"`
}

// UnaffectedPathError reports an instance that was not deleted.
type UnaffectedPathError struct {
	UnaffectedPath string `json:"unaffected_path"`
	ErrCode        uint32 `json:"err_code"`
	ErrMsg         string `json:"err_msg"`
}

func (Delete) MsgType() MsgType     { return MsgTypeDelete }
func (DeleteResp) MsgType() MsgType { return MsgTypeDeleteResp }

func (Delete) memberName() string                 { return "delete" }
func (DeleteResp) memberName() string             { return "delete_resp" }
func (DeleteOperationSuccess) memberName() string { return "oper_success" }

func (DeleteOperationSuccess) isDeleteOperStatus() {}

func (d Delete) marshal() []byte {
	var b []byte
	b = appendBool(b, 1, d.AllowPartial)
	b = appendStrings(b, 2, d.ObjPaths)
	return b
}

func (d DeleteResp) marshal() []byte {
	var b []byte
	for _, r := range d.DeletedObjResults {
		var m []byte
		m = appendString(m, 1, r.RequestedPath)
		m = appendOperStatus(m, 2, r.OperStatus)
		b = appendMessage(b, 1, m)
	}
	return b
}

func (o DeleteOperationSuccess) marshal() []byte {
	var b []byte
	b = appendStrings(b, 1, o.AffectedPaths)
	for _, e := range o.UnaffectedPathErrs {
		var m []byte
		m = appendString(m, 1, e.UnaffectedPath)
		m = appendFixed32(m, 2, e.ErrCode)
		m = appendString(m, 3, e.ErrMsg)
		b = appendMessage(b, 2, m)
	}
	return b
}

func parseDelete(b []byte) (Delete, error) {
	var d Delete
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			d.AllowPartial, err = f.boolean()
		case 2:
			err = f.addString(&d.ObjPaths)
		}
		return err
	})
	return d, err
}

func parseDeleteResp(b []byte) (DeleteResp, error) {
	var d DeleteResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&d.DeletedObjResults, f, parseDeletedObjectResult)
		}
		return nil
	})
	return d, err
}

func parseDeletedObjectResult(b []byte) (DeletedObjectResult, error) {
	var r DeletedObjectResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.RequestedPath, err = f.str()
		case 2:
			r.OperStatus, err = sub(f, func(b []byte) (DeleteOperStatus, error) {
				return parseOperStatus[DeleteOperStatus](b, parseOperationFailure, parseDeleteOperationSuccess)
			})
		}
		return err
	})
	return r, err
}

func parseDeleteOperationSuccess(b []byte) (DeleteOperationSuccess, error) {
	var o DeleteOperationSuccess
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			err = f.addString(&o.AffectedPaths)
		case 2:
			err = addSub(&o.UnaffectedPathErrs, f, parseUnaffectedPathError)
		}
		return err
	})
	return o, err
}

func parseUnaffectedPathError(b []byte) (UnaffectedPathError, error) {
	var e UnaffectedPathError
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			e.UnaffectedPath, err = f.str()
		case 2:
			e.ErrCode, err = f.fixed32()
		case 3:
			e.ErrMsg, err = f.str()
		}
		return err
	})
	return e, err
}

// MarshalJSON renders oper_status as a tagged object.
func (r DeletedObjectResult) MarshalJSON() ([]byte, error) {
	type plain DeletedObjectResult
	return json.Marshal(struct {
		plain
		OperStatus any `json:"oper_status"`
	}{plain(r), oneofJSON(r.OperStatus)})
}

// MarshalJSON fills in the registry text when no message was supplied.
func (e UnaffectedPathError) MarshalJSON() ([]byte, error) {
	type plain UnaffectedPathError
	p := plain(e)
	p.ErrMsg = errcode.Message(e.ErrCode, e.ErrMsg)
	return json.Marshal(p)
}
