package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
)

// Get requests the values of parameters.
//
// Wire encoding:
//
//	1: param_paths  repeated string
//	2: max_depth    fixed32
type Get struct {
	ParamPaths []string `json:"param_paths,omitempty"`
	MaxDepth   uint32   `json:"max_depth"`
}

// GetResp answers a Get with one result per requested path.
type GetResp struct {
	ReqPathResults []GetReqPathResult `json:"req_path_results,omitempty"`
}

// GetReqPathResult is the outcome for one requested path. A non-zero
// ErrCode marks a failed path.
//
// Wire encoding:
//
//	1: requested_path         string
//	2: err_code               fixed32
//	3: err_msg                string
//	4: resolved_path_results  repeated ResolvedPathResult
type GetReqPathResult struct {
	RequestedPath       string               `json:"requested_path"`
	ErrCode             uint32               `json:"err_code"`
	ErrMsg              string               `json:"err_msg"`
	ResolvedPathResults []ResolvedPathResult `json:"resolved_path_results,omitempty"`
}

// ResolvedPathResult holds the parameters of one object matched by a
// requested path.
type ResolvedPathResult struct {
	ResolvedPath string            `json:"resolved_path"`
	ResultParams map[string]string `json:"result_params,omitempty"`
}

func (Get) MsgType() MsgType     { return MsgTypeGet }
func (GetResp) MsgType() MsgType { return MsgTypeGetResp }

func (Get) memberName() string     { return "get" }
func (GetResp) memberName() string { return "get_resp" }

func (g Get) marshal() []byte {
	var b []byte
	b = appendStrings(b, 1, g.ParamPaths)
	b = appendFixed32(b, 2, g.MaxDepth)
	return b
}

func (g GetResp) marshal() []byte {
	var b []byte
	for _, r := range g.ReqPathResults {
		b = appendMessage(b, 1, r.marshal())
	}
	return b
}

func (r GetReqPathResult) marshal() []byte {
	var b []byte
	b = appendString(b, 1, r.RequestedPath)
	b = appendFixed32(b, 2, r.ErrCode)
	b = appendString(b, 3, r.ErrMsg)
	for _, res := range r.ResolvedPathResults {
		b = appendMessage(b, 4, res.marshal())
	}
	return b
}

func (r ResolvedPathResult) marshal() []byte {
	var b []byte
	b = appendString(b, 1, r.ResolvedPath)
	b = appendStringMap(b, 2, r.ResultParams)
	return b
}

func parseGet(b []byte) (Get, error) {
	var g Get
	err := walkFields(b, func(f field) error {
		switch f.num {
		case 1:
			return f.addString(&g.ParamPaths)
		case 2:
			var err error
			g.MaxDepth, err = f.fixed32()
			return err
		}
		return nil
	})
	return g, err
}

func parseGetResp(b []byte) (GetResp, error) {
	var g GetResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&g.ReqPathResults, f, parseGetReqPathResult)
		}
		return nil
	})
	return g, err
}

func parseGetReqPathResult(b []byte) (GetReqPathResult, error) {
	var r GetReqPathResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.RequestedPath, err = f.str()
		case 2:
			r.ErrCode, err = f.fixed32()
		case 3:
			r.ErrMsg, err = f.str()
		case 4:
			err = addSub(&r.ResolvedPathResults, f, parseResolvedPathResult)
		}
		return err
	})
	return r, err
}

func parseResolvedPathResult(b []byte) (ResolvedPathResult, error) {
	var r ResolvedPathResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.ResolvedPath, err = f.str()
		case 2:
			err = f.mapEntry(&r.ResultParams)
		}
		return err
	})
	return r, err
}

// MarshalJSON fills in the registry text for failed paths without a message.
func (r GetReqPathResult) MarshalJSON() ([]byte, error) {
	type plain GetReqPathResult
	p := plain(r)
	p.ErrMsg = errcode.Message(r.ErrCode, r.ErrMsg)
	return json.Marshal(p)
}
