package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
)

// GetInstances requests the instances of multi-instance objects.
//
// Wire encoding:
//
//	1: obj_paths         repeated string
//	2: first_level_only  bool
type GetInstances struct {
	ObjPaths       []string `json:"obj_paths,omitempty"`
	FirstLevelOnly bool     `json:"first_level_only"`
}

// GetInstancesResp answers a GetInstances with one result per requested path.
type GetInstancesResp struct {
	ReqPathResults []GetInstancesReqPathResult `json:"req_path_results,omitempty"`
}

// GetInstancesReqPathResult lists the instances found below one requested
// path.
//
// Wire encoding:
//
//	1: requested_path  string
//	2: err_code        fixed32
//	3: err_msg         string
//	4: curr_insts      repeated CurrInstance
type GetInstancesReqPathResult struct {
	RequestedPath string         `json:"requested_path"`
	ErrCode       uint32         `json:"err_code"`
	ErrMsg        string         `json:"err_msg"`
	CurrInsts     []CurrInstance `json:"curr_insts,omitempty"`
}

// CurrInstance is one existing object instance and its unique keys.
type CurrInstance struct {
	InstantiatedObjPath string            `json:"instantiated_obj_path"`
	UniqueKeys          map[string]string `json:"unique_keys,omitempty"`
}

func (GetInstances) MsgType() MsgType     { return MsgTypeGetInstances }
func (GetInstancesResp) MsgType() MsgType { return MsgTypeGetInstancesResp }

func (GetInstances) memberName() string     { return "get_instances" }
func (GetInstancesResp) memberName() string { return "get_instances_resp" }

func (g GetInstances) marshal() []byte {
	var b []byte
	b = appendStrings(b, 1, g.ObjPaths)
	b = appendBool(b, 2, g.FirstLevelOnly)
	return b
}

func (g GetInstancesResp) marshal() []byte {
	var b []byte
	for _, r := range g.ReqPathResults {
		b = appendMessage(b, 1, r.marshal())
	}
	return b
}

func (r GetInstancesReqPathResult) marshal() []byte {
	var b []byte
	b = appendString(b, 1, r.RequestedPath)
	b = appendFixed32(b, 2, r.ErrCode)
	b = appendString(b, 3, r.ErrMsg)
	for _, inst := range r.CurrInsts {
		var m []byte
		m = appendString(m, 1, inst.InstantiatedObjPath)
		m = appendStringMap(m, 2, inst.UniqueKeys)
		b = appendMessage(b, 4, m)
	}
	return b
}

func parseGetInstances(b []byte) (GetInstances, error) {
	var g GetInstances
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			err = f.addString(&g.ObjPaths)
		case 2:
			g.FirstLevelOnly, err = f.boolean()
		}
		return err
	})
	return g, err
}

func parseGetInstancesResp(b []byte) (GetInstancesResp, error) {
	var g GetInstancesResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&g.ReqPathResults, f, parseGetInstancesReqPathResult)
		}
		return nil
	})
	return g, err
}

func parseGetInstancesReqPathResult(b []byte) (GetInstancesReqPathResult, error) {
	var r GetInstancesReqPathResult
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
			err = addSub(&r.CurrInsts, f, parseCurrInstance)
		}
		return err
	})
	return r, err
}

func parseCurrInstance(b []byte) (CurrInstance, error) {
	var c CurrInstance
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			c.InstantiatedObjPath, err = f.str()
		case 2:
			err = f.mapEntry(&c.UniqueKeys)
		}
		return err
	})
	return c, err
}

// MarshalJSON fills in the registry text for failed paths without a message.
func (r GetInstancesReqPathResult) MarshalJSON() ([]byte, error) {
	type plain GetInstancesReqPathResult
	p := plain(r)
	p.ErrMsg = errcode.Message(r.ErrCode, r.ErrMsg)
	return json.Marshal(p)
}
