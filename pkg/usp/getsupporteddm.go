package usp

import (
	"encoding/json"

	"github.com/usp-protocol/usp-go/pkg/errcode"
)

// GetSupportedDM requests the supported data model below object paths.
//
// Wire encoding:
//
//	1: obj_paths               repeated string
//	2: first_level_only        bool
//	3: return_commands         bool
//	4: return_events           bool
//	5: return_params           bool
//	6: return_unique_key_sets  bool
type GetSupportedDM struct {
	ObjPaths            []string `json:"obj_paths,omitempty"`
	FirstLevelOnly      bool     `json:"first_level_only"`
	ReturnCommands      bool     `json:"return_commands"`
	ReturnEvents        bool     `json:"return_events"`
	ReturnParams        bool     `json:"return_params"`
	ReturnUniqueKeySets bool     `json:"return_unique_key_sets"`
}

// GetSupportedDMResp answers a GetSupportedDM.
type GetSupportedDMResp struct {
	ReqObjResults []RequestedObjectResult `json:"req_obj_results,omitempty"`
}

// RequestedObjectResult describes the supported objects below one requested
// object path.
//
// Wire encoding:
//
//	1: req_obj_path         string
//	2: err_code             fixed32
//	3: err_msg              string
//	4: data_model_inst_uri  string
//	5: supported_objs       repeated SupportedObjectResult
type RequestedObjectResult struct {
	ReqObjPath       string                  `json:"req_obj_path"`
	ErrCode          uint32                  `json:"err_code"`
	ErrMsg           string                  `json:"err_msg"`
	DataModelInstURI string                  `json:"data_model_inst_uri"`
	SupportedObjs    []SupportedObjectResult `json:"supported_objs,omitempty"`
}

// SupportedObjectResult describes one supported object.
//
// Wire encoding:
//
//	1: supported_obj_path  string
//	2: access              ObjAccessType
//	3: is_multi_instance   bool
//	4: supported_commands  repeated SupportedCommandResult
//	5: supported_events    repeated SupportedEventResult
//	6: supported_params    repeated SupportedParamResult
//	7: divergent_paths     repeated string
//	8: unique_key_sets     repeated SupportedUniqueKeySet
type SupportedObjectResult struct {
	SupportedObjPath  string                   `json:"supported_obj_path"`
	Access            ObjAccessType            `json:"access"`
	IsMultiInstance   bool                     `json:"is_multi_instance"`
	SupportedCommands []SupportedCommandResult `json:"supported_commands,omitempty"`
	SupportedEvents   []SupportedEventResult   `json:"supported_events,omitempty"`
	SupportedParams   []SupportedParamResult   `json:"supported_params,omitempty"`
	DivergentPaths    []string                 `json:"divergent_paths,omitempty"`
	UniqueKeySets     []SupportedUniqueKeySet  `json:"unique_key_sets,omitempty"`
}

// SupportedParamResult describes one supported parameter.
type SupportedParamResult struct {
	ParamName   string          `json:"param_name"`
	Access      ParamAccessType `json:"access"`
	ValueType   ParamValueType  `json:"value_type"`
	ValueChange ValueChangeType `json:"value_change"`
}

// SupportedCommandResult describes one supported command.
type SupportedCommandResult struct {
	CommandName    string   `json:"command_name"`
	InputArgNames  []string `json:"input_arg_names,omitempty"`
	OutputArgNames []string `json:"output_arg_names,omitempty"`
	CommandType    CmdType  `json:"command_type"`
}

// SupportedEventResult describes one supported event.
type SupportedEventResult struct {
	EventName string   `json:"event_name"`
	ArgNames  []string `json:"arg_names,omitempty"`
}

// SupportedUniqueKeySet is one set of parameters that uniquely identifies
// an instance.
type SupportedUniqueKeySet struct {
	KeyNames []string `json:"key_names,omitempty"`
}

func (GetSupportedDM) MsgType() MsgType     { return MsgTypeGetSupportedDM }
func (GetSupportedDMResp) MsgType() MsgType { return MsgTypeGetSupportedDMResp }

func (GetSupportedDM) memberName() string     { return "get_supported_dm" }
func (GetSupportedDMResp) memberName() string { return "get_supported_dm_resp" }

func (g GetSupportedDM) marshal() []byte {
	var b []byte
	b = appendStrings(b, 1, g.ObjPaths)
	b = appendBool(b, 2, g.FirstLevelOnly)
	b = appendBool(b, 3, g.ReturnCommands)
	b = appendBool(b, 4, g.ReturnEvents)
	b = appendBool(b, 5, g.ReturnParams)
	b = appendBool(b, 6, g.ReturnUniqueKeySets)
	return b
}

func (g GetSupportedDMResp) marshal() []byte {
	var b []byte
	for _, r := range g.ReqObjResults {
		b = appendMessage(b, 1, r.marshal())
	}
	return b
}

func (r RequestedObjectResult) marshal() []byte {
	var b []byte
	b = appendString(b, 1, r.ReqObjPath)
	b = appendFixed32(b, 2, r.ErrCode)
	b = appendString(b, 3, r.ErrMsg)
	b = appendString(b, 4, r.DataModelInstURI)
	for _, o := range r.SupportedObjs {
		b = appendMessage(b, 5, o.marshal())
	}
	return b
}

func (o SupportedObjectResult) marshal() []byte {
	var b []byte
	b = appendString(b, 1, o.SupportedObjPath)
	b = appendEnum(b, 2, int32(o.Access))
	b = appendBool(b, 3, o.IsMultiInstance)
	for _, c := range o.SupportedCommands {
		var m []byte
		m = appendString(m, 1, c.CommandName)
		m = appendStrings(m, 2, c.InputArgNames)
		m = appendStrings(m, 3, c.OutputArgNames)
		m = appendEnum(m, 4, int32(c.CommandType))
		b = appendMessage(b, 4, m)
	}
	for _, e := range o.SupportedEvents {
		var m []byte
		m = appendString(m, 1, e.EventName)
		m = appendStrings(m, 2, e.ArgNames)
		b = appendMessage(b, 5, m)
	}
	for _, p := range o.SupportedParams {
		var m []byte
		m = appendString(m, 1, p.ParamName)
		m = appendEnum(m, 2, int32(p.Access))
		m = appendEnum(m, 3, int32(p.ValueType))
		m = appendEnum(m, 4, int32(p.ValueChange))
		b = appendMessage(b, 6, m)
	}
	b = appendStrings(b, 7, o.DivergentPaths)
	for _, k := range o.UniqueKeySets {
		b = appendMessage(b, 8, appendStrings(nil, 1, k.KeyNames))
	}
	return b
}

func parseGetSupportedDM(b []byte) (GetSupportedDM, error) {
	var g GetSupportedDM
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			err = f.addString(&g.ObjPaths)
		case 2:
			g.FirstLevelOnly, err = f.boolean()
		case 3:
			g.ReturnCommands, err = f.boolean()
		case 4:
			g.ReturnEvents, err = f.boolean()
		case 5:
			g.ReturnParams, err = f.boolean()
		case 6:
			g.ReturnUniqueKeySets, err = f.boolean()
		}
		return err
	})
	return g, err
}

func parseGetSupportedDMResp(b []byte) (GetSupportedDMResp, error) {
	var g GetSupportedDMResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&g.ReqObjResults, f, parseRequestedObjectResult)
		}
		return nil
	})
	return g, err
}

func parseRequestedObjectResult(b []byte) (RequestedObjectResult, error) {
	var r RequestedObjectResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.ReqObjPath, err = f.str()
		case 2:
			r.ErrCode, err = f.fixed32()
		case 3:
			r.ErrMsg, err = f.str()
		case 4:
			r.DataModelInstURI, err = f.str()
		case 5:
			err = addSub(&r.SupportedObjs, f, parseSupportedObjectResult)
		}
		return err
	})
	return r, err
}

func parseSupportedObjectResult(b []byte) (SupportedObjectResult, error) {
	var o SupportedObjectResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.SupportedObjPath, err = f.str()
		case 2:
			var v int32
			v, err = f.enum()
			o.Access = ObjAccessType(v)
		case 3:
			o.IsMultiInstance, err = f.boolean()
		case 4:
			err = addSub(&o.SupportedCommands, f, parseSupportedCommandResult)
		case 5:
			err = addSub(&o.SupportedEvents, f, parseSupportedEventResult)
		case 6:
			err = addSub(&o.SupportedParams, f, parseSupportedParamResult)
		case 7:
			err = f.addString(&o.DivergentPaths)
		case 8:
			err = addSub(&o.UniqueKeySets, f, parseSupportedUniqueKeySet)
		}
		return err
	})
	return o, err
}

func parseSupportedCommandResult(b []byte) (SupportedCommandResult, error) {
	var c SupportedCommandResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			c.CommandName, err = f.str()
		case 2:
			err = f.addString(&c.InputArgNames)
		case 3:
			err = f.addString(&c.OutputArgNames)
		case 4:
			var v int32
			v, err = f.enum()
			c.CommandType = CmdType(v)
		}
		return err
	})
	return c, err
}

func parseSupportedEventResult(b []byte) (SupportedEventResult, error) {
	var e SupportedEventResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			e.EventName, err = f.str()
		case 2:
			err = f.addString(&e.ArgNames)
		}
		return err
	})
	return e, err
}

func parseSupportedParamResult(b []byte) (SupportedParamResult, error) {
	var p SupportedParamResult
	err := walkFields(b, func(f field) error {
		var err error
		var v int32
		switch f.num {
		case 1:
			p.ParamName, err = f.str()
		case 2:
			v, err = f.enum()
			p.Access = ParamAccessType(v)
		case 3:
			v, err = f.enum()
			p.ValueType = ParamValueType(v)
		case 4:
			v, err = f.enum()
			p.ValueChange = ValueChangeType(v)
		}
		return err
	})
	return p, err
}

func parseSupportedUniqueKeySet(b []byte) (SupportedUniqueKeySet, error) {
	var k SupportedUniqueKeySet
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return f.addString(&k.KeyNames)
		}
		return nil
	})
	return k, err
}

// MarshalJSON fills in the registry text for failed paths without a message.
func (r RequestedObjectResult) MarshalJSON() ([]byte, error) {
	type plain RequestedObjectResult
	p := plain(r)
	p.ErrMsg = errcode.Message(r.ErrCode, r.ErrMsg)
	return json.Marshal(p)
}
