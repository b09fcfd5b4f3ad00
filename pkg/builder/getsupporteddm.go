package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// GetSupportedDMBuilder builds a GetSupportedDM request.
type GetSupportedDMBuilder struct {
	g usp.GetSupportedDM
}

// NewGetSupportedDMBuilder returns a builder with every return_* flag off.
func NewGetSupportedDMBuilder() *GetSupportedDMBuilder {
	return &GetSupportedDMBuilder{}
}

// WithObjPaths sets obj_paths.
func (b *GetSupportedDMBuilder) WithObjPaths(paths []string) *GetSupportedDMBuilder {
	b.g.ObjPaths = cloneSlice(paths)
	return b
}

// WithFirstLevelOnly sets first_level_only.
func (b *GetSupportedDMBuilder) WithFirstLevelOnly(v bool) *GetSupportedDMBuilder {
	b.g.FirstLevelOnly = v
	return b
}

// WithReturnCommands includes supported commands in the response.
func (b *GetSupportedDMBuilder) WithReturnCommands(v bool) *GetSupportedDMBuilder {
	b.g.ReturnCommands = v
	return b
}

// WithReturnEvents includes supported events in the response.
func (b *GetSupportedDMBuilder) WithReturnEvents(v bool) *GetSupportedDMBuilder {
	b.g.ReturnEvents = v
	return b
}

// WithReturnParams includes supported parameters in the response.
func (b *GetSupportedDMBuilder) WithReturnParams(v bool) *GetSupportedDMBuilder {
	b.g.ReturnParams = v
	return b
}

// WithReturnUniqueKeySets sets return_unique_key_sets.
func (b *GetSupportedDMBuilder) WithReturnUniqueKeySets(v bool) *GetSupportedDMBuilder {
	b.g.ReturnUniqueKeySets = v
	return b
}

// Build returns the GetSupportedDM.
func (b *GetSupportedDMBuilder) Build() (usp.GetSupportedDM, error) {
	return b.g, nil
}

// GetSupportedDMRespBuilder builds a GetSupportedDMResp.
type GetSupportedDMRespBuilder struct {
	r usp.GetSupportedDMResp
}

// NewGetSupportedDMRespBuilder returns an empty GetSupportedDMRespBuilder.
func NewGetSupportedDMRespBuilder() *GetSupportedDMRespBuilder {
	return &GetSupportedDMRespBuilder{}
}

// WithReqObjResults sets one result per requested object path.
func (b *GetSupportedDMRespBuilder) WithReqObjResults(results []usp.RequestedObjectResult) *GetSupportedDMRespBuilder {
	b.r.ReqObjResults = cloneSlice(results)
	return b
}

// Build returns the built GetSupportedDMResp.
func (b *GetSupportedDMRespBuilder) Build() (usp.GetSupportedDMResp, error) {
	return b.r, nil
}

// ReqObjResultBuilder builds the result for one requested object path.
type ReqObjResultBuilder struct {
	r usp.RequestedObjectResult
}

// NewReqObjResultBuilder starts the result for reqObjPath.
func NewReqObjResultBuilder(reqObjPath string) *ReqObjResultBuilder {
	return &ReqObjResultBuilder{r: usp.RequestedObjectResult{ReqObjPath: reqObjPath}}
}

// SetErr marks the path as failed.
func (b *ReqObjResultBuilder) SetErr(code int64, msg string) *ReqObjResultBuilder {
	b.r.ErrCode = errcode.Normalize(code)
	b.r.ErrMsg = msg
	return b
}

// WithDataModelInstURI sets the URI of the data model the object belongs to.
func (b *ReqObjResultBuilder) WithDataModelInstURI(uri string) *ReqObjResultBuilder {
	b.r.DataModelInstURI = uri
	return b
}

// WithSupportedObjs sets supported_objs.
func (b *ReqObjResultBuilder) WithSupportedObjs(objs []usp.SupportedObjectResult) *ReqObjResultBuilder {
	b.r.SupportedObjs = cloneSlice(objs)
	return b
}

// Build returns the RequestedObjectResult; no field is required.
func (b *ReqObjResultBuilder) Build() (usp.RequestedObjectResult, error) {
	return b.r, nil
}

// SupportedObjResultBuilder builds the description of one supported object.
type SupportedObjResultBuilder struct {
	o usp.SupportedObjectResult
}

// NewSupportedObjResultBuilder describes the supported object at
// supportedObjPath.
func NewSupportedObjResultBuilder(supportedObjPath string) *SupportedObjResultBuilder {
	return &SupportedObjResultBuilder{o: usp.SupportedObjectResult{SupportedObjPath: supportedObjPath}}
}

// SetAccess sets the object access from its enum name, e.g. "OBJ_ADD_DELETE".
func (b *SupportedObjResultBuilder) SetAccess(name string) (*SupportedObjResultBuilder, error) {
	v, err := usp.ParseObjAccessType(name)
	if err != nil {
		return nil, invalid("SupportedObjectResult", err)
	}
	b.o.Access = v
	return b, nil
}

// WithMultiInstance marks the object as a multi-instance table.
func (b *SupportedObjResultBuilder) WithMultiInstance(v bool) *SupportedObjResultBuilder {
	b.o.IsMultiInstance = v
	return b
}

// WithSupportedCommands sets supported_commands.
func (b *SupportedObjResultBuilder) WithSupportedCommands(cmds []usp.SupportedCommandResult) *SupportedObjResultBuilder {
	b.o.SupportedCommands = cloneSlice(cmds)
	return b
}

// WithSupportedEvents sets supported_events.
func (b *SupportedObjResultBuilder) WithSupportedEvents(events []usp.SupportedEventResult) *SupportedObjResultBuilder {
	b.o.SupportedEvents = cloneSlice(events)
	return b
}

// WithSupportedParams sets supported_params.
func (b *SupportedObjResultBuilder) WithSupportedParams(params []usp.SupportedParamResult) *SupportedObjResultBuilder {
	b.o.SupportedParams = cloneSlice(params)
	return b
}

// WithDivergentPaths lists instances whose supported data model differs from
// the object's.
func (b *SupportedObjResultBuilder) WithDivergentPaths(paths []string) *SupportedObjResultBuilder {
	b.o.DivergentPaths = cloneSlice(paths)
	return b
}

// AddUniqueKeySet appends one set of unique key parameter names.
func (b *SupportedObjResultBuilder) AddUniqueKeySet(keyNames []string) *SupportedObjResultBuilder {
	b.o.UniqueKeySets = append(b.o.UniqueKeySets, usp.SupportedUniqueKeySet{KeyNames: cloneSlice(keyNames)})
	return b
}

// Build returns the SupportedObjectResult. It never fails.
func (b *SupportedObjResultBuilder) Build() (usp.SupportedObjectResult, error) {
	return b.o, nil
}

// SupportedCommandBuilder builds the description of one command.
type SupportedCommandBuilder struct {
	c usp.SupportedCommandResult
}

// NewSupportedCommandBuilder returns a new SupportedCommandBuilder.
func NewSupportedCommandBuilder(commandName string) *SupportedCommandBuilder {
	return &SupportedCommandBuilder{c: usp.SupportedCommandResult{CommandName: commandName}}
}

// WithInputArgNames sets input_arg_names.
func (b *SupportedCommandBuilder) WithInputArgNames(names []string) *SupportedCommandBuilder {
	b.c.InputArgNames = cloneSlice(names)
	return b
}

// WithOutputArgNames sets output_arg_names.
func (b *SupportedCommandBuilder) WithOutputArgNames(names []string) *SupportedCommandBuilder {
	b.c.OutputArgNames = cloneSlice(names)
	return b
}

// SetCommandType sets the command type from "CMD_UNKNOWN", "CMD_SYNC" or
// "CMD_ASYNC".
func (b *SupportedCommandBuilder) SetCommandType(name string) (*SupportedCommandBuilder, error) {
	v, err := usp.ParseCmdType(name)
	if err != nil {
		return nil, invalid("SupportedCommandResult", err)
	}
	b.c.CommandType = v
	return b, nil
}

// Build returns the SupportedCommandResult.
func (b *SupportedCommandBuilder) Build() (usp.SupportedCommandResult, error) {
	return b.c, nil
}

// SupportedEventBuilder builds the description of one event.
type SupportedEventBuilder struct {
	e usp.SupportedEventResult
}

// NewSupportedEventBuilder returns a new SupportedEventBuilder.
func NewSupportedEventBuilder(eventName string) *SupportedEventBuilder {
	return &SupportedEventBuilder{e: usp.SupportedEventResult{EventName: eventName}}
}

// WithArgNames sets the names of the event arguments.
func (b *SupportedEventBuilder) WithArgNames(names []string) *SupportedEventBuilder {
	b.e.ArgNames = cloneSlice(names)
	return b
}

// Build returns the built SupportedEventResult.
func (b *SupportedEventBuilder) Build() (usp.SupportedEventResult, error) {
	return b.e, nil
}

// SupportedParamBuilder builds the description of one parameter.
type SupportedParamBuilder struct {
	p usp.SupportedParamResult
}

// NewSupportedParamBuilder describes paramName with zero access, value type
// and value change policy until the Set methods say otherwise.
func NewSupportedParamBuilder(paramName string) *SupportedParamBuilder {
	return &SupportedParamBuilder{p: usp.SupportedParamResult{ParamName: paramName}}
}

// SetAccess sets the parameter access, e.g. "PARAM_READ_WRITE".
func (b *SupportedParamBuilder) SetAccess(name string) (*SupportedParamBuilder, error) {
	v, err := usp.ParseParamAccessType(name)
	if err != nil {
		return nil, invalid("SupportedParamResult", err)
	}
	b.p.Access = v
	return b, nil
}

// SetValueType sets the value type, e.g. "PARAM_BOOLEAN".
func (b *SupportedParamBuilder) SetValueType(name string) (*SupportedParamBuilder, error) {
	v, err := usp.ParseParamValueType(name)
	if err != nil {
		return nil, invalid("SupportedParamResult", err)
	}
	b.p.ValueType = v
	return b, nil
}

// SetValueChange sets the value change policy, e.g. "VALUE_CHANGE_ALLOWED".
func (b *SupportedParamBuilder) SetValueChange(name string) (*SupportedParamBuilder, error) {
	v, err := usp.ParseValueChangeType(name)
	if err != nil {
		return nil, invalid("SupportedParamResult", err)
	}
	b.p.ValueChange = v
	return b, nil
}

// Build returns the SupportedParamResult; no field is required.
func (b *SupportedParamBuilder) Build() (usp.SupportedParamResult, error) {
	return b.p, nil
}
