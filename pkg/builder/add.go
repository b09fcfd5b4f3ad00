package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// AddBuilder builds an Add request.
type AddBuilder struct {
	a usp.Add
}

// NewAddBuilder returns an Add builder with allow_partial off.
func NewAddBuilder() *AddBuilder {
	return &AddBuilder{}
}

// WithAllowPartial lets the agent create some objects when others fail.
func (b *AddBuilder) WithAllowPartial(v bool) *AddBuilder {
	b.a.AllowPartial = v
	return b
}

// WithCreateObjs sets the objects to create.
func (b *AddBuilder) WithCreateObjs(objs []usp.CreateObject) *AddBuilder {
	b.a.CreateObjs = cloneSlice(objs)
	return b
}

// Build returns the Add.
func (b *AddBuilder) Build() (usp.Add, error) {
	return b.a, nil
}

// CreateObjectBuilder builds one create_objs entry.
type CreateObjectBuilder struct {
	o usp.CreateObject
}

// NewCreateObjectBuilder starts an object to create under objPath.
func NewCreateObjectBuilder(objPath string) *CreateObjectBuilder {
	return &CreateObjectBuilder{o: usp.CreateObject{ObjPath: objPath}}
}

// AddParamSetting appends an initial parameter value. With required set the
// whole object fails if the value cannot be applied.
func (b *CreateObjectBuilder) AddParamSetting(param, value string, required bool) *CreateObjectBuilder {
	b.o.ParamSettings = append(b.o.ParamSettings, usp.ParamSetting{Param: param, Value: value, Required: required})
	return b
}

// Build returns the built CreateObject.
func (b *CreateObjectBuilder) Build() (usp.CreateObject, error) {
	o := b.o
	o.ParamSettings = cloneSlice(o.ParamSettings)
	return o, nil
}

// AddRespBuilder builds an AddResp.
type AddRespBuilder struct {
	r usp.AddResp
}

// NewAddRespBuilder returns an empty AddRespBuilder.
func NewAddRespBuilder() *AddRespBuilder {
	return &AddRespBuilder{}
}

// WithCreatedObjResults sets one result per CreateObject.
func (b *AddRespBuilder) WithCreatedObjResults(results []usp.CreatedObjectResult) *AddRespBuilder {
	b.r.CreatedObjResults = cloneSlice(results)
	return b
}

// Build returns the AddResp; no field is required.
func (b *AddRespBuilder) Build() (usp.AddResp, error) {
	return b.r, nil
}

// CreatedObjectResultBuilder builds the outcome for one requested object.
// Either SetFailure or SetSuccess must be called.
type CreatedObjectResultBuilder struct {
	r usp.CreatedObjectResult
}

// NewCreatedObjectResultBuilder starts the result for requestedPath. Either
// SetFailure or SetSuccess must be called before Build.
func NewCreatedObjectResultBuilder(requestedPath string) *CreatedObjectResultBuilder {
	return &CreatedObjectResultBuilder{r: usp.CreatedObjectResult{RequestedPath: requestedPath}}
}

// SetFailure marks the creation as failed.
func (b *CreatedObjectResultBuilder) SetFailure(code int64, msg string) *CreatedObjectResultBuilder {
	b.r.OperStatus = usp.OperationFailure{ErrCode: errcode.Normalize(code), ErrMsg: msg}
	return b
}

// SetSuccess records the created instance. Use AddOperationSuccessBuilder
// to assemble s.
func (b *CreatedObjectResultBuilder) SetSuccess(s usp.AddOperationSuccess) *CreatedObjectResultBuilder {
	s.ParamErrs = cloneSlice(s.ParamErrs)
	s.UniqueKeys = cloneMap(s.UniqueKeys)
	b.r.OperStatus = s
	return b
}

// Build fails with ErrMissingField when no outcome was set.
func (b *CreatedObjectResultBuilder) Build() (usp.CreatedObjectResult, error) {
	if b.r.OperStatus == nil {
		return usp.CreatedObjectResult{}, missing("CreatedObjectResult", "oper_status")
	}
	return b.r, nil
}

// AddOperationSuccessBuilder builds the success branch of an Add result.
type AddOperationSuccessBuilder struct {
	s usp.AddOperationSuccess
}

// NewAddOperationSuccessBuilder describes the instance created at
// instantiatedPath.
func NewAddOperationSuccessBuilder(instantiatedPath string) *AddOperationSuccessBuilder {
	return &AddOperationSuccessBuilder{s: usp.AddOperationSuccess{InstantiatedPath: instantiatedPath}}
}

// AddParamErr records a parameter that could not be set on the new instance.
func (b *AddOperationSuccessBuilder) AddParamErr(param string, code int64, msg string) *AddOperationSuccessBuilder {
	b.s.ParamErrs = append(b.s.ParamErrs, ParamErr(param, code, msg))
	return b
}

// WithUniqueKeys sets the unique key values of the new instance.
func (b *AddOperationSuccessBuilder) WithUniqueKeys(keys map[string]string) *AddOperationSuccessBuilder {
	b.s.UniqueKeys = cloneMap(keys)
	return b
}

// Build returns the AddOperationSuccess. It never fails.
func (b *AddOperationSuccessBuilder) Build() (usp.AddOperationSuccess, error) {
	s := b.s
	s.ParamErrs = cloneSlice(s.ParamErrs)
	return s, nil
}
