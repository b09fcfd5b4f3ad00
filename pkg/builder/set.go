package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// SetBuilder builds a Set request.
type SetBuilder struct {
	s usp.Set
}

// NewSetBuilder returns an empty SetBuilder.
func NewSetBuilder() *SetBuilder {
	return &SetBuilder{}
}

// WithAllowPartial lets the agent update some objects when others fail.
func (b *SetBuilder) WithAllowPartial(v bool) *SetBuilder {
	b.s.AllowPartial = v
	return b
}

// WithUpdateObjs sets update_objs.
func (b *SetBuilder) WithUpdateObjs(objs []usp.UpdateObject) *SetBuilder {
	b.s.UpdateObjs = cloneSlice(objs)
	return b
}

// Build returns the Set; no field is required.
func (b *SetBuilder) Build() (usp.Set, error) {
	return b.s, nil
}

// UpdateObjectBuilder builds one update_objs entry.
type UpdateObjectBuilder struct {
	o usp.UpdateObject
}

// NewUpdateObjectBuilder starts an update of the objects matching objPath.
func NewUpdateObjectBuilder(objPath string) *UpdateObjectBuilder {
	return &UpdateObjectBuilder{o: usp.UpdateObject{ObjPath: objPath}}
}

// AddParamSetting appends a parameter value. A required setting that fails
// fails the whole object.
func (b *UpdateObjectBuilder) AddParamSetting(param, value string, required bool) *UpdateObjectBuilder {
	b.o.ParamSettings = append(b.o.ParamSettings, usp.ParamSetting{Param: param, Value: value, Required: required})
	return b
}

// Build returns the UpdateObject. It never fails.
func (b *UpdateObjectBuilder) Build() (usp.UpdateObject, error) {
	o := b.o
	o.ParamSettings = cloneSlice(o.ParamSettings)
	return o, nil
}

// SetRespBuilder builds a SetResp.
type SetRespBuilder struct {
	r usp.SetResp
}

// NewSetRespBuilder returns an empty SetRespBuilder.
func NewSetRespBuilder() *SetRespBuilder {
	return &SetRespBuilder{}
}

// WithUpdatedObjResults sets updated_obj_results.
func (b *SetRespBuilder) WithUpdatedObjResults(results []usp.UpdatedObjectResult) *SetRespBuilder {
	b.r.UpdatedObjResults = cloneSlice(results)
	return b
}

// Build returns the SetResp.
func (b *SetRespBuilder) Build() (usp.SetResp, error) {
	return b.r, nil
}

// UpdatedObjectResultBuilder builds the outcome for one requested object.
// Either SetFailure or SetSuccess must be called.
type UpdatedObjectResultBuilder struct {
	r usp.UpdatedObjectResult
}

// NewUpdatedObjectResultBuilder starts the result for requestedPath.
func NewUpdatedObjectResultBuilder(requestedPath string) *UpdatedObjectResultBuilder {
	return &UpdatedObjectResultBuilder{r: usp.UpdatedObjectResult{RequestedPath: requestedPath}}
}

// SetFailure reports a failed update together with the instances that
// could not be changed.
func (b *UpdatedObjectResultBuilder) SetFailure(code int64, msg string, failures []usp.UpdatedInstanceFailure) *UpdatedObjectResultBuilder {
	b.r.OperStatus = usp.SetOperationFailure{
		ErrCode:             errcode.Normalize(code),
		ErrMsg:              msg,
		UpdatedInstFailures: cloneSlice(failures),
	}
	return b
}

// SetSuccess reports the updated instances.
func (b *UpdatedObjectResultBuilder) SetSuccess(results []usp.UpdatedInstanceResult) *UpdatedObjectResultBuilder {
	b.r.OperStatus = usp.SetOperationSuccess{UpdatedInstResults: cloneSlice(results)}
	return b
}

// Build requires SetFailure or SetSuccess.
func (b *UpdatedObjectResultBuilder) Build() (usp.UpdatedObjectResult, error) {
	if b.r.OperStatus == nil {
		return usp.UpdatedObjectResult{}, missing("UpdatedObjectResult", "oper_status")
	}
	return b.r, nil
}

// UpdatedInstanceFailureBuilder builds one failed instance of a Set.
type UpdatedInstanceFailureBuilder struct {
	f usp.UpdatedInstanceFailure
}

// NewUpdatedInstanceFailureBuilder returns a new UpdatedInstanceFailureBuilder.
func NewUpdatedInstanceFailureBuilder(affectedPath string) *UpdatedInstanceFailureBuilder {
	return &UpdatedInstanceFailureBuilder{f: usp.UpdatedInstanceFailure{AffectedPath: affectedPath}}
}

// AddParamErr appends a parameter error.
func (b *UpdatedInstanceFailureBuilder) AddParamErr(param string, code int64, msg string) *UpdatedInstanceFailureBuilder {
	b.f.ParamErrs = append(b.f.ParamErrs, ParamErr(param, code, msg))
	return b
}

// Build returns the built UpdatedInstanceFailure.
func (b *UpdatedInstanceFailureBuilder) Build() (usp.UpdatedInstanceFailure, error) {
	f := b.f
	f.ParamErrs = cloneSlice(f.ParamErrs)
	return f, nil
}

// UpdatedInstanceResultBuilder builds one updated instance of a Set.
type UpdatedInstanceResultBuilder struct {
	r usp.UpdatedInstanceResult
}

// NewUpdatedInstanceResultBuilder returns a new UpdatedInstanceResultBuilder.
func NewUpdatedInstanceResultBuilder(affectedPath string) *UpdatedInstanceResultBuilder {
	return &UpdatedInstanceResultBuilder{r: usp.UpdatedInstanceResult{AffectedPath: affectedPath}}
}

// AddParamErr records a parameter of the instance that was not updated.
func (b *UpdatedInstanceResultBuilder) AddParamErr(param string, code int64, msg string) *UpdatedInstanceResultBuilder {
	b.r.ParamErrs = append(b.r.ParamErrs, ParamErr(param, code, msg))
	return b
}

// WithUpdatedParams sets the new values, keyed by relative parameter path.
func (b *UpdatedInstanceResultBuilder) WithUpdatedParams(params map[string]string) *UpdatedInstanceResultBuilder {
	b.r.UpdatedParams = cloneMap(params)
	return b
}

// Build returns the UpdatedInstanceResult; no field is required.
func (b *UpdatedInstanceResultBuilder) Build() (usp.UpdatedInstanceResult, error) {
	r := b.r
	r.ParamErrs = cloneSlice(r.ParamErrs)
	return r, nil
}
