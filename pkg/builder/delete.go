package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// DeleteBuilder builds a Delete request.
type DeleteBuilder struct {
	d usp.Delete
}

// NewDeleteBuilder returns an empty DeleteBuilder.
func NewDeleteBuilder() *DeleteBuilder {
	return &DeleteBuilder{}
}

// WithAllowPartial lets the agent delete some objects when others fail.
func (b *DeleteBuilder) WithAllowPartial(v bool) *DeleteBuilder {
	b.d.AllowPartial = v
	return b
}

// WithObjPaths sets the object instance paths to delete.
func (b *DeleteBuilder) WithObjPaths(paths []string) *DeleteBuilder {
	b.d.ObjPaths = cloneSlice(paths)
	return b
}

// Build returns the Delete.
func (b *DeleteBuilder) Build() (usp.Delete, error) {
	return b.d, nil
}

// DeleteRespBuilder builds a DeleteResp.
type DeleteRespBuilder struct {
	r usp.DeleteResp
}

// NewDeleteRespBuilder returns an empty DeleteRespBuilder.
func NewDeleteRespBuilder() *DeleteRespBuilder {
	return &DeleteRespBuilder{}
}

// WithDeletedObjResults sets deleted_obj_results.
func (b *DeleteRespBuilder) WithDeletedObjResults(results []usp.DeletedObjectResult) *DeleteRespBuilder {
	b.r.DeletedObjResults = cloneSlice(results)
	return b
}

// Build returns the built DeleteResp.
func (b *DeleteRespBuilder) Build() (usp.DeleteResp, error) {
	return b.r, nil
}

// DeletedObjectResultBuilder builds the outcome for one requested path.
// Either SetFailure or SetSuccess must be called.
type DeletedObjectResultBuilder struct {
	r usp.DeletedObjectResult
}

// NewDeletedObjectResultBuilder starts the result for requestedPath.
func NewDeletedObjectResultBuilder(requestedPath string) *DeletedObjectResultBuilder {
	return &DeletedObjectResultBuilder{r: usp.DeletedObjectResult{RequestedPath: requestedPath}}
}

// SetFailure marks the deletion as failed.
func (b *DeletedObjectResultBuilder) SetFailure(code int64, msg string) *DeletedObjectResultBuilder {
	b.r.OperStatus = usp.OperationFailure{ErrCode: errcode.Normalize(code), ErrMsg: msg}
	return b
}

// SetSuccess lists the deleted instances and, built with UnaffectedPathErr,
// the ones left in place.
func (b *DeletedObjectResultBuilder) SetSuccess(affectedPaths []string, unaffected []usp.UnaffectedPathError) *DeletedObjectResultBuilder {
	b.r.OperStatus = usp.DeleteOperationSuccess{
		AffectedPaths:      cloneSlice(affectedPaths),
		UnaffectedPathErrs: cloneSlice(unaffected),
	}
	return b
}

// Build fails with ErrMissingField when neither SetFailure nor SetSuccess
// was called.
func (b *DeletedObjectResultBuilder) Build() (usp.DeletedObjectResult, error) {
	if b.r.OperStatus == nil {
		return usp.DeletedObjectResult{}, missing("DeletedObjectResult", "oper_status")
	}
	return b.r, nil
}
