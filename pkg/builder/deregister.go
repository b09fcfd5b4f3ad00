package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// DeregisterBuilder builds a Deregister request.
type DeregisterBuilder struct {
	d usp.Deregister
}

// NewDeregisterBuilder returns an empty DeregisterBuilder.
func NewDeregisterBuilder() *DeregisterBuilder {
	return &DeregisterBuilder{}
}

// WithPaths sets the paths to deregister. An empty path removes every
// registration of the sender.
func (b *DeregisterBuilder) WithPaths(paths []string) *DeregisterBuilder {
	b.d.Paths = cloneSlice(paths)
	return b
}

// Build returns the Deregister; no field is required.
func (b *DeregisterBuilder) Build() (usp.Deregister, error) {
	return b.d, nil
}

// DeregisterRespBuilder builds a DeregisterResp.
type DeregisterRespBuilder struct {
	r usp.DeregisterResp
}

// NewDeregisterRespBuilder returns an empty DeregisterRespBuilder.
func NewDeregisterRespBuilder() *DeregisterRespBuilder {
	return &DeregisterRespBuilder{}
}

// WithDeregisteredPathResults sets deregistered_path_results.
func (b *DeregisterRespBuilder) WithDeregisteredPathResults(results []usp.DeregisteredPathResult) *DeregisterRespBuilder {
	b.r.DeregisteredPathResults = cloneSlice(results)
	return b
}

// Build returns the DeregisterResp. It never fails.
func (b *DeregisterRespBuilder) Build() (usp.DeregisterResp, error) {
	return b.r, nil
}

// DeregisteredPathResultBuilder builds the outcome for one path.
type DeregisteredPathResultBuilder struct {
	r usp.DeregisteredPathResult
}

// NewDeregisteredPathResultBuilder starts the result for requestedPath.
func NewDeregisteredPathResultBuilder(requestedPath string) *DeregisteredPathResultBuilder {
	return &DeregisteredPathResultBuilder{r: usp.DeregisteredPathResult{RequestedPath: requestedPath}}
}

// SetFailure marks the path as not deregistered.
func (b *DeregisteredPathResultBuilder) SetFailure(code int64, msg string) *DeregisteredPathResultBuilder {
	b.r.OperStatus = usp.OperationFailure{ErrCode: errcode.Normalize(code), ErrMsg: msg}
	return b
}

// SetSuccess lists the paths that were removed.
func (b *DeregisteredPathResultBuilder) SetSuccess(deregisteredPaths []string) *DeregisteredPathResultBuilder {
	b.r.OperStatus = usp.DeregisterOperationSuccess{DeregisteredPath: cloneSlice(deregisteredPaths)}
	return b
}

// Build requires an outcome.
func (b *DeregisteredPathResultBuilder) Build() (usp.DeregisteredPathResult, error) {
	if b.r.OperStatus == nil {
		return usp.DeregisteredPathResult{}, missing("DeregisteredPathResult", "oper_status")
	}
	return b.r, nil
}
