package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// GetInstancesBuilder builds a GetInstances request.
type GetInstancesBuilder struct {
	g usp.GetInstances
}

// NewGetInstancesBuilder returns an empty GetInstancesBuilder.
func NewGetInstancesBuilder() *GetInstancesBuilder {
	return &GetInstancesBuilder{}
}

// WithObjPaths sets the object paths to list instances of.
func (b *GetInstancesBuilder) WithObjPaths(paths []string) *GetInstancesBuilder {
	b.g.ObjPaths = cloneSlice(paths)
	return b
}

// WithFirstLevelOnly restricts the result to direct child instances.
func (b *GetInstancesBuilder) WithFirstLevelOnly(v bool) *GetInstancesBuilder {
	b.g.FirstLevelOnly = v
	return b
}

// Build returns the GetInstances.
func (b *GetInstancesBuilder) Build() (usp.GetInstances, error) {
	return b.g, nil
}

// GetInstancesRespBuilder builds a GetInstancesResp.
type GetInstancesRespBuilder struct {
	r usp.GetInstancesResp
}

// NewGetInstancesRespBuilder returns an empty GetInstancesRespBuilder.
func NewGetInstancesRespBuilder() *GetInstancesRespBuilder {
	return &GetInstancesRespBuilder{}
}

// WithReqPathResults sets req_path_results.
func (b *GetInstancesRespBuilder) WithReqPathResults(results []usp.GetInstancesReqPathResult) *GetInstancesRespBuilder {
	b.r.ReqPathResults = cloneSlice(results)
	return b
}

// Build returns the built GetInstancesResp.
func (b *GetInstancesRespBuilder) Build() (usp.GetInstancesResp, error) {
	return b.r, nil
}

// GetInstancesReqPathResultBuilder builds the result for one requested path.
type GetInstancesReqPathResultBuilder struct {
	r usp.GetInstancesReqPathResult
}

// NewGetInstancesReqPathResultBuilder starts the result for requestedPath.
func NewGetInstancesReqPathResultBuilder(requestedPath string) *GetInstancesReqPathResultBuilder {
	return &GetInstancesReqPathResultBuilder{r: usp.GetInstancesReqPathResult{RequestedPath: requestedPath}}
}

// SetErr marks the path as failed.
func (b *GetInstancesReqPathResultBuilder) SetErr(code int64, msg string) *GetInstancesReqPathResultBuilder {
	b.r.ErrCode = errcode.Normalize(code)
	b.r.ErrMsg = msg
	return b
}

// WithCurrInsts sets the instances found under the path.
func (b *GetInstancesReqPathResultBuilder) WithCurrInsts(insts []usp.CurrInstance) *GetInstancesReqPathResultBuilder {
	b.r.CurrInsts = cloneSlice(insts)
	return b
}

// Build returns the GetInstancesReqPathResult; no field is required.
func (b *GetInstancesReqPathResultBuilder) Build() (usp.GetInstancesReqPathResult, error) {
	return b.r, nil
}

// CurrInstanceBuilder builds one instance entry.
type CurrInstanceBuilder struct {
	c usp.CurrInstance
}

// NewCurrInstanceBuilder returns a new CurrInstanceBuilder.
func NewCurrInstanceBuilder(instantiatedObjPath string) *CurrInstanceBuilder {
	return &CurrInstanceBuilder{c: usp.CurrInstance{InstantiatedObjPath: instantiatedObjPath}}
}

// WithUniqueKeys sets the unique key values of the instance.
func (b *CurrInstanceBuilder) WithUniqueKeys(keys map[string]string) *CurrInstanceBuilder {
	b.c.UniqueKeys = cloneMap(keys)
	return b
}

// Build returns the CurrInstance. It never fails.
func (b *CurrInstanceBuilder) Build() (usp.CurrInstance, error) {
	return b.c, nil
}
