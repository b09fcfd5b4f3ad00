package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// GetBuilder builds a Get request.
type GetBuilder struct {
	g usp.Get
}

// NewGetBuilder returns an empty Get builder.
func NewGetBuilder() *GetBuilder {
	return &GetBuilder{}
}

// WithParamPaths sets the paths to read. Paths may be partial or use search
// expressions.
func (b *GetBuilder) WithParamPaths(paths []string) *GetBuilder {
	b.g.ParamPaths = cloneSlice(paths)
	return b
}

// WithMaxDepth limits how deep partial paths are expanded. 0 means no limit.
func (b *GetBuilder) WithMaxDepth(depth uint32) *GetBuilder {
	b.g.MaxDepth = depth
	return b
}

// Build returns the Get.
func (b *GetBuilder) Build() (usp.Get, error) {
	return b.g, nil
}

// GetRespBuilder builds a GetResp.
type GetRespBuilder struct {
	r usp.GetResp
}

// NewGetRespBuilder returns an empty GetRespBuilder.
func NewGetRespBuilder() *GetRespBuilder {
	return &GetRespBuilder{}
}

// WithReqPathResults sets one result per requested path.
func (b *GetRespBuilder) WithReqPathResults(results []usp.GetReqPathResult) *GetRespBuilder {
	b.r.ReqPathResults = cloneSlice(results)
	return b
}

// Build returns the built GetResp.
func (b *GetRespBuilder) Build() (usp.GetResp, error) {
	return b.r, nil
}

// GetReqPathResultBuilder builds the result for one requested path.
type GetReqPathResultBuilder struct {
	r usp.GetReqPathResult
}

// NewGetReqPathResultBuilder starts the result for requestedPath.
func NewGetReqPathResultBuilder(requestedPath string) *GetReqPathResultBuilder {
	return &GetReqPathResultBuilder{r: usp.GetReqPathResult{RequestedPath: requestedPath}}
}

// SetErr marks the path as failed.
func (b *GetReqPathResultBuilder) SetErr(code int64, msg string) *GetReqPathResultBuilder {
	b.r.ErrCode = errcode.Normalize(code)
	b.r.ErrMsg = msg
	return b
}

// WithResolvedPathResults sets the objects the path resolved to.
func (b *GetReqPathResultBuilder) WithResolvedPathResults(results []usp.ResolvedPathResult) *GetReqPathResultBuilder {
	b.r.ResolvedPathResults = cloneSlice(results)
	return b
}

// Build returns the GetReqPathResult; no field is required.
func (b *GetReqPathResultBuilder) Build() (usp.GetReqPathResult, error) {
	return b.r, nil
}

// ResolvedPathResultBuilder builds the parameters of one resolved object.
type ResolvedPathResultBuilder struct {
	r usp.ResolvedPathResult
}

// NewResolvedPathResultBuilder returns a new ResolvedPathResultBuilder.
func NewResolvedPathResultBuilder(resolvedPath string) *ResolvedPathResultBuilder {
	return &ResolvedPathResultBuilder{r: usp.ResolvedPathResult{ResolvedPath: resolvedPath}}
}

// WithResultParams sets the parameter values, keyed by relative path.
func (b *ResolvedPathResultBuilder) WithResultParams(params map[string]string) *ResolvedPathResultBuilder {
	b.r.ResultParams = cloneMap(params)
	return b
}

// Build returns the ResolvedPathResult. It never fails.
func (b *ResolvedPathResultBuilder) Build() (usp.ResolvedPathResult, error) {
	return b.r, nil
}
