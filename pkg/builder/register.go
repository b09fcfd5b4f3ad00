package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// RegisterBuilder builds a Register request.
type RegisterBuilder struct {
	r usp.Register
}

// NewRegisterBuilder returns an empty RegisterBuilder.
func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{}
}

// WithAllowPartial sets allow_partial.
func (b *RegisterBuilder) WithAllowPartial(v bool) *RegisterBuilder {
	b.r.AllowPartial = v
	return b
}

// WithRegPaths sets the paths the sender wants to serve.
func (b *RegisterBuilder) WithRegPaths(paths []string) *RegisterBuilder {
	b.r.RegPaths = nil
	for _, p := range paths {
		b.r.RegPaths = append(b.r.RegPaths, usp.RegistrationPath{Path: p})
	}
	return b
}

// Build returns the Register.
func (b *RegisterBuilder) Build() (usp.Register, error) {
	return b.r, nil
}

// RegisterRespBuilder builds a RegisterResp.
type RegisterRespBuilder struct {
	r usp.RegisterResp
}

// NewRegisterRespBuilder returns an empty RegisterRespBuilder.
func NewRegisterRespBuilder() *RegisterRespBuilder {
	return &RegisterRespBuilder{}
}

// WithRegisteredPathResults sets registered_path_results.
func (b *RegisterRespBuilder) WithRegisteredPathResults(results []usp.RegisteredPathResult) *RegisterRespBuilder {
	b.r.RegisteredPathResults = cloneSlice(results)
	return b
}

// Build returns the built RegisterResp.
func (b *RegisterRespBuilder) Build() (usp.RegisterResp, error) {
	return b.r, nil
}

// RegisteredPathResultBuilder builds the outcome for one path.
type RegisteredPathResultBuilder struct {
	r usp.RegisteredPathResult
}

// NewRegisteredPathResultBuilder returns a new RegisteredPathResultBuilder.
func NewRegisteredPathResultBuilder(requestedPath string) *RegisteredPathResultBuilder {
	return &RegisteredPathResultBuilder{r: usp.RegisteredPathResult{RequestedPath: requestedPath}}
}

// SetFailure rejects the registration.
func (b *RegisteredPathResultBuilder) SetFailure(code int64, msg string) *RegisteredPathResultBuilder {
	b.r.OperStatus = usp.OperationFailure{ErrCode: errcode.Normalize(code), ErrMsg: msg}
	return b
}

// SetSuccess accepts the registration of registeredPath.
func (b *RegisteredPathResultBuilder) SetSuccess(registeredPath string) *RegisteredPathResultBuilder {
	b.r.OperStatus = usp.RegisterOperationSuccess{RegisteredPath: registeredPath}
	return b
}

// Build fails when neither SetFailure nor SetSuccess was called.
func (b *RegisteredPathResultBuilder) Build() (usp.RegisteredPathResult, error) {
	if b.r.OperStatus == nil {
		return usp.RegisteredPathResult{}, missing("RegisteredPathResult", "oper_status")
	}
	return b.r, nil
}
