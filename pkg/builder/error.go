package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// ErrorBuilder builds an Error body. err_code is required.
type ErrorBuilder struct {
	e       usp.Error
	codeSet bool
}

// NewErrorBuilder returns an Error builder. err_code is required.
func NewErrorBuilder() *ErrorBuilder {
	return &ErrorBuilder{}
}

// SetErrCode sets the top level error code. Values outside the uint32 range
// become errcode.InternalError.
func (b *ErrorBuilder) SetErrCode(code int64) *ErrorBuilder {
	b.e.ErrCode = errcode.Normalize(code)
	b.codeSet = true
	return b
}

// SetErrMsg sets the error text.
func (b *ErrorBuilder) SetErrMsg(msg string) *ErrorBuilder {
	b.e.ErrMsg = msg
	return b
}

// AddParamErr appends a per-parameter error.
func (b *ErrorBuilder) AddParamErr(paramPath string, code int64, msg string) *ErrorBuilder {
	b.e.ParamErrs = append(b.e.ParamErrs, ErrorParamErr(paramPath, code, msg))
	return b
}

// Build fails when SetErrCode was never called.
func (b *ErrorBuilder) Build() (usp.Error, error) {
	if !b.codeSet {
		return usp.Error{}, missing("Error", "err_code")
	}
	e := b.e
	e.ParamErrs = cloneSlice(e.ParamErrs)
	return e, nil
}
