package builder

import (
	"maps"
	"slices"

	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// The helpers below copy caller-owned collections so that built values do
// not alias them. Empty collections become nil, matching what decoding
// produces.

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

func cloneMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return slices.Clone(b)
}

// ParamErr returns a parameter error with a normalized code.
func ParamErr(param string, code int64, msg string) usp.ParameterError {
	return usp.ParameterError{Param: param, ErrCode: errcode.Normalize(code), ErrMsg: msg}
}

// UnaffectedPathErr returns an unaffected path error with a normalized code.
func UnaffectedPathErr(path string, code int64, msg string) usp.UnaffectedPathError {
	return usp.UnaffectedPathError{UnaffectedPath: path, ErrCode: errcode.Normalize(code), ErrMsg: msg}
}

// ErrorParamErr returns an Error param entry with a normalized code.
func ErrorParamErr(path string, code int64, msg string) usp.ErrorParamError {
	return usp.ErrorParamError{ParamPath: path, ErrCode: errcode.Normalize(code), ErrMsg: msg}
}
