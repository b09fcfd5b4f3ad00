package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// OperateBuilder builds an Operate request.
type OperateBuilder struct {
	o usp.Operate
}

// NewOperateBuilder starts an Operate for command, e.g. "Device.Reboot()".
func NewOperateBuilder(command string) *OperateBuilder {
	return &OperateBuilder{o: usp.Operate{Command: command}}
}

// WithCommandKey sets the key echoed back in OperationComplete.
func (b *OperateBuilder) WithCommandKey(key string) *OperateBuilder {
	b.o.CommandKey = key
	return b
}

// WithSendResp asks the agent to reply with an OperateResp.
func (b *OperateBuilder) WithSendResp(v bool) *OperateBuilder {
	b.o.SendResp = v
	return b
}

// WithInputArgs sets the command input arguments.
func (b *OperateBuilder) WithInputArgs(args map[string]string) *OperateBuilder {
	b.o.InputArgs = cloneMap(args)
	return b
}

// Build returns the built Operate.
func (b *OperateBuilder) Build() (usp.Operate, error) {
	return b.o, nil
}

// OperateRespBuilder builds an OperateResp.
type OperateRespBuilder struct {
	r usp.OperateResp
}

// NewOperateRespBuilder returns an empty OperateRespBuilder.
func NewOperateRespBuilder() *OperateRespBuilder {
	return &OperateRespBuilder{}
}

// WithOperationResults sets operation_results.
func (b *OperateRespBuilder) WithOperationResults(results []usp.OperationResult) *OperateRespBuilder {
	b.r.OperationResults = cloneSlice(results)
	return b
}

// Build returns the OperateResp; no field is required.
func (b *OperateRespBuilder) Build() (usp.OperateResp, error) {
	return b.r, nil
}

// OperationResultBuilder builds the outcome of one command. One of SetPath,
// SetOutputArgs or SetFailure must be called.
type OperationResultBuilder struct {
	r usp.OperationResult
}

// NewOperationResultBuilder starts the result for executedCommand.
func NewOperationResultBuilder(executedCommand string) *OperationResultBuilder {
	return &OperationResultBuilder{r: usp.OperationResult{ExecutedCommand: executedCommand}}
}

// SetPath records the Request object of an asynchronous command.
func (b *OperationResultBuilder) SetPath(reqObjPath string) *OperationResultBuilder {
	b.r.OperationResp = usp.ReqObjPath(reqObjPath)
	return b
}

// SetOutputArgs reports a synchronous command that completed.
func (b *OperationResultBuilder) SetOutputArgs(args map[string]string) *OperationResultBuilder {
	b.r.OperationResp = usp.OutputArgs{OutputArgs: cloneMap(args)}
	return b
}

// SetFailure reports a command that failed.
func (b *OperationResultBuilder) SetFailure(code int64, msg string) *OperationResultBuilder {
	b.r.OperationResp = usp.CommandFailure{ErrCode: errcode.Normalize(code), ErrMsg: msg}
	return b
}

// Build fails with ErrMissingField when no outcome was set.
func (b *OperationResultBuilder) Build() (usp.OperationResult, error) {
	if b.r.OperationResp == nil {
		return usp.OperationResult{}, missing("OperationResult", "operation_resp")
	}
	return b.r, nil
}
