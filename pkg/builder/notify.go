package builder

import (
	"github.com/usp-protocol/usp-go/pkg/errcode"
	"github.com/usp-protocol/usp-go/pkg/usp"
)

// NotifyBuilder builds a Notify request. Exactly one notification must be
// selected; the last With call wins.
type NotifyBuilder struct {
	n usp.Notify
}

// NewNotifyBuilder starts a Notify for the subscription with the given ID.
func NewNotifyBuilder(subscriptionID string) *NotifyBuilder {
	return &NotifyBuilder{n: usp.Notify{SubscriptionID: subscriptionID}}
}

// WithSendResp asks the receiver to answer with a NotifyResp.
func (b *NotifyBuilder) WithSendResp(v bool) *NotifyBuilder {
	b.n.SendResp = v
	return b
}

// WithEvent selects an Event notification.
func (b *NotifyBuilder) WithEvent(objPath, eventName string, params map[string]string) *NotifyBuilder {
	b.n.Notification = usp.Event{ObjPath: objPath, EventName: eventName, Params: cloneMap(params)}
	return b
}

// WithValueChange selects a ValueChange notification.
func (b *NotifyBuilder) WithValueChange(paramPath, paramValue string) *NotifyBuilder {
	b.n.Notification = usp.ValueChange{ParamPath: paramPath, ParamValue: paramValue}
	return b
}

// WithObjectCreation selects an ObjectCreation notification.
func (b *NotifyBuilder) WithObjectCreation(objPath string, uniqueKeys map[string]string) *NotifyBuilder {
	b.n.Notification = usp.ObjectCreation{ObjPath: objPath, UniqueKeys: cloneMap(uniqueKeys)}
	return b
}

// WithObjectDeletion selects an ObjectDeletion notification.
func (b *NotifyBuilder) WithObjectDeletion(objPath string) *NotifyBuilder {
	b.n.Notification = usp.ObjectDeletion{ObjPath: objPath}
	return b
}

// WithOperationCompleteOutput reports a command that finished with output
// arguments.
func (b *NotifyBuilder) WithOperationCompleteOutput(objPath, commandName, commandKey string, outputArgs map[string]string) *NotifyBuilder {
	b.n.Notification = usp.OperationComplete{
		ObjPath:       objPath,
		CommandName:   commandName,
		CommandKey:    commandKey,
		OperationResp: usp.OutputArgs{OutputArgs: cloneMap(outputArgs)},
	}
	return b
}

// WithOperationCompleteFailure reports a command that failed.
func (b *NotifyBuilder) WithOperationCompleteFailure(objPath, commandName, commandKey string, code int64, msg string) *NotifyBuilder {
	b.n.Notification = usp.OperationComplete{
		ObjPath:       objPath,
		CommandName:   commandName,
		CommandKey:    commandKey,
		OperationResp: usp.CommandFailure{ErrCode: errcode.Normalize(code), ErrMsg: msg},
	}
	return b
}

// WithOnBoardRequest selects an OnBoardRequest, sent by an agent to
// announce itself to a controller.
func (b *NotifyBuilder) WithOnBoardRequest(oui, productClass, serialNumber, agentSupportedProtocolVersions string) *NotifyBuilder {
	b.n.Notification = usp.OnBoardRequest{
		OUI:                            oui,
		ProductClass:                   productClass,
		SerialNumber:                   serialNumber,
		AgentSupportedProtocolVersions: agentSupportedProtocolVersions,
	}
	return b
}

// Build fails with ErrMissingField when no notification was selected.
func (b *NotifyBuilder) Build() (usp.Notify, error) {
	if b.n.Notification == nil {
		return usp.Notify{}, missing("Notify", "notification")
	}
	return b.n, nil
}

// NotifyRespBuilder builds a NotifyResp.
type NotifyRespBuilder struct {
	r usp.NotifyResp
}

// NewNotifyRespBuilder returns a new NotifyRespBuilder.
func NewNotifyRespBuilder(subscriptionID string) *NotifyRespBuilder {
	return &NotifyRespBuilder{r: usp.NotifyResp{SubscriptionID: subscriptionID}}
}

// Build returns the NotifyResp.
func (b *NotifyRespBuilder) Build() (usp.NotifyResp, error) {
	return b.r, nil
}
