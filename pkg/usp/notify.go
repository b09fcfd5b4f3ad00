package usp

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protowire"
)

// Notify delivers a notification for a subscription.
//
// Wire encoding:
//
//	1: subscription_id  string
//	2: send_resp        bool
//	3-8: notification   oneof, see Notification
type Notify struct {
	SubscriptionID string       `json:"subscription_id"`
	SendResp       bool         `json:"send_resp"`
	Notification   Notification `json:"-"`
}

// NotifyResp acknowledges a Notify.
type NotifyResp struct {
	SubscriptionID string `json:"subscription_id"`
}

// Notification is one of Event, ValueChange, ObjectCreation,
// ObjectDeletion, OperationComplete or OnBoardRequest.
type Notification interface {
	member
	isNotification()
	marshal() []byte
}

// Event reports a data model event.
type Event struct {
	ObjPath   string            `json:"obj_path"`
	EventName string            `json:"event_name"`
	Params    map[string]string `json:"params,omitempty"`
}

// ValueChange reports a new parameter value.
type ValueChange struct {
	ParamPath  string `json:"param_path"`
	ParamValue string `json:"param_value"`
}

// ObjectCreation reports a new object instance.
type ObjectCreation struct {
	ObjPath    string            `json:"obj_path"`
	UniqueKeys map[string]string `json:"unique_keys,omitempty"`
}

// ObjectDeletion reports a removed object instance.
type ObjectDeletion struct {
	ObjPath string `json:"obj_path"`
}

// OperationComplete reports the end of an asynchronous command.
//
// Wire encoding:
//
//	1: obj_path         string
//	2: command_name     string
//	3: command_key      string
//	4: req_output_args  OutputArgs      (operation_resp)
//	5: cmd_failure      CommandFailure  (operation_resp)
type OperationComplete struct {
	ObjPath       string            `json:"obj_path"`
	CommandName   string            `json:"command_name"`
	CommandKey    string            `json:"command_key"`
	OperationResp CompletionOutcome `json:"-"`
}

// CompletionOutcome is either OutputArgs or CommandFailure.
type CompletionOutcome interface {
	member
	isCompletionOutcome()
}

// OnBoardRequest asks a controller to take over an agent.
type OnBoardRequest struct {
	OUI                            string `json:"oui"`
	ProductClass                   string `json:"product_class"`
	SerialNumber                   string `json:"serial_number"`
	AgentSupportedProtocolVersions string `json:"agent_supported_protocol_versions"`
}

func (Notify) MsgType() MsgType     { return MsgTypeNotify }
func (NotifyResp) MsgType() MsgType { return MsgTypeNotifyResp }

func (Notify) memberName() string            { return "notify" }
func (NotifyResp) memberName() string        { return "notify_resp" }
func (Event) memberName() string             { return "event" }
func (ValueChange) memberName() string       { return "value_change" }
func (ObjectCreation) memberName() string    { return "obj_creation" }
func (ObjectDeletion) memberName() string    { return "obj_deletion" }
func (OperationComplete) memberName() string { return "oper_complete" }
func (OnBoardRequest) memberName() string    { return "on_board_req" }

func (Event) isNotification()             {}
func (ValueChange) isNotification()       {}
func (ObjectCreation) isNotification()    {}
func (ObjectDeletion) isNotification()    {}
func (OperationComplete) isNotification() {}
func (OnBoardRequest) isNotification()    {}

func (n Notify) marshal() []byte {
	var b []byte
	b = appendString(b, 1, n.SubscriptionID)
	b = appendBool(b, 2, n.SendResp)
	if n.Notification != nil {
		b = appendMessage(b, notificationNumber(n.Notification), n.Notification.marshal())
	}
	return b
}

func notificationNumber(n Notification) protowire.Number {
	switch n.(type) {
	case Event:
		return 3
	case ValueChange:
		return 4
	case ObjectCreation:
		return 5
	case ObjectDeletion:
		return 6
	case OperationComplete:
		return 7
	default:
		return 8
	}
}

func (n NotifyResp) marshal() []byte {
	return appendString(nil, 1, n.SubscriptionID)
}

func (e Event) marshal() []byte {
	var b []byte
	b = appendString(b, 1, e.ObjPath)
	b = appendString(b, 2, e.EventName)
	b = appendStringMap(b, 3, e.Params)
	return b
}

func (v ValueChange) marshal() []byte {
	var b []byte
	b = appendString(b, 1, v.ParamPath)
	b = appendString(b, 2, v.ParamValue)
	return b
}

func (o ObjectCreation) marshal() []byte {
	var b []byte
	b = appendString(b, 1, o.ObjPath)
	b = appendStringMap(b, 2, o.UniqueKeys)
	return b
}

func (o ObjectDeletion) marshal() []byte {
	return appendString(nil, 1, o.ObjPath)
}

func (o OperationComplete) marshal() []byte {
	var b []byte
	b = appendString(b, 1, o.ObjPath)
	b = appendString(b, 2, o.CommandName)
	b = appendString(b, 3, o.CommandKey)
	switch out := o.OperationResp.(type) {
	case OutputArgs:
		b = appendMessage(b, 4, out.marshal())
	case CommandFailure:
		b = appendMessage(b, 5, out.marshal())
	}
	return b
}

func (o OnBoardRequest) marshal() []byte {
	var b []byte
	b = appendString(b, 1, o.OUI)
	b = appendString(b, 2, o.ProductClass)
	b = appendString(b, 3, o.SerialNumber)
	b = appendString(b, 4, o.AgentSupportedProtocolVersions)
	return b
}

var notificationParsers = map[protowire.Number]memberParser[Notification]{
	3: asMember[Notification](parseEvent),
	4: asMember[Notification](parseValueChange),
	5: asMember[Notification](parseObjectCreation),
	6: asMember[Notification](parseObjectDeletion),
	7: asMember[Notification](parseOperationComplete),
	8: asMember[Notification](parseOnBoardRequest),
}

func parseNotify(b []byte) (Notify, error) {
	var n Notify
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			n.SubscriptionID, err = f.str()
		case 2:
			n.SendResp, err = f.boolean()
		default:
			if parse, ok := notificationParsers[f.num]; ok {
				n.Notification, err = sub[Notification](f, parse)
			}
		}
		return err
	})
	return n, err
}

func parseNotifyResp(b []byte) (NotifyResp, error) {
	var n NotifyResp
	err := walkFields(b, func(f field) error {
		var err error
		if f.num == 1 {
			n.SubscriptionID, err = f.str()
		}
		return err
	})
	return n, err
}

func parseEvent(b []byte) (Event, error) {
	var e Event
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			e.ObjPath, err = f.str()
		case 2:
			e.EventName, err = f.str()
		case 3:
			err = f.mapEntry(&e.Params)
		}
		return err
	})
	return e, err
}

func parseValueChange(b []byte) (ValueChange, error) {
	var v ValueChange
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			v.ParamPath, err = f.str()
		case 2:
			v.ParamValue, err = f.str()
		}
		return err
	})
	return v, err
}

func parseObjectCreation(b []byte) (ObjectCreation, error) {
	var o ObjectCreation
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.ObjPath, err = f.str()
		case 2:
			err = f.mapEntry(&o.UniqueKeys)
		}
		return err
	})
	return o, err
}

func parseObjectDeletion(b []byte) (ObjectDeletion, error) {
	var o ObjectDeletion
	err := walkFields(b, func(f field) error {
		var err error
		if f.num == 1 {
			o.ObjPath, err = f.str()
		}
		return err
	})
	return o, err
}

func parseOperationComplete(b []byte) (OperationComplete, error) {
	var o OperationComplete
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.ObjPath, err = f.str()
		case 2:
			o.CommandName, err = f.str()
		case 3:
			o.CommandKey, err = f.str()
		case 4:
			o.OperationResp, err = sub(f, parseOutputArgs)
		case 5:
			o.OperationResp, err = sub(f, parseCommandFailure)
		}
		return err
	})
	return o, err
}

func parseOnBoardRequest(b []byte) (OnBoardRequest, error) {
	var o OnBoardRequest
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.OUI, err = f.str()
		case 2:
			o.ProductClass, err = f.str()
		case 3:
			o.SerialNumber, err = f.str()
		case 4:
			o.AgentSupportedProtocolVersions, err = f.str()
		}
		return err
	})
	return o, err
}

// MarshalJSON renders the notification as a tagged object.
func (n Notify) MarshalJSON() ([]byte, error) {
	type plain Notify
	return json.Marshal(struct {
		plain
		Notification any `json:"notification"`
	}{plain(n), oneofJSON(n.Notification)})
}

// MarshalJSON renders operation_resp as a tagged object.
func (o OperationComplete) MarshalJSON() ([]byte, error) {
	type plain OperationComplete
	return json.Marshal(struct {
		plain
		OperationResp any `json:"operation_resp"`
	}{plain(o), oneofJSON(o.OperationResp)})
}
