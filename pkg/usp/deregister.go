package usp

import "encoding/json"

// Deregister withdraws previously registered paths.
type Deregister struct {
	Paths []string `json:"paths,omitempty"`
}

// DeregisterResp answers a Deregister with one result per path.
type DeregisterResp struct {
	DeregisteredPathResults []DeregisteredPathResult `json:"deregistered_path_results,omitempty"`
}

// DeregisteredPathResult is the outcome for one requested path.
type DeregisteredPathResult struct {
	RequestedPath string               `json:"requested_path"`
	OperStatus    DeregisterOperStatus `json:"-"`
}

// DeregisterOperStatus is either OperationFailure or
// DeregisterOperationSuccess.
type DeregisterOperStatus interface {
	operStatus
	isDeregisterOperStatus()
}

// DeregisterOperationSuccess lists the paths that were deregistered.
type DeregisterOperationSuccess struct {
	DeregisteredPath []string `json:"deregistered_path,omitempty"`
}

func (Deregister) MsgType() MsgType     { return MsgTypeDeregister }
func (DeregisterResp) MsgType() MsgType { return MsgTypeDeregisterResp }

func (Deregister) memberName() string                 { return "deregister" }
func (DeregisterResp) memberName() string             { return "deregister_resp" }
func (DeregisterOperationSuccess) memberName() string { return "oper_success" }

func (DeregisterOperationSuccess) isDeregisterOperStatus() {}

func (d Deregister) marshal() []byte {
	return appendStrings(nil, 1, d.Paths)
}

func (d DeregisterResp) marshal() []byte {
	var b []byte
	for _, r := range d.DeregisteredPathResults {
		var m []byte
		m = appendString(m, 1, r.RequestedPath)
		m = appendOperStatus(m, 2, r.OperStatus)
		b = appendMessage(b, 1, m)
	}
	return b
}

func (o DeregisterOperationSuccess) marshal() []byte {
	return appendStrings(nil, 1, o.DeregisteredPath)
}

func parseDeregister(b []byte) (Deregister, error) {
	var d Deregister
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return f.addString(&d.Paths)
		}
		return nil
	})
	return d, err
}

func parseDeregisterResp(b []byte) (DeregisterResp, error) {
	var d DeregisterResp
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return addSub(&d.DeregisteredPathResults, f, parseDeregisteredPathResult)
		}
		return nil
	})
	return d, err
}

func parseDeregisteredPathResult(b []byte) (DeregisteredPathResult, error) {
	var r DeregisteredPathResult
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			r.RequestedPath, err = f.str()
		case 2:
			r.OperStatus, err = sub(f, func(b []byte) (DeregisterOperStatus, error) {
				return parseOperStatus[DeregisterOperStatus](b, parseOperationFailure, parseDeregisterOperationSuccess)
			})
		}
		return err
	})
	return r, err
}

func parseDeregisterOperationSuccess(b []byte) (DeregisterOperationSuccess, error) {
	var o DeregisterOperationSuccess
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return f.addString(&o.DeregisteredPath)
		}
		return nil
	})
	return o, err
}

// MarshalJSON renders oper_status as a tagged object.
func (r DeregisteredPathResult) MarshalJSON() ([]byte, error) {
	type plain DeregisteredPathResult
	return json.Marshal(struct {
		plain
		OperStatus any `json:"oper_status"`
	}{plain(r), oneofJSON(r.OperStatus)})
}
