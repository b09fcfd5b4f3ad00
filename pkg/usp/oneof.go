package usp

import "google.golang.org/protobuf/encoding/protowire"

// memberParser decodes one oneof member into the oneof's interface type.
type memberParser[T any] func([]byte) (T, error)

// asMember adapts the parser of a concrete member type M to the oneof
// interface T. M must implement T.
func asMember[T, M any](parse func([]byte) (M, error)) memberParser[T] {
	return func(b []byte) (T, error) {
		m, err := parse(b)
		if err != nil {
			var zero T
			return zero, err
		}
		return any(m).(T), nil
	}
}

// parseOneof decodes a message whose only fields are the members of a
// oneof. The last member on the wire wins; none yields the zero T.
func parseOneof[T any](b []byte, members map[protowire.Number]memberParser[T]) (T, error) {
	var v T
	err := walkFields(b, func(f field) error {
		parse, ok := members[f.num]
		if !ok {
			return nil
		}
		var err error
		v, err = sub[T](f, parse)
		return err
	})
	return v, err
}

// operStatus is the common shape of the OperationStatus oneofs of the Set,
// Add, Delete, Register and Deregister responses.
type operStatus interface {
	member
	marshal() []byte
}

// appendOperStatus writes an OperationStatus message holding s. A nil
// status writes nothing.
func appendOperStatus(b []byte, num protowire.Number, s operStatus) []byte {
	if s == nil {
		return b
	}
	member := protowire.Number(2)
	switch s.(type) {
	case OperationFailure, SetOperationFailure:
		member = 1
	}
	return appendMessage(b, num, appendMessage(nil, member, s.marshal()))
}

// parseOperStatus decodes an OperationStatus message: oper_failure is
// field 1 and oper_success field 2.
func parseOperStatus[T, F, S any](b []byte, failure func([]byte) (F, error), success func([]byte) (S, error)) (T, error) {
	return parseOneof(b, map[protowire.Number]memberParser[T]{
		1: asMember[T](failure),
		2: asMember[T](success),
	})
}

// OperationFailure reports that an Add, Delete, Register or Deregister
// target failed as a whole.
type OperationFailure struct {
	ErrCode uint32 `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
}

func (OperationFailure) memberName() string     { return "oper_failure" }
func (OperationFailure) isAddOperStatus()        {}
func (OperationFailure) isDeleteOperStatus()     {}
func (OperationFailure) isRegisterOperStatus()   {}
func (OperationFailure) isDeregisterOperStatus() {}

func (o OperationFailure) marshal() []byte {
	var b []byte
	b = appendFixed32(b, 1, o.ErrCode)
	b = appendString(b, 2, o.ErrMsg)
	return b
}

func parseOperationFailure(b []byte) (OperationFailure, error) {
	var o OperationFailure
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			o.ErrCode, err = f.fixed32()
		case 2:
			o.ErrMsg, err = f.str()
		}
		return err
	})
	return o, err
}

// ParameterError reports a single parameter that could not be set.
//
// Wire encoding:
//
//	1: param     string
//	2: err_code  fixed32
//	3: err_msg   string
type ParameterError struct {
	Param   string `json:"param"`
	ErrCode uint32 `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
}

func (p ParameterError) marshal() []byte {
	var b []byte
	b = appendString(b, 1, p.Param)
	b = appendFixed32(b, 2, p.ErrCode)
	b = appendString(b, 3, p.ErrMsg)
	return b
}

func parseParameterError(b []byte) (ParameterError, error) {
	var p ParameterError
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			p.Param, err = f.str()
		case 2:
			p.ErrCode, err = f.fixed32()
		case 3:
			p.ErrMsg, err = f.str()
		}
		return err
	})
	return p, err
}

func appendParameterErrors(b []byte, num protowire.Number, errs []ParameterError) []byte {
	for _, e := range errs {
		b = appendMessage(b, num, e.marshal())
	}
	return b
}

// OutputArgs holds the output arguments of a completed command.
type OutputArgs struct {
	OutputArgs map[string]string `json:"output_args,omitempty"`
}

// CommandFailure reports a failed command.
type CommandFailure struct {
	ErrCode uint32 `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
}

func (OutputArgs) memberName() string     { return "req_output_args" }
func (CommandFailure) memberName() string { return "cmd_failure" }

func (OutputArgs) isOperateOutcome()        {}
func (CommandFailure) isOperateOutcome()    {}
func (OutputArgs) isCompletionOutcome()     {}
func (CommandFailure) isCompletionOutcome() {}

func (o OutputArgs) marshal() []byte {
	return appendStringMap(nil, 1, o.OutputArgs)
}

func (c CommandFailure) marshal() []byte {
	var b []byte
	b = appendFixed32(b, 1, c.ErrCode)
	b = appendString(b, 2, c.ErrMsg)
	return b
}

func parseOutputArgs(b []byte) (OutputArgs, error) {
	var o OutputArgs
	err := walkFields(b, func(f field) error {
		if f.num == 1 {
			return f.mapEntry(&o.OutputArgs)
		}
		return nil
	})
	return o, err
}

func parseCommandFailure(b []byte) (CommandFailure, error) {
	var c CommandFailure
	err := walkFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			c.ErrCode, err = f.fixed32()
		case 2:
			c.ErrMsg, err = f.str()
		}
		return err
	})
	return c, err
}
