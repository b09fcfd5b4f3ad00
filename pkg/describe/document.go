package describe

import (
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/usp-protocol/usp-go/pkg/errcode"
)

// document is the on-disk shape of a description.
type document struct {
	Record *recordDoc `yaml:"record"`
	Msg    *msgDoc    `yaml:"msg"`
}

type recordDoc struct {
	Version         string `yaml:"version"`
	ToID            string `yaml:"to_id"`
	FromID          string `yaml:"from_id"`
	PayloadSecurity string `yaml:"payload_security"`
	// MACSignature and SenderCert are hex encoded.
	MACSignature string `yaml:"mac_signature"`
	SenderCert   string `yaml:"sender_cert"`

	Type string `yaml:"type"`

	SessionContext *sessionContextDoc `yaml:"session_context"`
	MQTT           *mqttDoc           `yaml:"mqtt"`
	STOMP          *stompDoc          `yaml:"stomp"`
	Disconnect     *disconnectDoc     `yaml:"disconnect"`
}

type sessionContextDoc struct {
	SessionID          uint64 `yaml:"session_id"`
	SequenceID         uint64 `yaml:"sequence_id"`
	ExpectedID         uint64 `yaml:"expected_id"`
	RetransmitID       uint64 `yaml:"retransmit_id"`
	PayloadSARState    string `yaml:"payload_sar_state"`
	PayloadrecSARState string `yaml:"payloadrec_sar_state"`
}

type mqttDoc struct {
	Version         string `yaml:"version"`
	SubscribedTopic string `yaml:"subscribed_topic"`
}

type stompDoc struct {
	Version               string `yaml:"version"`
	SubscribedDestination string `yaml:"subscribed_destination"`
}

type disconnectDoc struct {
	Reason     string `yaml:"reason"`
	ReasonCode uint32 `yaml:"reason_code"`
}

type msgDoc struct {
	MsgID string `yaml:"msg_id"`

	Get                  *getDoc                  `yaml:"get"`
	GetInstances         *getInstancesDoc         `yaml:"get_instances"`
	GetSupportedDM       *getSupportedDMDoc       `yaml:"get_supported_dm"`
	GetSupportedProtocol *getSupportedProtocolDoc `yaml:"get_supported_protocol"`
	Set                  *setDoc                  `yaml:"set"`
	Add                  *addDoc                  `yaml:"add"`
	Delete               *deleteDoc               `yaml:"delete"`
	Operate              *operateDoc              `yaml:"operate"`
	Notify               *notifyDoc               `yaml:"notify"`
	NotifyResp           *notifyRespDoc           `yaml:"notify_resp"`
	Register             *registerDoc             `yaml:"register"`
	Deregister           *deregisterDoc           `yaml:"deregister"`
	Error                *errorDoc                `yaml:"error"`
}

type getDoc struct {
	ParamPaths []string `yaml:"param_paths"`
	MaxDepth   uint32   `yaml:"max_depth"`
}

type getInstancesDoc struct {
	ObjPaths       []string `yaml:"obj_paths"`
	FirstLevelOnly bool     `yaml:"first_level_only"`
}

type getSupportedDMDoc struct {
	ObjPaths            []string `yaml:"obj_paths"`
	FirstLevelOnly      bool     `yaml:"first_level_only"`
	ReturnCommands      bool     `yaml:"return_commands"`
	ReturnEvents        bool     `yaml:"return_events"`
	ReturnParams        bool     `yaml:"return_params"`
	ReturnUniqueKeySets bool     `yaml:"return_unique_key_sets"`
}

type getSupportedProtocolDoc struct {
	Versions string `yaml:"controller_supported_protocol_versions"`
}

type paramSettingDoc struct {
	Param    string `yaml:"param"`
	Value    string `yaml:"value"`
	Required bool   `yaml:"required"`
}

type objDoc struct {
	ObjPath       string            `yaml:"obj_path"`
	ParamSettings []paramSettingDoc `yaml:"param_settings"`
}

type setDoc struct {
	AllowPartial bool     `yaml:"allow_partial"`
	UpdateObjs   []objDoc `yaml:"update_objs"`
}

type addDoc struct {
	AllowPartial bool     `yaml:"allow_partial"`
	CreateObjs   []objDoc `yaml:"create_objs"`
}

type deleteDoc struct {
	AllowPartial bool     `yaml:"allow_partial"`
	ObjPaths     []string `yaml:"obj_paths"`
}

type operateDoc struct {
	Command    string            `yaml:"command"`
	CommandKey string            `yaml:"command_key"`
	SendResp   bool              `yaml:"send_resp"`
	InputArgs  map[string]string `yaml:"input_args"`
}

type notifyDoc struct {
	SubscriptionID string `yaml:"subscription_id"`
	SendResp       bool   `yaml:"send_resp"`

	Event             *eventDoc             `yaml:"event"`
	ValueChange       *valueChangeDoc       `yaml:"value_change"`
	ObjectCreation    *objectCreationDoc    `yaml:"obj_creation"`
	ObjectDeletion    *objectDeletionDoc    `yaml:"obj_deletion"`
	OperationComplete *operationCompleteDoc `yaml:"oper_complete"`
	OnBoardRequest    *onBoardRequestDoc    `yaml:"on_board_req"`
}

type eventDoc struct {
	ObjPath   string            `yaml:"obj_path"`
	EventName string            `yaml:"event_name"`
	Params    map[string]string `yaml:"params"`
}

type valueChangeDoc struct {
	ParamPath  string `yaml:"param_path"`
	ParamValue string `yaml:"param_value"`
}

type objectCreationDoc struct {
	ObjPath    string            `yaml:"obj_path"`
	UniqueKeys map[string]string `yaml:"unique_keys"`
}

type objectDeletionDoc struct {
	ObjPath string `yaml:"obj_path"`
}

type operationCompleteDoc struct {
	ObjPath     string            `yaml:"obj_path"`
	CommandName string            `yaml:"command_name"`
	CommandKey  string            `yaml:"command_key"`
	OutputArgs  map[string]string `yaml:"output_args"`
	Failure     *failureDoc       `yaml:"cmd_failure"`
}

type failureDoc struct {
	ErrCode errCode `yaml:"err_code"`
	ErrMsg  string  `yaml:"err_msg"`
}

type onBoardRequestDoc struct {
	OUI             string `yaml:"oui"`
	ProductClass    string `yaml:"product_class"`
	SerialNumber    string `yaml:"serial_number"`
	ProtocolVersion string `yaml:"agent_supported_protocol_versions"`
}

type notifyRespDoc struct {
	SubscriptionID string `yaml:"subscription_id"`
}

type registerDoc struct {
	AllowPartial bool     `yaml:"allow_partial"`
	RegPaths     []string `yaml:"reg_paths"`
}

type deregisterDoc struct {
	Paths []string `yaml:"paths"`
}

type paramErrDoc struct {
	ParamPath string `yaml:"param_path"`
	ErrCode   errCode `yaml:"err_code"`
	ErrMsg    string  `yaml:"err_msg"`
}

type errorDoc struct {
	// ErrCode is a pointer so that an explicit 0 still counts as set.
	ErrCode   *errCode      `yaml:"err_code"`
	ErrMsg    string        `yaml:"err_msg"`
	ParamErrs []paramErrDoc `yaml:"param_errs"`
}

// errCode is an error code as written by hand. Any numeric value outside the
// uint32 range, including integers too large for int64 and non-integers,
// decodes as errcode.InternalError.
type errCode int64

func (c *errCode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: err_code must be a number", node.Line)
	}
	if i, ok := new(big.Int).SetString(node.Value, 0); ok {
		if i.IsInt64() {
			*c = errCode(errcode.Normalize(i.Int64()))
		} else {
			*c = errCode(errcode.InternalError)
		}
		return nil
	}
	if node.ShortTag() == "!!float" {
		*c = errCode(errcode.InternalError)
		return nil
	}
	return fmt.Errorf("line %d: err_code %q is not a number", node.Line, node.Value)
}
