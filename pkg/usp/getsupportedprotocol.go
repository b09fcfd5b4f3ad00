package usp

// GetSupportedProtocol announces the controller's protocol versions as a
// comma separated list.
type GetSupportedProtocol struct {
	ControllerSupportedProtocolVersions string `json:"controller_supported_protocol_versions"`
}

// GetSupportedProtocolResp announces the agent's protocol versions.
type GetSupportedProtocolResp struct {
	AgentSupportedProtocolVersions string `json:"agent_supported_protocol_versions"`
}

func (GetSupportedProtocol) MsgType() MsgType     { return MsgTypeGetSupportedProto }
func (GetSupportedProtocolResp) MsgType() MsgType { return MsgTypeGetSupportedProtoResp }

func (GetSupportedProtocol) memberName() string     { return "get_supported_protocol" }
func (GetSupportedProtocolResp) memberName() string { return "get_supported_protocol_resp" }

func (g GetSupportedProtocol) marshal() []byte {
	return appendString(nil, 1, g.ControllerSupportedProtocolVersions)
}

func (g GetSupportedProtocolResp) marshal() []byte {
	return appendString(nil, 1, g.AgentSupportedProtocolVersions)
}

func parseGetSupportedProtocol(b []byte) (GetSupportedProtocol, error) {
	var g GetSupportedProtocol
	err := walkFields(b, func(f field) error {
		var err error
		if f.num == 1 {
			g.ControllerSupportedProtocolVersions, err = f.str()
		}
		return err
	})
	return g, err
}

func parseGetSupportedProtocolResp(b []byte) (GetSupportedProtocolResp, error) {
	var g GetSupportedProtocolResp
	err := walkFields(b, func(f field) error {
		var err error
		if f.num == 1 {
			g.AgentSupportedProtocolVersions, err = f.str()
		}
		return err
	})
	return g, err
}
