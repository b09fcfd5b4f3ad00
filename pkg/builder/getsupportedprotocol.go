package builder

import "github.com/usp-protocol/usp-go/pkg/usp"

// GetSupportedProtocolBuilder builds a GetSupportedProtocol request.
type GetSupportedProtocolBuilder struct {
	g usp.GetSupportedProtocol
}

// NewGetSupportedProtocolBuilder takes the controller's versions as a comma
// separated list, see version.FormatList.
func NewGetSupportedProtocolBuilder(versions string) *GetSupportedProtocolBuilder {
	return &GetSupportedProtocolBuilder{g: usp.GetSupportedProtocol{ControllerSupportedProtocolVersions: versions}}
}

// Build returns the request. The version list is not validated here; see
// version.ParseList.
func (b *GetSupportedProtocolBuilder) Build() (usp.GetSupportedProtocol, error) {
	return b.g, nil
}

// GetSupportedProtocolRespBuilder builds a GetSupportedProtocolResp.
type GetSupportedProtocolRespBuilder struct {
	r usp.GetSupportedProtocolResp
}

// NewGetSupportedProtocolRespBuilder takes the agent's versions as a comma
// separated list.
func NewGetSupportedProtocolRespBuilder(versions string) *GetSupportedProtocolRespBuilder {
	return &GetSupportedProtocolRespBuilder{r: usp.GetSupportedProtocolResp{AgentSupportedProtocolVersions: versions}}
}

// Build returns the GetSupportedProtocolResp. It never fails.
func (b *GetSupportedProtocolRespBuilder) Build() (usp.GetSupportedProtocolResp, error) {
	return b.r, nil
}
