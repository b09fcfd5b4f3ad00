// Package describe turns message description files into USP values.
//
// A description is a YAML document (or JSON with comments) with an optional
// record section and an optional msg section. The record section selects the
// envelope; the msg section names exactly one body kind:
//
//	record:
//	  to_id: proto::agent
//	  from_id: proto::controller
//	  type: no_session_context
//	msg:
//	  msg_id: "42"
//	  get:
//	    param_paths: [Device.DeviceInfo.]
//	    max_depth: 2
//
// Without a record section the document describes a bare Msg. Records of type
// no_session_context and session_context carry the encoded msg as payload.
// Every value is assembled with the builders, so the same completeness and
// enumeration checks apply.
package describe
