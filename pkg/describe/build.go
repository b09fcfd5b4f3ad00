package describe

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/usp-protocol/usp-go/pkg/builder"
	"github.com/usp-protocol/usp-go/pkg/usp"
	"github.com/usp-protocol/usp-go/pkg/version"
)

func build(doc *document) (*Result, error) {
	res := &Result{}

	if doc.Msg != nil {
		msg, err := buildMsg(doc.Msg)
		if err != nil {
			return nil, &LoadError{Message: "invalid msg", Cause: err}
		}
		res.Msg = &msg
	}

	if doc.Record != nil {
		rec, err := buildRecord(doc.Record, res.Msg)
		if err != nil {
			return nil, &LoadError{Message: "invalid record", Cause: err}
		}
		res.Record = &rec
	}

	return res, nil
}

func buildRecord(d *recordDoc, msg *usp.Msg) (usp.Record, error) {
	b := builder.NewRecordBuilder().
		WithToID(d.ToID).
		WithFromID(d.FromID)
	if d.Version != "" {
		if _, err := version.Parse(d.Version); err != nil {
			return usp.Record{}, err
		}
		b.WithVersion(d.Version)
	}

	if d.PayloadSecurity != "" {
		if _, err := b.WithPayloadSecurityName(d.PayloadSecurity); err != nil {
			return usp.Record{}, err
		}
	}
	if d.MACSignature != "" {
		sig, err := hex.DecodeString(d.MACSignature)
		if err != nil {
			return usp.Record{}, fmt.Errorf("mac_signature: %w", err)
		}
		b.WithMACSignature(sig)
	}
	if d.SenderCert != "" {
		cert, err := hex.DecodeString(d.SenderCert)
		if err != nil {
			return usp.Record{}, fmt.Errorf("sender_cert: %w", err)
		}
		b.WithSenderCert(cert)
	}

	typ := d.Type
	if typ == "" && msg != nil {
		typ = "no_session_context"
	}

	var payload []byte
	if msg != nil {
		payload = usp.EncodeMsg(*msg)
	}

	switch typ {
	case "":
		// left unset; Build reports the missing record_type
	case "no_session_context":
		if msg == nil {
			return usp.Record{}, fmt.Errorf("record type %s needs a msg section", typ)
		}
		b.AsNoSessionContextRecord(payload)
	case "session_context":
		if msg == nil {
			return usp.Record{}, fmt.Errorf("record type %s needs a msg section", typ)
		}
		sc, err := buildSessionContext(d.SessionContext, payload)
		if err != nil {
			return usp.Record{}, err
		}
		b.AsSessionContextRecord(sc)
	case "websocket_connect", "uds_connect", "mqtt_connect", "stomp_connect", "disconnect":
		if msg != nil {
			return usp.Record{}, fmt.Errorf("record type %s carries no msg", typ)
		}
		if err := setConnectRecord(b, typ, d); err != nil {
			return usp.Record{}, err
		}
	default:
		return usp.Record{}, fmt.Errorf("unknown record type %q", typ)
	}

	return b.Build()
}

func setConnectRecord(b *builder.RecordBuilder, typ string, d *recordDoc) error {
	switch typ {
	case "websocket_connect":
		b.AsWebSocketConnectRecord()
	case "uds_connect":
		b.AsUDSConnectRecord()
	case "mqtt_connect":
		m := d.MQTT
		if m == nil {
			m = &mqttDoc{}
		}
		if _, err := b.AsMQTTConnectRecord(m.Version, m.SubscribedTopic); err != nil {
			return err
		}
	case "stomp_connect":
		s := d.STOMP
		if s == nil {
			s = &stompDoc{}
		}
		if _, err := b.AsSTOMPConnectRecord(s.Version, s.SubscribedDestination); err != nil {
			return err
		}
	case "disconnect":
		dc := d.Disconnect
		if dc == nil {
			dc = &disconnectDoc{}
		}
		b.AsDisconnectRecord(dc.Reason, dc.ReasonCode)
	}
	return nil
}

func buildSessionContext(d *sessionContextDoc, payload []byte) (usp.SessionContext, error) {
	if d == nil {
		d = &sessionContextDoc{}
	}
	b := builder.NewSessionContextBuilder(d.SessionID, d.SequenceID).
		WithExpectedID(d.ExpectedID).
		WithRetransmitID(d.RetransmitID).
		AddPayload(payload)

	if d.PayloadSARState != "" {
		s, err := usp.ParsePayloadSARState(d.PayloadSARState)
		if err != nil {
			return usp.SessionContext{}, err
		}
		b.WithPayloadSARState(s)
	}
	if d.PayloadrecSARState != "" {
		s, err := usp.ParsePayloadSARState(d.PayloadrecSARState)
		if err != nil {
			return usp.SessionContext{}, err
		}
		b.WithPayloadrecSARState(s)
	}
	return b.Build()
}

func buildMsg(d *msgDoc) (usp.Msg, error) {
	body, err := buildBody(d)
	if err != nil {
		return usp.Msg{}, err
	}

	id := d.MsgID
	if id == "" {
		id = uuid.NewString()
	}
	return builder.NewMsgBuilder().WithMsgID(id).WithBody(body).Build()
}

// bodyBuilders maps each body key to its constructor. Exactly one key may be
// present in a msg section.
var bodyBuilders = map[string]func(*msgDoc) (usp.Body, error){
	"get":                    buildGet,
	"get_instances":          buildGetInstances,
	"get_supported_dm":       buildGetSupportedDM,
	"get_supported_protocol": buildGetSupportedProtocol,
	"set":                    buildSet,
	"add":                    buildAdd,
	"delete":                 buildDelete,
	"operate":                buildOperate,
	"notify":                 buildNotify,
	"notify_resp":            buildNotifyResp,
	"register":               buildRegister,
	"deregister":             buildDeregister,
	"error":                  buildError,
}

func presentBodies(d *msgDoc) []string {
	present := map[string]bool{
		"get":                    d.Get != nil,
		"get_instances":          d.GetInstances != nil,
		"get_supported_dm":       d.GetSupportedDM != nil,
		"get_supported_protocol": d.GetSupportedProtocol != nil,
		"set":                    d.Set != nil,
		"add":                    d.Add != nil,
		"delete":                 d.Delete != nil,
		"operate":                d.Operate != nil,
		"notify":                 d.Notify != nil,
		"notify_resp":            d.NotifyResp != nil,
		"register":               d.Register != nil,
		"deregister":             d.Deregister != nil,
		"error":                  d.Error != nil,
	}
	var keys []string
	for k, ok := range present {
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func buildBody(d *msgDoc) (usp.Body, error) {
	keys := presentBodies(d)
	switch len(keys) {
	case 0:
		return nil, fmt.Errorf("msg has no body")
	case 1:
		return bodyBuilders[keys[0]](d)
	default:
		return nil, fmt.Errorf("msg has more than one body: %v", keys)
	}
}

func buildGet(d *msgDoc) (usp.Body, error) {
	return builder.NewGetBuilder().
		WithParamPaths(d.Get.ParamPaths).
		WithMaxDepth(d.Get.MaxDepth).
		Build()
}

func buildGetInstances(d *msgDoc) (usp.Body, error) {
	return builder.NewGetInstancesBuilder().
		WithObjPaths(d.GetInstances.ObjPaths).
		WithFirstLevelOnly(d.GetInstances.FirstLevelOnly).
		Build()
}

func buildGetSupportedDM(d *msgDoc) (usp.Body, error) {
	g := d.GetSupportedDM
	return builder.NewGetSupportedDMBuilder().
		WithObjPaths(g.ObjPaths).
		WithFirstLevelOnly(g.FirstLevelOnly).
		WithReturnCommands(g.ReturnCommands).
		WithReturnEvents(g.ReturnEvents).
		WithReturnParams(g.ReturnParams).
		WithReturnUniqueKeySets(g.ReturnUniqueKeySets).
		Build()
}

// buildGetSupportedProtocol defaults an empty version list to every
// version this module supports.
func buildGetSupportedProtocol(d *msgDoc) (usp.Body, error) {
	versions := d.GetSupportedProtocol.Versions
	if versions == "" {
		versions = version.SupportedList()
	} else if _, err := version.ParseList(versions); err != nil {
		return nil, err
	}
	return builder.NewGetSupportedProtocolBuilder(versions).Build()
}

func buildSet(d *msgDoc) (usp.Body, error) {
	objs := make([]usp.UpdateObject, 0, len(d.Set.UpdateObjs))
	for _, o := range d.Set.UpdateObjs {
		ob := builder.NewUpdateObjectBuilder(o.ObjPath)
		for _, ps := range o.ParamSettings {
			ob.AddParamSetting(ps.Param, ps.Value, ps.Required)
		}
		obj, err := ob.Build()
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return builder.NewSetBuilder().
		WithAllowPartial(d.Set.AllowPartial).
		WithUpdateObjs(objs).
		Build()
}

func buildAdd(d *msgDoc) (usp.Body, error) {
	objs := make([]usp.CreateObject, 0, len(d.Add.CreateObjs))
	for _, o := range d.Add.CreateObjs {
		ob := builder.NewCreateObjectBuilder(o.ObjPath)
		for _, ps := range o.ParamSettings {
			ob.AddParamSetting(ps.Param, ps.Value, ps.Required)
		}
		obj, err := ob.Build()
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return builder.NewAddBuilder().
		WithAllowPartial(d.Add.AllowPartial).
		WithCreateObjs(objs).
		Build()
}

func buildDelete(d *msgDoc) (usp.Body, error) {
	return builder.NewDeleteBuilder().
		WithAllowPartial(d.Delete.AllowPartial).
		WithObjPaths(d.Delete.ObjPaths).
		Build()
}

func buildOperate(d *msgDoc) (usp.Body, error) {
	o := d.Operate
	return builder.NewOperateBuilder(o.Command).
		WithCommandKey(o.CommandKey).
		WithSendResp(o.SendResp).
		WithInputArgs(o.InputArgs).
		Build()
}

func buildNotify(d *msgDoc) (usp.Body, error) {
	n := d.Notify
	b := builder.NewNotifyBuilder(n.SubscriptionID).WithSendResp(n.SendResp)

	set := 0
	if e := n.Event; e != nil {
		b.WithEvent(e.ObjPath, e.EventName, e.Params)
		set++
	}
	if v := n.ValueChange; v != nil {
		b.WithValueChange(v.ParamPath, v.ParamValue)
		set++
	}
	if c := n.ObjectCreation; c != nil {
		b.WithObjectCreation(c.ObjPath, c.UniqueKeys)
		set++
	}
	if del := n.ObjectDeletion; del != nil {
		b.WithObjectDeletion(del.ObjPath)
		set++
	}
	if oc := n.OperationComplete; oc != nil {
		if oc.Failure != nil {
			b.WithOperationCompleteFailure(oc.ObjPath, oc.CommandName, oc.CommandKey, int64(oc.Failure.ErrCode), oc.Failure.ErrMsg)
		} else {
			b.WithOperationCompleteOutput(oc.ObjPath, oc.CommandName, oc.CommandKey, oc.OutputArgs)
		}
		set++
	}
	if ob := n.OnBoardRequest; ob != nil {
		b.WithOnBoardRequest(ob.OUI, ob.ProductClass, ob.SerialNumber, ob.ProtocolVersion)
		set++
	}
	if set > 1 {
		return nil, fmt.Errorf("notify has %d notifications, want one", set)
	}

	return b.Build()
}

func buildNotifyResp(d *msgDoc) (usp.Body, error) {
	return builder.NewNotifyRespBuilder(d.NotifyResp.SubscriptionID).Build()
}

func buildRegister(d *msgDoc) (usp.Body, error) {
	return builder.NewRegisterBuilder().
		WithAllowPartial(d.Register.AllowPartial).
		WithRegPaths(d.Register.RegPaths).
		Build()
}

func buildDeregister(d *msgDoc) (usp.Body, error) {
	return builder.NewDeregisterBuilder().WithPaths(d.Deregister.Paths).Build()
}

func buildError(d *msgDoc) (usp.Body, error) {
	e := d.Error
	b := builder.NewErrorBuilder().SetErrMsg(e.ErrMsg)
	if e.ErrCode != nil {
		b.SetErrCode(int64(*e.ErrCode))
	}
	for _, pe := range e.ParamErrs {
		b.AddParamErr(pe.ParamPath, int64(pe.ErrCode), pe.ErrMsg)
	}
	return b.Build()
}
