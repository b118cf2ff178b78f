// Package decode turns raw server bodies into the typed model of
// pkg/structs. Field extraction is defensive: missing or wrong-typed
// fields yield zero values instead of failures, so that partial
// information stays usable.
package decode

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/convox/logger"
	"github.com/edumfa/edumfa-go/pkg/structs"
	"github.com/pkg/errors"
)

var log = logger.New("ns=decode")

// Response decodes a server body into a Response. An empty body yields
// nil. A body that is not valid JSON yields a Response carrying only
// the raw body.
func Response(raw string) *structs.Response {
	if raw == "" {
		return nil
	}

	r := &structs.Response{
		Raw:            raw,
		Messages:       []string{},
		Multichallenge: []structs.Challenge{},
	}

	var obj map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		log.At("response").Error(err)
		return r
	}

	r.ID = getInt(obj, "id")
	r.Version = getString(obj, "versionnumber")
	r.Signature = getString(obj, "signature")
	r.JSONRPCVersion = getString(obj, "jsonrpc")

	if result := getObject(obj, "result"); result != nil {
		r.Authentication = structs.AuthenticationStatusFromString(getString(result, "authentication"))
		r.Status = getBool(result, "status")
		r.Value = getBool(result, "value")

		if e := getObject(result, "error"); e != nil {
			r.Error = &structs.Error{Code: getInt(e, "code"), Message: getString(e, "message")}
			return r
		}
	}

	if detail := getObject(obj, "detail"); detail != nil {
		decodeDetail(r, detail)
	}

	return r
}

func decodeDetail(r *structs.Response, detail map[string]interface{}) {
	// Some client mode names are translated for the plugins
	switch mode := getString(detail, "preferred_client_mode"); mode {
	case "poll":
		r.PreferredClientMode = structs.TokenTypePush
	case "interactive":
		r.PreferredClientMode = structs.TokenTypeOTP
	default:
		r.PreferredClientMode = mode
	}

	r.Message = getString(detail, "message")
	r.Image = stripQuotes(getString(detail, "image"))
	r.Serial = getString(detail, "serial")
	r.TransactionID = getString(detail, "transaction_id")
	r.Type = getString(detail, "type")
	r.OTPLength = getInt(detail, "otplen")

	for _, m := range getArray(detail, "messages") {
		if s, ok := m.(string); ok {
			r.Messages = append(r.Messages, s)
		}
	}

	for _, e := range getArray(detail, "multi_challenge") {
		entry, ok := e.(map[string]interface{})
		if !ok {
			continue
		}

		c := structs.Challenge{
			Serial:        getString(entry, "serial"),
			Message:       getString(entry, "message"),
			ClientMode:    getString(entry, "client_mode"),
			Image:         stripQuotes(getString(entry, "image")),
			TransactionID: getString(entry, "transaction_id"),
			Type:          getString(entry, "type"),
			Attributes:    []string{},
		}

		switch c.Type {
		case structs.TokenTypeWebAuthn:
			c.Kind = structs.ChallengeWebAuthn
			c.SignRequest = attributeJSON(entry, "webAuthnSignRequest")
		case structs.TokenTypeU2F:
			c.Kind = structs.ChallengeU2F
			c.SignRequest = attributeJSON(entry, "u2fSignRequest")
		default:
			c.Kind = structs.ChallengeGeneric
		}

		r.Multichallenge = append(r.Multichallenge, c)
	}
}

// AuthToken extracts the bearer token from a /auth response at
// result.value.token.
func AuthToken(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("auth response was empty")
	}

	var obj map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return "", errors.Wrap(err, "parse auth response")
	}

	value := getObject(getObject(obj, "result"), "value")

	token := getString(value, "token")
	if token == "" {
		return "", errors.New("auth response did not contain a token")
	}

	return token, nil
}

// TokenInfoList decodes a /token/ response into the list of enrolled
// tokens.
func TokenInfoList(raw string) ([]structs.TokenInfo, error) {
	if raw == "" {
		return nil, errors.New("token response was empty")
	}

	var obj map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, errors.Wrap(err, "parse token response")
	}

	infos := []structs.TokenInfo{}

	value := getObject(getObject(obj, "result"), "value")

	for _, t := range getArray(value, "tokens") {
		entry, ok := t.(map[string]interface{})
		if !ok {
			continue
		}

		infos = append(infos, tokenInfo(entry))
	}

	return infos, nil
}

func tokenInfo(obj map[string]interface{}) structs.TokenInfo {
	info := structs.TokenInfo{
		Serial:       getString(obj, "serial"),
		ID:           getInt(obj, "id"),
		Description:  getString(obj, "description"),
		TokenType:    getString(obj, "tokentype"),
		Image:        getString(obj, "image"),
		Active:       getBool(obj, "active"),
		Locked:       getBool(obj, "locked"),
		Revoked:      getBool(obj, "revoked"),
		UserEditable: getBool(obj, "user_editable"),
		Count:        getInt(obj, "count"),
		CountWindow:  getInt(obj, "count_window"),
		FailCount:    getInt(obj, "failcount"),
		MaxFail:      getInt(obj, "maxfail"),
		SyncWindow:   getInt(obj, "sync_window"),
		OTPLength:    getInt(obj, "otplen"),
		Username:     getString(obj, "username"),
		UserID:       getString(obj, "user_id"),
		UserRealm:    getString(obj, "user_realm"),
		Resolver:     getString(obj, "resolver"),
		RolloutState: getString(obj, "rollout_state"),
		Info:         map[string]string{},
		Realms:       []string{},
	}

	for k, v := range getObject(obj, "info") {
		if s, ok := v.(string); ok {
			info.Info[k] = s
		}
	}

	for _, r := range getArray(obj, "realms") {
		if s, ok := r.(string); ok {
			info.Realms = append(info.Realms, s)
		}
	}

	if data, err := json.Marshal(obj); err == nil {
		info.Raw = string(data)
	}

	return info
}

// Rollout decodes a /token/init response.
func Rollout(raw string) *structs.RolloutInfo {
	rinfo := &structs.RolloutInfo{Raw: raw}

	if raw == "" {
		return rinfo
	}

	var obj map[string]interface{}

	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		log.At("rollout").Error(err)
		return rinfo
	}

	if e := getObject(getObject(obj, "result"), "error"); e != nil {
		rinfo.Error = &structs.Error{Code: getInt(e, "code"), Message: getString(e, "message")}
		return rinfo
	}

	detail := getObject(obj, "detail")
	if detail == nil {
		return rinfo
	}

	if g := getObject(detail, "googleurl"); g != nil {
		rinfo.GoogleURL = provisioningURL(g)
	}

	if o := getObject(detail, "oathurl"); o != nil {
		rinfo.OATHURL = provisioningURL(o)
	}

	if o := getObject(detail, "otpkey"); o != nil {
		rinfo.OTPKey = structs.OTPKey{
			Description: getString(o, "description"),
			Image:       getString(o, "img"),
			Value:       getString(o, "value"),
			ValueB32:    getString(o, "value_b32"),
		}
	}

	rinfo.Serial = getString(detail, "serial")
	rinfo.RolloutState = getString(detail, "rollout_state")

	return rinfo
}

func provisioningURL(obj map[string]interface{}) structs.ProvisioningURL {
	return structs.ProvisioningURL{
		Description: getString(obj, "description"),
		Image:       getString(obj, "img"),
		Value:       getString(obj, "value"),
	}
}

// FormatJSON re-indents a JSON body for logging. Bodies that are not
// valid JSON are returned unchanged.
func FormatJSON(raw string) string {
	var buf bytes.Buffer

	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return raw
	}

	return buf.String()
}

// attributeJSON returns the named challenge attribute re-serialized as
// JSON text, or an empty string if absent.
func attributeJSON(challenge map[string]interface{}, name string) string {
	attrs := getObject(challenge, "attributes")
	if attrs == nil {
		return ""
	}

	v, ok := attrs[name]
	if !ok || v == nil {
		return ""
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return string(data)
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

func getObject(obj map[string]interface{}, key string) map[string]interface{} {
	if obj == nil {
		return nil
	}

	if m, ok := obj[key].(map[string]interface{}); ok {
		return m
	}

	return nil
}

func getArray(obj map[string]interface{}, key string) []interface{} {
	if obj == nil {
		return nil
	}

	if a, ok := obj[key].([]interface{}); ok {
		return a
	}

	return nil
}

func getString(obj map[string]interface{}, key string) string {
	if obj == nil {
		return ""
	}

	if s, ok := obj[key].(string); ok {
		return s
	}

	return ""
}

func getInt(obj map[string]interface{}, key string) int {
	if obj == nil {
		return 0
	}

	if f, ok := obj[key].(float64); ok {
		return int(f)
	}

	return 0
}

func getBool(obj map[string]interface{}, key string) bool {
	if obj == nil {
		return false
	}

	if b, ok := obj[key].(bool); ok {
		return b
	}

	return false
}
