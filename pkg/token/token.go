// Package token signs WebAuthn and U2F challenges with a local hid
// security key, producing the sign response JSON the server verifies.
package token

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/convox/go-u2fhost"
)

type allowedCredential struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// signRequest is the WebAuthnSignRequest shape the server attaches to a
// challenge. Unlike the browser API it is not wrapped in a publicKey
// envelope.
type signRequest struct {
	Challenge        string              `json:"challenge"`
	AllowCredentials []allowedCredential `json:"allowCredentials"`
	RpID             string              `json:"rpId"`
	Timeout          int                 `json:"timeout"`
	UserVerification string              `json:"userVerification"`
}

// webauthnSignResponse matches the parameter names the server expects
// for a WebAuthn authentication.
type webauthnSignResponse struct {
	CredentialID              string `json:"credentialid"`
	ClientData                string `json:"clientdata"`
	SignatureData             string `json:"signaturedata"`
	AuthenticatorData         string `json:"authenticatordata"`
	UserHandle                string `json:"userhandle,omitempty"`
	AssertionClientExtensions string `json:"assertionclientextensions,omitempty"`
}

type u2fSignRequest struct {
	Challenge string `json:"challenge"`
	KeyHandle string `json:"keyHandle"`
	AppID     string `json:"appId"`
}

type u2fSignResponse struct {
	ClientData    string `json:"clientData"`
	KeyHandle     string `json:"keyHandle"`
	SignatureData string `json:"signatureData"`
}

type deviceResult struct {
	Error    error
	Response *u2fhost.AuthenticateResponse
}

// SignWebAuthn presents the sign request to every attached security key
// and returns the sign response of the first one that answers.
func SignWebAuthn(req []byte) ([]byte, error) {
	var sreq signRequest
	if err := json.Unmarshal(req, &sreq); err != nil {
		return nil, err
	}

	challenge, err := fromStdToWebEncoding(sreq.Challenge)
	if err != nil {
		return nil, err
	}

	handles := make([]string, 0, len(sreq.AllowCredentials))

	for _, c := range sreq.AllowCredentials {
		kh, err := fromStdToWebEncoding(c.ID)
		if err != nil {
			return nil, err
		}
		handles = append(handles, kh)
	}

	timeout := 30 * time.Second

	if sreq.Timeout > 0 {
		timeout = time.Duration(sreq.Timeout) * time.Millisecond
	}

	build := func(kh string) *u2fhost.AuthenticateRequest {
		return &u2fhost.AuthenticateRequest{
			AppId:     sreq.RpID,
			Challenge: challenge,
			Facet:     fmt.Sprintf("https://%s", sreq.RpID),
			WebAuthn:  true,
			KeyHandle: kh,
		}
	}

	res, err := authenticate(handles, build, timeout)
	if err != nil {
		return nil, err
	}

	sres := webauthnSignResponse{
		CredentialID:      res.KeyHandle,
		ClientData:        res.ClientData,
		SignatureData:     res.SignatureData,
		AuthenticatorData: res.AuthenticatorData,
	}

	return json.Marshal(sres)
}

// SignU2F presents a legacy U2F sign request to every attached security
// key.
func SignU2F(req []byte) ([]byte, error) {
	var sreq u2fSignRequest
	if err := json.Unmarshal(req, &sreq); err != nil {
		return nil, err
	}

	build := func(kh string) *u2fhost.AuthenticateRequest {
		return &u2fhost.AuthenticateRequest{
			AppId:     sreq.AppID,
			Challenge: sreq.Challenge,
			Facet:     sreq.AppID,
			KeyHandle: kh,
		}
	}

	res, err := authenticate([]string{sreq.KeyHandle}, build, 30*time.Second)
	if err != nil {
		return nil, err
	}

	sres := u2fSignResponse{
		ClientData:    res.ClientData,
		KeyHandle:     res.KeyHandle,
		SignatureData: res.SignatureData,
	}

	return json.Marshal(sres)
}

func authenticate(handles []string, build func(kh string) *u2fhost.AuthenticateRequest, timeout time.Duration) (*u2fhost.AuthenticateResponse, error) {
	ds := u2fhost.Devices()

	if len(ds) == 0 {
		return nil, fmt.Errorf("no security key found")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ch := make(chan deviceResult)

	for _, d := range ds {
		go authenticateWait(ctx, d, handles, build, ch)
	}

	for range ds {
		res := <-ch

		if res.Error != nil {
			return nil, res.Error
		}

		if res.Response != nil {
			return res.Response, nil
		}
	}

	return nil, fmt.Errorf("no valid security key found")
}

func authenticateWait(ctx context.Context, d *u2fhost.HidDevice, handles []string, build func(kh string) *u2fhost.AuthenticateRequest, rch chan deviceResult) {
	if err := d.Open(); err != nil {
		rch <- deviceResult{Error: err}
		return
	}
	defer d.Close()

	timeout := time.NewTimer(2 * time.Second)
	defer timeout.Stop()

	ch := make(chan deviceResult)
	refresh := make(chan bool)

	go authenticateDevice(ctx, d, handles, build, ch, refresh)

	for {
		select {
		case <-timeout.C:
			rch <- deviceResult{Error: fmt.Errorf("timeout")}
			return
		case <-refresh:
			timeout.Reset(2 * time.Second)
		case res := <-ch:
			rch <- res
			return
		}
	}
}

func authenticateDevice(ctx context.Context, d *u2fhost.HidDevice, handles []string, build func(kh string) *u2fhost.AuthenticateRequest, ch chan deviceResult, refresh chan bool) {
	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			for _, kh := range handles {
				refresh <- true

				ares, err := d.Authenticate(build(kh))
				switch err.(type) {
				case *u2fhost.BadKeyHandleError:
				case *u2fhost.TestOfUserPresenceRequiredError:
				case nil:
					ch <- deviceResult{Response: ares}
					return
				default:
					ch <- deviceResult{Error: err}
					return
				}
			}
		}
	}
}

// fromStdToWebEncoding converts standard base64 to the raw url encoding
// expected by the hid library.
func fromStdToWebEncoding(s string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %s", err)
	}

	return base64.RawURLEncoding.EncodeToString(data), nil
}
