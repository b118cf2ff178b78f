package cli_test

import "github.com/edumfa/edumfa-go/pkg/structs"

var fxAccept = structs.Response{
	ID:             1,
	JSONRPCVersion: "2.0",
	Status:         true,
	Value:          true,
	Authentication: structs.AuthenticationAccept,
	Message:        "matching 1 tokens",
	Serial:         "OATH00020121",
	Type:           "hotp",
}

var fxReject = structs.Response{
	ID:             1,
	JSONRPCVersion: "2.0",
	Status:         true,
	Value:          false,
	Authentication: structs.AuthenticationReject,
	Message:        "wrong otp value",
}

var fxTrigger = structs.Response{
	ID:                  1,
	JSONRPCVersion:      "2.0",
	Status:              true,
	Value:               false,
	Authentication:      structs.AuthenticationChallenge,
	Message:             "Please confirm!",
	PreferredClientMode: "push",
	TransactionID:       "02659936574063359702",
	Serial:              "PIPU0001F75E",
	Type:                "push",
	Multichallenge: []structs.Challenge{
		{
			Kind:          structs.ChallengeGeneric,
			Serial:        "PIPU0001F75E",
			Message:       "Please confirm!",
			ClientMode:    "poll",
			TransactionID: "02659936574063359702",
			Type:          "push",
		},
	},
}

var fxError = structs.Response{
	ID:             1,
	JSONRPCVersion: "2.0",
	Error:          &structs.Error{Code: 904, Message: "ERR904: The user can not be found in any resolver in this realm!"},
}

var fxTokens = []structs.TokenInfo{
	{
		Serial:      "OATH00123564",
		ID:          347,
		Description: "laptop key",
		TokenType:   "hotp",
		Active:      true,
		FailCount:   1,
		MaxFail:     10,
		OTPLength:   6,
		Username:    "testuser",
		UserRealm:   "defrealm",
	},
}

var fxRollout = structs.RolloutInfo{
	Serial: "TOTP0001A",
	GoogleURL: structs.ProvisioningURL{
		Description: "URL for google Authenticator",
		Value:       "otpauth://totp/TOTP0001A?secret=JBSWY3DPEHPK3PXP&digits=6&issuer=privacyIDEA",
	},
	OTPKey: structs.OTPKey{
		Value:    "seed://abc",
		ValueB32: "JBSWY3DPEHPK3PXP",
	},
}
