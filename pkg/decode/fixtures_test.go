package decode_test

const triggerResponseBody = `{
  "detail": {
    "attributes": null,
    "message": "Bitte geben Sie einen OTP-Wert ein: , Please confirm the authentication on your mobile device!",
    "messages": [
      "Bitte geben Sie einen OTP-Wert ein: ",
      "Please confirm the authentication on your mobile device!"
    ],
    "multi_challenge": [
      {
        "attributes": null,
        "message": "Bitte geben Sie einen OTP-Wert ein: ",
        "serial": "OATH00020121",
        "transaction_id": "02659936574063359702",
        "type": "hotp"
      },
      {
        "attributes": null,
        "message": "Please confirm the authentication on your mobile device!",
        "serial": "PIPU0001F75E",
        "transaction_id": "02659936574063359702",
        "type": "push"
      }
    ],
    "preferred_client_mode": "poll",
    "serial": "PIPU0001F75E",
    "threadid": 140040525666048,
    "transaction_id": "02659936574063359702",
    "transaction_ids": [
      "02659936574063359702",
      "02659936574063359702"
    ],
    "type": "push"
  },
  "id": 1,
  "jsonrpc": "2.0",
  "result": {
    "authentication": "CHALLENGE",
    "status": true,
    "value": false
  },
  "time": 1589446406.586073,
  "version": "privacyIDEA 3.2.1",
  "versionnumber": "3.2.1",
  "signature": "rsa_sha256_pss:AAAAAAAAAAA"
}`

const webauthnResponseBody = `{
  "detail": {
    "attributes": null,
    "message": "Please confirm with your WebAuthn token (Yubico U2F EE Serial 61730834)",
    "messages": ["Please confirm with your WebAuthn token (Yubico U2F EE Serial 61730834)"],
    "multi_challenge": [
      {
        "attributes": {
          "webAuthnSignRequest": {
            "allowCredentials": [
              {
                "id": "83De8z_CNqogB6aCyKs6dWIqwpOpzVoNaJ74lgcpuYN7l-95QsD3z-qqPADqsFlPwBXCMqEPssq75kqHCMQHDA",
                "transports": ["internal", "nfc", "usb", "ble"],
                "type": "public-key"
              }
            ],
            "challenge": "dHzSmZnElr223JUFXIF9wNNwJ-szYQXDJdZ46NVuQjU",
            "rpId": "office.netknights.it",
            "timeout": 60000,
            "userVerification": "preferred"
          }
        },
        "message": "Please confirm with your WebAuthn token (Yubico U2F EE Serial 61730834)",
        "serial": "WAN00025CE7",
        "transaction_id": "16786665691788289392",
        "type": "webauthn"
      }
    ],
    "serial": "WAN00025CE7",
    "threadid": 140040275289856,
    "transaction_id": "16786665691788289392",
    "transaction_ids": ["16786665691788289392"],
    "type": "webauthn"
  },
  "id": 1,
  "jsonrpc": "2.0",
  "result": {
    "authentication": "CHALLENGE",
    "status": true,
    "value": false
  },
  "time": 1611916339.8448942
}`

const errorResponseBody = `{
  "detail": null,
  "id": 1,
  "jsonrpc": "2.0",
  "result": {
    "error": {
      "code": 904,
      "message": "ERR904: The user can not be found in any resolver in this realm!"
    },
    "status": false
  },
  "time": 1649752303.936336,
  "version": "privacyIDEA 3.6.3",
  "signature": "rsa_sha256_pss:1c64db29cad0dc127d6..."
}`

const successResponseBody = `{
  "detail": {
    "message": "matching 1 tokens",
    "otplen": 6,
    "serial": "OATH00020121",
    "threadid": 140040525666048,
    "type": "hotp"
  },
  "id": 1,
  "jsonrpc": "2.0",
  "result": {
    "authentication": "ACCEPT",
    "status": true,
    "value": true
  },
  "time": 1589446498.2712759,
  "version": "privacyIDEA 3.2.1",
  "versionnumber": "3.2.1",
  "signature": "rsa_sha256_pss:BBBBBBBBBBB"
}`

const authResponseBody = `{
  "id": 1,
  "jsonrpc": "2.0",
  "result": {
    "status": true,
    "value": {
      "log_level": 20,
      "menus": ["components", "machines"],
      "realm": "",
      "rights": ["policydelete", "resync"],
      "role": "admin",
      "token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VybmFtZSI6ImFkbWluIiwicmVhbG0iOiIiLCJub25jZSI6IjVjOTc4NWM5OWU",
      "username": "admin",
      "logout_time": 120,
      "default_tokentype": "hotp",
      "user_details": false,
      "subscription_status": 0
    }
  },
  "time": 1589446794.8502703,
  "version": "privacyIDEA 3.2.1",
  "versionnumber": "3.2.1",
  "signature": "rsa_sha256_pss:CCCCCCCCCCCC"
}`

const tokenListResponseBody = `{
  "id": 1,
  "jsonrpc": "2.0",
  "result": {
    "status": true,
    "value": {
      "count": 1,
      "current": 1,
      "tokens": [
        {
          "active": true,
          "count": 2,
          "count_window": 10,
          "description": "laptop key",
          "failcount": 1,
          "id": 347,
          "info": {
            "hashlib": "sha1",
            "tokenkind": "software"
          },
          "locked": false,
          "maxfail": 10,
          "otplen": 6,
          "realms": ["defrealm"],
          "resolver": "deflocal",
          "revoked": false,
          "rollout_state": "",
          "serial": "OATH00123564",
          "sync_window": 1000,
          "tokentype": "hotp",
          "user_editable": false,
          "user_id": "5",
          "user_realm": "defrealm",
          "username": "testuser"
        }
      ]
    }
  },
  "time": 1589446811.2895032,
  "version": "privacyIDEA 3.2.1",
  "versionnumber": "3.2.1",
  "signature": "rsa_sha256_pss:DDDDDDDDDD"
}`

const rolloutResponseBody = `{
  "detail": {
    "googleurl": {
      "description": "URL for google Authenticator",
      "img": "data:image/png;base64,iVBdgfgsdfgRK5CYII=",
      "value": "otpauth://hotp/OATH0003A0AA?secret=4DK5JEEQMWY3VES7EWB4M36TAW4YC2YH&counter=1&digits=6&issuer=privacyIDEA"
    },
    "oathurl": {
      "description": "URL for OATH token",
      "img": "data:image/png;base64,iVBdgfgsdfgRK5CYII=",
      "value": "oathtoken:///addToken?name=OATH0003A0AA&lockdown=true&key=e0d5d49090586b1da92f2583c66fd305b9816d87"
    },
    "otpkey": {
      "description": "OTP seed",
      "img": "data:image/png;base64,iVBdgfgsdfgRK5CYII=",
      "value": "seed://e0d5d49090586b1da92f2583c66fd305b9816d87",
      "value_b32": "4DK5JEEQMWY3VES7EWB4M36TAW4YC2YH"
    },
    "rollout_state": "",
    "serial": "OATH0003A0AA",
    "threadid": 140470638720768
  },
  "id": 1,
  "jsonrpc": "2.0",
  "result": {
    "status": true,
    "value": true
  },
  "time": 1592834605.532012,
  "version": "privacyIDEA 3.3.3",
  "versionnumber": "3.3.3",
  "signature": "rsa_sha256_pss:EEEEEEEEEEEE"
}`
