// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity

import (
	"encoding/json"
	"fmt"
)

// Responder renders terminal login outcomes for the popup-window flow.
//
// The rendered document posts the outcome to the opener window at a fixed,
// configured origin and then closes itself. It is presentation-only: no
// retries, no logging, no state.
type Responder struct {
	origin string
}

// NewResponder creates a Responder that posts to the given browser origin.
func NewResponder(origin string) *Responder {
	return &Responder{origin: origin}
}

// callbackDocument is the HTML bridge served to the popup window. The %s
// placeholders receive a JSON-encoded message object and origin string;
// encoding/json escapes angle brackets, so user-controlled nicknames cannot
// break out of the script element.
const callbackDocument = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Daylist Login</title>
</head>
<body>
    <script>
        if (window.opener) {
            window.opener.postMessage(%s, %s);
        }
        window.close();
    </script>
</body>
</html>
`

// SuccessHTML renders the bridge page for a resolved login.
//
// The message type is "<PROVIDER>_LOGIN_SUCCESS" and the data payload is the
// same shape the JSON login endpoint returns.
func (responder *Responder) SuccessHTML(loginType LoginType, resolution *Resolution) string {
	return responder.render(string(loginType)+"_LOGIN_SUCCESS", resolution)
}

// ErrorHTML renders the bridge page for a failed login. Only the client-safe
// message crosses the boundary.
func (responder *Responder) ErrorHTML(loginType LoginType, message string) string {
	return responder.render(string(loginType)+"_LOGIN_ERROR", map[string]string{"error": message})
}

// render assembles the bridge document around a typed message envelope.
func (responder *Responder) render(messageType string, data any) string {
	message, err := json.Marshal(map[string]any{
		"type": messageType,
		"data": data,
	})
	if err != nil {
		// Resolution and map payloads are always marshalable; this branch
		// exists to keep the signature infallible for handlers.
		message = []byte(`{"type":"LOGIN_ERROR","data":{"error":"encoding failure"}}`)
	}

	origin, _ := json.Marshal(responder.origin)

	return fmt.Sprintf(callbackDocument, message, origin)
}
