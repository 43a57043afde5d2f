/*
Package marqueesdk is a client for the Marquee catalog service, and the home
of the wire types the server writes.

# SDKClient vs Session

SDKClient covers the public routes: health probes, registration and login.
Register and Login both return a Session, which carries the bearer token and
is used for every catalog call:

	client := marqueesdk.NewSDKClient("http://localhost:3000")

	session, err := client.Login(ctx, "alice", "correct horse")
	if err != nil {
		return err
	}

	genres, err := session.ListLookups(ctx, "genre")

Tokens live for an hour and are not refreshed. When a catalog call fails with
a 401, log in again.

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the {"error","error_description"} body:

	var apiErr *marqueesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == marqueesdk.ErrorCodeUsernameTaken {
		// pick another name
	}

Sessions are safe for concurrent use.
*/
package marqueesdk
