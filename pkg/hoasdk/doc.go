/*
Package hoasdk is a Go client for the HOA board API.

# SDKClient vs Session

SDKClient covers the public endpoints: health checks, the key set, and the
account flows that do not need a token. Register and Login return a Session,
which carries the bearer token for everything else:

	client := hoasdk.NewSDKClient("https://hoa.example.com")

	session, err := client.Login(ctx, "dana@example.com", password)
	if err != nil {
		return err
	}

	c, err := session.CreateCommunity(ctx, hoasdk.CommunityRequest{Name: "Oak Street HOA"})

Every community scoped call takes the community id first. The server checks
membership and role on each request, so a Session never caches permissions.

# Errors

Non 2xx responses come back as *APIError with the server's error code:

	_, err := session.Vote(ctx, communityID, pollID, optionID)
	if hoasdk.IsCode(err, hoasdk.ErrorCodePollClosed) {
		// too late
	}

StatusCode(err) returns the HTTP status for coarse handling such as 403 or
404.

# Tokens

Access tokens last a week and are not refreshed. Check Session.Expired and
sign in again when it reports true.
*/
package hoasdk
