package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store/drivers/sqlite"
	"github.com/aussiebroadwan/hoaboard/pkg/cryptox"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "hoa-http-test")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Every test client shares one address.
	relaxed := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type clock struct {
	mu     sync.Mutex
	offset time.Duration
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Now().UTC().Add(c.offset)
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset += d
}

type testServer struct {
	URL    string
	client *hoasdk.SDKClient
	clock  *clock
}

// newTestServer wires the real router over an in memory store. Feature
// services share a settable clock; identity keeps wall time so issued tokens
// verify.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "hoaboard-test", NumKeys: 2})
	require.NoError(t, err)

	clk := &clock{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(km.KeySet, km.Verifier, "test", st, logger)
	router.Gate = &service.Gate{Store: st}
	router.IdentityService = &service.IdentityService{
		Store:     st,
		Keys:      km,
		Issuer:    "hoaboard-test",
		PublicURL: "http://localhost",
		Mailer:    service.LogMailer{Logger: logger},
	}
	router.CommunityService = &service.CommunityService{Store: st, Now: clk.Now}
	router.PollService = &service.PollService{Store: st, Now: clk.Now}
	router.PotluckService = &service.PotluckService{Store: st, Now: clk.Now}
	router.SuggestionService = &service.SuggestionService{Store: st, Now: clk.Now}
	router.QuestionService = &service.QuestionService{Store: st, Now: clk.Now}
	router.CalendarService = &service.CalendarService{Store: st, Now: clk.Now}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := hoasdk.NewSDKClient(srv.URL)
	client.HTTPClient = srv.Client()
	return &testServer{URL: srv.URL, client: client, clock: clk}
}

func (ts *testServer) register(t *testing.T, name string) *hoasdk.Session {
	t.Helper()
	s, err := ts.client.Register(context.Background(), hoasdk.RegisterRequest{
		Email:    name + "@example.com",
		Password: "Sup3rSecret",
		Name:     name,
	})
	require.NoError(t, err)
	return s
}

// member registers name and walks them through join and accept.
func (ts *testServer) member(t *testing.T, admin *hoasdk.Session, c *hoasdk.Community, name, role string) *hoasdk.Session {
	t.Helper()
	ctx := context.Background()

	s := ts.register(t, name)
	_, err := s.JoinCommunity(ctx, c.InviteCode)
	require.NoError(t, err)
	_, err = admin.AcceptMember(ctx, c.ID, s.User().ID)
	require.NoError(t, err)
	if role != "resident" {
		_, err = admin.ChangeRole(ctx, c.ID, s.User().ID, role)
		require.NoError(t, err)
	}
	return s
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, hoasdk.StatusCode(err), err.Error())
	require.True(t, hoasdk.IsCode(err, code), err.Error())
}

func TestHealthEndpoints(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	live, err := ts.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := ts.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)

	jwks, err := ts.client.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 2)
}

func TestSwaggerDocs(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Equal(t, "HOA Board API", doc.Info.Title)
	require.Contains(t, doc.Paths, "/v1/communities/{communityID}/polls/{pollID}/vote")
	require.Contains(t, doc.Paths["/v1/communities/{communityID}/members/{userID}/role"], "put")
	require.Contains(t, doc.Paths["/v1/auth/login"], "post")
}

func TestAuthenticationRequired(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	anon := ts.client.NewSession("", time.Time{})
	_, err := anon.ListCommunities(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, hoasdk.ErrorCodeUnauthenticated)

	forged := ts.client.NewSession("not-a-jwt", time.Time{})
	_, err = forged.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, hoasdk.ErrorCodeUnauthenticated)
}

func TestIdentityFlow(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	s := ts.register(t, "dana")
	require.Equal(t, "dana@example.com", s.User().Email)

	_, err := ts.client.Register(ctx, hoasdk.RegisterRequest{Email: "dana@example.com", Password: "Sup3rSecret", Name: "x"})
	requireAPIError(t, err, http.StatusConflict, hoasdk.ErrorCodeEmailTaken)

	_, err = ts.client.Login(ctx, "dana@example.com", "wrong")
	requireAPIError(t, err, http.StatusUnauthorized, hoasdk.ErrorCodeInvalidLogin)

	again, err := ts.client.Login(ctx, "DANA@example.com", "Sup3rSecret")
	require.NoError(t, err)

	me, err := again.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, s.User().ID, me.User.ID)
	require.Empty(t, me.Communities)
	require.NotNil(t, me.TokenExpiresAt)
	require.WithinDuration(t, again.ExpiresAt(), *me.TokenExpiresAt, time.Second)

	u, err := again.UpdateProfile(ctx, hoasdk.UpdateProfileRequest{Name: "Dana R", Email: "dana@example.com", Phone: "555-0100"})
	require.NoError(t, err)
	require.Equal(t, "Dana R", u.Name)

	require.NoError(t, again.ChangePassword(ctx, "Sup3rSecret", "N3wSecret1"))

	msg, err := ts.client.ForgotPassword(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, msg.Message)

	_, err = ts.client.ResetPassword(ctx, "bogus", "N3wSecret2")
	requireAPIError(t, err, http.StatusBadRequest, "invalid_reset_token")
}

func TestMalformedJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/auth/login", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "invalid_request")
}

// Scenario: create, join with a lower cased code, accept.
func TestMembershipOverHTTP(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	a := ts.register(t, "a")
	b := ts.register(t, "b")

	c, err := a.CreateCommunity(ctx, hoasdk.CommunityRequest{Name: "Oak Street HOA"})
	require.NoError(t, err)
	require.NotEmpty(t, c.InviteCode)

	joined, err := b.JoinCommunity(ctx, strings.ToLower(c.InviteCode))
	require.NoError(t, err)
	require.Equal(t, "pending", joined.Membership.Status)
	require.Empty(t, joined.Community.InviteCode, "only admins see the code")

	_, err = b.JoinCommunity(ctx, c.InviteCode)
	requireAPIError(t, err, http.StatusConflict, hoasdk.ErrorCodeAlreadyRequested)

	_, err = b.GetCommunity(ctx, c.ID)
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeNotMember)

	pending, err := a.ListPendingMembers(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	m, err := a.AcceptMember(ctx, c.ID, b.User().ID)
	require.NoError(t, err)
	require.Equal(t, "accepted", m.Status)
	require.Equal(t, "resident", m.Role)

	d, err := b.GetCommunity(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "resident", d.MyRole)
	require.Empty(t, d.Community.InviteCode)
	require.Len(t, d.Members, 2)

	_, err = b.ListPendingMembers(ctx, c.ID)
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeForbidden)

	_, err = a.ChangeRole(ctx, c.ID, a.User().ID, "resident")
	requireAPIError(t, err, http.StatusConflict, hoasdk.ErrorCodeSelfDemotion)

	err = a.LeaveCommunity(ctx, c.ID)
	requireAPIError(t, err, http.StatusConflict, hoasdk.ErrorCodeSoleAdmin)

	mine, err := b.ListCommunities(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, b.LeaveCommunity(ctx, c.ID))
	_, err = b.GetCommunity(ctx, c.ID)
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeNotMember)

	code, err := a.RegenerateInviteCode(ctx, c.ID)
	require.NoError(t, err)
	_, err = b.JoinCommunity(ctx, c.InviteCode)
	requireAPIError(t, err, http.StatusNotFound, hoasdk.ErrorCodeInvalidInvite)
	_, err = b.JoinCommunity(ctx, code)
	require.NoError(t, err)
}

// Scenario: a one hour poll, one Yes vote, results appear after close.
func TestPollOverHTTP(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	admin := ts.register(t, "admin")
	c, err := admin.CreateCommunity(ctx, hoasdk.CommunityRequest{Name: "Oak Street HOA"})
	require.NoError(t, err)
	board := ts.member(t, admin, c, "board", "board_member")
	resident := ts.member(t, admin, c, "resident", "resident")

	_, err = resident.CreatePoll(ctx, c.ID, hoasdk.PollRequest{Question: "q", Options: []string{"a", "b"}})
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeForbidden)

	closes := ts.clock.Now().Add(time.Hour)
	p, err := board.CreatePoll(ctx, c.ID, hoasdk.PollRequest{
		Question: "Install speed bumps?",
		ClosesAt: &closes,
		Options:  []string{"Yes", "No"},
	})
	require.NoError(t, err)
	require.Len(t, p.Options, 2)
	yes, no := p.Options[0], p.Options[1]

	_, err = resident.Vote(ctx, c.ID, p.ID, yes.ID, no.ID)
	requireAPIError(t, err, http.StatusBadRequest, "invalid_selection_count")

	d, err := resident.Vote(ctx, c.ID, p.ID, yes.ID)
	require.NoError(t, err)
	require.True(t, d.HasVoted)
	require.Equal(t, []string{yes.ID}, d.MyOptionIDs)
	require.False(t, d.CanSeeResults)
	require.Empty(t, d.Results)
	require.NotNil(t, d.SecondsRemaining)

	ts.clock.Advance(2 * time.Hour)

	_, err = resident.Vote(ctx, c.ID, p.ID, no.ID)
	requireAPIError(t, err, http.StatusBadRequest, hoasdk.ErrorCodePollClosed)

	d, err = resident.GetPoll(ctx, c.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, "closed", d.State)
	require.True(t, d.CanSeeResults)
	require.Len(t, d.Results, 2)
	require.Equal(t, 1, d.Results[0].Votes)
	require.Equal(t, 100, d.Results[0].Percentage)
	require.Equal(t, 0, d.Results[1].Votes)
	require.Equal(t, 0, d.Results[1].Percentage)

	outsider := ts.register(t, "outsider")
	_, err = outsider.GetPoll(ctx, c.ID, p.ID)
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeNotMember)

	multi, err := board.CreatePoll(ctx, c.ID, hoasdk.PollRequest{
		Question: "Which amenities?",
		PollType: "multiple",
		Options:  []string{"Pool", "Gym"},
	})
	require.NoError(t, err)
	_, err = resident.Vote(ctx, c.ID, multi.ID, multi.Options[0].ID, multi.Options[1].ID)
	require.NoError(t, err)

	_, err = board.UpdatePoll(ctx, c.ID, multi.ID, hoasdk.PollRequest{Question: "Which amenity?", PollType: "single"})
	requireAPIError(t, err, http.StatusBadRequest, hoasdk.ErrorCodePollTypeLocked)
}

func TestPotluckOverHTTP(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	admin := ts.register(t, "admin")
	c, err := admin.CreateCommunity(ctx, hoasdk.CommunityRequest{Name: "Oak Street HOA"})
	require.NoError(t, err)

	two := 2
	p, err := admin.CreatePotluck(ctx, c.ID, hoasdk.PotluckRequest{
		Title:         "Summer Potluck",
		EventDate:     "2026-06-20",
		MaxAppetizers: &two,
	})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"appetizer": 2}, p.Limits)

	var first *hoasdk.Signup
	for i, name := range []string{"ann", "ben"} {
		s := ts.member(t, admin, c, name, "resident")
		su, err := s.SignUp(ctx, c.ID, p.ID, hoasdk.SignupRequest{DishName: "Dip", Category: "appetizer"})
		require.NoError(t, err)
		if i == 0 {
			first = su
			_, err = s.UpdateSignup(ctx, c.ID, p.ID, su.ID, hoasdk.SignupRequest{DishName: "Salsa", Category: "appetizer"})
			require.NoError(t, err)
		}
	}

	cal := ts.member(t, admin, c, "cal", "resident")
	_, err = cal.SignUp(ctx, c.ID, p.ID, hoasdk.SignupRequest{DishName: "Nachos", Category: "appetizer"})
	requireAPIError(t, err, http.StatusConflict, hoasdk.ErrorCodeCategoryFull)

	err = cal.DeleteSignup(ctx, c.ID, p.ID, first.ID)
	requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeForbidden)

	d, err := cal.GetPotluck(ctx, c.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, d.Signups, 2)
	require.Equal(t, 2, d.Counts["appetizer"])

	require.NoError(t, admin.DeleteSignup(ctx, c.ID, p.ID, first.ID))
	_, err = cal.SignUp(ctx, c.ID, p.ID, hoasdk.SignupRequest{DishName: "Nachos", Category: "appetizer"})
	require.NoError(t, err)
}

func TestSuggestionsQuestionsAndCalendarOverHTTP(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	admin := ts.register(t, "admin")
	c, err := admin.CreateCommunity(ctx, hoasdk.CommunityRequest{Name: "Oak Street HOA"})
	require.NoError(t, err)
	board := ts.member(t, admin, c, "board", "board_member")
	resident := ts.member(t, admin, c, "resident", "resident")
	neighbour := ts.member(t, admin, c, "neighbour", "resident")

	t.Run("suggestions", func(t *testing.T) {
		sg, err := resident.CreateSuggestion(ctx, c.ID, hoasdk.SuggestionRequest{Title: "Dog park"})
		require.NoError(t, err)

		up, err := neighbour.ToggleUpvote(ctx, c.ID, sg.ID)
		require.NoError(t, err)
		require.Equal(t, hoasdk.UpvoteResponse{Upvoted: true, UpvoteCount: 1}, *up)

		up, err = neighbour.ToggleUpvote(ctx, c.ID, sg.ID)
		require.NoError(t, err)
		require.Equal(t, hoasdk.UpvoteResponse{Upvoted: false, UpvoteCount: 0}, *up)

		_, err = neighbour.UpdateSuggestion(ctx, c.ID, sg.ID, hoasdk.SuggestionRequest{Title: "Cat park"})
		requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeForbidden)

		updated, err := board.SetSuggestionStatus(ctx, c.ID, sg.ID, "added_to_agenda")
		require.NoError(t, err)
		require.Equal(t, "added_to_agenda", updated.Status)
	})

	t.Run("questions", func(t *testing.T) {
		q, err := resident.AskQuestion(ctx, c.ID, hoasdk.QuestionRequest{Title: "Gate", Message: "New code?"})
		require.NoError(t, err)
		require.False(t, q.IsPublic)

		_, err = neighbour.GetQuestion(ctx, c.ID, q.ID)
		requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeForbidden)

		resp, err := board.Respond(ctx, c.ID, q.ID, hoasdk.ResponseRequest{Message: "On the 1st.", IsPublic: true})
		require.NoError(t, err)
		require.Equal(t, "board", resp.Responder.Name)

		d, err := neighbour.GetQuestion(ctx, c.ID, q.ID)
		require.NoError(t, err)
		require.True(t, d.Question.IsPublic)
		require.Equal(t, "answered", d.Question.Status)
		require.Len(t, d.Responses, 1)
	})

	t.Run("calendar", func(t *testing.T) {
		_, err := resident.CreateEvent(ctx, c.ID, hoasdk.CalendarEventRequest{Title: "x", EventDate: "2026-05-12"})
		requireAPIError(t, err, http.StatusForbidden, hoasdk.ErrorCodeForbidden)

		ev, err := board.CreateEvent(ctx, c.ID, hoasdk.CalendarEventRequest{
			Title:     "Board meeting",
			EventDate: "2026-05-12",
			StartTime: "19:00",
			EndTime:   "20:00",
		})
		require.NoError(t, err)
		require.Equal(t, "meeting", ev.EventType)

		_, err = board.CreateEvent(ctx, c.ID, hoasdk.CalendarEventRequest{
			Title:     "Backwards",
			EventDate: "2026-05-12",
			StartTime: "19:00",
			EndTime:   "18:00",
		})
		requireAPIError(t, err, http.StatusBadRequest, hoasdk.ErrorCodeValidation)

		may, err := resident.ListEvents(ctx, c.ID, "2026-05")
		require.NoError(t, err)
		require.Len(t, may, 1)

		june, err := resident.ListEvents(ctx, c.ID, "2026-06")
		require.NoError(t, err)
		require.Empty(t, june)
	})
}
