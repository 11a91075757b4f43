package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"

	_ "github.com/aussiebroadwan/hoaboard/api/hoa" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	Gate              *service.Gate
	IdentityService   *service.IdentityService
	CommunityService  *service.CommunityService
	PollService       *service.PollService
	PotluckService    *service.PotluckService
	SuggestionService *service.SuggestionService
	QuestionService   *service.QuestionService
	CalendarService   *service.CalendarService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerIdentity()
	r.registerCommunities()
	r.registerPolls()
	r.registerPotlucks()
	r.registerSuggestions()
	r.registerQuestions()
	r.registerCalendar()
	r.registerSystem()
}

// ServeHTTP applies the global middleware chain.
//
//	@title						HOA Board API
//	@version					0.1.0
//	@description				Community board for homeowners associations: membership, polls, potlucks, meeting suggestions, board questions and the community calendar.
//	@description
//	@description				Community scoped routes require an accepted membership. Access tokens are EdDSA signed JWTs and can be verified with the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/hoaboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured requires a bearer token and limits the caller per user.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerIdentity() {
	h := &IdentityHandler{IdentityService: r.IdentityService}

	// Credential endpoints are the brute force targets.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword), httpx.RateLimitByIP(httpx.StrictLimit)))

	r.Mux.Handle("GET /v1/auth/me", r.secured(h.HandleMe, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/profile", r.secured(h.HandleGetProfile, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/profile", r.secured(h.HandleUpdateProfile, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/profile/password", r.secured(h.HandleChangePassword, httpx.StrictLimit))
}

func (r *Router) registerCommunities() {
	h := &CommunitiesHandler{Gate: r.Gate, CommunityService: r.CommunityService}

	r.Mux.Handle("GET /v1/communities", r.secured(h.HandleListMine, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities", r.secured(h.HandleCreate, httpx.ModerateLimit))
	// Invite codes are guessable in principle, so joining is strict.
	r.Mux.Handle("POST /v1/communities/join", r.secured(h.HandleJoin, httpx.StrictLimit))

	r.Mux.Handle("GET /v1/communities/{communityID}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/communities/{communityID}", r.secured(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/invite-code", r.secured(h.HandleRegenerateCode, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/leave", r.secured(h.HandleLeave, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/communities/{communityID}/members/pending", r.secured(h.HandleListPending, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/members/{userID}/accept", r.secured(h.HandleAccept, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/members/{userID}/reject", r.secured(h.HandleReject, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/members/{userID}/role", r.secured(h.HandleChangeRole, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/communities/{communityID}/members/{userID}", r.secured(h.HandleRemove, httpx.ModerateLimit))
}

func (r *Router) registerPolls() {
	h := &PollsHandler{Gate: r.Gate, PollService: r.PollService}

	r.Mux.Handle("GET /v1/communities/{communityID}/polls", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/polls", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/communities/{communityID}/polls/{pollID}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/polls/{pollID}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/communities/{communityID}/polls/{pollID}", r.secured(h.HandleDelete, httpx.ModerateLimit))

	// Votes are limited per user and poll so one busy poll does not starve
	// the member's other ballots.
	r.Mux.Handle("POST /v1/communities/{communityID}/polls/{pollID}/vote",
		httpx.Chain(http.HandlerFunc(h.HandleVote),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUserAndPathValue(httpx.ModerateLimit, "pollID"),
		),
	)
}

func (r *Router) registerPotlucks() {
	h := &PotlucksHandler{Gate: r.Gate, PotluckService: r.PotluckService}

	r.Mux.Handle("GET /v1/communities/{communityID}/potlucks", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/potlucks", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/communities/{communityID}/potlucks/{potluckID}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/potlucks/{potluckID}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/communities/{communityID}/potlucks/{potluckID}", r.secured(h.HandleDelete, httpx.ModerateLimit))

	r.Mux.Handle("POST /v1/communities/{communityID}/potlucks/{potluckID}/signups",
		r.secured(h.HandleCreateSignup, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/potlucks/{potluckID}/signups/{signupID}",
		r.secured(h.HandleUpdateSignup, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/communities/{communityID}/potlucks/{potluckID}/signups/{signupID}",
		r.secured(h.HandleDeleteSignup, httpx.ModerateLimit))
}

func (r *Router) registerSuggestions() {
	h := &SuggestionsHandler{Gate: r.Gate, SuggestionService: r.SuggestionService}

	r.Mux.Handle("GET /v1/communities/{communityID}/suggestions", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/suggestions", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/communities/{communityID}/suggestions/{suggestionID}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/suggestions/{suggestionID}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/communities/{communityID}/suggestions/{suggestionID}", r.secured(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/suggestions/{suggestionID}/status",
		r.secured(h.HandleSetStatus, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/suggestions/{suggestionID}/upvote",
		r.secured(h.HandleToggleUpvote, httpx.ModerateLimit))
}

func (r *Router) registerQuestions() {
	h := &QuestionsHandler{Gate: r.Gate, QuestionService: r.QuestionService}

	r.Mux.Handle("GET /v1/communities/{communityID}/questions", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/questions", r.secured(h.HandleAsk, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/communities/{communityID}/questions/{questionID}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/questions/{questionID}/responses",
		r.secured(h.HandleRespond, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/questions/{questionID}/visibility",
		r.secured(h.HandleSetVisibility, httpx.ModerateLimit))
}

func (r *Router) registerCalendar() {
	h := &CalendarHandler{Gate: r.Gate, CalendarService: r.CalendarService}

	r.Mux.Handle("GET /v1/communities/{communityID}/events", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/communities/{communityID}/events", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/communities/{communityID}/events/{eventID}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/communities/{communityID}/events/{eventID}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/communities/{communityID}/events/{eventID}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys), httpx.RateLimitByIP(httpx.PublicLimit)))

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}
