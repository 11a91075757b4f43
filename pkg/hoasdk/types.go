package hoasdk

import (
	"time"

	"github.com/aussiebroadwan/hoaboard/pkg/jwtx"
)

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Error            string `json:"error" example:"poll_closed"`
	ErrorDescription string `json:"error_description" example:"poll has closed"`
}

// Person is the public face of a user shown next to what they created.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// HealthResponse is returned by /livez and /readyz. Only readyz fills Checks.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the key set used to verify access tokens.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Identity
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User        User      `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type MeResponse struct {
	User           User                  `json:"user"`
	Communities    []CommunityMembership `json:"communities"`
	TokenExpiresAt *time.Time            `json:"token_expires_at,omitempty"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// MessageResponse acknowledges an operation with nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Communities and membership
// ============================================================================

type CommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
}

type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	InviteCode  string    `json:"invite_code,omitempty"` // admins only
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommunityMembership struct {
	Community Community  `json:"community"`
	Role      string     `json:"role"`
	JoinedAt  *time.Time `json:"joined_at,omitempty"`
}

type Member struct {
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	JoinedAt    *time.Time `json:"joined_at,omitempty"`
}

type CommunityDetail struct {
	Community Community `json:"community"`
	MyRole    string    `json:"my_role"`
	Members   []Member  `json:"members"`
}

type JoinRequest struct {
	InviteCode string `json:"invite_code"`
}

type Membership struct {
	CommunityID string     `json:"community_id"`
	UserID      string     `json:"user_id"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	JoinedAt    *time.Time `json:"joined_at,omitempty"`
}

type JoinResponse struct {
	Community  Community  `json:"community"`
	Membership Membership `json:"membership"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type InviteCodeResponse struct {
	InviteCode string `json:"invite_code"`
}

// ============================================================================
// Polls
// ============================================================================

type PollRequest struct {
	Question       string     `json:"question"`
	Description    string     `json:"description,omitempty"`
	PollType       string     `json:"poll_type,omitempty"`
	IsAnonymous    bool       `json:"is_anonymous"`
	ResultsVisible string     `json:"results_visible,omitempty"`
	OpensAt        *time.Time `json:"opens_at,omitempty"`
	ClosesAt       *time.Time `json:"closes_at,omitempty"`
	Options        []string   `json:"options,omitempty"`
}

type PollOption struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type Poll struct {
	ID             string       `json:"id"`
	CommunityID    string       `json:"community_id"`
	Question       string       `json:"question"`
	Description    string       `json:"description,omitempty"`
	PollType       string       `json:"poll_type"`
	IsAnonymous    bool         `json:"is_anonymous"`
	ResultsVisible string       `json:"results_visible"`
	OpensAt        time.Time    `json:"opens_at"`
	ClosesAt       *time.Time   `json:"closes_at,omitempty"`
	CreatedBy      string       `json:"created_by"`
	CreatedAt      time.Time    `json:"created_at"`
	Options        []PollOption `json:"options,omitempty"`
}

type PollListItem struct {
	Poll
	CreatorName string `json:"creator_name"`
	VoterCount  int    `json:"voter_count"`
	State       string `json:"state"`
}

type OptionResult struct {
	OptionID   string   `json:"option_id"`
	Text       string   `json:"text"`
	Votes      int      `json:"votes"`
	Percentage int      `json:"percentage"`
	Voters     []Person `json:"voters,omitempty"`
}

type PollDetail struct {
	Poll             Poll           `json:"poll"`
	State            string         `json:"state"`
	Participation    int            `json:"participation"`
	HasVoted         bool           `json:"has_voted"`
	MyOptionIDs      []string       `json:"my_option_ids"`
	SecondsRemaining *int64         `json:"seconds_remaining,omitempty"`
	TimeRemaining    string         `json:"time_remaining,omitempty"`
	CanSeeResults    bool           `json:"can_see_results"`
	Results          []OptionResult `json:"results,omitempty"`
}

type VoteRequest struct {
	OptionIDs []string `json:"option_ids"`
}

// ============================================================================
// Potlucks
// ============================================================================

type PotluckRequest struct {
	Title         string `json:"title"`
	Theme         string `json:"theme,omitempty"`
	Description   string `json:"description,omitempty"`
	EventDate     string `json:"event_date"`
	EventTime     string `json:"event_time,omitempty"`
	Location      string `json:"location,omitempty"`
	MaxAppetizers *int   `json:"max_appetizers,omitempty"`
	MaxSides      *int   `json:"max_sides,omitempty"`
	MaxMains      *int   `json:"max_mains,omitempty"`
	MaxDesserts   *int   `json:"max_desserts,omitempty"`
	MaxDrinks     *int   `json:"max_drinks,omitempty"`
	MaxOther      *int   `json:"max_other,omitempty"`
}

type Potluck struct {
	ID          string         `json:"id"`
	CommunityID string         `json:"community_id"`
	Title       string         `json:"title"`
	Theme       string         `json:"theme,omitempty"`
	Description string         `json:"description,omitempty"`
	EventDate   string         `json:"event_date"`
	EventTime   string         `json:"event_time,omitempty"`
	Location    string         `json:"location,omitempty"`
	Limits      map[string]int `json:"limits"`
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	SignupCount int            `json:"signup_count"`
}

type SignupRequest struct {
	DishName string `json:"dish_name"`
	Category string `json:"category"`
	Notes    string `json:"notes,omitempty"`
}

type Signup struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	User      Person    `json:"user"`
	DishName  string    `json:"dish_name"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PotluckDetail struct {
	Potluck Potluck        `json:"potluck"`
	Signups []Signup       `json:"signups"`
	Counts  map[string]int `json:"counts"`
}

// ============================================================================
// Suggestions
// ============================================================================

type SuggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type SuggestionStatusRequest struct {
	Status string `json:"status"`
}

type Suggestion struct {
	ID              string    `json:"id"`
	CommunityID     string    `json:"community_id"`
	Author          Person    `json:"author"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status"`
	StatusUpdatedBy string    `json:"status_updated_by,omitempty"`
	UpvoteCount     int       `json:"upvote_count"`
	Upvoted         bool      `json:"upvoted"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpvoteResponse struct {
	Upvoted     bool `json:"upvoted"`
	UpvoteCount int  `json:"upvote_count"`
}

// ============================================================================
// Board questions
// ============================================================================

type QuestionRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Question struct {
	ID            string    `json:"id"`
	CommunityID   string    `json:"community_id"`
	Author        Person    `json:"author"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	IsPublic      bool      `json:"is_public"`
	Status        string    `json:"status"`
	ResponseCount int       `json:"response_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResponseRequest struct {
	Message  string `json:"message"`
	IsPublic bool   `json:"is_public"`
}

type QuestionResponse struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Responder  Person    `json:"responder"`
	Message    string    `json:"message"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionDetail struct {
	Question  Question           `json:"question"`
	Responses []QuestionResponse `json:"responses"`
}

type VisibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

// ============================================================================
// Calendar
// ============================================================================

type CalendarEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"event_date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location,omitempty"`
	EventType   string `json:"event_type,omitempty"`
}

type CalendarEvent struct {
	ID          string    `json:"id"`
	CommunityID string    `json:"community_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   string    `json:"event_date"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	Location    string    `json:"location,omitempty"`
	EventType   string    `json:"event_type"`
	Creator     Person    `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
}
