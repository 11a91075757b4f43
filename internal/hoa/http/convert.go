package http

import (
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
)

func toPerson(p domain.Person) hoasdk.Person {
	return hoasdk.Person{ID: p.ID, Name: p.Name, AvatarURL: p.AvatarURL}
}

func toUser(u domain.User) hoasdk.User {
	return hoasdk.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// toCommunity omits the invite code unless withCode is set.
func toCommunity(c domain.Community, withCode bool) hoasdk.Community {
	out := hoasdk.Community{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if withCode {
		out.InviteCode = c.InviteCode
	}
	return out
}

func toCommunityMemberships(in []domain.CommunityMembership) []hoasdk.CommunityMembership {
	out := make([]hoasdk.CommunityMembership, 0, len(in))
	for _, cm := range in {
		out = append(out, hoasdk.CommunityMembership{
			Community: toCommunity(cm.Community, cm.Role == domain.RoleAdmin),
			Role:      string(cm.Role),
			JoinedAt:  cm.JoinedAt,
		})
	}
	return out
}

func toMembers(in []domain.Member) []hoasdk.Member {
	out := make([]hoasdk.Member, 0, len(in))
	for _, m := range in {
		out = append(out, hoasdk.Member{
			UserID:      m.UserID,
			Name:        m.Name,
			Email:       m.Email,
			AvatarURL:   m.AvatarURL,
			Role:        string(m.Role),
			Status:      string(m.Status),
			RequestedAt: m.RequestedAt,
			JoinedAt:    m.JoinedAt,
		})
	}
	return out
}

func toMembership(m domain.Membership) hoasdk.Membership {
	return hoasdk.Membership{
		CommunityID: m.CommunityID,
		UserID:      m.UserID,
		Role:        string(m.Role),
		Status:      string(m.Status),
		RequestedAt: m.RequestedAt,
		JoinedAt:    m.JoinedAt,
	}
}

func toPoll(p domain.Poll) hoasdk.Poll {
	out := hoasdk.Poll{
		ID:             p.ID,
		CommunityID:    p.CommunityID,
		Question:       p.Question,
		Description:    p.Description,
		PollType:       string(p.Type),
		IsAnonymous:    p.IsAnonymous,
		ResultsVisible: string(p.ResultsVisible),
		OpensAt:        p.OpensAt,
		ClosesAt:       p.ClosesAt,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
	}
	for _, o := range p.Options {
		out.Options = append(out.Options, hoasdk.PollOption{ID: o.ID, Text: o.Text, Position: o.Position})
	}
	return out
}

func toPollListItems(in []service.PollListItem) []hoasdk.PollListItem {
	out := make([]hoasdk.PollListItem, 0, len(in))
	for _, it := range in {
		out = append(out, hoasdk.PollListItem{
			Poll:        toPoll(it.Poll),
			CreatorName: it.CreatorName,
			VoterCount:  it.VoterCount,
			State:       string(it.State),
		})
	}
	return out
}

func toPollDetail(d service.PollDetail) hoasdk.PollDetail {
	out := hoasdk.PollDetail{
		Poll:          toPoll(d.Poll),
		State:         string(d.State),
		Participation: d.Participation,
		HasVoted:      d.HasVoted(),
		MyOptionIDs:   d.MyOptionIDs,
		CanSeeResults: d.CanSeeResults,
	}
	if out.MyOptionIDs == nil {
		out.MyOptionIDs = []string{}
	}
	if d.Remaining != nil {
		secs := int64(*d.Remaining / time.Second)
		out.SecondsRemaining = &secs
		out.TimeRemaining = domain.FormatRemaining(*d.Remaining)
	}
	for _, r := range d.Results {
		res := hoasdk.OptionResult{
			OptionID:   r.OptionID,
			Text:       r.Text,
			Votes:      r.Votes,
			Percentage: r.Percentage,
		}
		for _, v := range r.Voters {
			res.Voters = append(res.Voters, toPerson(v))
		}
		out.Results = append(out.Results, res)
	}
	return out
}

func toPotluck(e domain.PotluckEvent, signups int) hoasdk.Potluck {
	limits := make(map[string]int, len(e.Limits))
	for c, n := range e.Limits {
		limits[string(c)] = n
	}
	return hoasdk.Potluck{
		ID:          e.ID,
		CommunityID: e.CommunityID,
		Title:       e.Title,
		Theme:       e.Theme,
		Description: e.Description,
		EventDate:   e.EventDate,
		EventTime:   e.EventTime,
		Location:    e.Location,
		Limits:      limits,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		SignupCount: signups,
	}
}

func toSignup(s domain.PotluckSignup) hoasdk.Signup {
	return hoasdk.Signup{
		ID:        s.ID,
		EventID:   s.EventID,
		User:      toPerson(s.User),
		DishName:  s.DishName,
		Category:  string(s.Category),
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
	}
}

func toPotluckDetail(d service.PotluckDetail) hoasdk.PotluckDetail {
	out := hoasdk.PotluckDetail{
		Potluck: toPotluck(d.Event, len(d.Signups)),
		Signups: make([]hoasdk.Signup, 0, len(d.Signups)),
		Counts:  make(map[string]int, len(d.Counts)),
	}
	for _, s := range d.Signups {
		out.Signups = append(out.Signups, toSignup(s))
	}
	for c, n := range d.Counts {
		out.Counts[string(c)] = n
	}
	return out
}

// limitsFromRequest keeps only the categories the request bounds.
func limitsFromRequest(req hoasdk.PotluckRequest) domain.CategoryLimits {
	limits := domain.CategoryLimits{}
	for c, v := range map[domain.DishCategory]*int{
		domain.DishAppetizer: req.MaxAppetizers,
		domain.DishSide:      req.MaxSides,
		domain.DishMain:      req.MaxMains,
		domain.DishDessert:   req.MaxDesserts,
		domain.DishDrink:     req.MaxDrinks,
		domain.DishOther:     req.MaxOther,
	} {
		if v != nil {
			limits[c] = *v
		}
	}
	return limits
}

func toSuggestion(v domain.SuggestionView) hoasdk.Suggestion {
	return hoasdk.Suggestion{
		ID:              v.ID,
		CommunityID:     v.CommunityID,
		Author:          toPerson(v.Author),
		Title:           v.Title,
		Description:     v.Description,
		Status:          string(v.Status),
		StatusUpdatedBy: v.StatusUpdatedBy,
		UpvoteCount:     v.UpvoteCount,
		Upvoted:         v.Upvoted,
		CreatedAt:       v.CreatedAt,
	}
}

func toQuestion(q domain.BoardQuestion) hoasdk.Question {
	return hoasdk.Question{
		ID:            q.ID,
		CommunityID:   q.CommunityID,
		Author:        toPerson(q.Author),
		Title:         q.Title,
		Message:       q.Message,
		IsPublic:      q.IsPublic,
		Status:        string(q.Status),
		ResponseCount: q.ResponseCount,
		CreatedAt:     q.CreatedAt,
	}
}

func toQuestionResponse(r domain.QuestionResponse) hoasdk.QuestionResponse {
	return hoasdk.QuestionResponse{
		ID:         r.ID,
		QuestionID: r.QuestionID,
		Responder:  toPerson(r.Responder),
		Message:    r.Message,
		IsPublic:   r.IsPublic,
		CreatedAt:  r.CreatedAt,
	}
}

func toCalendarEvent(e domain.CalendarEvent) hoasdk.CalendarEvent {
	return hoasdk.CalendarEvent{
		ID:          e.ID,
		CommunityID: e.CommunityID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		EventType:   string(e.Type),
		Creator:     toPerson(e.Creator),
		CreatedAt:   e.CreatedAt,
	}
}
