package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
	"github.com/aussiebroadwan/hoaboard/pkg/idx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

type QuestionService struct {
	Store store.Store
	Now   func() time.Time
}

type QuestionInput struct {
	Title   string
	Message string
}

type QuestionDetail struct {
	Question  domain.BoardQuestion
	Responses []domain.QuestionResponse
}

// AskQuestion files a private question to the board.
func (s *QuestionService) AskQuestion(ctx context.Context, authz AuthorizationContext, in QuestionInput) (domain.BoardQuestion, error) {
	if err := authz.Require(domain.OpAskQuestion); err != nil {
		return domain.BoardQuestion{}, err
	}
	title, err := required("title", in.Title)
	if err != nil {
		return domain.BoardQuestion{}, err
	}
	message, err := required("message", in.Message)
	if err != nil {
		return domain.BoardQuestion{}, err
	}

	now := clock(s.Now)
	q := domain.BoardQuestion{
		ID:          idx.New().String(),
		CommunityID: authz.CommunityID,
		UserID:      authz.UserID,
		Title:       title,
		Message:     message,
		Status:      domain.QuestionPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Questions().CreateQuestion(ctx, q); err != nil {
		return domain.BoardQuestion{}, err
	}
	return s.get(ctx, s.Store, authz.CommunityID, q.ID)
}

// ListQuestions shows the board everything and residents their own and
// public questions.
func (s *QuestionService) ListQuestions(ctx context.Context, authz AuthorizationContext) ([]domain.BoardQuestion, error) {
	if err := authz.Require(domain.OpViewQuestions); err != nil {
		return nil, err
	}
	return s.Store.Questions().ListQuestions(ctx, authz.CommunityID, authz.UserID, authz.Can(domain.OpViewAllQuestions))
}

func (s *QuestionService) GetQuestion(ctx context.Context, authz AuthorizationContext, id string) (QuestionDetail, error) {
	if err := authz.Require(domain.OpViewQuestions); err != nil {
		return QuestionDetail{}, err
	}

	q, err := s.get(ctx, s.Store, authz.CommunityID, id)
	if err != nil {
		return QuestionDetail{}, err
	}
	if !domain.QuestionVisibleTo(q, authz.UserID, authz.Role) {
		return QuestionDetail{}, withMsg(ErrForbidden, "access denied")
	}

	responses, err := s.Store.Questions().ListResponses(ctx, q.ID)
	if err != nil {
		return QuestionDetail{}, err
	}
	return QuestionDetail{Question: q, Responses: responses}, nil
}

// Respond posts a board answer. The first response marks the question
// answered and a public response makes the question public.
func (s *QuestionService) Respond(
	ctx context.Context,
	authz AuthorizationContext,
	questionID, message string,
	isPublic bool,
) (domain.QuestionResponse, error) {
	if err := authz.Require(domain.OpRespondQuestion); err != nil {
		return domain.QuestionResponse{}, err
	}
	message, err := required("message", message)
	if err != nil {
		return domain.QuestionResponse{}, err
	}

	now := clock(s.Now)
	resp := domain.QuestionResponse{
		ID:         idx.New().String(),
		QuestionID: questionID,
		UserID:     authz.UserID,
		Message:    message,
		IsPublic:   isPublic,
		CreatedAt:  now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		q, err := s.get(ctx, tx, authz.CommunityID, questionID)
		if err != nil {
			return err
		}
		if err := tx.Questions().CreateResponse(ctx, resp); err != nil {
			return err
		}
		u, err := tx.Users().GetUserByID(ctx, authz.UserID)
		if err != nil {
			return err
		}
		resp.Responder = domain.Person{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
		if q.Status != domain.QuestionAnswered {
			if err := tx.Questions().SetQuestionStatus(ctx, q.ID, domain.QuestionAnswered, now); err != nil {
				return err
			}
		}
		if isPublic && !q.IsPublic {
			if err := tx.Questions().SetQuestionVisibility(ctx, q.ID, true, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.QuestionResponse{}, err
	}

	slogx.FromContext(ctx).Info("question answered",
		slog.String("question_id", questionID),
		slog.Bool("public", isPublic),
	)
	return resp, nil
}

func (s *QuestionService) SetVisibility(ctx context.Context, authz AuthorizationContext, id string, isPublic bool) (domain.BoardQuestion, error) {
	if err := authz.Require(domain.OpSetQuestionVisibility); err != nil {
		return domain.BoardQuestion{}, err
	}
	if _, err := s.get(ctx, s.Store, authz.CommunityID, id); err != nil {
		return domain.BoardQuestion{}, err
	}
	if err := s.Store.Questions().SetQuestionVisibility(ctx, id, isPublic, clock(s.Now)); err != nil {
		return domain.BoardQuestion{}, err
	}
	return s.get(ctx, s.Store, authz.CommunityID, id)
}

func (s *QuestionService) get(ctx context.Context, st store.Store, communityID, id string) (domain.BoardQuestion, error) {
	q, err := st.Questions().GetQuestion(ctx, communityID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.BoardQuestion{}, ErrQuestionNotFound
		}
		return domain.BoardQuestion{}, err
	}
	return q, nil
}
