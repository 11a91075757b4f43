package hoasdk

import (
	"context"
	"net/http"
)

// ListQuestions returns what the caller may see: everything for the board,
// otherwise the caller's own and public questions.
func (s *Session) ListQuestions(ctx context.Context, communityID string) ([]Question, error) {
	var out []Question
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "questions"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) AskQuestion(ctx context.Context, communityID string, req QuestionRequest) (*Question, error) {
	var out Question
	if err := s.call(ctx, http.MethodPost, communityPath(communityID, "questions"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetQuestion(ctx context.Context, communityID, questionID string) (*QuestionDetail, error) {
	var out QuestionDetail
	if err := s.call(ctx, http.MethodGet, communityPath(communityID, "questions", questionID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Respond answers a question. A public response also makes the question
// public.
func (s *Session) Respond(ctx context.Context, communityID, questionID string, req ResponseRequest) (*QuestionResponse, error) {
	var out QuestionResponse
	path := communityPath(communityID, "questions", questionID, "responses")
	if err := s.call(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) SetQuestionVisibility(ctx context.Context, communityID, questionID string, public bool) (*Question, error) {
	var out Question
	path := communityPath(communityID, "questions", questionID, "visibility")
	if err := s.call(ctx, http.MethodPut, path, VisibilityRequest{IsPublic: public}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
