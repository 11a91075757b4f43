package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/stretchr/testify/require"
)

type questionFixture struct {
	*env
	c                domain.Community
	admin, board     domain.User
	asker, bystander domain.User
}

func newQuestionFixture(t *testing.T) questionFixture {
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	return questionFixture{
		env:       e,
		c:         c,
		admin:     admin,
		board:     e.member(t, c, admin, "board", domain.RoleBoardMember),
		asker:     e.member(t, c, admin, "asker", domain.RoleResident),
		bystander: e.member(t, c, admin, "bystander", domain.RoleResident),
	}
}

func (f questionFixture) ask(t *testing.T) domain.BoardQuestion {
	t.Helper()
	q, err := f.questions.AskQuestion(context.Background(), f.authz(t, f.asker.ID, f.c.ID), QuestionInput{
		Title:   "Gate code",
		Message: "When does the gate code change?",
	})
	require.NoError(t, err)
	return q
}

func TestAskQuestion(t *testing.T) {
	ctx := context.Background()
	f := newQuestionFixture(t)

	q := f.ask(t)
	require.False(t, q.IsPublic)
	require.Equal(t, domain.QuestionPending, q.Status)
	require.Equal(t, "asker", q.Author.Name)

	_, err := f.questions.AskQuestion(ctx, f.authz(t, f.asker.ID, f.c.ID), QuestionInput{Title: "t"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestQuestionVisibility(t *testing.T) {
	ctx := context.Background()
	f := newQuestionFixture(t)
	q := f.ask(t)

	bystander := f.authz(t, f.bystander.ID, f.c.ID)

	list, err := f.questions.ListQuestions(ctx, bystander)
	require.NoError(t, err)
	require.Empty(t, list, "private questions are hidden from other residents")

	_, err = f.questions.GetQuestion(ctx, bystander, q.ID)
	require.ErrorIs(t, err, ErrForbidden)

	for _, u := range []domain.User{f.asker, f.board, f.admin} {
		list, err := f.questions.ListQuestions(ctx, f.authz(t, u.ID, f.c.ID))
		require.NoError(t, err)
		require.Len(t, list, 1, u.Name)

		_, err = f.questions.GetQuestion(ctx, f.authz(t, u.ID, f.c.ID), q.ID)
		require.NoError(t, err, u.Name)
	}

	_, err = f.questions.SetVisibility(ctx, bystander, q.ID, true)
	require.ErrorIs(t, err, ErrForbidden)

	pub, err := f.questions.SetVisibility(ctx, f.authz(t, f.board.ID, f.c.ID), q.ID, true)
	require.NoError(t, err)
	require.True(t, pub.IsPublic)

	list, err = f.questions.ListQuestions(ctx, bystander)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRespondToQuestion(t *testing.T) {
	ctx := context.Background()
	f := newQuestionFixture(t)
	board := f.authz(t, f.board.ID, f.c.ID)

	t.Run("residents cannot respond", func(t *testing.T) {
		q := f.ask(t)
		_, err := f.questions.Respond(ctx, f.authz(t, f.bystander.ID, f.c.ID), q.ID, "No idea", false)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("private response answers but keeps the question private", func(t *testing.T) {
		q := f.ask(t)
		resp, err := f.questions.Respond(ctx, board, q.ID, "First of the month.", false)
		require.NoError(t, err)
		require.Equal(t, "board", resp.Responder.Name)

		d, err := f.questions.GetQuestion(ctx, f.authz(t, f.asker.ID, f.c.ID), q.ID)
		require.NoError(t, err)
		require.Equal(t, domain.QuestionAnswered, d.Question.Status)
		require.False(t, d.Question.IsPublic)
		require.Len(t, d.Responses, 1)
	})

	t.Run("public response makes the question public", func(t *testing.T) {
		q := f.ask(t)
		_, err := f.questions.Respond(ctx, board, q.ID, "Every quarter.", true)
		require.NoError(t, err)

		d, err := f.questions.GetQuestion(ctx, f.authz(t, f.bystander.ID, f.c.ID), q.ID)
		require.NoError(t, err)
		require.True(t, d.Question.IsPublic)
		require.Equal(t, domain.QuestionAnswered, d.Question.Status)
	})

	t.Run("unknown question", func(t *testing.T) {
		_, err := f.questions.Respond(ctx, board, "missing", "hello", false)
		require.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("empty message", func(t *testing.T) {
		q := f.ask(t)
		_, err := f.questions.Respond(ctx, board, q.ID, "  ", false)
		require.ErrorIs(t, err, ErrValidation)
	})
}
