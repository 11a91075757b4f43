package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/domain"
	"github.com/stretchr/testify/require"
)

func TestCalendarEvents(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	admin := e.user(t, "admin")
	c := e.community(t, admin)
	board := e.authz(t, e.member(t, c, admin, "board", domain.RoleBoardMember).ID, c.ID)
	resident := e.authz(t, e.member(t, c, admin, "resident", domain.RoleResident).ID, c.ID)

	create := func(t *testing.T, title, date string) domain.CalendarEvent {
		t.Helper()
		ev, err := e.calendar.CreateEvent(ctx, board, CalendarEventInput{
			Title:     title,
			EventDate: date,
			StartTime: "19:00",
			EndTime:   "20:30",
			Location:  "Clubhouse",
		})
		require.NoError(t, err)
		return ev
	}

	may := create(t, "Board meeting", "2026-05-12")
	june := create(t, "Pool opening", "2026-06-01")
	mayEnd := create(t, "Cleanup day", "2026-05-31")

	t.Run("defaults to a meeting", func(t *testing.T) {
		require.Equal(t, domain.EventMeeting, may.Type)
	})

	t.Run("month filter", func(t *testing.T) {
		list, err := e.calendar.ListEvents(ctx, resident, "2026-05")
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, may.ID, list[0].ID)
		require.Equal(t, mayEnd.ID, list[1].ID)

		list, err = e.calendar.ListEvents(ctx, resident, "2026-06")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, june.ID, list[0].ID)

		list, err = e.calendar.ListEvents(ctx, resident, "")
		require.NoError(t, err)
		require.Len(t, list, 3)

		_, err = e.calendar.ListEvents(ctx, resident, "May 2026")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := e.calendar.CreateEvent(ctx, board, CalendarEventInput{
			Title:     "Backwards",
			EventDate: "2026-05-20",
			StartTime: "18:00",
			EndTime:   "17:00",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := e.calendar.CreateEvent(ctx, board, CalendarEventInput{
			Title:     "Party",
			EventDate: "2026-05-20",
			Type:      "rave",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("residents read only", func(t *testing.T) {
		_, err := e.calendar.CreateEvent(ctx, resident, CalendarEventInput{Title: "x", EventDate: "2026-05-20"})
		require.ErrorIs(t, err, ErrForbidden)
		require.ErrorIs(t, e.calendar.DeleteEvent(ctx, resident, may.ID), ErrForbidden)

		ev, err := e.calendar.GetEvent(ctx, resident, may.ID)
		require.NoError(t, err)
		require.Equal(t, "Board meeting", ev.Title)
	})

	t.Run("update and delete", func(t *testing.T) {
		ev, err := e.calendar.UpdateEvent(ctx, board, june.ID, CalendarEventInput{
			Title:     "Pool opening party",
			EventDate: "2026-06-02",
			Type:      domain.EventSocial,
		})
		require.NoError(t, err)
		require.Equal(t, "2026-06-02", ev.EventDate)

		require.NoError(t, e.calendar.DeleteEvent(ctx, board, june.ID))
		_, err = e.calendar.GetEvent(ctx, resident, june.ID)
		require.ErrorIs(t, err, ErrEventNotFound)
	})
}
