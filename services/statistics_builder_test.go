package services

import (
	"testing"
	"time"

	"stayhub-backend/models"
)

func TestDashboardBuilderAggregatesSections(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	stats := NewDashboardBuilder().
		WithRoomOverview(6, 4).
		WithBookingsByStatus(map[string]int64{
			models.BookingStatusPending:   3,
			models.BookingStatusConfirmed: 5,
			models.BookingStatusCancelled: 2,
		}).
		WithUserTotals(10, 9).
		WithCurrentRevenue(1234.50).
		Build(now)

	if stats.Rooms.Total != 6 || stats.Rooms.Available != 4 {
		t.Errorf("rooms = %+v, want total 6 available 4", stats.Rooms)
	}
	if stats.Bookings.Total != 10 {
		t.Errorf("bookings total = %d, want 10", stats.Bookings.Total)
	}
	if stats.Bookings.ByStatus[models.BookingStatusConfirmed] != 5 {
		t.Errorf("confirmed = %d, want 5", stats.Bookings.ByStatus[models.BookingStatusConfirmed])
	}
	if stats.Users.Active != 9 {
		t.Errorf("active users = %d, want 9", stats.Users.Active)
	}
	if stats.CurrentRevenue != 1234.50 {
		t.Errorf("revenue = %v, want 1234.50", stats.CurrentRevenue)
	}
	if !stats.GeneratedAt.Equal(now) {
		t.Errorf("generated at = %v, want %v", stats.GeneratedAt, now)
	}
}

func TestDashboardBuilderEmptyStatuses(t *testing.T) {
	stats := NewDashboardBuilder().
		WithBookingsByStatus(nil).
		Build(time.Now())

	if stats.Bookings.Total != 0 {
		t.Errorf("bookings total = %d, want 0", stats.Bookings.Total)
	}
	if stats.Bookings.ByStatus == nil {
		t.Error("by_status map should be initialized")
	}
}
