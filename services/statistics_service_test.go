package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"stayhub-backend/models"
)

func newStatisticsServiceForTest(t *testing.T) (*StatisticsService, sqlmock.Sqlmock) {
	gdb, mock := newTestDB(t)
	svc := NewStatisticsService(gdb)
	svc.Now = func() time.Time {
		return time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	}
	return svc, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}

func TestDashboardAggregates(t *testing.T) {
	svc, mock := newStatisticsServiceForTest(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `rooms`").WillReturnRows(countRows(6))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `rooms` WHERE is_available = \\?").WillReturnRows(countRows(4))
	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS count FROM bookings GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(models.BookingStatusPending, 3).
			AddRow(models.BookingStatusConfirmed, 5))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").WillReturnRows(countRows(10))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE is_active = \\?").WillReturnRows(countRows(9))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_price\\), 0\\) FROM bookings WHERE status IN").
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(1500.0))

	stats, err := svc.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if stats.Rooms.Total != 6 || stats.Rooms.Available != 4 {
		t.Errorf("rooms = %+v", stats.Rooms)
	}
	if stats.Bookings.Total != 8 {
		t.Errorf("bookings total = %d, want 8", stats.Bookings.Total)
	}
	if stats.Bookings.ByStatus[models.BookingStatusPending] != 3 {
		t.Errorf("pending = %d, want 3", stats.Bookings.ByStatus[models.BookingStatusPending])
	}
	if stats.Users.Total != 10 || stats.Users.Active != 9 {
		t.Errorf("users = %+v", stats.Users)
	}
	if stats.CurrentRevenue != 1500 {
		t.Errorf("revenue = %v, want 1500", stats.CurrentRevenue)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOccupancyRateAndFlags(t *testing.T) {
	svc, mock := newStatisticsServiceForTest(t)

	mock.ExpectQuery("SELECT r\\.id AS room_id").
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "room_number", "room_type", "active_bookings", "occupied"}).
			AddRow(1, "101", "standard", 2, 1).
			AddRow(2, "102", "standard", 0, 0))

	report, err := svc.Occupancy()
	if err != nil {
		t.Fatalf("Occupancy: %v", err)
	}
	if len(report.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(report.Rooms))
	}
	if !report.Rooms[0].Occupied || report.Rooms[1].Occupied {
		t.Errorf("occupied flags = %v/%v, want true/false", report.Rooms[0].Occupied, report.Rooms[1].Occupied)
	}
	if report.OccupancyRate != 0.5 {
		t.Errorf("rate = %v, want 0.5", report.OccupancyRate)
	}
}

func TestFinancialTotals(t *testing.T) {
	svc, mock := newStatisticsServiceForTest(t)

	mock.ExpectQuery("SELECT DATE_FORMAT\\(check_in, '%Y-%m'\\) AS month").
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue", "bookings"}).
			AddRow("2025-04", 900.0, 4).
			AddRow("2025-05", 600.0, 2))
	mock.ExpectQuery("SELECT r\\.room_type AS room_type").
		WillReturnRows(sqlmock.NewRows([]string{"room_type", "bookings"}).
			AddRow("deluxe", 4).
			AddRow("standard", 2))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(total_price\\), 0\\) AS total").
		WillReturnRows(sqlmock.NewRows([]string{"total", "average"}).AddRow(1500.0, 250.0))

	stats, err := svc.Financial()
	if err != nil {
		t.Fatalf("Financial: %v", err)
	}
	if len(stats.MonthlyRevenue) != 2 || stats.MonthlyRevenue[0].Month != "2025-04" {
		t.Errorf("monthly = %+v", stats.MonthlyRevenue)
	}
	if stats.RoomTypePopularity[0].RoomType != "deluxe" {
		t.Errorf("popularity = %+v", stats.RoomTypePopularity)
	}
	if stats.TotalRevenue != 1500 || stats.AverageBookingValue != 250 {
		t.Errorf("totals = %v/%v, want 1500/250", stats.TotalRevenue, stats.AverageBookingValue)
	}
}

func TestRegularCustomersParsing(t *testing.T) {
	svc, mock := newStatisticsServiceForTest(t)

	mock.ExpectQuery("SELECT u\\.id AS user_id").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "email", "bookings_count", "total_spent"}).
			AddRow(3, "alice", "alice@example.com", 5, 2100.0).
			AddRow(7, "bob", "bob@example.com", 2, 450.0))

	customers, err := svc.RegularCustomers()
	if err != nil {
		t.Fatalf("RegularCustomers: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("customers = %d, want 2", len(customers))
	}
	if customers[0].Username != "alice" || customers[0].BookingsCount != 5 {
		t.Errorf("first = %+v", customers[0])
	}
	if customers[1].TotalSpent != 450 {
		t.Errorf("second total = %v, want 450", customers[1].TotalSpent)
	}
}
