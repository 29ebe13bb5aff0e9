package services

import (
	"time"

	"gorm.io/gorm"

	"stayhub-backend/models"
)

// StatisticsService runs the reporting aggregations. Revenue figures
// count confirmed and completed bookings only.
type StatisticsService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{DB: db, Now: time.Now}
}

var revenueStatuses = []string{
	models.BookingStatusConfirmed,
	models.BookingStatusCompleted,
}

func (s *StatisticsService) Dashboard() (DashboardStats, error) {
	var totalRooms, availableRooms int64
	if err := s.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return DashboardStats{}, err
	}
	if err := s.DB.Model(&models.Room{}).Where("is_available = ?", true).Count(&availableRooms).Error; err != nil {
		return DashboardStats{}, err
	}

	var statusRows []struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	err := s.DB.Raw(
		"SELECT status, COUNT(*) AS count FROM bookings GROUP BY status",
	).Scan(&statusRows).Error
	if err != nil {
		return DashboardStats{}, err
	}
	byStatus := make(map[string]int64, len(statusRows))
	for _, row := range statusRows {
		byStatus[row.Status] = row.Count
	}

	var totalUsers, activeUsers int64
	if err := s.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return DashboardStats{}, err
	}
	if err := s.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&activeUsers).Error; err != nil {
		return DashboardStats{}, err
	}

	var revenue float64
	err = s.DB.Raw(
		"SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status IN ?",
		revenueStatuses,
	).Scan(&revenue).Error
	if err != nil {
		return DashboardStats{}, err
	}

	stats := NewDashboardBuilder().
		WithRoomOverview(totalRooms, availableRooms).
		WithBookingsByStatus(byStatus).
		WithUserTotals(totalUsers, activeUsers).
		WithCurrentRevenue(revenue).
		Build(s.Now())
	return stats, nil
}

type RoomOccupancy struct {
	RoomID         uint   `json:"room_id"`
	RoomNumber     string `json:"room_number"`
	RoomType       string `json:"room_type"`
	ActiveBookings int64  `json:"active_bookings"`
	Occupied       bool   `json:"occupied"`
}

type OccupancyReport struct {
	Rooms         []RoomOccupancy `json:"rooms"`
	OccupancyRate float64         `json:"occupancy_rate"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// Occupancy reports, per room, how many blocking bookings it has and
// whether one of them covers the current moment.
func (s *StatisticsService) Occupancy() (OccupancyReport, error) {
	now := s.Now()

	var rows []struct {
		RoomID         uint   `gorm:"column:room_id"`
		RoomNumber     string `gorm:"column:room_number"`
		RoomType       string `gorm:"column:room_type"`
		ActiveBookings int64  `gorm:"column:active_bookings"`
		Occupied       int64  `gorm:"column:occupied"`
	}
	err := s.DB.Raw(`
SELECT r.id AS room_id,
       r.room_number AS room_number,
       r.room_type AS room_type,
       COUNT(b.id) AS active_bookings,
       COALESCE(MAX(CASE WHEN b.check_in <= ? AND b.check_out > ? THEN 1 ELSE 0 END), 0) AS occupied
FROM rooms r
LEFT JOIN bookings b ON b.room_id = r.id AND b.status IN ?
GROUP BY r.id, r.room_number, r.room_type
ORDER BY r.room_number`,
		now, now, models.ActiveBookingStatuses,
	).Scan(&rows).Error
	if err != nil {
		return OccupancyReport{}, err
	}

	report := OccupancyReport{
		Rooms:       make([]RoomOccupancy, 0, len(rows)),
		GeneratedAt: now,
	}
	var occupied int64
	for _, row := range rows {
		if row.Occupied > 0 {
			occupied++
		}
		report.Rooms = append(report.Rooms, RoomOccupancy{
			RoomID:         row.RoomID,
			RoomNumber:     row.RoomNumber,
			RoomType:       row.RoomType,
			ActiveBookings: row.ActiveBookings,
			Occupied:       row.Occupied > 0,
		})
	}
	if len(rows) > 0 {
		report.OccupancyRate = float64(occupied) / float64(len(rows))
	}
	return report, nil
}

type MonthlyRevenue struct {
	Month    string  `json:"month" gorm:"column:month"`
	Revenue  float64 `json:"revenue" gorm:"column:revenue"`
	Bookings int64   `json:"bookings" gorm:"column:bookings"`
}

type RoomTypePopularity struct {
	RoomType string `json:"room_type" gorm:"column:room_type"`
	Bookings int64  `json:"bookings" gorm:"column:bookings"`
}

type FinancialStats struct {
	MonthlyRevenue      []MonthlyRevenue     `json:"monthly_revenue"`
	RoomTypePopularity  []RoomTypePopularity `json:"room_type_popularity"`
	TotalRevenue        float64              `json:"total_revenue"`
	AverageBookingValue float64              `json:"average_booking_value"`
	GeneratedAt         time.Time            `json:"generated_at"`
}

// Financial reports the last twelve months of revenue by check-in
// month, booking counts per room type, and overall totals.
func (s *StatisticsService) Financial() (FinancialStats, error) {
	now := s.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	var monthly []MonthlyRevenue
	err := s.DB.Raw(`
SELECT DATE_FORMAT(check_in, '%Y-%m') AS month,
       COALESCE(SUM(total_price), 0) AS revenue,
       COUNT(*) AS bookings
FROM bookings
WHERE status IN ? AND check_in >= ?
GROUP BY DATE_FORMAT(check_in, '%Y-%m')
ORDER BY month`,
		revenueStatuses, windowStart,
	).Scan(&monthly).Error
	if err != nil {
		return FinancialStats{}, err
	}

	var popularity []RoomTypePopularity
	err = s.DB.Raw(`
SELECT r.room_type AS room_type, COUNT(b.id) AS bookings
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.status IN ?
GROUP BY r.room_type
ORDER BY bookings DESC`,
		revenueStatuses,
	).Scan(&popularity).Error
	if err != nil {
		return FinancialStats{}, err
	}

	var totals struct {
		Total   float64 `gorm:"column:total"`
		Average float64 `gorm:"column:average"`
	}
	err = s.DB.Raw(
		"SELECT COALESCE(SUM(total_price), 0) AS total, COALESCE(AVG(total_price), 0) AS average FROM bookings WHERE status IN ?",
		revenueStatuses,
	).Scan(&totals).Error
	if err != nil {
		return FinancialStats{}, err
	}

	return FinancialStats{
		MonthlyRevenue:      monthly,
		RoomTypePopularity:  popularity,
		TotalRevenue:        totals.Total,
		AverageBookingValue: totals.Average,
		GeneratedAt:         now,
	}, nil
}

type RegularCustomer struct {
	UserID        uint    `json:"user_id" gorm:"column:user_id"`
	Username      string  `json:"username" gorm:"column:username"`
	Email         string  `json:"email" gorm:"column:email"`
	BookingsCount int64   `json:"bookings_count" gorm:"column:bookings_count"`
	TotalSpent    float64 `json:"total_spent" gorm:"column:total_spent"`
}

// RegularCustomers lists users with at least two non-cancelled
// bookings, most frequent first.
func (s *StatisticsService) RegularCustomers() ([]RegularCustomer, error) {
	var customers []RegularCustomer
	err := s.DB.Raw(`
SELECT u.id AS user_id,
       u.username AS username,
       u.email AS email,
       COUNT(b.id) AS bookings_count,
       COALESCE(SUM(b.total_price), 0) AS total_spent
FROM users u
JOIN bookings b ON b.user_id = u.id
WHERE b.status IN ?
GROUP BY u.id, u.username, u.email
HAVING COUNT(b.id) >= 2
ORDER BY bookings_count DESC, total_spent DESC
LIMIT 50`,
		models.ActiveBookingStatuses,
	).Scan(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
