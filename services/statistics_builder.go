package services

import "time"

type RoomOverview struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
}

type BookingOverview struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

type UserOverview struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type DashboardStats struct {
	Rooms          RoomOverview    `json:"rooms"`
	Bookings       BookingOverview `json:"bookings"`
	Users          UserOverview    `json:"users"`
	CurrentRevenue float64         `json:"current_revenue"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// DashboardBuilder assembles the dashboard summary step by step so the
// aggregation queries stay separate from the response shape.
type DashboardBuilder struct {
	stats DashboardStats
}

func NewDashboardBuilder() *DashboardBuilder {
	return &DashboardBuilder{
		stats: DashboardStats{
			Bookings: BookingOverview{ByStatus: map[string]int64{}},
		},
	}
}

func (b *DashboardBuilder) WithRoomOverview(total, available int64) *DashboardBuilder {
	b.stats.Rooms = RoomOverview{Total: total, Available: available}
	return b
}

func (b *DashboardBuilder) WithBookingsByStatus(byStatus map[string]int64) *DashboardBuilder {
	var total int64
	merged := make(map[string]int64, len(byStatus))
	for status, n := range byStatus {
		merged[status] = n
		total += n
	}
	b.stats.Bookings = BookingOverview{Total: total, ByStatus: merged}
	return b
}

func (b *DashboardBuilder) WithUserTotals(total, active int64) *DashboardBuilder {
	b.stats.Users = UserOverview{Total: total, Active: active}
	return b
}

func (b *DashboardBuilder) WithCurrentRevenue(revenue float64) *DashboardBuilder {
	b.stats.CurrentRevenue = revenue
	return b
}

func (b *DashboardBuilder) Build(now time.Time) DashboardStats {
	b.stats.GeneratedAt = now
	return b.stats
}
