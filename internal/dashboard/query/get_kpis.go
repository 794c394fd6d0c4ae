package query

import (
	"fmt"
	"time"

	inventorydomain "github.com/tair/dineboard/internal/inventory/domain"
	orderdomain "github.com/tair/dineboard/internal/order/domain"
	reservationdomain "github.com/tair/dineboard/internal/reservation/domain"
	staffdomain "github.com/tair/dineboard/internal/staff/domain"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
	"github.com/tair/dineboard/pkg/metrics"
)

// KPIs is the dashboard aggregate, recomputed from store snapshots on
// every request. Computation is pure; nothing here mutates state.
type KPIs struct {
	OrdersByStatus       map[string]int `json:"orders_by_status"`
	ReservationsByStatus map[string]int `json:"reservations_by_status"`
	TablesByStatus       map[string]int `json:"tables_by_status"`
	StaffByStatus        map[string]int `json:"staff_by_status"`

	TodayOrders  int     `json:"today_orders"`
	TodayRevenue float64 `json:"today_revenue"`
	ActiveOrders int     `json:"active_orders"`

	TodayReservations int `json:"today_reservations"`

	SeatedGuests   int     `json:"seated_guests"`
	TotalCapacity  int     `json:"total_capacity"`
	OccupancyRatio float64 `json:"occupancy_ratio"`

	LowStockItems int `json:"low_stock_items"`
	ExpiringItems int `json:"expiring_items"`
}

// GetKPIsQuery represents the query to compute dashboard KPIs
type GetKPIsQuery struct{}

// GetKPIsHandler handles KPI computation
type GetKPIsHandler struct {
	orders       orderdomain.OrderRepository
	reservations reservationdomain.ReservationRepository
	tables       tabledomain.TableRepository
	inventory    inventorydomain.ItemRepository
	staff        staffdomain.MemberRepository
	horizon      time.Duration
	now          func() time.Time
}

// NewGetKPIsHandler creates a new KPI handler
func NewGetKPIsHandler(
	orders orderdomain.OrderRepository,
	reservations reservationdomain.ReservationRepository,
	tables tabledomain.TableRepository,
	inventory inventorydomain.ItemRepository,
	staff staffdomain.MemberRepository,
	horizon time.Duration,
) *GetKPIsHandler {
	return &GetKPIsHandler{
		orders:       orders,
		reservations: reservations,
		tables:       tables,
		inventory:    inventory,
		staff:        staff,
		horizon:      horizon,
		now:          time.Now,
	}
}

// Handle computes the KPIs and refreshes the Prometheus gauges
func (h *GetKPIsHandler) Handle(query GetKPIsQuery) (*KPIs, error) {
	now := h.now()
	today := now.Format("2006-01-02")

	kpis := &KPIs{
		OrdersByStatus:       make(map[string]int),
		ReservationsByStatus: make(map[string]int),
		TablesByStatus:       make(map[string]int),
		StaffByStatus:        make(map[string]int),
	}

	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for _, o := range orders {
		kpis.OrdersByStatus[o.Status]++
		if !o.IsTerminal() {
			kpis.ActiveOrders++
		}
		if o.CreatedAt.Format("2006-01-02") == today {
			kpis.TodayOrders++
			if o.PaymentStatus == orderdomain.PaymentPaid {
				kpis.TodayRevenue += o.Total
			}
		}
	}

	reservations, err := h.reservations.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	for _, r := range reservations {
		kpis.ReservationsByStatus[r.Status]++
		if r.Date == today {
			kpis.TodayReservations++
		}
	}

	tables, err := h.tables.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	for _, t := range tables {
		kpis.TablesByStatus[t.Status]++
		kpis.SeatedGuests += t.GuestCount
		kpis.TotalCapacity += t.Capacity
	}
	// Guard the empty floor: zero capacity means zero occupancy, not NaN
	if kpis.TotalCapacity > 0 {
		kpis.OccupancyRatio = float64(kpis.SeatedGuests) / float64(kpis.TotalCapacity)
	}

	items, err := h.inventory.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	for _, i := range items {
		if i.LowStock() {
			kpis.LowStockItems++
		}
		if i.ExpiringWithin(h.horizon, now) {
			kpis.ExpiringItems++
		}
	}

	members, err := h.staff.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	for _, m := range members {
		kpis.StaffByStatus[m.Status]++
	}

	metrics.ActiveOrders.Set(float64(kpis.ActiveOrders))
	metrics.TodayRevenue.Set(kpis.TodayRevenue)
	metrics.OccupancyRatio.Set(kpis.OccupancyRatio)
	metrics.LowStockItems.Set(float64(kpis.LowStockItems))

	return kpis, nil
}
