package dashboard

import "github.com/shopspring/decimal"

type StatsResponse struct {
	Orders                 OrderStats      `json:"orders"`
	ActiveOrders           int64           `json:"activeOrders"`
	Routes                 RouteStats      `json:"routes"`
	TransportationRequests StatusBreakdown `json:"transportationRequests"`
	PendingTasks           int64           `json:"pendingTasks"`
	Revenue                decimal.Decimal `json:"revenue"`
}

// StatusBreakdown counts rows per status. Every known status is present, zeros included.
type StatusBreakdown struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

type OrderStats struct {
	StatusBreakdown
}

type RouteStats struct {
	StatusBreakdown
	Active int64 `json:"active"`
}

func breakdown[S ~string](known []S, counts map[S]int64) StatusBreakdown {
	out := StatusBreakdown{ByStatus: make(map[string]int64, len(known))}
	for _, s := range known {
		out.ByStatus[string(s)] = 0
	}
	for s, n := range counts {
		out.ByStatus[string(s)] = n
		out.Total += n
	}
	return out
}
