package services

import (
	"github.com/hpowerco/pedidos-app/models"
)

// SplitCosts groups the items of one order by participant and computes what
// each participant owes: their food subtotal plus an even share of the
// delivery fee, rounded up per participant.
//
// Participants appear in the result in the order they are first seen in
// items, and each participant's items keep their input order. Because the
// share is rounded up, the shares may add up to at most n-1 pesos more than
// the delivery fee; that surplus is intentional and must not be corrected.
//
// Pure function: no I/O, no hidden state. Returns nil for an empty item set;
// callers reject empty carts before getting here.
func SplitCosts(items []models.OrderItemDetail, deliveryFee int64) []models.UserCost {
	if len(items) == 0 {
		return nil
	}

	var costs []models.UserCost
	index := make(map[uint]int, len(items))

	for _, item := range items {
		i, seen := index[item.UserID]
		if !seen {
			i = len(costs)
			index[item.UserID] = i
			costs = append(costs, models.UserCost{
				UserID:   item.UserID,
				UserName: item.UserName,
			})
		}
		costs[i].Items = append(costs[i].Items, item)
		costs[i].Subtotal += item.Subtotal
	}

	share := ceilDiv(deliveryFee, int64(len(costs)))
	for i := range costs {
		costs[i].DeliveryCost = share
		costs[i].Total = costs[i].Subtotal + share
	}

	return costs
}

// ceilDiv divides fee by n rounding up. n must be positive.
func ceilDiv(fee, n int64) int64 {
	return (fee + n - 1) / n
}
