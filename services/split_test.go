package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpowerco/pedidos-app/models"
)

func item(userID uint, userName string, subtotal int64) models.OrderItemDetail {
	return models.OrderItemDetail{
		UserID:   userID,
		UserName: userName,
		Quantity: 1,
		Subtotal: subtotal,
	}
}

func TestSplitCostsTwoUsers(t *testing.T) {
	// A: 2 x 10000 = 20000, B: 1 x 15000. Delivery 5000 -> 2500 each.
	items := []models.OrderItemDetail{
		item(1, "Ana", 20000),
		item(2, "Beto", 15000),
	}

	costs := SplitCosts(items, 5000)

	assert.Len(t, costs, 2)

	assert.Equal(t, uint(1), costs[0].UserID)
	assert.Equal(t, "Ana", costs[0].UserName)
	assert.Equal(t, int64(20000), costs[0].Subtotal)
	assert.Equal(t, int64(2500), costs[0].DeliveryCost)
	assert.Equal(t, int64(22500), costs[0].Total)

	assert.Equal(t, uint(2), costs[1].UserID)
	assert.Equal(t, int64(15000), costs[1].Subtotal)
	assert.Equal(t, int64(2500), costs[1].DeliveryCost)
	assert.Equal(t, int64(17500), costs[1].Total)
}

func TestSplitCostsRoundingSurplusIsKept(t *testing.T) {
	// 1000 / 3 rounds up to 334 each; the 2-peso surplus must stay.
	items := []models.OrderItemDetail{
		item(1, "Ana", 8000),
		item(2, "Beto", 9000),
		item(3, "Carla", 7000),
	}

	costs := SplitCosts(items, 1000)

	assert.Len(t, costs, 3)
	var shareSum int64
	for _, cost := range costs {
		assert.Equal(t, int64(334), cost.DeliveryCost)
		shareSum += cost.DeliveryCost
	}
	assert.Equal(t, int64(1002), shareSum)
}

func TestSplitCostsConservesFoodSubtotal(t *testing.T) {
	items := []models.OrderItemDetail{
		item(7, "Gloria", 12500),
		item(3, "Carla", 8000),
		item(7, "Gloria", 4500),
		item(3, "Carla", 100),
		item(9, "Iván", 0),
	}

	var want int64
	for _, it := range items {
		want += it.Subtotal
	}

	costs := SplitCosts(items, 7300)

	var got int64
	for _, cost := range costs {
		got += cost.Subtotal
		assert.Equal(t, cost.Subtotal+cost.DeliveryCost, cost.Total)
	}
	assert.Equal(t, want, got)

	// Share sum stays within [fee, fee+n-1].
	n := int64(len(costs))
	var shareSum int64
	for _, cost := range costs {
		shareSum += cost.DeliveryCost
	}
	assert.GreaterOrEqual(t, shareSum, int64(7300))
	assert.LessOrEqual(t, shareSum, int64(7300)+n-1)
}

func TestSplitCostsGroupsByFirstSeenOrder(t *testing.T) {
	items := []models.OrderItemDetail{
		item(5, "Elena", 1000),
		item(2, "Beto", 2000),
		item(5, "Elena", 3000),
		item(8, "Hugo", 4000),
	}

	costs := SplitCosts(items, 0)

	assert.Len(t, costs, 3)
	assert.Equal(t, uint(5), costs[0].UserID)
	assert.Equal(t, uint(2), costs[1].UserID)
	assert.Equal(t, uint(8), costs[2].UserID)

	// Elena's two items keep their input order.
	assert.Len(t, costs[0].Items, 2)
	assert.Equal(t, int64(1000), costs[0].Items[0].Subtotal)
	assert.Equal(t, int64(3000), costs[0].Items[1].Subtotal)
	assert.Equal(t, int64(4000), costs[0].Subtotal)

	// Zero delivery fee means zero shares.
	for _, cost := range costs {
		assert.Equal(t, int64(0), cost.DeliveryCost)
		assert.Equal(t, cost.Subtotal, cost.Total)
	}
}

func TestSplitCostsIsIdempotent(t *testing.T) {
	items := []models.OrderItemDetail{
		item(1, "Ana", 20000),
		item(2, "Beto", 15000),
		item(1, "Ana", 500),
	}

	first := SplitCosts(items, 4999)
	second := SplitCosts(items, 4999)

	assert.Equal(t, first, second)
}

func TestSplitCostsEmptyItems(t *testing.T) {
	assert.Nil(t, SplitCosts(nil, 5000))
	assert.Nil(t, SplitCosts([]models.OrderItemDetail{}, 5000))
}

func TestSplitCostsSingleUserOwesWholeFee(t *testing.T) {
	costs := SplitCosts([]models.OrderItemDetail{item(4, "Diego", 9900)}, 4500)

	assert.Len(t, costs, 1)
	assert.Equal(t, int64(4500), costs[0].DeliveryCost)
	assert.Equal(t, int64(14400), costs[0].Total)
}
