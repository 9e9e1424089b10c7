package orders

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndReadBack(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "orders.json"))

	all, err := log.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	order := Order{
		ID:     "order-1",
		UserID: 1,
		Items: []LineItem{
			{ProductID: 1, ProductName: "Widget", Price: 10, Quantity: 2, Total: 20},
		},
		TotalAmount: 20,
		CreatedAt:   time.Now(),
	}

	require.NoError(t, log.Append(order))
	require.NoError(t, log.Append(Order{ID: "order-2", UserID: 2, TotalAmount: 5, CreatedAt: time.Now()}))

	all, err = log.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "order-1", all[0].ID)
	assert.Equal(t, "order-2", all[1].ID)
	assert.Equal(t, 20.0, all[0].TotalAmount)
	require.Len(t, all[0].Items, 1)
	assert.Equal(t, "Widget", all[0].Items[0].ProductName)
}
