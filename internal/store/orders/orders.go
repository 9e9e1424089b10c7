package orders

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

type LineItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

type Order struct {
	ID          string     `json:"id"`
	UserID      uint       `json:"user_id"`
	Items       []LineItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Log is an append-only JSON order log. The file holds a flat array and is
// rewritten wholesale on every append under a single writer lock.
type Log struct {
	mu   sync.Mutex
	path string
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Append(order Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.read()

	if err != nil {
		return err
	}

	orders = append(orders, order)

	data, err := json.MarshalIndent(orders, "", "  ")

	if err != nil {
		return err
	}

	return os.WriteFile(l.path, data, 0644)
}

func (l *Log) All() ([]Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.read()
}

func (l *Log) read() ([]Order, error) {
	data, err := os.ReadFile(l.path)

	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var orders []Order

	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
