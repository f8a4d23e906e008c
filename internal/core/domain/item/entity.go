package item

import (
	"errors"
	"fmt"
	"math"

	"itemservice/internal/platform/validation"
)

const (
	ObjectName = "item"

	FieldName     = "itemName"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidItemID = errors.New("item ID cannot be empty")
)

type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("item with id '%s' already exists", e.ID)
}

// ValidationError is returned when an item breaks one or more rules. The
// violations are sealed and safe to read.
type ValidationError struct {
	Violations *validation.Violations
}

func (e *ValidationError) Error() string {
	return "item validation failed: " + e.Violations.String()
}

type Item struct {
	ID       string
	Name     string
	Price    *int
	Quantity *int
}

func (i *Item) GetID() string {
	return i.ID
}

func New(name string, price, quantity *int) *Item {
	return &Item{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
}

// TotalPrice reports price * quantity, false when either is unset. A product
// beyond the int range saturates at math.MaxInt or math.MinInt.
func (i *Item) TotalPrice() (int, bool) {
	if i.Price == nil || i.Quantity == nil {
		return 0, false
	}
	return saturatingMul(*i.Price, *i.Quantity), true
}

func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	product := a * b
	if product/b == a && !(a == -1 && b == math.MinInt) && !(b == -1 && a == math.MinInt) {
		return product
	}
	if (a > 0) == (b > 0) {
		return math.MaxInt
	}
	return math.MinInt
}

func IntPtr(v int) *int {
	return &v
}
