// Package cart holds the in-memory shopping carts. A cart lives for the
// duration of a storefront session and is merged by product id: adding a
// product that is already present bumps its quantity instead of creating
// a second line.
package cart

// Item is one cart line. Name, price, and image are captured from the
// catalog when the product is first added and kept as-is afterwards.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url"`
}

// Cart is an ordered collection of line items keyed by product id.
// Every line has quantity >= 1; a line driven to zero is removed rather
// than kept around. All operations are total: unknown product ids are
// no-ops, never errors.
type Cart struct {
	items []Item
}

func New() *Cart { return &Cart{} }

// Add inserts the item with quantity 1, or bumps the quantity by one if
// the product is already in the cart. First-seen values win: a repeat
// add ignores the supplied name/price/image. New lines are appended, and
// existing lines keep their relative order.
func (c *Cart) Add(item Item) {
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// SetQuantity sets the exact quantity for a product. Zero or negative
// removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for a product if present.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() { c.items = nil }

// TotalAmount sums price x quantity over all lines. It is recomputed on
// every call at full float precision; rounding to cents happens only
// where the value is rendered.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalItemCount sums the quantities over all lines.
func (c *Cart) TotalItemCount() int {
	var count int
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Len is the number of distinct lines.
func (c *Cart) Len() int { return len(c.items) }

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
