package orderbook

// PriceLevel is the FIFO queue of resting orders at one price.
type PriceLevel struct {
	Price      int64
	TotalQty   int64
	OrderCount int

	head *Order
	tail *Order
}

// Head returns the oldest resting order at this level.
func (p *PriceLevel) Head() *Order { return p.head }

func (p *PriceLevel) enqueue(o *Order) {
	if p.tail == nil {
		p.head, p.tail = o, o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.TotalQty += o.Qty
	p.OrderCount++
}

// unlink removes o from the queue. o must be linked into this level.
func (p *PriceLevel) unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next, o.prev = nil, nil
	p.TotalQty -= o.Qty
	p.OrderCount--
}

// reduce accounts a partial fill of a resting order.
func (p *PriceLevel) reduce(qty int64) {
	p.TotalQty -= qty
}
