package domain

// GetID implementations let the generic repository read identity without
// reflection. OrderDetail is excluded: its identity is the composite
// (OrderID, ProductID) pair and it is persisted through its owning order.

func (c *Category) GetID() int { return c.ID }
func (s *Supplier) GetID() int { return s.ID }
func (p *Product) GetID() int  { return p.ID }
func (c *Customer) GetID() int { return c.ID }
func (e *Employee) GetID() int { return e.ID }
func (s *Shipper) GetID() int  { return s.ID }
func (o *Order) GetID() int    { return o.ID }
