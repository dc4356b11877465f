package domain

// Order is a relocation request as submitted by the customer. It is
// immutable once built and is not persisted until accepted.
type Order struct {
	CustomerName     string
	Tel              string
	Email            string
	OldPrefectureID  string
	NewPrefectureID  string
	OldAddress       string
	NewAddress       string
	Packages         map[PackageType]int
	OptionalServices []OptionalServiceType
}

// Quantity returns the submitted count for a package type; absent types
// count as zero.
func (o *Order) Quantity(p PackageType) int {
	return o.Packages[p]
}

// HasService reports whether the given optional service was selected.
func (o *Order) HasService(s OptionalServiceType) bool {
	for _, sel := range o.OptionalServices {
		if sel == s {
			return true
		}
	}
	return false
}

// Validate checks structural invariants: prefecture ids present, all
// quantities non-negative, and every package/service code known.
func (o *Order) Validate() bool {
	if o.OldPrefectureID == "" || o.NewPrefectureID == "" {
		return false
	}
	for p, qty := range o.Packages {
		if !p.Valid() || qty < 0 {
			return false
		}
	}
	for _, s := range o.OptionalServices {
		if !s.Valid() {
			return false
		}
	}
	return true
}

// Customer is the persisted projection of an accepted order's contact
// fields. ID is assigned by the persistence layer and never changes.
type Customer struct {
	ID              int64
	Name            string
	Tel             string
	Email           string
	OldPrefectureID string
	NewPrefectureID string
	OldAddress      string
	NewAddress      string
}

// CustomerFromOrder builds the customer row for an accepted order.
func CustomerFromOrder(o *Order) Customer {
	return Customer{
		Name:            o.CustomerName,
		Tel:             o.Tel,
		Email:           o.Email,
		OldPrefectureID: o.OldPrefectureID,
		NewPrefectureID: o.NewPrefectureID,
		OldAddress:      o.OldAddress,
		NewAddress:      o.NewAddress,
	}
}

// CustomerPackage associates a customer with a package type and the
// submitted quantity. Zero-quantity rows are valid and expected.
type CustomerPackage struct {
	CustomerID  int64
	PackageType PackageType
	Quantity    int
}

// RegisterResult - struct representing the outcome of accepting an order.
type RegisterResult struct {
	CustomerID       int64
	OptionalServices []OptionalServiceType
	Packages         []CustomerPackage
}
