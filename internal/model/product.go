package model

// MinProductPrice is the lowest price a product may be sold at.
const MinProductPrice = 0.50

// DefaultProductName is used when a request carries no product name.
const DefaultProductName = "Unnamed Product"

// ValidationError reports a business-rule violation raised by a validating
// constructor. Handlers translate it to a 400 response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Product represents a catalog item.
type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"size:255;not null"`
	Price float64 `json:"price" gorm:"not null"`
	Image []byte  `json:"image,omitempty" gorm:"type:longblob"`
}

// NewProduct builds a product without an id, validating the business rules.
// A product can only exist if its name is non-empty and its price is at
// least MinProductPrice.
func NewProduct(name string, price float64, image []byte) (*Product, error) {
	if name == "" {
		return nil, &ValidationError{Reason: "product name cannot be empty"}
	}
	if price < MinProductPrice {
		return nil, &ValidationError{Reason: "product price cannot be less than 0.50"}
	}
	if image == nil {
		image = []byte{}
	}
	return &Product{Name: name, Price: price, Image: image}, nil
}

// NewProductWithID builds a product carrying an existing id, applying the
// same validation as NewProduct. Used for full replacement on update.
func NewProductWithID(id uint, name string, price float64, image []byte) (*Product, error) {
	product, err := NewProduct(name, price, image)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return product, nil
}
