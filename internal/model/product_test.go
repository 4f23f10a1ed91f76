package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       float64
		image       []byte
		wantErr     string
	}{
		{
			name:        "valid product",
			productName: "Widget",
			price:       9.90,
			image:       []byte{0x01, 0x02},
		},
		{
			name:        "price at minimum",
			productName: "Cheap Widget",
			price:       0.50,
		},
		{
			name:        "empty name",
			productName: "",
			price:       9.90,
			wantErr:     "product name cannot be empty",
		},
		{
			name:        "price below minimum",
			productName: "Widget",
			price:       0.49,
			wantErr:     "product price cannot be less than 0.50",
		},
		{
			name:        "negative price",
			productName: "Widget",
			price:       -10,
			wantErr:     "product price cannot be less than 0.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, tt.price, tt.image)

			if tt.wantErr != "" {
				assert.Nil(t, product)
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantErr, vErr.Reason)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, uint(0), product.ID)
			assert.Equal(t, tt.productName, product.Name)
			assert.Equal(t, tt.price, product.Price)
			assert.NotNil(t, product.Image)
			if tt.image != nil {
				assert.Equal(t, tt.image, product.Image)
			} else {
				assert.Empty(t, product.Image)
			}
		})
	}
}

func TestNewProductWithID(t *testing.T) {
	product, err := NewProductWithID(7, "Widget", 9.90, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), product.ID)

	product, err = NewProductWithID(7, "Widget", 0.10, nil)
	assert.Nil(t, product)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
