package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

var (
	// ErrProductNotFound is returned when no product exists for an id.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when a create collides on the primary key.
	ErrDuplicateProduct = errors.New("a product with this id already exists")
	// ErrUpdateConflict is returned when an update lost a race against a
	// concurrent writer while the row still exists.
	ErrUpdateConflict = errors.New("product was modified concurrently")
	// ErrInvalidImage is returned when the submitted image is not valid base64.
	ErrInvalidImage = errors.New("image is not valid base64")
)

// ProductService exposes product CRUD operations.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, name string, price float64, imageB64 string) (*model.Product, error)
	Update(ctx context.Context, id uint, name string, price float64, imageB64 string) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService builds a ProductService over the given repository.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

// Get returns the product for id. Id 0 is never assigned by the store and
// is treated as not found without touching it.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return product, nil
}

// Create validates and persists a new product. The image arrives base64
// encoded; an empty string stores as an empty byte sequence.
func (s *productService) Create(ctx context.Context, name string, price float64, imageB64 string) (*model.Product, error) {
	image, err := decodeImage(imageB64)
	if err != nil {
		return nil, err
	}

	product, err := model.NewProduct(name, price, image)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateProduct
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update replaces every field of the stored product with a freshly
// validated entity. A row that vanished between lookup and persist reports
// ErrProductNotFound; a row that changed underneath reports ErrUpdateConflict.
func (s *productService) Update(ctx context.Context, id uint, name string, price float64, imageB64 string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("find product %d: %w", id, err)
	}

	image, err := decodeImage(imageB64)
	if err != nil {
		return err
	}

	product, err := model.NewProductWithID(id, name, price, image)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrProductNotFound
		case errors.Is(err, repository.ErrStaleUpdate):
			return ErrUpdateConflict
		default:
			return fmt.Errorf("update product %d: %w", id, err)
		}
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("find product %d: %w", id, err)
	}
	if err := s.repo.Delete(ctx, product); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func decodeImage(imageB64 string) ([]byte, error) {
	if imageB64 == "" {
		return []byte{}, nil
	}
	image, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		return nil, ErrInvalidImage
	}
	return image, nil
}
