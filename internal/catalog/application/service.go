package application

import (
	"errors"

	"github.com/tableside/tableside/internal/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Service serves the read-only product catalog. Nothing in the process
// mutates it after construction.
type Service struct {
	products []domain.Product
}

func NewService(products []domain.Product) *Service {
	return &Service{products: products}
}

func (s *Service) List() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) Get(id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}
