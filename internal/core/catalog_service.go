package core

// CatalogService is the read-only inventory store. The catalog is built once at
// process start and never mutated afterwards, so lookups need no locking.
type CatalogService interface {
	// ListAll returns every product in stable catalog order.
	ListAll() []Product
	// FindByID returns the product with the given id, or false if unknown.
	FindByID(id int) (Product, bool)
}

type catalogService struct {
	products []Product
	byID     map[int]Product
}

func NewCatalogService(products []Product) CatalogService {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &catalogService{products: products, byID: byID}
}

// ListAll returns a copy so callers cannot mutate the backing slice.
func (s *catalogService) ListAll() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *catalogService) FindByID(id int) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}
