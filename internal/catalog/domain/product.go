package domain

// Product is a catalog entry. Read-only everywhere outside the catalog
// loader; prices are integer minor units.
type Product struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Price    int64  `json:"price" yaml:"price"`
	Stock    int    `json:"stock" yaml:"stock"`
	Category string `json:"category" yaml:"category"`
}
