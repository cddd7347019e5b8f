package cleaning

import "context"

// AliasStore is the durable home of learned rules. The engine reads the four
// dictionary collections through it and mirrors every promoted rule back.
// Implementations live outside this package (feature/catalog backs it with
// MySQL); the engine is agnostic to the storage.
//
// Create operations must be idempotent: rule promotion is best-effort and
// safely repeatable.
type AliasStore interface {
	// LoadSizes returns the canonical size labels (statistics-derived).
	LoadSizes(ctx context.Context) ([]KnownValue, error)
	// LoadSizeAliases returns aliasText → mappedSize edges, merged into the
	// matcher sets of their labels.
	LoadSizeAliases(ctx context.Context) ([]Alias, error)
	// LoadProductAliases returns aliasText → mappedProductName edges.
	LoadProductAliases(ctx context.Context) ([]Alias, error)
	// LoadProductNames returns every canonical product name.
	LoadProductNames(ctx context.Context) ([]string, error)

	// CreateSize registers a new canonical size label.
	CreateSize(ctx context.Context, label string) error
	// CreateSizeAlias registers an aliasText → mappedSize edge.
	CreateSizeAlias(ctx context.Context, aliasText, mappedSize string) error
	// CreateProductAlias registers an aliasText → mappedProductName edge.
	CreateProductAlias(ctx context.Context, aliasText, mappedProductName string) error

	// SearchProductNames looks up canonical product names for the sidebar
	// search. Matching strategy is up to the implementation.
	SearchProductNames(ctx context.Context, query string) ([]string, error)
}

// LoadDictionary pulls all four dictionary collections from the store and
// merges them into one Dictionary. The first error aborts the load; callers
// decide whether to fail over to an empty dictionary.
func LoadDictionary(ctx context.Context, store AliasStore) (*Dictionary, error) {
	sizes, err := store.LoadSizes(ctx)
	if err != nil {
		return nil, err
	}
	sizeAliases, err := store.LoadSizeAliases(ctx)
	if err != nil {
		return nil, err
	}
	productAliases, err := store.LoadProductAliases(ctx)
	if err != nil {
		return nil, err
	}
	productNames, err := store.LoadProductNames(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDictionary(sizes, sizeAliases, productAliases, productNames), nil
}
