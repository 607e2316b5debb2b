// Package catalog loads the static product and blog catalogs embedded in the binary.
package catalog

import (
	"bytes"
	"embed"
	"io"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type productFile struct {
	Products []entity.Product `yaml:"products"`
}

type blogFile struct {
	Posts []entity.BlogPost `yaml:"posts"`
}

// store is an immutable in-memory catalog.
type store struct {
	products []entity.Product
	posts    []entity.BlogPost
}

// Params defines the dependencies for the catalog provider
type Params struct {
	fx.In

	Logger *slog.Logger
}

// New decodes the embedded catalog once at startup.
func New(params Params) (repository.CatalogRepository, error) {
	productsRaw, err := dataFS.ReadFile("data/products.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded products")
	}
	postsRaw, err := dataFS.ReadFile("data/blog.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded blog posts")
	}

	s, err := Load(bytes.NewReader(productsRaw), bytes.NewReader(postsRaw))
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Catalog loaded",
		slog.Int("products", len(s.Products())),
		slog.Int("posts", len(s.Posts())),
	)

	return s, nil
}

// Load decodes and validates catalog YAML from the given readers.
func Load(products, posts io.Reader) (repository.CatalogRepository, error) {
	var pf productFile
	if err := decodeStrict(products, &pf); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}
	if err := validateProducts(pf.Products); err != nil {
		return nil, err
	}

	var bf blogFile
	if err := decodeStrict(posts, &bf); err != nil {
		return nil, errors.Wrap(err, "failed to decode blog posts")
	}

	return &store{products: pf.Products, posts: bf.Posts}, nil
}

func (s *store) Products() []entity.Product {
	return s.products
}

func (s *store) Posts() []entity.BlogPost {
	return s.posts
}

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	return dec.Decode(out)
}

func validateProducts(products []entity.Product) error {
	seen := make(map[string]struct{}, len(products))
	for i := range products {
		p := &products[i]
		if p.ID == "" {
			return errors.Errorf("product #%d has no id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return errors.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Price.IsNegative() {
			return errors.Errorf("product %s has a negative price", p.ID)
		}
		if len(p.Sizes) == 0 || len(p.Colors) == 0 {
			return errors.Errorf("product %s needs at least one size and one color", p.ID)
		}
	}

	return nil
}
