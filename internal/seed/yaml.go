package seed

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/AndreWeigel/bestbuy2/internal/domain"
)

type PromotionType string

const (
	PromotionPercent         PromotionType = "percent"
	PromotionSecondHalfPrice PromotionType = "second_half_price"
	PromotionThirdOneFree    PromotionType = "third_one_free"
)

// File is the YAML layout of a catalog seed
type File struct {
	Promotions []PromotionSpec `yaml:"promotions"`
	Products   []ProductSpec   `yaml:"products"`
}

type PromotionSpec struct {
	Name       string          `yaml:"name"`
	Type       PromotionType   `yaml:"type"`
	Percentage decimal.Decimal `yaml:"percentage"`
}

type ProductSpec struct {
	Name      string          `yaml:"name"`
	Price     decimal.Decimal `yaml:"price"`
	Quantity  int             `yaml:"quantity"`
	Kind      domain.Kind     `yaml:"kind"`    // defaults to standard
	Maximum   int             `yaml:"maximum"` // limited only
	Promotion string          `yaml:"promotion"`
}

// Load reads and builds the catalog at path
func Load(path string) ([]*domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %q", path)
	}
	products, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %q", path)
	}
	return products, nil
}

// Parse builds the catalog described by a YAML document
func Parse(data []byte) ([]*domain.Product, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	return build(&f)
}

func build(f *File) ([]*domain.Product, error) {
	promotions := make(map[string]domain.Promotion, len(f.Promotions))
	for _, spec := range f.Promotions {
		if _, exists := promotions[spec.Name]; exists {
			return nil, errors.Wrapf(domain.ErrInvalidParameter, "duplicate promotion %q", spec.Name)
		}
		promo, err := spec.build()
		if err != nil {
			return nil, err
		}
		promotions[spec.Name] = promo
	}

	products := make([]*domain.Product, 0, len(f.Products))
	for _, spec := range f.Products {
		p, err := spec.build()
		if err != nil {
			return nil, err
		}
		if spec.Promotion != "" {
			promo, ok := promotions[spec.Promotion]
			if !ok {
				return nil, errors.Wrapf(domain.ErrInvalidParameter,
					"product %q references unknown promotion %q", spec.Name, spec.Promotion)
			}
			if err := p.SetPromotion(promo); err != nil {
				return nil, err
			}
		}
		products = append(products, p)
	}
	return products, nil
}

func (s PromotionSpec) build() (domain.Promotion, error) {
	switch s.Type {
	case PromotionPercent:
		return domain.NewPercentDiscount(s.Name, s.Percentage)
	case PromotionSecondHalfPrice:
		return domain.NewSecondHalfPrice(s.Name)
	case PromotionThirdOneFree:
		return domain.NewThirdOneFree(s.Name)
	default:
		return nil, errors.Wrapf(domain.ErrInvalidParameter, "promotion %q has unknown type %q", s.Name, s.Type)
	}
}

func (s ProductSpec) build() (*domain.Product, error) {
	if s.Kind != domain.KindLimited && s.Maximum != 0 {
		return nil, errors.Wrapf(domain.ErrInvalidParameter,
			"product %q: maximum only applies to limited products", s.Name)
	}
	if s.Kind == domain.KindNonStocked && s.Quantity != 0 {
		return nil, errors.Wrapf(domain.ErrInvalidParameter,
			"product %q: non-stocked products take no quantity", s.Name)
	}

	switch s.Kind {
	case "", domain.KindStandard:
		return domain.NewProduct(s.Name, s.Price, s.Quantity)
	case domain.KindNonStocked:
		return domain.NewNonStockedProduct(s.Name, s.Price)
	case domain.KindLimited:
		return domain.NewLimitedProduct(s.Name, s.Price, s.Quantity, s.Maximum)
	default:
		return nil, errors.Wrapf(domain.ErrInvalidParameter, "product %q has unknown kind %q", s.Name, s.Kind)
	}
}
