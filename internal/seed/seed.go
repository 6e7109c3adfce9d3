// Package seed loads YAML fixtures into the in-memory stores at startup.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/rules"
)

// Fixtures is the decoded content of a seed file.
type Fixtures struct {
	Staff        []models.StaffMember `yaml:"staff"`
	Shops        []models.Shop        `yaml:"shops"`
	Products     []models.Product     `yaml:"products"`
	Promotions   []models.Promotion   `yaml:"promotions"`
	Reviews      []models.Review      `yaml:"reviews"`
	Transactions []models.Transaction `yaml:"transactions"`
}

// Stores are the targets Apply writes into.
type Stores struct {
	Staff        *repositories.RecordStore[models.StaffMember]
	Shops        *repositories.RecordStore[models.Shop]
	Products     *repositories.RecordStore[models.Product]
	Promotions   *repositories.RecordStore[models.Promotion]
	Reviews      *repositories.RecordStore[models.Review]
	Transactions *repositories.RecordStore[models.Transaction]
}

// Parse decodes a seed payload. Unknown keys are rejected so typos surface at startup.
func Parse(data []byte) (Fixtures, error) {
	var f Fixtures
	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Fixtures{}, fmt.Errorf("seed: decode: %w", err)
	}
	return f, nil
}

// LoadFile reads fixtures from path. A missing file yields empty fixtures.
func LoadFile(path string) (Fixtures, error) {
	if strings.TrimSpace(path) == "" {
		return Fixtures{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Fixtures{}, nil
		}
		return Fixtures{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return Fixtures{}, fmt.Errorf("seed: %s: %w", path, err)
	}
	return f, nil
}

// Count is the number of records across all sections.
func (f Fixtures) Count() int {
	return len(f.Staff) + len(f.Shops) + len(f.Products) + len(f.Promotions) + len(f.Reviews) + len(f.Transactions)
}

// Apply seeds every section into its store. Shops go before products so
// product shop references can be checked. Staff without explicit
// permissions receive their role template.
func (f Fixtures) Apply(s Stores) error {
	staff := make([]models.StaffMember, len(f.Staff))
	for i, m := range f.Staff {
		if len(m.Permissions) == 0 {
			perms, err := rules.ResolvePermissions(m.Role)
			if err != nil {
				return fmt.Errorf("seed: staff #%d: %w", i, err)
			}
			m.Permissions = perms
		}
		staff[i] = m
	}
	if err := s.Staff.Seed(staff...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := s.Shops.Seed(f.Shops...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	for i, p := range f.Products {
		if _, err := s.Shops.Get(p.ShopID); err != nil {
			return fmt.Errorf("seed: product #%d: %w", i, err)
		}
	}
	if err := s.Products.Seed(f.Products...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := s.Promotions.Seed(f.Promotions...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := s.Reviews.Seed(f.Reviews...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := s.Transactions.Seed(f.Transactions...); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
