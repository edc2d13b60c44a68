package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/booklocker-backend/internal/domain"
)

// Catalog is the seed file: machines with the books stocked in them, plus
// books not yet placed in any machine.
type Catalog struct {
	Machines []MachineSeed `yaml:"machines"`
	Unplaced []BookSeed    `yaml:"unplaced_books"`
}

// MachineSeed describes one vending machine.
type MachineSeed struct {
	Name     string     `yaml:"name"`
	Location string     `yaml:"location"`
	Books    []BookSeed `yaml:"books"`
}

// BookSeed describes one book. Category accepts the wire names
// ("pessoal", "profissional") as well as the internal ones.
type BookSeed struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Year        *int   `yaml:"year"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	Category    string `yaml:"category"`
}

// ReadCatalogFile opens and parses a catalog file.
func ReadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f)
}

// ParseCatalog decodes and validates a YAML catalog. Unknown keys are
// rejected to catch typos in hand-written files.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks names, titles and categories and reports every problem
// found, not just the first.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Machines))

	for i, m := range c.Machines {
		name := strings.TrimSpace(m.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("machines[%d]: name is required", i))
		case seen[strings.ToLower(name)]:
			errs = append(errs, fmt.Errorf("machines[%d]: duplicate name %q", i, name))
		default:
			seen[strings.ToLower(name)] = true
		}
		for j, b := range m.Books {
			if err := b.validate(); err != nil {
				errs = append(errs, fmt.Errorf("machines[%d].books[%d]: %w", i, j, err))
			}
		}
	}
	for j, b := range c.Unplaced {
		if err := b.validate(); err != nil {
			errs = append(errs, fmt.Errorf("unplaced_books[%d]: %w", j, err))
		}
	}
	return errors.Join(errs...)
}

// BookCount returns the number of books in the catalog.
func (c *Catalog) BookCount() int {
	n := len(c.Unplaced)
	for _, m := range c.Machines {
		n += len(m.Books)
	}
	return n
}

func (b BookSeed) validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title is required")
	}
	if _, ok := domain.ParseBookCategory(b.Category); !ok {
		return fmt.Errorf("invalid category %q", b.Category)
	}
	return nil
}

// toBook builds an available book placed in machineID (nil for unplaced).
func (b BookSeed) toBook(machineID *int64) *domain.Book {
	category, _ := domain.ParseBookCategory(b.Category)
	return &domain.Book{
		Title:       strings.TrimSpace(b.Title),
		Author:      strings.TrimSpace(b.Author),
		Year:        b.Year,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Category:    category,
		Status:      domain.BookStatusAvailable,
		MachineID:   machineID,
	}
}
