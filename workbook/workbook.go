package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/cispoly/complexnum"
	"github.com/katalvlaran/cispoly/polynomial"
	"gopkg.in/yaml.v3"
)

// Coef is the YAML form of a complex number.
type Coef struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im,omitempty"`
}

// File is a decoded workbook.
type File struct {
	Polynomials map[string][]Coef `yaml:"polynomials"`
	Points      map[string]Coef   `yaml:"points,omitempty"`
}

// New returns an empty workbook.
func New() *File {
	return &File{
		Polynomials: map[string][]Coef{},
		Points:      map[string]Coef{},
	}
}

// Load reads a workbook from path. A missing file yields an empty workbook so
// results can be saved into a fresh file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML workbook and rejects polynomials without coefficients.
func Parse(data []byte) (*File, error) {
	f := New()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	// an explicit "points:" with no entries decodes to nil
	if f.Polynomials == nil {
		f.Polynomials = map[string][]Coef{}
	}
	if f.Points == nil {
		f.Points = map[string]Coef{}
	}

	for name, coefs := range f.Polynomials {
		if len(coefs) == 0 {
			return nil, fmt.Errorf("polynomial %q: %w", name, ErrEmptyPolynomial)
		}
	}

	return f, nil
}

// Save writes the workbook as YAML, creating parent directories as needed.
func (f *File) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create workbook directory: %w", err)
		}
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal workbook: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// Polynomial returns the named polynomial.
func (f *File) Polynomial(name string) (*polynomial.Vector, error) {
	coefs, ok := f.Polynomials[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPolynomial)
	}

	out := make([]complexnum.Complex, len(coefs))
	for i, c := range coefs {
		out[i] = c.Complex()
	}

	p, err := polynomial.New(out)
	if err != nil {
		// only reachable for a File built by hand with an empty list
		return nil, fmt.Errorf("polynomial %q: %w", name, ErrEmptyPolynomial)
	}

	return p, nil
}

// Point returns the named evaluation point.
func (f *File) Point(name string) (complexnum.Complex, error) {
	c, ok := f.Points[name]
	if !ok {
		return complexnum.Complex{}, fmt.Errorf("%q: %w", name, ErrUnknownPoint)
	}

	return c.Complex(), nil
}

// Put stores p under name, replacing any previous entry.
func (f *File) Put(name string, p polynomial.Polynomial) {
	coefs := p.Coefficients()
	out := make([]Coef, len(coefs))
	for i, c := range coefs {
		out[i] = FromComplex(c)
	}
	f.Polynomials[name] = out
}

// PutPoint stores z under name, replacing any previous entry.
func (f *File) PutPoint(name string, z complexnum.Complex) {
	f.Points[name] = FromComplex(z)
}

// Names returns the polynomial names in lexical order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Polynomials))
	for name := range f.Polynomials {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Complex converts the YAML form to a value.
func (c Coef) Complex() complexnum.Complex {
	return complexnum.New(c.Re, c.Im)
}

// FromComplex converts a value to its YAML form.
func FromComplex(z complexnum.Complex) Coef {
	return Coef{Re: z.Re(), Im: z.Im()}
}
