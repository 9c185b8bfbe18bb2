// Package geography holds the City > District > Ward hierarchy used by the
// shipping address selectors.
package geography

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed addresses.yaml
var defaultData []byte

var (
	ErrUnknownCity     = errors.New("unknown city")
	ErrUnknownDistrict = errors.New("unknown district")
	ErrUnknownWard     = errors.New("unknown ward")
)

// Ward is the smallest administrative unit
type Ward struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Level string `yaml:"level" json:"level"`
}

// District groups wards
type District struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Wards []Ward `yaml:"wards" json:"wards,omitempty"`
}

// City groups districts
type City struct {
	ID        string     `yaml:"id" json:"id"`
	Name      string     `yaml:"name" json:"name"`
	Districts []District `yaml:"districts" json:"districts,omitempty"`
}

// Dataset is the full address hierarchy. Selections are made by name.
type Dataset struct {
	Cities []City `yaml:"cities"`
}

// Parse decodes a YAML dataset
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse geography dataset: %w", err)
	}
	if len(ds.Cities) == 0 {
		return nil, errors.New("geography dataset has no cities")
	}
	return &ds, nil
}

// Load reads a dataset from path
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

var (
	defaultOnce sync.Once
	defaultSet  *Dataset
)

// Default returns the embedded dataset
func Default() *Dataset {
	defaultOnce.Do(func() {
		ds, err := Parse(defaultData)
		if err != nil {
			panic(err)
		}
		defaultSet = ds
	})
	return defaultSet
}

// City looks up a city by name
func (d *Dataset) City(name string) (*City, error) {
	for i := range d.Cities {
		if d.Cities[i].Name == name {
			return &d.Cities[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

// Districts lists the districts of city
func (d *Dataset) Districts(city string) ([]District, error) {
	c, err := d.City(city)
	if err != nil {
		return nil, err
	}
	return c.Districts, nil
}

// District looks up a district of city by name
func (d *Dataset) District(city, district string) (*District, error) {
	c, err := d.City(city)
	if err != nil {
		return nil, err
	}
	for i := range c.Districts {
		if c.Districts[i].Name == district {
			return &c.Districts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %q", ErrUnknownDistrict, district, city)
}

// Wards lists the wards of a district
func (d *Dataset) Wards(city, district string) ([]Ward, error) {
	dist, err := d.District(city, district)
	if err != nil {
		return nil, err
	}
	return dist.Wards, nil
}

// Ward looks up a ward by name
func (d *Dataset) Ward(city, district, ward string) (*Ward, error) {
	dist, err := d.District(city, district)
	if err != nil {
		return nil, err
	}
	for i := range dist.Wards {
		if dist.Wards[i].Name == ward {
			return &dist.Wards[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %q", ErrUnknownWard, ward, district)
}

// CityList lists the cities without their districts
func (d *Dataset) CityList() []City {
	out := make([]City, len(d.Cities))
	for i, c := range d.Cities {
		out[i] = City{ID: c.ID, Name: c.Name}
	}
	return out
}
