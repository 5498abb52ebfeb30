package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// City maps a city name to where its trips are stored: a CSV file name
// (relative to the data directory) and a database table name.
type City struct {
	Name  string `yaml:"name"`
	File  string `yaml:"file"`
	Table string `yaml:"table"`
}

// CityTable is the ordered list of cities the tool can analyse.
type CityTable struct {
	Cities []City `yaml:"cities"`
}

// DefaultCityTable returns the three bikeshare systems shipped with the tool.
func DefaultCityTable() *CityTable {
	return &CityTable{
		Cities: []City{
			{Name: "chicago", File: "chicago.csv", Table: "chicago_trips"},
			{Name: "new york city", File: "new_york_city.csv", Table: "new_york_city_trips"},
			{Name: "washington", File: "washington.csv", Table: "washington_trips"},
		},
	}
}

// LoadCityTable parses the YAML city table at path. A missing file yields
// the default table; a file that exists but cannot be parsed is an error.
func LoadCityTable(path string) (*CityTable, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultCityTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening cities config file: %w", err)
	}

	return ParseCityTable(content)
}

// ParseCityTable decodes a YAML city table and validates its entries.
func ParseCityTable(content []byte) (*CityTable, error) {
	var table CityTable
	if err := yaml.Unmarshal(content, &table); err != nil {
		return nil, fmt.Errorf("error parsing cities config file: %w", err)
	}

	if len(table.Cities) == 0 {
		return nil, errors.New("cities config file declares no cities")
	}

	seen := make(map[string]bool, len(table.Cities))
	for i := range table.Cities {
		city := &table.Cities[i]
		city.Name = strings.ToLower(strings.TrimSpace(city.Name))
		if city.Name == "" {
			return nil, fmt.Errorf("city #%d has no name", i+1)
		}
		if seen[city.Name] {
			return nil, fmt.Errorf("city %q declared twice", city.Name)
		}
		seen[city.Name] = true

		if city.File == "" {
			city.File = strings.ReplaceAll(city.Name, " ", "_") + ".csv"
		}
		if city.Table == "" {
			city.Table = strings.ReplaceAll(city.Name, " ", "_") + "_trips"
		}
	}

	return &table, nil
}

// Names returns the city names in declaration order.
func (t *CityTable) Names() []string {
	names := make([]string, 0, len(t.Cities))
	for _, c := range t.Cities {
		names = append(names, c.Name)
	}
	return names
}

// Lookup finds a city by name, case-insensitively.
func (t *CityTable) Lookup(name string) (City, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range t.Cities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}
