package nager

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// LoadFile reads holidays from a JSON file in the PublicHolidays response
// format. It lets the bot run against a fixed calendar when the API is
// unreachable.
func LoadFile(path string) ([]Holiday, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday file: %w", err)
	}

	var holidays []Holiday
	if err := json.Unmarshal(data, &holidays); err != nil {
		return nil, fmt.Errorf("failed to unmarshal holiday file: %w", err)
	}

	for i, h := range holidays {
		if _, err := h.Time(); err != nil {
			return nil, fmt.Errorf("holiday #%d: %w", i, err)
		}
	}

	return holidays, nil
}

// Filter returns the holidays of countryCode falling in year.
func Filter(holidays []Holiday, year int, countryCode string) []Holiday {
	prefix := fmt.Sprintf("%04d-", year)
	result := []Holiday{}
	for _, h := range holidays {
		if strings.EqualFold(h.CountryCode, countryCode) && strings.HasPrefix(h.Date, prefix) {
			result = append(result, h)
		}
	}
	return result
}

// FileSource serves a fixed calendar loaded with LoadFile through the same
// methods as Client.
type FileSource struct {
	holidays []Holiday
}

func NewFileSource(path string) (*FileSource, error) {
	holidays, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{holidays: holidays}, nil
}

// PublicHolidays returns ErrNoData when the file has nothing for the pair,
// like the API does for unknown countries.
func (s *FileSource) PublicHolidays(ctx context.Context, year int, countryCode string) ([]Holiday, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := Filter(s.holidays, year, countryCode)
	if len(result) == 0 {
		return nil, ErrNoData
	}
	return result, nil
}

// AvailableCountries lists the country codes present in the file. The file
// carries no country names, so the code doubles as the name.
func (s *FileSource) AvailableCountries(ctx context.Context) ([]Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, h := range s.holidays {
		seen[strings.ToUpper(h.CountryCode)] = struct{}{}
	}

	countries := make([]Country, 0, len(seen))
	for code := range seen {
		countries = append(countries, Country{CountryCode: code, Name: code})
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].CountryCode < countries[j].CountryCode
	})
	return countries, nil
}
