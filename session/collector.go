package session

import (
	"fmt"
	"strings"

	"bikeshare/models"
	"bikeshare/services"
)

// Collector gathers a FilterSelection from the user.
type Collector struct {
	prompter *Prompter
	cities   []string
}

// NewCollector returns a Collector offering the given city names.
func NewCollector(prompter *Prompter, cities []string) *Collector {
	return &Collector{prompter: prompter, cities: cities}
}

// Collect asks for a city, whether to filter by time and, only when asked
// for, a month and a day.
func (c *Collector) Collect() (models.FilterSelection, error) {
	fmt.Fprintln(c.prompter.out, "Hello! Let's explore some US bikeshare data!")

	city, err := c.prompter.Choose(
		fmt.Sprintf("Would you like to see data for %s?\n", listChoices(c.cities)), c.cities)
	if err != nil {
		return models.FilterSelection{}, err
	}
	selection := models.NewFilterSelection(city)

	timeFilter, err := c.prompter.Choose(
		"Would you like to filter the data by month, day or both, or not at all? Type \"none\" for no time filter.\n",
		models.TimeFilters)
	if err != nil {
		return models.FilterSelection{}, err
	}

	if models.WantsMonth(timeFilter) {
		months := append([]string{models.All}, models.Months...)
		selection.Month, err = c.prompter.Choose(
			fmt.Sprintf("Which month? %s or All?\n", strings.Join(titles(models.Months), ", ")), months)
		if err != nil {
			return models.FilterSelection{}, err
		}
	}

	if models.WantsDay(timeFilter) {
		days := append([]string{models.All}, models.Days...)
		selection.Day, err = c.prompter.Choose(
			fmt.Sprintf("Which day? %s or All?\n", strings.Join(titles(models.Days), ", ")), days)
		if err != nil {
			return models.FilterSelection{}, err
		}
	}

	fmt.Fprintln(c.prompter.out, services.Separator)
	return selection, nil
}

// listChoices renders names as "Chicago, New york city or Washington".
func listChoices(names []string) string {
	choices := titles(names)
	if len(choices) < 2 {
		return strings.Join(choices, "")
	}
	return strings.Join(choices[:len(choices)-1], ", ") + " or " + choices[len(choices)-1]
}

// titles upper-cases the first letter of each name.
func titles(names []string) []string {
	result := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			result = append(result, n)
			continue
		}
		result = append(result, strings.ToUpper(n[:1])+n[1:])
	}
	return result
}
