package session

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"bikeshare/models"
)

var testCities = []string{"chicago", "new york city", "washington"}

func collect(t *testing.T, input string) (models.FilterSelection, string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewCollector(NewPrompter(strings.NewReader(input), &out), testCities)
	sel, err := c.Collect()
	return sel, out.String(), err
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.FilterSelection
	}{
		{"no time filter", "chicago\nnone\n", models.FilterSelection{City: "chicago", Month: "all", Day: "all"}},
		{"month only", "Washington\nmonth\nMarch\n", models.FilterSelection{City: "washington", Month: "march", Day: "all"}},
		{"day only", "new york city\nday\nsunday\n", models.FilterSelection{City: "new york city", Month: "all", Day: "sunday"}},
		{"both", "chicago\nboth\njune\nFRIDAY\n", models.FilterSelection{City: "chicago", Month: "june", Day: "friday"}},
		{"both with all", "chicago\nboth\nall\nall\n", models.FilterSelection{City: "chicago", Month: "all", Day: "all"}},
		{"invalid answers are asked again", "boston\nchicago\nweek\nmonth\njuly\njanuary\n",
			models.FilterSelection{City: "chicago", Month: "january", Day: "all"}},
	}

	for _, tt := range tests {
		got, _, err := collect(t, tt.input)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestCollectRepeatsQuestionSilently(t *testing.T) {
	_, out, err := collect(t, "paris\nchicago\nnone\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	question := "Would you like to see data for Chicago, New york city or Washington?"
	if n := strings.Count(out, question); n != 2 {
		t.Errorf("city question asked %d times, want 2:\n%s", n, out)
	}
}

func TestCollectNoTimeFilterSkipsQuestions(t *testing.T) {
	_, out, err := collect(t, "chicago\nnone\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "Which month?") || strings.Contains(out, "Which day?") {
		t.Errorf("month/day must not be asked without a time filter:\n%s", out)
	}
}

func TestCollectEndOfInput(t *testing.T) {
	_, _, err := collect(t, "chicago\n")
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestListChoices(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{[]string{"chicago", "new york city", "washington"}, "Chicago, New york city or Washington"},
		{[]string{"chicago", "boston"}, "Chicago or Boston"},
		{[]string{"chicago"}, "Chicago"},
	}

	for _, tt := range tests {
		if got := listChoices(tt.names); got != tt.want {
			t.Errorf("listChoices(%v) = %q; want %q", tt.names, got, tt.want)
		}
	}
}
