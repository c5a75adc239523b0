package suggest

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func TestParseSuggestions(t *testing.T) {
	body := []byte(`["seo tips",["seo tips for beginners","seo tips 2025","best seo tips"]]`)

	suggestions, err := ParseSuggestions(body)
	if err != nil {
		t.Fatalf("Expected successful parse, got error: %v", err)
	}

	expected := []string{"seo tips for beginners", "seo tips 2025", "best seo tips"}
	if !reflect.DeepEqual(suggestions, expected) {
		t.Errorf("Expected %v, got %v", expected, suggestions)
	}
}

func TestParseSuggestions_EmptyList(t *testing.T) {
	suggestions, err := ParseSuggestions([]byte(`["nonsense",[]]`))
	if err != nil {
		t.Fatalf("Expected successful parse, got error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("Expected no suggestions, got %v", suggestions)
	}
}

func TestParseSuggestions_MalformedBody(t *testing.T) {
	if _, err := ParseSuggestions([]byte(`{"unexpected":"shape"`)); err == nil {
		t.Error("Expected error for malformed body")
	}
}

func TestParseSuggestions_MissingSuggestionArray(t *testing.T) {
	suggestions, err := ParseSuggestions([]byte(`["only the query"]`))
	if err != nil {
		t.Fatalf("Expected graceful handling, got error: %v", err)
	}
	if suggestions != nil {
		t.Errorf("Expected nil suggestions, got %v", suggestions)
	}
}

func TestSuggestions_UnreachableEndpointDegrades(t *testing.T) {
	client := NewClient(
		WithEndpoint("http://127.0.0.1:1/suggest?q="),
		WithTimeout(200*time.Millisecond),
	)

	suggestions := client.Suggestions(context.Background(), "anything")
	if len(suggestions) != 0 {
		t.Errorf("Expected empty suggestions on transport failure, got %v", suggestions)
	}
}
