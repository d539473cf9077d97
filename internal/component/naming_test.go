package component

import "testing"

func TestClassName(t *testing.T) {
	cases := map[string]string{
		"user":        "User",
		"order_item":  "OrderItem",
		"api_key":     "ApiKey",
		"category":    "Category",
		"line_item_2": "LineItem2",
	}
	for in, want := range cases {
		if got := ClassName(in); got != want {
			t.Errorf("ClassName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlural(t *testing.T) {
	cases := map[string]string{
		"user":     "users",
		"category": "categories",
		"day":      "days",
		"box":      "boxes",
		"address":  "addresses",
		"batch":    "batches",
		"dish":     "dishes",
		"quiz":     "quizes",
		"order":    "orders",
	}
	for in, want := range cases {
		if got := Plural(in); got != want {
			t.Errorf("Plural(%q) = %q, want %q", in, got, want)
		}
	}
}
