package core_test

import (
	"reflect"
	"testing"

	"clearview-wipers/internal/core"
)

func TestResolveCaseInsensitive(t *testing.T) {
	tests := []struct {
		name  string
		make  string
		model string
	}{
		{"lowercase", "toyota", "camry"},
		{"uppercase", "TOYOTA", "CAMRY"},
		{"mixed", "ToYoTa", "cAmRy"},
		{"padded", "  Toyota  ", "  Camry  "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := core.Resolve(tc.make, tc.model)
			if entry == nil {
				t.Fatalf("Resolve(%q, %q) returned nil, want match", tc.make, tc.model)
			}
			if entry.Driver != `26"` || entry.Passenger != `18"` || entry.Rear != "" {
				t.Errorf("Resolve(%q, %q) = %+v, want 26/18/no rear", tc.make, tc.model, entry)
			}
		})
	}
}

func TestResolveNormalizedModel(t *testing.T) {
	// The table lists "Ford_F-250"; spellings without the hyphen or with a
	// space must still resolve.
	for _, model := range []string{"F-250", "F250", "f 250", "f-250"} {
		entry := core.Resolve("Ford", model)
		if entry == nil {
			t.Errorf("Resolve(Ford, %q) returned nil, want F-250 entry", model)
			continue
		}
		if entry.Driver != `22"` || entry.Passenger != `22"` {
			t.Errorf("Resolve(Ford, %q) = %+v, want 22/22", model, entry)
		}
	}

	if entry := core.Resolve("Toyota", "landcruiser"); entry == nil {
		t.Error("Resolve(Toyota, landcruiser) returned nil, want Land Cruiser entry")
	}
}

func TestResolveUnknownAndEmpty(t *testing.T) {
	tests := []struct {
		name  string
		make  string
		model string
	}{
		{"unknown model", "Toyota", "Starship"},
		{"unknown make", "Yugo", "GV"},
		{"model from other make", "Honda", "Camry"},
		{"empty make", "", "Camry"},
		{"empty model", "Toyota", ""},
		{"whitespace make", "   ", "Camry"},
		{"whitespace model", "Toyota", "   "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if entry := core.Resolve(tc.make, tc.model); entry != nil {
				t.Errorf("Resolve(%q, %q) = %+v, want nil", tc.make, tc.model, entry)
			}
		})
	}
}

func TestModelsForMake(t *testing.T) {
	models := core.ModelsForMake("lexus")
	want := []string{"ES300", "ES350", "GX460", "GX470", "IS250", "IS350", "LX470", "LX570", "NX", "RX330", "RX350"}
	if !reflect.DeepEqual(models, want) {
		t.Errorf("ModelsForMake(lexus) = %v, want %v", models, want)
	}

	if models := core.ModelsForMake("Yugo"); len(models) != 0 {
		t.Errorf("ModelsForMake(Yugo) = %v, want empty", models)
	}
}

func TestSuggestModels(t *testing.T) {
	t.Run("empty partial returns first 8", func(t *testing.T) {
		got := core.SuggestModels("Toyota", "")
		if len(got) != 8 {
			t.Fatalf("expected 8 suggestions, got %d: %v", len(got), got)
		}
		all := core.ModelsForMake("Toyota")
		if !reflect.DeepEqual(got, all[:8]) {
			t.Errorf("suggestions = %v, want first 8 of %v", got, all)
		}
	})

	t.Run("substring filter", func(t *testing.T) {
		got := core.SuggestModels("Toyota", "cor")
		want := []string{"Corolla", "GR Corolla"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SuggestModels(Toyota, cor) = %v, want %v", got, want)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := core.SuggestModels("Toyota", "zzz"); len(got) != 0 {
			t.Errorf("SuggestModels(Toyota, zzz) = %v, want empty", got)
		}
	})

	t.Run("never more than 8", func(t *testing.T) {
		if got := core.SuggestModels("Ford", "f"); len(got) > 8 {
			t.Errorf("expected at most 8 suggestions, got %d: %v", len(got), got)
		}
	})
}

func TestMakesAndYears(t *testing.T) {
	makes := core.Makes()
	if len(makes) != 33 {
		t.Errorf("expected 33 makes, got %d", len(makes))
	}

	years := core.Years()
	if len(years) != 30 {
		t.Fatalf("expected 30 years, got %d", len(years))
	}
	if years[0] != "2026" || years[29] != "1997" {
		t.Errorf("years span = %s..%s, want 2026..1997", years[0], years[29])
	}
}
