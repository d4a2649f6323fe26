package region

import (
	"errors"
	"testing"
)

func TestKeralaResolvesEveryDistrict(t *testing.T) {
	expected := map[string]Coordinates{
		"Thiruvananthapuram": {Lat: 8.524139, Lon: 76.936638},
		"Kollam":             {Lat: 8.893212, Lon: 76.614136},
		"Alappuzha":          {Lat: 9.498066, Lon: 76.338493},
		"Pathanamthitta":     {Lat: 9.2645, Lon: 76.787},
		"Kottayam":           {Lat: 9.591566, Lon: 76.522116},
		"Idukki":             {Lat: 9.87862, Lon: 77.168903},
		"Ernakulam":          {Lat: 9.981634, Lon: 76.299872},
		"Thrissur":           {Lat: 10.527642, Lon: 76.214423},
		"Palakkad":           {Lat: 10.78666, Lon: 76.654778},
		"Malappuram":         {Lat: 11.072445, Lon: 76.062389},
		"Kozhikode":          {Lat: 11.258753, Lon: 75.780411},
		"Wayanad":            {Lat: 11.685455, Lon: 76.13266},
		"Kannur":             {Lat: 11.874521, Lon: 75.370369},
		"Kasaragod":          {Lat: 12.49858, Lon: 74.989059},
	}

	table := Kerala()

	if got := len(table.Names()); got != len(expected) {
		t.Fatalf("expected %d districts, got %d", len(expected), got)
	}

	for name, want := range expected {
		got, err := table.Resolve(name)
		if err != nil {
			t.Fatalf("unexpected error resolving %s: %v", name, err)
		}
		if got != want {
			t.Fatalf("resolve %s: expected %+v, got %+v", name, want, got)
		}
	}
}

func TestResolveUnknownDistrict(t *testing.T) {
	table := Kerala()

	for _, name := range []string{"", "Madurai", "kottayam", "Kottayam "} {
		if _, err := table.Resolve(name); !errors.Is(err, ErrNotFound) {
			t.Fatalf("resolve %q: expected ErrNotFound, got %v", name, err)
		}
	}
}

func TestSubstituteTable(t *testing.T) {
	table := NewTable(map[string]Coordinates{
		"Testpuram": {Lat: 1.5, Lon: 2.5},
	})

	got, err := table.Resolve("Testpuram")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Lat != 1.5 || got.Lon != 2.5 {
		t.Fatalf("unexpected coordinates: %+v", got)
	}

	if _, err := table.Resolve("Kottayam"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for district outside substitute table, got %v", err)
	}
}
