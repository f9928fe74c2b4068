package benchmarks

import (
	"sort"
	"testing"
)

func TestAllReturnsBuiltinDataset(t *testing.T) {
	rows, err := All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected a non-empty builtin dataset")
	}
}

func TestFilter(t *testing.T) {
	rows, err := Filter("Software Engineer", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range rows {
		if b.Role != "Software Engineer" {
			t.Fatalf("unexpected role %s in filtered rows", b.Role)
		}
	}

	exact, err := Filter("Software Engineer", "L4", "San Francisco")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exact) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(exact))
	}

	none, err := Filter("Astronaut", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no rows, got %d", len(none))
	}
}

func TestDistinctValuesSorted(t *testing.T) {
	roles, err := Roles()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sort.StringsAreSorted(roles) {
		t.Fatalf("expected sorted roles, got %v", roles)
	}
	seen := map[string]bool{}
	for _, r := range roles {
		if seen[r] {
			t.Fatalf("duplicate role %s", r)
		}
		seen[r] = true
	}
}

func TestSummary(t *testing.T) {
	summary, err := Summary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, _ := All()
	if summary.TotalBenchmarks != len(rows) {
		t.Fatalf("expected %d benchmarks, got %d", len(rows), summary.TotalBenchmarks)
	}
	if summary.AverageBaseSalary50th <= 0 || summary.AverageTotalComp50th <= 0 {
		t.Fatal("expected positive median averages")
	}
}
