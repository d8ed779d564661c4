package query

import (
	"reflect"
	"testing"
)

func TestPaginateThirdPage(t *testing.T) {
	data := make([]int, 25)
	for i := range data {
		data[i] = i + 1
	}

	p := Paginate(data, 3, 10)

	if !reflect.DeepEqual(p.Data, []int{21, 22, 23, 24, 25}) {
		t.Fatalf("unexpected page data: %v", p.Data)
	}
	if p.Total != 25 || p.Page != 3 || p.PageSize != 10 || p.TotalPages != 3 {
		t.Fatalf("unexpected page meta: %+v", p)
	}
}

func TestPaginateOutOfRangePage(t *testing.T) {
	data := []string{"a", "b", "c"}

	p := Paginate(data, 9, 2)

	if len(p.Data) != 0 {
		t.Fatalf("expected empty data, got %v", p.Data)
	}
	if p.Total != 3 {
		t.Fatalf("total changed: %d", p.Total)
	}
	if p.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", p.TotalPages)
	}
}

func TestPaginateCoversAllPagesInOrder(t *testing.T) {
	data := make([]int, 17)
	for i := range data {
		data[i] = i
	}

	pageSize := 5
	first := Paginate(data, 1, pageSize)
	wantPages := (len(data) + pageSize - 1) / pageSize
	if first.TotalPages != wantPages {
		t.Fatalf("totalPages = %d, want %d", first.TotalPages, wantPages)
	}

	var rebuilt []int
	for page := 1; page <= first.TotalPages; page++ {
		rebuilt = append(rebuilt, Paginate(data, page, pageSize).Data...)
	}
	if !reflect.DeepEqual(rebuilt, data) {
		t.Fatalf("concatenated pages do not reconstruct data: %v", rebuilt)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	p := Paginate([]int(nil), 1, 10)
	if len(p.Data) != 0 || p.Total != 0 || p.TotalPages != 0 {
		t.Fatalf("unexpected result for empty input: %+v", p)
	}
}

type searchRow struct {
	Name  string
	Email string
}

func rowFields(r searchRow) []string { return []string{r.Name, r.Email} }

func TestFilterBySearchEmptyTermIsIdentity(t *testing.T) {
	data := []searchRow{{"Ana", "ana@x.dev"}, {"Bo", "bo@x.dev"}}

	got := FilterBySearch(data, "", rowFields)
	if !reflect.DeepEqual(got, data) {
		t.Fatalf("empty term changed data: %v", got)
	}

	got = FilterBySearch(data, "   ", rowFields)
	if !reflect.DeepEqual(got, data) {
		t.Fatalf("blank term changed data: %v", got)
	}
}

func TestFilterBySearchCaseInsensitiveSubstring(t *testing.T) {
	data := []searchRow{
		{"Maya Flow", "maya@studio.dev"},
		{"Jonas", "jonas@studio.dev"},
		{"Amaya", "a@other.dev"},
	}

	got := FilterBySearch(data, "MAYA", rowFields)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
	if got[0].Name != "Maya Flow" || got[1].Name != "Amaya" {
		t.Fatalf("wrong matches: %v", got)
	}

	got = FilterBySearch(data, "studio.dev", rowFields)
	if len(got) != 2 {
		t.Fatalf("expected 2 email matches, got %v", got)
	}
}
