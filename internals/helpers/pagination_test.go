package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)

	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 45 rows at 20 per page, got %d", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("expected middle page to have both neighbours, got %+v", p)
	}
}

func TestBuildPaginationEdges(t *testing.T) {
	first := BuildPaginationFromPage(45, 1, 20)
	if first.HasPrev {
		t.Fatalf("expected first page to have no previous page")
	}

	last := BuildPaginationFromPage(45, 3, 20)
	if last.HasNext {
		t.Fatalf("expected last page to have no next page")
	}
}

func TestBuildPaginationEmptyResult(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)
	if p.TotalPages != 1 {
		t.Fatalf("expected at least one page for an empty result, got %d", p.TotalPages)
	}
	if p.HasNext || p.HasPrev {
		t.Fatalf("expected no neighbours for an empty result, got %+v", p)
	}
}

func TestBuildPaginationNormalizesBadInput(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0)
	if p.Page != 1 || p.PerPage != 20 {
		t.Fatalf("expected defaults for non-positive input, got %+v", p)
	}
}
