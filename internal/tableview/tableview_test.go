package tableview

import (
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return []Record{
		{"goal_id": "A1", "goal_desc": "Hiring", "effort": 4, "status": "I"},
		{"goal_id": "A1", "goal_desc": "Hiring", "effort": 6, "status": "C"},
		{"goal_id": "B2", "goal_desc": "Audit", "effort": 2, "status": "I"},
		{"goal_id": "B2", "goal_desc": "Audit", "effort": 8, "status": "S"},
		{"goal_id": "C3", "goal_desc": "Training", "effort": 5, "status": "U"},
	}
}

func TestProjectNoFilterNoSort(t *testing.T) {
	records := sampleRecords()
	p := Project(records, FilterSpec{}, SortSpec{}, PageSpec{}, "")

	if p.TotalCount != len(records) {
		t.Fatalf("TotalCount = %d, want %d", p.TotalCount, len(records))
	}
	if len(p.Rows) != len(records) {
		t.Fatalf("Rows = %d, want %d", len(p.Rows), len(records))
	}
	if len(p.RowStyleFlags) != len(p.Rows) {
		t.Fatalf("flags length %d, rows %d", len(p.RowStyleFlags), len(p.Rows))
	}
	for i, f := range p.RowStyleFlags {
		if f {
			t.Fatalf("flag[%d] = true with empty group key", i)
		}
	}
	// Input order must survive untouched.
	for i := range records {
		if !reflect.DeepEqual(p.Rows[i], records[i]) {
			t.Fatalf("row %d reordered", i)
		}
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	Project(records, FilterSpec{}, SortSpec{Field: "effort", Descending: true}, PageSpec{}, "")
	if records[0]["goal_id"] != "A1" || records[4]["goal_id"] != "C3" {
		t.Fatal("input slice was reordered")
	}
}

func TestProjectFilter(t *testing.T) {
	p := Project(sampleRecords(), FieldEquals("status", "i"), SortSpec{}, PageSpec{}, "")
	if p.TotalCount != 2 || len(p.Rows) != 2 {
		t.Fatalf("got %d rows, TotalCount %d, want 2", len(p.Rows), p.TotalCount)
	}
	for _, r := range p.Rows {
		if r["status"] != "I" {
			t.Fatalf("filter leaked %v", r["status"])
		}
	}
}

func TestProjectFilterEmptyValueIsNoOp(t *testing.T) {
	p := Project(sampleRecords(), FieldEquals("status", ""), SortSpec{}, PageSpec{}, "")
	if p.TotalCount != 5 {
		t.Fatalf("TotalCount = %d, want 5 (empty filter value must not filter)", p.TotalCount)
	}
}

func TestProjectFilterAbsentField(t *testing.T) {
	p := Project(sampleRecords(), FieldEquals("no_such_field", "x"), SortSpec{}, PageSpec{}, "")
	if p.TotalCount != 0 {
		t.Fatalf("TotalCount = %d, want 0 for absent field", p.TotalCount)
	}
}

func TestProjectFilterAnd(t *testing.T) {
	f := And(FieldContains("goal_desc", "ing"), FieldEquals("status", "U"))
	p := Project(sampleRecords(), f, SortSpec{}, PageSpec{}, "")
	if len(p.Rows) != 1 || p.Rows[0]["goal_id"] != "C3" {
		t.Fatalf("And filter got %v", p.Rows)
	}
}

func TestProjectSortStable(t *testing.T) {
	records := []Record{
		{"name": "beta", "seq": 1},
		{"name": "Alpha", "seq": 2},
		{"name": " alpha ", "seq": 3},
		{"name": "beta", "seq": 4},
	}
	p := Project(records, FilterSpec{}, SortSpec{Field: "name"}, PageSpec{}, "")

	wantSeq := []int{2, 3, 1, 4}
	for i, want := range wantSeq {
		if got := p.Rows[i]["seq"]; got != want {
			t.Fatalf("row %d seq = %v, want %d", i, got, want)
		}
	}
}

func TestProjectSortNumeric(t *testing.T) {
	records := []Record{
		{"effort": "10"},
		{"effort": "2"},
		{"effort": 7},
	}
	p := Project(records, FilterSpec{}, SortSpec{Field: "effort", Descending: true}, PageSpec{}, "")
	want := []string{"10", "7", "2"}
	for i, w := range want {
		if render(p.Rows[i]["effort"]) != w {
			t.Fatalf("row %d effort = %v, want %s", i, p.Rows[i]["effort"], w)
		}
	}
}

func TestProjectPagination(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name      string
		page      PageSpec
		wantRows  int
		wantTotal int
		wantFirst string
	}{
		{name: "size zero returns all", page: PageSpec{Index: 0, Size: 0}, wantRows: 5, wantTotal: 5, wantFirst: "A1"},
		{name: "first page", page: PageSpec{Index: 0, Size: 2}, wantRows: 2, wantTotal: 5, wantFirst: "A1"},
		{name: "middle page", page: PageSpec{Index: 1, Size: 2}, wantRows: 2, wantTotal: 5, wantFirst: "B2"},
		{name: "short last page", page: PageSpec{Index: 2, Size: 2}, wantRows: 1, wantTotal: 5, wantFirst: "C3"},
		{name: "past the end", page: PageSpec{Index: 9, Size: 2}, wantRows: 0, wantTotal: 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := Project(records, FilterSpec{}, SortSpec{}, tc.page, "")
			if len(p.Rows) != tc.wantRows {
				t.Fatalf("rows = %d, want %d", len(p.Rows), tc.wantRows)
			}
			if p.TotalCount != tc.wantTotal {
				t.Fatalf("TotalCount = %d, want %d", p.TotalCount, tc.wantTotal)
			}
			if tc.wantRows > 0 && p.Rows[0]["goal_id"] != tc.wantFirst {
				t.Fatalf("first row = %v, want %s", p.Rows[0]["goal_id"], tc.wantFirst)
			}
		})
	}
}

func TestGroupFlagsToggle(t *testing.T) {
	rows := []Record{
		{"goal_id": "A1"},
		{"goal_id": "A1"},
		{"goal_id": "B2"},
		{"goal_id": "B2"},
		{"goal_id": "C3"},
	}
	got := GroupFlags(rows, "goal_id")
	want := []bool{false, false, true, true, false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flags = %v, want %v", got, want)
	}
}

func TestGroupFlagsTrimsKeys(t *testing.T) {
	rows := []Record{
		{"goal_id": "A1"},
		{"goal_id": " A1 "},
		{"goal_id": "B2"},
	}
	got := GroupFlags(rows, "goal_id")
	want := []bool{false, false, true}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flags = %v, want %v", got, want)
	}
}

func TestProjectGroupFlagsResetPerPage(t *testing.T) {
	records := []Record{
		{"goal_id": "A1"},
		{"goal_id": "A1"},
		{"goal_id": "B2"},
		{"goal_id": "B2"},
		{"goal_id": "C3"},
		{"goal_id": "C3"},
	}

	// Page boundary splits the B2 group. The second page starts false
	// again even though B2 carried a true flag on the first page.
	p1 := Project(records, FilterSpec{}, SortSpec{}, PageSpec{Index: 0, Size: 3}, "goal_id")
	p2 := Project(records, FilterSpec{}, SortSpec{}, PageSpec{Index: 1, Size: 3}, "goal_id")

	want1 := []bool{false, false, true}
	want2 := []bool{false, true, true}
	if !reflect.DeepEqual(p1.RowStyleFlags, want1) {
		t.Fatalf("page 1 flags = %v, want %v", p1.RowStyleFlags, want1)
	}
	if !reflect.DeepEqual(p2.RowStyleFlags, want2) {
		t.Fatalf("page 2 flags = %v, want %v", p2.RowStyleFlags, want2)
	}
}

func TestProjectFlagsParallelToRows(t *testing.T) {
	p := Project(sampleRecords(), FieldContains("goal_desc", "a"), SortSpec{Field: "effort"}, PageSpec{Index: 0, Size: 2}, "goal_id")
	if len(p.RowStyleFlags) != len(p.Rows) {
		t.Fatalf("flags %d, rows %d", len(p.RowStyleFlags), len(p.Rows))
	}
}

func TestProjectEmptyInput(t *testing.T) {
	p := Project(nil, FieldEquals("x", "y"), SortSpec{Field: "x"}, PageSpec{Index: 0, Size: 10}, "x")
	if p.TotalCount != 0 || len(p.Rows) != 0 || len(p.RowStyleFlags) != 0 {
		t.Fatalf("empty input produced %+v", p)
	}
}
