package goals

import "testing"

func TestSummarize(t *testing.T) {
	list := []Goal{
		{EmpID: 1, EmpCode: "kyc10019", GoalID: "KYC-01", Title: "Case throughput", Effort: 10},
		{EmpID: 1, EmpCode: "kyc10019", GoalID: "KYC-02", Title: "Quality score", Effort: 5},
		{EmpID: 1, EmpCode: "kyc10019", GoalID: "KYC-01 ", Title: "Case throughput", Effort: 15},
	}

	summaries := Summarize(list)
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	// First-seen order survives grouping.
	if summaries[0].GoalID != "KYC-01" || summaries[1].GoalID != "KYC-02" {
		t.Fatalf("order = %s, %s", summaries[0].GoalID, summaries[1].GoalID)
	}
	if summaries[0].Effort != 25 {
		t.Fatalf("KYC-01 effort = %v, want 25 (trimmed ids must merge)", summaries[0].Effort)
	}
	if summaries[0].EffortsPercentage != 83.33 {
		t.Fatalf("KYC-01 percentage = %v, want 83.33", summaries[0].EffortsPercentage)
	}
	if summaries[1].EffortsPercentage != 16.67 {
		t.Fatalf("KYC-02 percentage = %v, want 16.67", summaries[1].EffortsPercentage)
	}
}

func TestSummarizeZeroTotal(t *testing.T) {
	summaries := Summarize([]Goal{
		{GoalID: "A", Effort: 0},
		{GoalID: "B", Effort: 0},
	})
	for _, s := range summaries {
		if s.EffortsPercentage != 0 {
			t.Fatalf("%s percentage = %v, want 0", s.GoalID, s.EffortsPercentage)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Fatalf("got %d summaries for empty input", len(got))
	}
}
