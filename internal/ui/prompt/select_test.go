package prompt

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func testOptions() []Option {
	return []Option{
		{Title: "main", Description: "33 minutes ago"},
		{Title: "feature", Description: "4 days ago"},
		{Title: "fix", Description: "2 weeks ago"},
	}
}

func TestSelectModel_Enter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial int
		keys    []string
		want    SelectResult
	}{
		{"first", 0, []string{"enter"}, SelectResult{Value: "main", Index: 0}},
		{"initial cursor", 2, []string{"enter"}, SelectResult{Value: "fix", Index: 2}},
		{"out of range initial", 7, []string{"enter"}, SelectResult{Value: "main", Index: 0}},
		{"move down", 0, []string{"down", "enter"}, SelectResult{Value: "feature", Index: 1}},
		{"esc cancels", 1, []string{"esc"}, SelectResult{Cancelled: true}},
		{"q cancels", 1, []string{"q"}, SelectResult{Cancelled: true}},
		{"ctrl+c cancels", 1, []string{"ctrl+c"}, SelectResult{Cancelled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := testOptions()
			m := newSelectModel("Recent branches", opts, tt.initial, lipgloss.NewStyle())
			for _, k := range tt.keys {
				updated, _ := m.Update(keyPress(k))
				m = updated.(selectModel)
			}
			if !m.done {
				t.Fatal("model should be done")
			}
			if got := selectResult(m, opts); got != tt.want {
				t.Errorf("result = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelect_NoOptions(t *testing.T) {
	t.Parallel()
	res, err := Select("Recent branches", nil, 0, lipgloss.NewStyle())
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !res.Cancelled {
		t.Error("Select() with no options should be cancelled")
	}
}
