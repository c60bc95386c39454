package extract

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Segment
	}{
		{
			name: "plain prose",
			text: "What do you notice about the slope?",
			want: []Segment{{Kind: KindText, Text: "What do you notice about the slope?"}},
		},
		{
			name: "directive between prose",
			text: "Look at the parabola:\n[PLOT: x^2, -3, 3]\nWhere is the vertex?",
			want: []Segment{
				{Kind: KindText, Text: "Look at the parabola:\n"},
				{Kind: KindPlot, Payload: "x^2, -3, 3"},
				{Kind: KindText, Text: "\nWhere is the vertex?"},
			},
		},
		{
			name: "directive only",
			text: "[PLOT: sin(x)]",
			want: []Segment{{Kind: KindPlot, Payload: "sin(x)"}},
		},
		{
			name: "two directives",
			text: "[PLOT: x][PLOT: x^2]",
			want: []Segment{
				{Kind: KindPlot, Payload: "x"},
				{Kind: KindPlot, Payload: "x^2"},
			},
		},
		{
			name: "unterminated directive stays prose",
			text: "here [PLOT: x^2",
			want: []Segment{{Kind: KindText, Text: "here [PLOT: x^2"}},
		},
		{
			name: "empty payload",
			text: "[PLOT:]",
			want: []Segment{{Kind: KindPlot, Payload: ""}},
		},
		{
			name: "whitespace-only prose dropped",
			text: "  \n[PLOT: x]\n  ",
			want: []Segment{{Kind: KindPlot, Payload: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d segments, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
