package handler

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-02-29", want: "2024-02-29"},
		{in: "29.02.2024", want: "2024-02-29"},
		{in: "01-07-2024", want: "2024-07-01"},
		{in: "05.08", want: "2025-08-05"},
		{in: " 05-08 ", want: "2025-08-05"},
		{in: "2023-02-29", wantErr: true},
		{in: "tomorrow", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseDate(tt.in, today)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) error = %v", tt.in, err)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("parseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestParseYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "", want: 2024},
		{in: "2031", want: 2031},
		{in: "31", wantErr: true},
		{in: "next", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		got, err := parseYear(tt.in, 2024)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseYear(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseYear(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseWeekdayList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "0,1,2,3,4", want: []int{0, 1, 2, 3, 4}},
		{in: "0, 2 4", want: []int{0, 2, 4}},
		{in: "Mon,Wed,fri", want: []int{0, 2, 4}},
		{in: "-", want: []int{}},
		{in: "none", want: []int{}},
		{in: "9", want: []int{9}},
		{in: "", wantErr: true},
		{in: "mo", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		got, err := parseWeekdayList(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseWeekdayList(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseWeekdayList(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	if got, err := parseID("#12"); err != nil || got != 12 {
		t.Errorf("parseID(#12) = %d, %v, want 12", got, err)
	}
	for _, in := range []string{"0", "-3", "abc", ""} {
		if _, err := parseID(in); err == nil {
			t.Errorf("parseID(%q) error = nil, want error", in)
		}
	}
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     string
		n        int
		want     []string
		wantRest string
	}{
		{name: "with description", args: "2024-01-01  -  0,1,2 part time job", n: 3, want: []string{"2024-01-01", "-", "0,1,2"}, wantRest: "part time job"},
		{name: "fewer than asked", args: "2024-01-01", n: 2, want: []string{"2024-01-01"}},
		{name: "empty", args: "   ", n: 2, want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rest := splitArgs(tt.args, tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitArgs() fields mismatch (-want +got):\n%s", diff)
			}
			if rest != tt.wantRest {
				t.Errorf("splitArgs() rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}
