package docstore

import "testing"

func TestOrderExpr(t *testing.T) {
	cases := []struct {
		name string
		sort Sort
		want string
	}{
		{"text ascending", Sort{Field: "name"}, "data->>$4 ASC"},
		{"text descending", Sort{Field: "name", Descending: true}, "data->>$4 DESC"},
		{"time descending", Sort{Field: "donationDate", Descending: true, Time: true}, "(data->>$4)::timestamptz DESC"},
		{"time ascending", Sort{Field: "donationDate", Time: true}, "(data->>$4)::timestamptz ASC"},
	}
	for _, tc := range cases {
		if got := orderExpr(tc.sort); got != tc.want {
			t.Errorf("%s: orderExpr = %q, want %q", tc.name, got, tc.want)
		}
	}
}
