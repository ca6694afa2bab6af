package scoring

import "github.com/dustin/go-humanize"

// dollars formats a whole-dollar amount as "$20,500".
func dollars(v int) string {
	return "$" + humanize.Comma(int64(v))
}

// miles formats a distance as "42,000".
func miles(v int) string {
	return humanize.Comma(int64(v))
}
