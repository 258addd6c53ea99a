package ledger

import "github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"

// ListPartitions returns the ordered set of partition names visible to the
// caller: every distinct partition observed in the transaction log in
// first-seen order, with the default partition prepended when it was not
// observed, and declared-but-unused names appended in declaration order.
//
// The ordering is stable across calls for the same input. The interactive
// surface binds selection state by name and position, so reordering between
// calls would break it.
func ListPartitions(transactions []model.Transaction, declared []string, defaultName string) []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(declared)+1)

	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, t := range transactions {
		add(t.Partition)
	}

	if defaultName != "" && !seen[defaultName] {
		seen[defaultName] = true
		names = append([]string{defaultName}, names...)
	}

	for _, name := range declared {
		add(name)
	}

	return names
}

// ResolveDefault returns requested if it is among the available partitions,
// otherwise the first available one. This lets a stale selection (for
// example a partition whose last transaction was just deleted) degrade
// gracefully instead of failing. Returns "" only when available is empty.
func ResolveDefault(requested string, available []string) string {
	for _, name := range available {
		if name == requested {
			return requested
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return ""
}
