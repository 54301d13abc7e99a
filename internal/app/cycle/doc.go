// Package cycle scopes one reconciliation run.
//
// A run has two phases. Reads go through [Cycle.GetOrFetch], so the remote
// page is fetched at most once per run no matter how many steps look at it:
//
//	cy := cycle.New(ctx)
//	page, err := cycle.Fetch(cy, cycle.KeyRemotePage, remote.FetchPage)
//
// Writes are staged with [Cycle.AddAction] and executed in order by
// [Cycle.Commit]. The first failing action stops the commit; actions that
// already ran are not undone, because a remote write cannot be taken back.
package cycle
