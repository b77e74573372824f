// Package context holds per-request state for the application services:
// memoized reads and staged writes.
//
// A chat request resolves the client, renders the reply and counts intents
// from one read of the book:
//
//	ctx, rc := context.Ensure(ctx)
//	book, err := context.Fetch(ctx, rc, "dora:book", repo.ListClients)
//
// Applying a model portfolio stages the allocation change and the meeting log
// entry, then commits both. If the second fails, the first is undone:
//
//	rc.AddAction(&allocationAction{...})
//	rc.AddAction(&noteAction{...})
//	err := rc.Commit(ctx)
package context
