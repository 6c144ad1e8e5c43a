// Package errboard renders error-event dashboards as renderer-agnostic
// chart descriptors.
//
// Quick start:
//
//	b := errboard.New()
//	events, err := b.LoadFile(ctx, "eventos.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chart, err := b.Render(events, "errors_by_day")
//	if errboard.IsNoData(err) {
//	    // no event carries a valid timestamp
//	}
//
// Only events with severity "Error" are counted. A Board holds no state
// between calls and is safe for concurrent use.
package errboard
