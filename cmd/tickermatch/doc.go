// Command tickermatch matches clinical trial sponsor names to public
// stock tickers. It imports reference data, runs the matching pipeline
// against an embedding service, persists runs, and evaluates results
// against review labels.
package main
