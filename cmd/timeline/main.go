// Command timeline aggregates non-nominal periods for the SDO spacecraft
// from the public LMSAL/JSOC pages and publishes them as a static site.
//
// Usage:
//
//	timeline run              one-shot fetch-aggregate-publish (scheduler entry point)
//	timeline serve            run once, then serve the site and metrics
//	timeline validate [file]  check a published timeline.csv
package main

func main() {
	Execute()
}
