// skillmap — roadmap skill ETL and resume matching backend.
//
// Pipeline stages turn a developer-roadmap checkout and scraped LinkedIn
// postings into skill catalogs under data/; serve exposes resume analysis
// against those catalogs over HTTP.
package main

import "github.com/avoronov/go_skillmap/cmd"

func main() {
	cmd.Execute()
}
