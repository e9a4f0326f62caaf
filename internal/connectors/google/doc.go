// Package google provides shared plumbing for Google API access:
// service construction, token sourcing, rate limiting and error
// classification. The docs subpackage builds the document fetcher
// on top of it.
package google
