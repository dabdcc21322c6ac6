// Package buffer provides reusable interleaved sample buffers for
// hosts that stream audio blocks through filter instances.
package buffer
