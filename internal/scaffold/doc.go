// Package scaffold turns an answer record into a ready-to-build plugin
// project. Plan maps answers to an ordered artifact list (manifest, build
// descriptor, optional type-check config, readme, packaging script, source
// stubs) without touching the file system; the Emitter is the only
// component that writes, and it fails fast on the first error.
package scaffold
