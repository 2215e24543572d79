// Package fakeapi is an in-memory implementation of the remote time-blocks
// API for tests.
//
// It mirrors the production endpoints (POST /blocks/list, /blocks,
// /blocks/delete) including their validation rules, overlap rejection and
// start-ordered lists, and adds hooks to inject failures and inspect the
// requests it received.
package fakeapi
