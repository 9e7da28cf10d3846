// Copyright (c) 2026 The bddkit Authors
//
// MIT License

//go:build !debug

package robdd

const _DEBUG bool = false
