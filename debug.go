// Copyright (c) 2026 The bddkit Authors
//
// MIT License

//go:build debug

package robdd

import (
	"log"
	"os"
)

const _DEBUG bool = true

func init() {
	log.SetOutput(os.Stdout)
}
