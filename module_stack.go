//go:build !linkedlists_nostack

package linkedlists

import "github.com/npillmayer/linkedlists/stack"

func stackModule() []Module {
	return []Module{{Name: "stack", Version: stack.Version()}}
}
