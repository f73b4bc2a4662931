//go:build linkedlists_nostack

package linkedlists

func stackModule() []Module {
	return nil
}
