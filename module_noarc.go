//go:build linkedlists_noarc

package linkedlists

func arcModule() []Module {
	return nil
}
